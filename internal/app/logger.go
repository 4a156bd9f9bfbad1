package app

import (
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/config"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.config.Log.Level)
}
