package app

import (
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/lock"
	"github.com/Tomgit-cyber/sistema-de-bilhetes/internal/infrastructure/logger"
)

func (a *application) InitActionLockManager(log *logger.Logger) *lock.ActionLockManager {
	return lock.NewActionLockManager(log)
}
