package config

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

// Betting modes supported by the backend. "dupla" picks two distinct
// numbers from 1-60, "simples" picks a single number from 1-500.
const (
	ModeDupla   = "dupla"
	ModeSimples = "simples"
)

// Config holds all configuration for the application
type Config struct {
	API       APIConfig       `mapstructure:"api"`
	Betting   BettingConfig   `mapstructure:"betting"`
	Simulator SimulatorConfig `mapstructure:"simulator"`
	Log       LogConfig       `mapstructure:"log"`
}

// APIConfig holds backend client configuration
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// BettingConfig holds the betting-mode variant and the fixed stake
type BettingConfig struct {
	Mode  string  `mapstructure:"mode"`
	Stake float64 `mapstructure:"stake"`
}

// SimulatorConfig holds the development backend simulator configuration
type SimulatorConfig struct {
	Host          string        `mapstructure:"host"`
	Port          string        `mapstructure:"port"`
	SessionSecret string        `mapstructure:"session_secret"`
	SessionExpiry time.Duration `mapstructure:"session_expiry"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// StakeAmount returns the fixed cost of one bet.
func (c *BettingConfig) StakeAmount() decimal.Decimal {
	if c.Stake <= 0 {
		return decimal.NewFromFloat(2.0)
	}
	return decimal.NewFromFloat(c.Stake)
}

// RequiredCount returns how many numbers a valid selection must hold.
func (c *BettingConfig) RequiredCount() int {
	if c.Mode == ModeSimples {
		return 1
	}
	return 2
}

// MaxNumber returns the upper bound of the pickable range. The lower bound
// is always 1.
func (c *BettingConfig) MaxNumber() int {
	if c.Mode == ModeSimples {
		return 500
	}
	return 60
}

// GetServerAddress returns the simulator address for binding
func (c *Config) GetServerAddress() string {
	return fmt.Sprintf("%s:%s", c.Simulator.Host, c.Simulator.Port)
}

// GetEnvironment returns the current environment
func GetEnvironment() string {
	if env := os.Getenv("BILHETES_ENV"); env != "" {
		return env
	}
	if env := os.Getenv("ENV"); env != "" {
		return env
	}
	return "development"
}
