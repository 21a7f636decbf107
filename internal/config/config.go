// Package config loads runtime settings from environment variables with
// defaults suitable for local, single-user use.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime settings.
type Config struct {
	// DBDriver selects the storage backend: "sqlite" (default) or "postgres".
	DBDriver string
	// DBPath is the SQLite database file.
	DBPath string
	// DBDSN is the connection string used when DBDriver is "postgres".
	DBDSN string
	// BusyTimeout bounds how long a writer waits on the SQLite file lock.
	BusyTimeout time.Duration

	// MaxLoginAttempts is the consecutive-failure threshold before lockout.
	MaxLoginAttempts int
	// LockoutDuration is how long a locked account stays locked.
	LockoutDuration time.Duration
}

// Load reads configuration from the environment.
func Load() Config {
	v := viper.New()
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_PATH", "expenses.db")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("DB_BUSY_TIMEOUT_MS", 30000)
	v.SetDefault("MAX_LOGIN_ATTEMPTS", 5)
	v.SetDefault("LOCKOUT_MINUTES", 30)
	v.AutomaticEnv()

	return Config{
		DBDriver:         v.GetString("DB_DRIVER"),
		DBPath:           v.GetString("DB_PATH"),
		DBDSN:            v.GetString("DB_DSN"),
		BusyTimeout:      time.Duration(v.GetInt("DB_BUSY_TIMEOUT_MS")) * time.Millisecond,
		MaxLoginAttempts: v.GetInt("MAX_LOGIN_ATTEMPTS"),
		LockoutDuration:  time.Duration(v.GetInt("LOCKOUT_MINUTES")) * time.Minute,
	}
}
