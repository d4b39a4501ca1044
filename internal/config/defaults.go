package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Default values applied before any other source.
const (
	DefaultAdminEmail    = "admin@anda.com.uy"
	DefaultAdminUserName = "admin"
	DefaultLogLevel      = "debug"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogLevel:   DefaultLogLevel,
			BcryptCost: bcrypt.DefaultCost,
			Admin: Admin{
				Email:    DefaultAdminEmail,
				UserName: DefaultAdminUserName,
			},
		},
		Storage: Storage{
			DB: DB{
				Driver:          DriverPostgres,
				MaxOpenConns:    10,
				MaxIdleConns:    4,
				ConnMaxLifetime: 30 * time.Minute,
			},
		},
	}
}
