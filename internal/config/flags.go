package config

import (
	"flag"
	"fmt"
	"time"
)

// parseFlags parses the command-line flags in args.
//
// Flags:
//
//	-driver database driver (postgres|sqlite)
//	-d database DSN
//	-migrate apply migrations on startup
//	-admin-email default admin email
//	-admin-user default admin user name
//	-admin-password default admin password
//	-bcrypt-cost bcrypt work factor
//	-log-level log level
//	-conn-max-lifetime connection lifetime (e.g., "30m")
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		driver          string
		databaseDSN     string
		migrate         bool
		adminEmail      string
		adminUserName   string
		adminPassword   string
		bcryptCost      int
		logLevel        string
		connMaxLifetime time.Duration
		jsonConfigPath  string
	)

	fs := flag.NewFlagSet("library", flag.ContinueOnError)
	fs.StringVar(&driver, "driver", "", "Database driver (postgres|sqlite)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.BoolVar(&migrate, "migrate", false, "Apply migrations on startup")
	fs.StringVar(&adminEmail, "admin-email", "", "Default admin email")
	fs.StringVar(&adminUserName, "admin-user", "", "Default admin user name")
	fs.StringVar(&adminPassword, "admin-password", "", "Default admin password")
	fs.IntVar(&bcryptCost, "bcrypt-cost", 0, "Bcrypt work factor")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&connMaxLifetime, "conn-max-lifetime", 0, "Connection max lifetime (e.g., 30m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:   logLevel,
			BcryptCost: bcryptCost,
			Admin: Admin{
				Email:    adminEmail,
				UserName: adminUserName,
				Password: adminPassword,
			},
		},
		Storage: Storage{
			DB: DB{
				Driver:          driver,
				DSN:             databaseDSN,
				ConnMaxLifetime: connMaxLifetime,
				Migrate:         migrate,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
