package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	args := []string{
		"-driver", "sqlite",
		"-d", "file:library.db",
		"-migrate",
		"-admin-email", "boss@anda.com.uy",
		"-admin-user", "boss",
		"-admin-password", "pw",
		"-bcrypt-cost", "11",
		"-log-level", "warn",
		"-conn-max-lifetime", "1h",
		"-config", "/etc/library.json",
	}

	cfg, err := parseFlags(args)
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:library.db", cfg.Storage.DB.DSN)
	assert.True(t, cfg.Storage.DB.Migrate)
	assert.Equal(t, time.Hour, cfg.Storage.DB.ConnMaxLifetime)
	assert.Equal(t, "boss@anda.com.uy", cfg.App.Admin.Email)
	assert.Equal(t, "boss", cfg.App.Admin.UserName)
	assert.Equal(t, "pw", cfg.App.Admin.Password)
	assert.Equal(t, 11, cfg.App.BcryptCost)
	assert.Equal(t, "warn", cfg.App.LogLevel)
	assert.Equal(t, "/etc/library.json", cfg.JSONFilePath)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := parseFlags([]string{"-c", "cfg.json"})
	require.NoError(t, err)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_NoFlagsGivesZeroConfig(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-unknown"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing flags")
}
