package config

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_DefaultsOnlyFailValidation verifies that defaults alone are not
// enough: a DSN is mandatory.
func TestBuild_DefaultsOnlyFailValidation(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

// TestBuild_LaterSourcesOverride verifies that non-zero fields of later
// configs win while zero fields keep earlier values.
func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "first"}}},
		&StructuredConfig{Storage: Storage{DB: DB{DSN: "second", Driver: DriverSQLite}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "second", cfg.Storage.DB.DSN)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, DefaultAdminEmail, cfg.App.Admin.Email)
	assert.Equal(t, DefaultAdminUserName, cfg.App.Admin.UserName)
	assert.Equal(t, 10, cfg.Storage.DB.MaxOpenConns)
}

// ── full pipeline ─────────────────────────────────────────────────────────────

func TestLoadStructuredConfig_EnvFlagsJSON(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_DB_DATABASE_URI": "from-env",
		"APP_ADMIN_USER_NAME":     "env-admin",
		"ENV_FILE":                "",
	})
	t.Chdir(t.TempDir())

	jsonPath := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"log_level": "info"},
	})

	cfg, err := loadStructuredConfig([]string{"-driver", "sqlite", "-d", "from-flags", "-c", jsonPath})
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "from-flags", cfg.Storage.DB.DSN, "flags override env")
	assert.Equal(t, "env-admin", cfg.App.Admin.UserName)
	assert.Equal(t, "info", cfg.App.LogLevel, "json overrides defaults")
	assert.Equal(t, DefaultAdminEmail, cfg.App.Admin.Email)
	assert.Equal(t, jsonPath, cfg.JSONFilePath)
}

func TestLoadStructuredConfig_BadJSONPath(t *testing.T) {
	setEnvVars(t, map[string]string{"STORAGE_DB_DATABASE_URI": "dsn"})
	t.Chdir(t.TempDir())

	_, err := loadStructuredConfig([]string{"-config", "/does/not/exist.json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error occured during building config")
}
