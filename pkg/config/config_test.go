package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8090", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Equal(t, "templates", cfg.TemplatesDir)
	assert.Equal(t, "", cfg.RebuildSchedule)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENV", "production")
	t.Setenv("STATIC_DIR", "/srv/kbo/static")
	t.Setenv("REBUILD_SCHEDULE", "@daily")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "/srv/kbo/static", cfg.StaticDir)
	assert.Equal(t, "@daily", cfg.RebuildSchedule)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("ENV", "prod")

	_, err := Load()
	assert.Error(t, err)
}

func TestConfig_DataDir(t *testing.T) {
	cfg := &Config{StaticDir: "static"}
	assert.Equal(t, filepath.Join("static", "data"), cfg.DataDir())
}
