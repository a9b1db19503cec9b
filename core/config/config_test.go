package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dannygar/NLWeb/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "./static", cfg.Server.StaticDir)
	assert.True(t, cfg.Server.OpenBrowser)
	assert.Equal(t, "2s", cfg.Server.BrowserDelay)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_PortFromEnv(t *testing.T) {
	t.Setenv("PORT", "3000")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Server.Port)

	url, err := cfg.Server.TargetURL()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/static/str_chat.html", url)
}

func TestLoadConfig_ServerPortWinsOverBarePort(t *testing.T) {
	t.Setenv("SERVER_PORT", "9100")
	t.Setenv("PORT", "3000")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Server.Port)
}

func TestLoadConfig_NonNumericPortFails(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := config.LoadConfig(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a number")
}

func TestLoadConfig_MalformedDelayFails(t *testing.T) {
	t.Setenv("SERVER_BROWSER_DELAY", "soon")

	_, err := config.LoadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	// Register restores for the variables the .env file will overwrite.
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("PORT", "8000")

	dir := t.TempDir()
	env := "SERVER_HOST=localhost\nPORT=4242\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o644))

	cfg, err := config.LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, "4242", cfg.Server.Port)
}

func TestLoadConfig_MissingEnvFileIsFine(t *testing.T) {
	cfg, err := config.LoadConfig(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Server.Port)
}
