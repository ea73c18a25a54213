package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sabir1919/Hednet-node/internal/config"
)

func TestApplyOverrides(t *testing.T) {
	cfg := config.DefaultConfig()

	applyOverrides(cfg, monitorOptions{
		accounts: "other.csv",
		proxies:  "other.txt",
		script:   "inject.js",
		interval: 30 * time.Second,
	})

	assert.Equal(t, "other.csv", cfg.Accounts)
	assert.Equal(t, "other.txt", cfg.Proxies)
	assert.Equal(t, "inject.js", cfg.Script)
	assert.Equal(t, 30*time.Second, cfg.PollInterval)
}

func TestApplyOverridesKeepsConfigWhenUnset(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Accounts = "configured.csv"
	cfg.PollInterval = 20 * time.Second

	applyOverrides(cfg, monitorOptions{})

	assert.Equal(t, "configured.csv", cfg.Accounts)
	assert.Equal(t, 20*time.Second, cfg.PollInterval)
}

func TestLoadScript(t *testing.T) {
	dir := t.TempDir()
	scriptPath := filepath.Join(dir, "inject.js")
	require.NoError(t, os.WriteFile(scriptPath, []byte("window.keepAlive()"), 0644))

	script, err := loadScript(scriptPath)
	require.NoError(t, err)
	assert.Equal(t, "window.keepAlive()", script)
}

func TestLoadScriptUnsetPath(t *testing.T) {
	script, err := loadScript("")
	require.NoError(t, err)
	assert.Empty(t, script)
}

func TestLoadScriptMissingFile(t *testing.T) {
	_, err := loadScript("/nonexistent/inject.js")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot read script file")
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, want := range []string{"monitor", "accounts", "init", "version", "completion"} {
		assert.True(t, names[want], "command %q should be registered", want)
	}
}
