package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"copticsocial/internal/eventbus"
)

func TestLoadCreatesDefaultsOnFirstRun(t *testing.T) {
	t.Setenv(TokenEnvVar, "")
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cs := NewConfigService(path)
	cfg, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = os.Stat(path)
	require.NoError(t, err, "defaults should be written to disk")
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv(TokenEnvVar, "")
	path := filepath.Join(t.TempDir(), "config.toml")
	cs := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.API.BaseURL = "https://coptic.example"
	cfg.Search.DebounceMs = 150
	cfg.UI.SkipLanding = true
	cfg.UI.LastGroupType = "prayer"
	require.NoError(t, cs.Save(cfg))

	loaded, err := cs.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFromPathKeepsDefaultsForMissingKeys(t *testing.T) {
	t.Setenv(TokenEnvVar, "")
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[api]
base_url = "http://localhost:9999"

[search]
debounce_ms = 120
result_limit = -1
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := NewConfigService(path).LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", cfg.API.BaseURL)
	assert.Equal(t, 10, cfg.API.TimeoutSeconds)
	assert.Equal(t, 120, cfg.Search.DebounceMs)
	assert.Equal(t, 5, cfg.Search.ResultLimit)
	assert.Equal(t, 5, cfg.Toasts.Max)
}

func TestTokenFromEnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api]\ntoken = \"file-token\"\n"), 0600))
	t.Setenv(TokenEnvVar, "env-token")

	cfg, err := NewConfigService(path).LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "file-token", cfg.API.Token)

	cfg.ApplyEnv()
	assert.Equal(t, "env-token", cfg.API.Token)
}

func TestLoadFromPathRejectsInvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api\nbase_url="), 0600))

	_, err := NewConfigService(path).LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestSavePublishesEvent(t *testing.T) {
	bus := eventbus.New(nil)
	defer bus.Close()

	saved := make(chan string, 1)
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
		saved <- e.(eventbus.ConfigSavedEvent).Path
	})

	path := filepath.Join(t.TempDir(), "config.toml")
	cs := NewConfigServiceWithBus(path, bus)
	require.NoError(t, cs.Save(DefaultConfig()))

	assert.Equal(t, path, <-saved)
}
