package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"copticsocial/internal/eventbus"
)

// TokenEnvVar overrides the API token from the config file
const TokenEnvVar = "COPTIC_API_TOKEN"

// Config represents the application configuration
type Config struct {
	Version int            `toml:"version"`
	API     APISettings    `toml:"api"`
	Search  SearchSettings `toml:"search"`
	Toasts  ToastSettings  `toml:"toasts"`
	UI      UISettings     `toml:"ui"`
}

// APISettings points the client at a platform API
type APISettings struct {
	BaseURL        string `toml:"base_url"`
	Token          string `toml:"token"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// SearchSettings tunes the typeahead search bar
type SearchSettings struct {
	DebounceMs  int    `toml:"debounce_ms"`
	ResultLimit int    `toml:"result_limit"`
	Placeholder string `toml:"placeholder"`
	Size        string `toml:"size"`
}

// ToastSettings tunes the notification stack
type ToastSettings struct {
	Max        int    `toml:"max"`
	DurationMs int    `toml:"duration_ms"`
	Position   string `toml:"position"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	SkipLanding   bool   `toml:"skip_landing"`
	CompactWidth  int    `toml:"compact_width"`
	UserName      string `toml:"user_name"`
	LastTab       string `toml:"last_tab"`
	LastGroupType string `toml:"last_group_type"`
	LastPrivacy   string `toml:"last_privacy"`
	LastSort      string `toml:"last_sort"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// Dir returns the directory holding config and log files
func Dir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "copticsocial")
}

// NewConfigService creates a config service for the default location,
// or for path when it is non-empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = filepath.Join(Dir(), "config.toml")
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, writing defaults on first run
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
		if err := cs.SaveToPath(cfg, cs.filePath); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path.
// Missing keys keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

// ApplyEnv overrides settings from the environment. It is applied to
// the effective settings only so environment values are never saved.
func (c *Config) ApplyEnv() {
	if token := os.Getenv(TokenEnvVar); token != "" {
		c.API.Token = token
	}
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		API: APISettings{
			BaseURL:        "http://127.0.0.1:8000",
			TimeoutSeconds: 10,
		},
		Search: SearchSettings{
			DebounceMs:  300,
			ResultLimit: 5,
			Placeholder: "Search groups...",
			Size:        "default",
		},
		Toasts: ToastSettings{
			Max:        5,
			DurationMs: 5000,
			Position:   "top-right",
		},
		UI: UISettings{
			CompactWidth: 80,
			UserName:     "Guest",
			LastTab:      "discover",
		},
	}
}

// normalize replaces nonsensical values with defaults
func (c *Config) normalize() {
	def := DefaultConfig()
	if c.API.BaseURL == "" {
		c.API.BaseURL = def.API.BaseURL
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = def.API.TimeoutSeconds
	}
	if c.Search.DebounceMs < 0 {
		c.Search.DebounceMs = def.Search.DebounceMs
	}
	if c.Search.ResultLimit <= 0 {
		c.Search.ResultLimit = def.Search.ResultLimit
	}
	if c.Toasts.Max <= 0 {
		c.Toasts.Max = def.Toasts.Max
	}
	if c.Toasts.DurationMs <= 0 {
		c.Toasts.DurationMs = def.Toasts.DurationMs
	}
}
