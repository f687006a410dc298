package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"listselect/internal/domain"
	"listselect/internal/eventbus"
)

// FileName is the per-directory config file looked up by the CLI
const FileName = ".listselect.toml"

// Config represents the picker configuration
type Config struct {
	Version        int          `toml:"version"`
	Items          []ItemConfig `toml:"items"`
	Selected       []int        `toml:"selected"`
	Disabled       []int        `toml:"disabled"`
	Multiple       bool         `toml:"multiple"`
	Search         bool         `toml:"search"`
	KeyboardEvents *bool        `toml:"keyboard_events,omitempty"` // nil means enabled
	UISettings     UISettings   `toml:"ui"`
}

// ItemConfig is the file form of an item. An entry with only a name is a
// Primitive; an entry with a value is Labeled.
type ItemConfig struct {
	Name  string `toml:"name,omitempty"`
	Value any    `toml:"value,omitempty"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHelp bool   `toml:"show_help"`
	Height   int    `toml:"height"` // max rows shown, 0 means fit the terminal
	Title    string `toml:"title"`
}

// KeyboardEnabled reports whether key handling is wired up
func (c *Config) KeyboardEnabled() bool {
	return c.KeyboardEvents == nil || *c.KeyboardEvents
}

// SetKeyboardEnabled sets the keyboard_events flag
func (c *Config) SetKeyboardEnabled(enabled bool) {
	c.KeyboardEvents = &enabled
}

// DomainItems converts the configured items into domain items
func (c *Config) DomainItems() []domain.Item {
	items := make([]domain.Item, 0, len(c.Items))
	for _, ic := range c.Items {
		items = append(items, ic.Item())
	}
	return items
}

// Item converts the entry into a domain item
func (ic ItemConfig) Item() domain.Item {
	if ic.Value != nil {
		return domain.Labeled(ic.Name, ic.Value)
	}
	if ic.Name == "" {
		// Neither a display string nor a value; rejected by catalog validation
		return domain.Item{}
	}
	return domain.Primitive(ic.Name)
}

// ItemsFromStrings builds Primitive item entries from plain lines
func ItemsFromStrings(lines []string) []ItemConfig {
	items := make([]ItemConfig, 0, len(lines))
	for _, l := range lines {
		items = append(items, ItemConfig{Name: l})
	}
	return items
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service rooted at the user config dir
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		bus:      eventbus.NullBus{},
		filePath: filepath.Join(configDir, "listselect", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	if bus != nil {
		cs.bus = bus
	}
	return cs
}

// NewConfigServiceAt creates a config service whose default file is path.
// A nil bus publishes nothing.
func NewConfigServiceAt(path string, bus eventbus.EventBus) ConfigService {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &configService{bus: bus, filePath: path}
}

// Load loads the configuration from the default file, falling back to
// DefaultConfig when the file does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		cfg := DefaultConfig()
		cs.publishLoaded(cs.filePath, cfg)
		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves the configuration to the default file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	cs.publishLoaded(path, cfg)
	return cfg, nil
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

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	cs.bus.Publish(eventbus.ConfigSavedEvent{Path: path})
	return nil
}

func (cs *configService) publishLoaded(path string, cfg *Config) {
	cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path, Items: len(cfg.Items)})
}

// Validate checks that every configured item is well formed
func (c *Config) Validate() error {
	for i, item := range c.DomainItems() {
		if err := item.Validate(); err != nil {
			return &domain.ValidationError{Index: i, Err: err}
		}
	}
	return nil
}

// DefaultConfig returns a new default configuration. Each call returns a
// fresh record; callers may mutate it freely.
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Items:    []ItemConfig{},
		Selected: []int{},
		Disabled: []int{},
		UISettings: UISettings{
			ShowHelp: true,
		},
	}
}
