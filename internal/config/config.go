package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"binminder/internal/domain"
	"binminder/internal/eventbus"
)

// ErrInvalidBins is returned when the configured bin list can't form a catalog
var ErrInvalidBins = errors.New("invalid bin configuration")

// Config represents the application configuration
type Config struct {
	Version    int                  `toml:"version"`
	Title      string               `toml:"title"`
	LogFile    string               `toml:"log_file"`
	UISettings UISettings           `toml:"ui"`
	Bins       []domain.BinCategory `toml:"bins,omitempty"` // empty means the built-in catalog
}

// UISettings represents UI-related configuration
type UISettings struct {
	WeekStartsMonday bool `toml:"week_starts_monday"`
	ShowWeekNumbers  bool `toml:"show_week_numbers"`
	UsePagerForHelp  bool `toml:"use_pager_for_help"`
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

// DefaultPath returns $XDG_CONFIG_HOME/binminder/config.toml (or the platform equivalent)
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, herr := homedir.Dir()
		if herr != nil {
			home = "."
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "binminder", "config.toml")
}

// NewConfigService creates a config service for path; an empty path selects DefaultPath.
// A leading ~ is expanded to the user's home directory.
func NewConfigService(path string) (ConfigService, error) {
	if path == "" {
		path = DefaultPath()
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path %q: %w", path, err)
	}
	return &configService{filePath: expanded}, nil
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) (ConfigService, error) {
	svc, err := NewConfigService(path)
	if err != nil {
		return nil, err
	}
	cs := svc.(*configService)
	cs.bus = bus
	return cs, nil
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file, falling back to defaults when absent
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath, Bins: len(cfg.Bins)})
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start from defaults so keys missing from the file keep their default values
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	if err := config.Validate(); err != nil {
		return err
	}

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
	return nil
}

// Validate checks the bin list; it must be empty or hold exactly domain.BinCount entries
func (c *Config) Validate() error {
	if len(c.Bins) == 0 {
		return nil
	}
	if len(c.Bins) != domain.BinCount {
		return fmt.Errorf("%w: need %d bins, got %d", ErrInvalidBins, domain.BinCount, len(c.Bins))
	}
	for i, b := range c.Bins {
		if b.DisplayLabel == "" || b.IconKey == "" {
			return fmt.Errorf("%w: bin %d needs both label and icon_key", ErrInvalidBins, i)
		}
	}
	return nil
}

// Catalog builds the bin catalog described by the config
func (c *Config) Catalog() (domain.BinCatalog, error) {
	if len(c.Bins) == 0 {
		return domain.DefaultBinCatalog(), nil
	}
	if err := c.Validate(); err != nil {
		return domain.BinCatalog{}, err
	}
	catalog, err := domain.NewBinCatalog(c.Bins)
	if err != nil {
		return domain.BinCatalog{}, fmt.Errorf("%w: %v", ErrInvalidBins, err)
	}
	return catalog, nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Title:   "Actual garbage app",
		LogFile: "binminder.log",
		UISettings: UISettings{
			WeekStartsMonday: true,
			UsePagerForHelp:  true,
		},
	}
}
