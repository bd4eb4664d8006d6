package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"searchtabs/internal/domain"
)

// Config represents the application configuration
type Config struct {
	Search  SearchSettings  `toml:"search"`
	Copy    CopySettings    `toml:"copy"`
	Filters map[string]bool `toml:"filters"` // category key -> initially visible
	Catalog CatalogSettings `toml:"catalog"`
	Log     LogSettings     `toml:"log"`
}

// SearchSettings controls the staged search pipeline
type SearchSettings struct {
	DebounceMS      int  `toml:"debounce_ms"`
	LoadingMS       int  `toml:"loading_ms"`
	PlaceholderRows int  `toml:"placeholder_rows"`
	InstantRescope  bool `toml:"instant_rescope"` // skip the delay for settled tab/filter changes
}

// CopySettings controls the per-row copy acknowledgment
type CopySettings struct {
	AckMS int `toml:"ack_ms"`
}

// CatalogSettings points at an optional catalog file
type CatalogSettings struct {
	Path string `toml:"path"` // empty means the built-in catalog
}

// LogSettings controls the log file
type LogSettings struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// Debounce returns the quiet period before a search starts loading
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Search.DebounceMS) * time.Millisecond
}

// Loading returns the simulated fetch latency
func (c *Config) Loading() time.Duration {
	return time.Duration(c.Search.LoadingMS) * time.Millisecond
}

// CopyAck returns how long a row shows its "copied" acknowledgment
func (c *Config) CopyAck() time.Duration {
	return time.Duration(c.Copy.AckMS) * time.Millisecond
}

// InitialFilters returns the configured visibility for every category
func (c *Config) InitialFilters() map[domain.Category]bool {
	out := DefaultFilters()
	for key, visible := range c.Filters {
		if cat, ok := domain.ParseCategory(key); ok {
			out[cat] = visible
		}
	}
	return out
}

// Validate checks value ranges and filter keys
func (c *Config) Validate() error {
	if c.Search.DebounceMS <= 0 {
		return fmt.Errorf("%w: search.debounce_ms must be positive, got %d", ErrInvalidConfig, c.Search.DebounceMS)
	}
	if c.Search.LoadingMS <= 0 {
		return fmt.Errorf("%w: search.loading_ms must be positive, got %d", ErrInvalidConfig, c.Search.LoadingMS)
	}
	if c.Search.PlaceholderRows <= 0 {
		return fmt.Errorf("%w: search.placeholder_rows must be positive, got %d", ErrInvalidConfig, c.Search.PlaceholderRows)
	}
	if c.Copy.AckMS <= 0 {
		return fmt.Errorf("%w: copy.ack_ms must be positive, got %d", ErrInvalidConfig, c.Copy.AckMS)
	}
	for key := range c.Filters {
		if _, ok := domain.ParseCategory(key); !ok {
			return fmt.Errorf("%w: filters.%s is not a category", ErrInvalidConfig, key)
		}
	}
	return nil
}

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// ConfigService handles configuration loading
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	Path() string
}

type configService struct {
	filePath string
}

// NewConfigService creates a config service for the default location
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return &configService{
		filePath: filepath.Join(configDir, "searchtabs", "config.toml"),
	}
}

// NewConfigServiceForPath creates a config service reading an explicit file
func NewConfigServiceForPath(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the file the service reads
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration, falling back to defaults when the file is missing
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys absent from the
// file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML configuration on top of the defaults
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultFilters returns the initial category visibility
func DefaultFilters() map[domain.Category]bool {
	return map[domain.Category]bool{
		domain.CategoryFiles:  true,
		domain.CategoryPeople: true,
		domain.CategoryChats:  false,
		domain.CategoryLists:  true,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	filters := make(map[string]bool)
	for cat, visible := range DefaultFilters() {
		filters[string(cat)] = visible
	}
	return &Config{
		Search: SearchSettings{
			DebounceMS:      500,
			LoadingMS:       1000,
			PlaceholderRows: 5,
		},
		Copy: CopySettings{
			AckMS: 1500,
		},
		Filters: filters,
		Log: LogSettings{
			Path:  "searchtabs.log",
			Level: "info",
		},
	}
}
