package model

import "time"

// Config is the application configuration consumed by the pipeline.
// Populated from defaults, then the config file and ROSTERIZE_* environment
// variables via viper, then CLI flags.
type Config struct {
	Catalog     CatalogConfig     `yaml:"catalog" mapstructure:"catalog"`
	Directory   DirectoryConfig   `yaml:"directory" mapstructure:"directory"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// CatalogConfig locates the versioned hierarchy catalog document.
type CatalogConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// DirectoryConfig configures the member-directory lookup client.
type DirectoryConfig struct {
	BaseURL    string        `yaml:"base_url" mapstructure:"base_url"`
	Timeout    time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent  string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxRetries int           `yaml:"max_retries" mapstructure:"max_retries"`
	RatePerSec float64       `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
	Burst      int           `yaml:"burst" mapstructure:"burst"`
}

// ConcurrencyConfig bounds the directory lookup fan-out.
type ConcurrencyConfig struct {
	LookupWorkers int `yaml:"lookup_workers" mapstructure:"lookup_workers"`
}

// CacheConfig configures the lookup result cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// OutputConfig controls CLI output behavior.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path: "configs/hierarchy.yaml",
		},
		Directory: DirectoryConfig{
			BaseURL:    "",
			Timeout:    10 * time.Second,
			UserAgent:  "Rosterize/0.2 (+https://github.com/barsleague/rosterize)",
			MaxRetries: 3,
			RatePerSec: 5,
			Burst:      5,
		},
		Concurrency: ConcurrencyConfig{
			LookupWorkers: 10,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
	}
}
