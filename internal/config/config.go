// Package config handles configuration loading for ndastro.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete application configuration.
type Config struct {
	Ephemeris EphemerisConfig `mapstructure:"ephemeris" yaml:"ephemeris"`
	Chart     ChartConfig     `mapstructure:"chart"     yaml:"chart"`
	Compute   ComputeConfig   `mapstructure:"compute"   yaml:"compute"`
	API       APIConfig       `mapstructure:"api"       yaml:"api"`
	Logging   LoggingConfig   `mapstructure:"logging"   yaml:"logging"`
}

// EphemerisConfig selects the planetary dataset.
type EphemerisConfig struct {
	// Dataset is a path to an orbital-elements JSON file. Empty selects the
	// embedded dataset.
	Dataset string `mapstructure:"dataset" yaml:"dataset"`
}

// ChartConfig holds defaults applied when a request omits birth details.
type ChartConfig struct {
	Name      string  `mapstructure:"name"      yaml:"name"`
	Place     string  `mapstructure:"place"     yaml:"place"`
	Latitude  float64 `mapstructure:"latitude"  yaml:"latitude"`
	Longitude float64 `mapstructure:"longitude" yaml:"longitude"`
	Ayanamsa  string  `mapstructure:"ayanamsa"  yaml:"ayanamsa"`
	Locale    string  `mapstructure:"locale"    yaml:"locale"`
}

// ComputeConfig bounds the server-side computation pool.
type ComputeConfig struct {
	MaxConcurrent int64 `mapstructure:"max_concurrent" yaml:"max_concurrent"`
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	Host            string   `mapstructure:"host"              yaml:"host"`
	Port            int      `mapstructure:"port"              yaml:"port"`
	CORSOrigins     []string `mapstructure:"cors_origins"      yaml:"cors_origins"`
	ShutdownTimeout int      `mapstructure:"shutdown_timeout"  yaml:"shutdown_timeout"` // seconds
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.ndastro/config.yaml (home directory)
//  3. /etc/ndastro/config.yaml (system)
//
// Environment variables override config file values.
// Format: NDASTRO_<SECTION>_<KEY>, e.g., NDASTRO_API_PORT
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".ndastro"))
	v.AddConfigPath("/etc/ndastro")

	bindEnv(v)

	// Read config file (not required to exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found — that's fine, use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("NDASTRO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// Ephemeris defaults: empty dataset path selects the embedded elements.
	v.SetDefault("ephemeris.dataset", "")

	// Chart defaults: Salem, Tamil Nadu.
	v.SetDefault("chart.name", "ND Astro")
	v.SetDefault("chart.place", "Salem")
	v.SetDefault("chart.latitude", 12.59)
	v.SetDefault("chart.longitude", 77.36)
	v.SetDefault("chart.ayanamsa", "lahiri")
	v.SetDefault("chart.locale", "en")

	// Compute defaults
	v.SetDefault("compute.max_concurrent", 8)

	// API defaults
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", []string{"http://localhost:3000"})
	v.SetDefault("api.shutdown_timeout", 10)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
