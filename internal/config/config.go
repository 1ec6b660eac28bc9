// Package config manages application configuration from files and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"

	"github.com/chunklens/chunklens/internal/analysis"
)

// Config holds the application configuration.
type Config struct {
	ChunkSize int `mapstructure:"chunk_size" json:"chunk_size"`
	Output    struct {
		Format string `mapstructure:"format" json:"format"`
		Color  bool   `mapstructure:"color" json:"color"`
	} `mapstructure:"output" json:"output"`
	Watch struct {
		DebounceMs int      `mapstructure:"debounce_ms" json:"debounce_ms"`
		Extensions []string `mapstructure:"extensions" json:"extensions"`
	} `mapstructure:"watch" json:"watch"`
}

// knownKeys are the settable configuration keys.
var knownKeys = []string{
	"chunk_size",
	"output.format",
	"output.color",
	"watch.debounce_ms",
	"watch.extensions",
}

// Load reads the configuration from ~/.chunklens/config.yaml and environment
// variables (CHUNKLENS_ prefix). A missing config file is not an error.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(Dir())

	setDefaults()

	viper.SetEnvPrefix("CHUNKLENS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	if cfg.ChunkSize < 1 {
		cfg.ChunkSize = analysis.DefaultChunkSize
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("chunk_size", analysis.DefaultChunkSize)
	viper.SetDefault("output.format", "text")
	viper.SetDefault("output.color", true)
	viper.SetDefault("watch.debounce_ms", 500)
	viper.SetDefault("watch.extensions", []string{".txt", ".md", ".markdown", ".rst"})
}

// Set updates a configuration key and persists the config file.
func Set(key, value string) error {
	if !isKnownKey(key) {
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(knownKeys, ", "))
	}
	viper.Set(key, value)
	return Save()
}

// Get returns the current value for a key.
func Get(key string) (interface{}, error) {
	if !isKnownKey(key) {
		return nil, fmt.Errorf("unknown config key %q", key)
	}
	return viper.Get(key), nil
}

// Save writes the current configuration to disk.
func Save() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create config dir: %w", err)
	}
	return viper.WriteConfigAs(Path())
}

// ShowConfig returns a human-readable dump of the known settings.
func ShowConfig() string {
	keys := append([]string(nil), knownKeys...)
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%-18s %v\n", k, viper.Get(k))
	}
	return b.String()
}

// Dir returns the configuration directory.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".chunklens"
	}
	return filepath.Join(home, ".chunklens")
}

// Path returns the configuration file path.
func Path() string {
	return filepath.Join(Dir(), "config.yaml")
}

func isKnownKey(key string) bool {
	for _, k := range knownKeys {
		if k == key {
			return true
		}
	}
	return false
}
