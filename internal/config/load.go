package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

var (
	mu      sync.RWMutex
	current *Config
	// configFilePath is the file the active config came from, empty when
	// running on defaults only.
	configFilePath string
)

// Init loads the configuration into the package-level state used by Get.
// A missing config file is not an error; defaults apply.
func Init() error {
	cfg, used, err := load()
	if err != nil {
		return err
	}

	mu.Lock()
	current = cfg
	configFilePath = used
	mu.Unlock()

	return nil
}

// Get returns the active configuration. Before Init it returns defaults,
// which keeps command code and tests independent of global setup order.
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()

	if current == nil {
		return Default()
	}
	return current
}

// ConfigFilePath returns the path of the loaded config file, or empty when
// running on defaults only.
func ConfigFilePath() string {
	mu.RLock()
	defer mu.RUnlock()
	return configFilePath
}

// Reset clears package state. For tests.
func Reset() {
	mu.Lock()
	current = nil
	configFilePath = ""
	mu.Unlock()
}

// load reads config from the search paths:
//  1. REPOLENS_CONFIG_DIR
//  2. ~/.config/repolens/
//  3. the current working directory
func load() (*Config, string, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("REPOLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if envPath := os.Getenv("REPOLENS_CONFIG_DIR"); envPath != "" {
		v.AddConfigPath(envPath)
	}
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "repolens"))
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, "", fmt.Errorf("failed to read config; %w", err)
		}
	}

	cfg, err := unmarshal(v)
	if err != nil {
		return nil, "", err
	}

	return cfg, v.ConfigFileUsed(), nil
}

// LoadFromPath reads configuration from a specific file.
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetEnvPrefix("REPOLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from %s; %w", path, err)
	}

	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config; %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
