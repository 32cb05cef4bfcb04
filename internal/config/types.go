// Package config loads, validates, and writes repolens configuration. It
// layers a YAML config file, REPOLENS_* environment variables, and built-in
// defaults, in that order of precedence.
package config

import "os"

// Config is the root configuration structure for the application.
type Config struct {
	LogLevel string         `yaml:"log_level" mapstructure:"log_level"`
	LogFile  string         `yaml:"log_file" mapstructure:"log_file"`
	Provider ProviderConfig `yaml:"provider" mapstructure:"provider"`
	Analysis AnalysisConfig `yaml:"analysis" mapstructure:"analysis"`
	Chunking ChunkingConfig `yaml:"chunking" mapstructure:"chunking"`
	Catalog  CatalogConfig  `yaml:"catalog" mapstructure:"catalog"`
	Output   OutputConfig   `yaml:"output" mapstructure:"output"`
}

// ProviderConfig selects and configures the analysis provider.
type ProviderConfig struct {
	Name      string  `yaml:"name" mapstructure:"name"`
	Model     string  `yaml:"model" mapstructure:"model"`
	RateLimit int     `yaml:"rate_limit" mapstructure:"rate_limit"`
	APIKey    *string `yaml:"api_key,omitempty" mapstructure:"api_key"`
	APIKeyEnv string  `yaml:"api_key_env" mapstructure:"api_key_env"`
}

// ResolveAPIKey returns the API key from config or falls back to the
// configured environment variable.
func (c *ProviderConfig) ResolveAPIKey() string {
	if c.APIKey != nil && *c.APIKey != "" {
		return *c.APIKey
	}
	return os.Getenv(c.APIKeyEnv)
}

// AnalysisConfig holds analysis pipeline settings.
type AnalysisConfig struct {
	Level       string `yaml:"level" mapstructure:"level"`
	Diagram     bool   `yaml:"diagram" mapstructure:"diagram"`
	Concurrency int    `yaml:"concurrency" mapstructure:"concurrency"`
}

// ChunkingConfig holds partitioner settings.
type ChunkingConfig struct {
	TargetSize int `yaml:"target_size" mapstructure:"target_size"`
}

// CatalogConfig holds file discovery overrides.
type CatalogConfig struct {
	MaxFileSize     int64    `yaml:"max_file_size" mapstructure:"max_file_size"`
	SkipExtensions  []string `yaml:"skip_extensions,flow" mapstructure:"skip_extensions"`
	SkipDirectories []string `yaml:"skip_directories,flow" mapstructure:"skip_directories"`
	SkipFiles       []string `yaml:"skip_files,flow" mapstructure:"skip_files"`
}

// OutputConfig holds rendering settings.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
}
