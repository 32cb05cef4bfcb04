package config

import "github.com/spf13/viper"

// Built-in defaults. The chunking target size matches the partitioner's
// DefaultTargetSize; keep the two in sync.
func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "~/.local/state/repolens/repolens.log")

	v.SetDefault("provider.name", "google")
	v.SetDefault("provider.model", "")
	v.SetDefault("provider.rate_limit", 60)
	v.SetDefault("provider.api_key_env", "GEMINI_API_KEY")

	v.SetDefault("analysis.level", "beginner")
	v.SetDefault("analysis.diagram", false)
	v.SetDefault("analysis.concurrency", 1)

	v.SetDefault("chunking.target_size", 100*1024)

	v.SetDefault("catalog.max_file_size", 50*1024)
	v.SetDefault("catalog.skip_extensions", []string{})
	v.SetDefault("catalog.skip_directories", []string{})
	v.SetDefault("catalog.skip_files", []string{})

	v.SetDefault("output.format", "text")
}

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	cfg := &Config{}
	// Unmarshal of defaults cannot fail: the keys mirror the struct.
	_ = v.Unmarshal(cfg)
	return cfg
}
