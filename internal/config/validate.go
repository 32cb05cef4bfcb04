package config

import "fmt"

var (
	knownProviders = map[string]struct{}{"google": {}, "openai": {}}
	knownLevels    = map[string]struct{}{"beginner": {}, "senior": {}}
	knownFormats   = map[string]struct{}{"text": {}, "markdown": {}}
)

// Validate checks a configuration for contract violations. It is called on
// every load so a bad value fails at startup rather than mid-pipeline.
func Validate(cfg *Config) error {
	if _, ok := knownProviders[cfg.Provider.Name]; !ok {
		return fmt.Errorf("invalid provider %q; use 'google' or 'openai'", cfg.Provider.Name)
	}
	if cfg.Provider.RateLimit < 0 {
		return fmt.Errorf("invalid provider rate_limit %d; must be >= 0", cfg.Provider.RateLimit)
	}

	if _, ok := knownLevels[cfg.Analysis.Level]; !ok {
		return fmt.Errorf("invalid analysis level %q; use 'beginner' or 'senior'", cfg.Analysis.Level)
	}
	if cfg.Analysis.Concurrency < 1 {
		return fmt.Errorf("invalid analysis concurrency %d; must be >= 1", cfg.Analysis.Concurrency)
	}

	if cfg.Chunking.TargetSize <= 0 {
		return fmt.Errorf("invalid chunking target_size %d; must be positive", cfg.Chunking.TargetSize)
	}

	if cfg.Catalog.MaxFileSize <= 0 {
		return fmt.Errorf("invalid catalog max_file_size %d; must be positive", cfg.Catalog.MaxFileSize)
	}

	if _, ok := knownFormats[cfg.Output.Format]; !ok {
		return fmt.Errorf("invalid output format %q; use 'text' or 'markdown'", cfg.Output.Format)
	}

	return nil
}
