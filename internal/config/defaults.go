package config

import "fmt"

// Default returns configuration with sensible defaults. These are used when
// no config file exists or when the file is missing specific fields.
func Default() *Config {
	return &Config{
		Scan: ScanConfig{
			Exclude: nil,
		},
		Output: OutputConfig{
			Format: "text",
			Dir:    "api-maps",
			Index:  false,
		},
	}
}

// Merge merges a loaded config with defaults. Values from the loaded config
// take precedence. Returns a new Config.
func Merge(loaded, defaults *Config) *Config {
	result := &Config{}

	result.Scan.Exclude = loaded.Scan.Exclude

	result.Output = loaded.Output
	if result.Output.Format == "" {
		result.Output.Format = defaults.Output.Format
	}
	if result.Output.Dir == "" {
		result.Output.Dir = defaults.Output.Dir
	}

	return result
}

// Validate checks a merged config for invalid values.
func Validate(cfg *Config) error {
	switch cfg.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: output.format must be text or json, got %q",
			ErrInvalidConfig, cfg.Output.Format)
	}
	if cfg.Output.Dir == "" {
		return fmt.Errorf("%w: output.dir must not be empty", ErrInvalidConfig)
	}
	return nil
}
