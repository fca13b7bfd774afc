// Package config handles tmxtool configuration loading.
package config

// Config holds all tool settings.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig holds report formatting settings.
type OutputConfig struct {
	// Format is "text" or "json".
	Format string `yaml:"format"`
	// Indent is the indent string for JSON output.
	Indent string `yaml:"indent"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Format: "text",
			Indent: "  ",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
