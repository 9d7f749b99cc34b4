// Package config provides configuration loading for javadecl.
//
// Configuration Hierarchy (highest to lowest priority):
//  1. Command-line flags (applied by the cli package)
//  2. Environment variables (JAVADECL_*)
//  3. Config file (--config, or .javadecl.yaml in the working directory or $HOME)
//  4. Built-in defaults
//
// Environment Variable Convention:
//   - Prefix: JAVADECL_
//   - Nested fields: Use underscores (JAVADECL_OUTPUT_PRETTY)
//   - List values are comma separated (JAVADECL_SOURCE_PATTERNS="**/*.java,**/*.jav")
package config

// Config represents the complete javadecl configuration.
type Config struct {
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Source SourceConfig `yaml:"source" mapstructure:"source"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// OutputConfig controls how declaration records are written.
type OutputConfig struct {
	Pretty bool `yaml:"pretty" mapstructure:"pretty"` // indent the JSON array
}

// SourceConfig describes which paths are expected to be Java sources.
// A path outside these patterns is still processed, with a warning.
type SourceConfig struct {
	Patterns []string `yaml:"patterns" mapstructure:"patterns"` // glob patterns for source files
	Ignore   []string `yaml:"ignore" mapstructure:"ignore"`     // glob patterns never treated as sources
}

// LogConfig controls diagnostic output on stderr.
type LogConfig struct {
	Verbose bool `yaml:"verbose" mapstructure:"verbose"`
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Pretty: true,
		},
		Source: SourceConfig{
			Patterns: []string{"**/*.java"},
			Ignore:   []string{},
		},
		Log: LogConfig{
			Verbose: false,
		},
	}
}
