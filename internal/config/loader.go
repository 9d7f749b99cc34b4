package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// configName is the config file base name searched for (.javadecl.yaml or .javadecl.yml).
const configName = ".javadecl"

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)

	// ConfigFileUsed returns the config file read by the last Load, or "".
	ConfigFileUsed() string
}

type loader struct {
	configFile string
	searchDirs []string
	used       string
}

// NewLoader creates a loader that searches searchDirs, in order, for a
// .javadecl.yaml file. Finding none is not an error.
func NewLoader(searchDirs ...string) Loader {
	return &loader{
		searchDirs: searchDirs,
	}
}

// NewFileLoader creates a loader that reads exactly configFile.
// A missing file is an error.
func NewFileLoader(configFile string) Loader {
	return &loader{
		configFile: configFile,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (JAVADECL_*)
// 2. Config file
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	if l.configFile != "" {
		v.SetConfigFile(l.configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType("yaml")
		for _, dir := range l.searchDirs {
			v.AddConfigPath(dir)
		}
	}

	// Enable environment variable overrides
	v.SetEnvPrefix("JAVADECL")
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., JAVADECL_OUTPUT_PRETTY)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("output.pretty")
	v.BindEnv("source.patterns")
	v.BindEnv("source.ignore")
	v.BindEnv("log.verbose")

	setDefaults(v)

	l.used = ""
	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable - we'll use defaults + env vars
		var notFound viper.ConfigFileNotFoundError
		if l.configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		l.used = v.ConfigFileUsed()
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (l *loader) ConfigFileUsed() string {
	return l.used
}

// setDefaults configures viper with default values.
func setDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("output.pretty", defaults.Output.Pretty)

	v.SetDefault("source.patterns", defaults.Source.Patterns)
	v.SetDefault("source.ignore", defaults.Source.Ignore)

	v.SetDefault("log.verbose", defaults.Log.Verbose)
}

// LoadConfig loads configuration for a command-line invocation. An explicit
// configFile wins; otherwise the working directory and then the home
// directory are searched.
func LoadConfig(configFile string) (*Config, string, error) {
	var l Loader
	if configFile != "" {
		l = NewFileLoader(configFile)
	} else {
		var dirs []string
		if wd, err := os.Getwd(); err == nil {
			dirs = append(dirs, wd)
		}
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs, home)
		}
		l = NewLoader(dirs...)
	}

	cfg, err := l.Load()
	if err != nil {
		return nil, "", err
	}
	return cfg, l.ConfigFileUsed(), nil
}
