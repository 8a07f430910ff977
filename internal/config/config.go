package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/undeadlist/claude-code-agents/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeySource     = "source"
	KeyProjectDir = "project_dir"
	KeyVerbose    = "verbose"
)

// Keys lists every setting key, in the order they are documented.
var Keys = []string{KeySource, KeyProjectDir, KeyVerbose}

// flagKeys maps persistent flag names to setting keys.
var flagKeys = map[string]string{
	"source":  KeySource,
	"dir":     KeyProjectDir,
	"verbose": KeyVerbose,
}

// Dir returns the path to the config directory (~/.claude-code-agents/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file, the environment and,
// when flags is non-nil, the persistent flags. A missing config file is not
// an error; a config file that fails schema validation is.
func Load(flags *pflag.FlagSet) error {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	for _, key := range Keys {
		if err := viper.BindEnv(key, branding.EnvVar(key)); err != nil {
			return fmt.Errorf("binding %s: %w", branding.EnvVar(key), err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := viper.BindPFlag(key, f); err != nil {
					return fmt.Errorf("binding flag --%s: %w", name, err)
				}
			}
		}
	}

	data, err := os.ReadFile(FilePath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	result, err := Validate(data)
	if err != nil {
		return fmt.Errorf("validating %s: %w", FilePath(), err)
	}
	if !result.Valid {
		return &InvalidError{Path: FilePath(), Issues: result.Issues}
	}

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Source returns the package root override, empty for the embedded bundle.
func Source() string { return viper.GetString(KeySource) }

// ProjectDir returns the project root override, empty for the working directory.
func ProjectDir() string { return viper.GetString(KeyProjectDir) }

// Verbose reports whether debug logging is enabled.
func Verbose() bool { return viper.GetBool(KeyVerbose) }

// Set validates and writes a config key-value pair to the config file.
// Only keys stored in the file are written; flag and env overrides are not
// persisted.
func Set(key, value string) error {
	typed, err := coerce(key, value)
	if err != nil {
		return err
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	// Work on the file contents alone so bound flags and env vars stay out of it.
	file := viper.New()
	file.SetConfigFile(FilePath())
	file.SetConfigType(fileType)
	if _, err := os.Stat(FilePath()); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	file.Set(key, typed)

	result, err := ValidateSettings(file.AllSettings())
	if err != nil {
		return err
	}
	if !result.Valid {
		return &InvalidError{Path: FilePath(), Issues: result.Issues}
	}

	if err := file.WriteConfigAs(FilePath()); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, typed)
	return nil
}

// coerce converts a command-line value to the type the schema expects.
func coerce(key, value string) (interface{}, error) {
	if key != KeyVerbose {
		return value, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return nil, fmt.Errorf("%s must be true or false, got %q", key, value)
	}
	return b, nil
}
