// Package config loads the optional cmplogview TOML configuration file.
//
// The file lives at $XDG_CONFIG_HOME/cmplogview/config.toml (falling back to
// ~/.config/cmplogview/config.toml) unless a path is given explicitly:
//
//	[report]
//	escape = false
//
//	[log]
//	level = "info"   # debug, info, warn or error
//
// Every key is optional. Command-line flags take precedence over the file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/cmplogview/pkg/errors"
)

const (
	// AppName names the configuration directory.
	AppName = "cmplogview"

	// FileName is the configuration file inside the directory.
	FileName = "config.toml"
)

// Log levels accepted in [log] level.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Config is the decoded configuration file.
type Config struct {
	Report ReportConfig `toml:"report"`
	Log    LogConfig    `toml:"log"`
}

// ReportConfig holds report rendering preferences.
type ReportConfig struct {
	Escape bool `toml:"escape"`
}

// LogConfig holds logging preferences.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{Log: LogConfig{Level: LevelInfo}}
}

// Dir returns the configuration directory using the XDG standard.
func Dir() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName), nil
}

// DefaultPath returns the configuration file path inside [Dir].
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads the configuration file at path. An empty path means
// [DefaultPath], and a missing default file yields [Default]. An explicit
// path that does not exist is an INVALID_CONFIG error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	return Parse(path, data)
}

// Parse decodes TOML data. name is used in error messages only.
func Parse(name string, data []byte) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", name)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys %s", name, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case LevelDebug, LevelInfo, LevelWarn, LevelError:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidConfig, "log.level %q: want debug, info, warn or error", c.Log.Level)
}
