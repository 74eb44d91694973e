// Public domain.

// Package config holds protosep settings.
//
// Settings live in a YAML file under the user's configuration directory.
// Load reads the file, merging it over built-in defaults, and writes the
// defaults there if the file does not exist yet.  Programs load settings
// once at start and pass them on; nothing in this package reads settings
// implicitly.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// Location of the settings file relative to the user configuration
// directory.
const (
	Dir  = "proto_sep"
	File = "proto_sep_config.yml"
)

// EnvPrefix prefixes environment variables overriding settings, as in
// PROTOSEP_LOGGING_LEVEL.
const EnvPrefix = "PROTOSEP"

// Logging controls program logging.
type Logging struct {
	On    bool   `mapstructure:"on" yaml:"on"`
	Level string `mapstructure:"level" yaml:"level"`
}

// Settings is the complete settings document.
type Settings struct {
	Logging Logging `mapstructure:"logging" yaml:"logging"`
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Logging: Logging{
			On:    true,
			Level: "WARNING",
		},
	}
}

// DefaultPath returns the settings file location,
// $XDG_CONFIG_HOME/proto_sep/proto_sep_config.yml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, Dir, File)
}

// ErrLevel is wrapped by errors for unrecognized logging levels.
var ErrLevel = errors.New("unknown logging level")

// Levels lists the recognized logging levels.
var Levels = []string{"DEBUG", "INFO", "WARNING", "WARN", "ERROR", "CRITICAL"}

// Validate checks that s holds recognized values.
func (s Settings) Validate() error {
	l := strings.ToUpper(strings.TrimSpace(s.Logging.Level))
	for _, v := range Levels {
		if l == v {
			return nil
		}
	}
	return fmt.Errorf("%w %q, want one of %s",
		ErrLevel, s.Logging.Level, strings.Join(Levels, ", "))
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("logging.on", d.Logging.On)
	v.SetDefault("logging.level", d.Logging.Level)
}

// Load reads settings from the file at path on fs.
//
// If the file does not exist it is created, along with its directory,
// holding the defaults.  Values in an existing file override the
// defaults; keys missing from the file keep their default value.
// Environment variables then override both.
func Load(fs afero.Fs, path string) (Settings, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	setDefaults(v)

	exists, err := afero.Exists(fs, path)
	if err != nil {
		return Settings{}, err
	}
	if !exists {
		if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return Settings{}, err
		}
		if err := v.SafeWriteConfigAs(path); err != nil {
			return Settings{}, fmt.Errorf("writing default settings: %w", err)
		}
	} else if err := v.ReadInConfig(); err != nil {
		return Settings{}, fmt.Errorf("reading settings %s: %w", path, err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
