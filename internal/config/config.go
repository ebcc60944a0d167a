// Package config loads nc-clear settings from defaults, an optional TOML
// file, NC_CLEAR_* environment variables and command-line flags.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mj1618/nc-clear/internal/notify"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. NC_CLEAR_MODE.
const EnvPrefix = "NC_CLEAR"

// Keys, shared by the config file, environment and flag names.
const (
	KeyMode       = "mode"
	KeyMaxWorkers = "max_workers"
	KeyDryRun     = "dry_run"
	KeyFormat     = "format"
	KeyLogJSON    = "log_json"
)

// Config holds the settings for one run.
type Config struct {
	Mode       string `mapstructure:"mode"`
	MaxWorkers int    `mapstructure:"max_workers"`
	DryRun     bool   `mapstructure:"dry_run"`
	Format     string `mapstructure:"format"`
	LogJSON    bool   `mapstructure:"log_json"`
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyMode, string(notify.ModeConcurrent))
	v.SetDefault(KeyMaxWorkers, 0)
	v.SetDefault(KeyDryRun, false)
	v.SetDefault(KeyFormat, "")
	v.SetDefault(KeyLogJSON, false)
}

// New returns a Viper instance with defaults, environment binding and the
// search path for config.toml.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	for _, dir := range searchDirs() {
		v.AddConfigPath(dir)
	}
	return v
}

func searchDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "nc-clear"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "nc-clear"))
	}
	return dirs
}

// BindFlags binds every flag in fs whose name matches a key, with dashes
// standing in for underscores (--max-workers binds max_workers).
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, key := range []string{KeyMode, KeyMaxWorkers, KeyDryRun, KeyFormat, KeyLogJSON} {
		f := fs.Lookup(strings.ReplaceAll(key, "_", "-"))
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return errors.Wrapf(err, "bind flag --%s", f.Name)
		}
	}
	return nil
}

// Load reads the config file, if any, and unmarshals the merged settings.
// A missing config file is not an error.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings that cannot be acted on.
func (c *Config) Validate() error {
	if _, err := notify.ParseMode(c.Mode); err != nil {
		return err
	}
	if c.MaxWorkers < 0 {
		return errors.Newf("max_workers must be >= 0, got %d", c.MaxWorkers)
	}
	switch c.Format {
	case "", "yaml", "json":
	default:
		return errors.Newf("unsupported format: %s (use yaml or json)", c.Format)
	}
	return nil
}

// ParsedMode returns the validated execution mode.
func (c *Config) ParsedMode() notify.Mode {
	m, err := notify.ParseMode(c.Mode)
	if err != nil {
		return notify.ModeConcurrent
	}
	return m
}
