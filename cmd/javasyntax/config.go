package main

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/dhamidi/javasyntax/format"
)

// Config is the merged result of defaults, javasyntax.yaml, JAVASYNTAX_*
// environment variables and command line flags.
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Scan   ScanConfig   `mapstructure:"scan"`
	Log    LogConfig    `mapstructure:"log"`
}

type OutputConfig struct {
	Format    string `mapstructure:"format"`
	Positions bool   `mapstructure:"positions"`
}

type ScanConfig struct {
	// Concurrency of zero means one worker per CPU.
	Concurrency int `mapstructure:"concurrency"`
}

type LogConfig struct {
	Verbosity int    `mapstructure:"verbosity"`
	File      string `mapstructure:"file"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output.format", "tree")
	v.SetDefault("output.positions", true)
	v.SetDefault("scan.concurrency", 0)
	v.SetDefault("log.verbosity", 0)
	v.SetDefault("log.file", "")
}

// loadConfig reads cfgFile, or javasyntax.yaml from the working directory
// or the user config directory when cfgFile is empty. A missing default
// config file is not an error.
func loadConfig(v *viper.Viper, cfgFile string) (*Config, error) {
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("javasyntax")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(dir + "/javasyntax")
		}
	}

	v.SetEnvPrefix("JAVASYNTAX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrapf(err, "read config")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrapf(err, "decode config")
	}
	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if !slices.Contains(format.Names, strings.ToLower(c.Output.Format)) {
		return fmt.Errorf("output.format: unknown format %q (want one of %s)",
			c.Output.Format, strings.Join(format.Names, ", "))
	}
	if c.Scan.Concurrency < 0 {
		return fmt.Errorf("scan.concurrency: must not be negative, got %d", c.Scan.Concurrency)
	}
	if c.Log.Verbosity < -4 || c.Log.Verbosity > 2 {
		return fmt.Errorf("log.verbosity: must be between -4 and 2, got %d", c.Log.Verbosity)
	}
	return nil
}
