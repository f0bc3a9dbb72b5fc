// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configName = ".rbbench"
	configType = "yaml"
	envPrefix  = "RBBENCH"

	defaultN = 100_000
)

// config holds the settings of one benchmark run.
type config struct {
	N        int     `mapstructure:"n"`
	Seed     uint64  `mapstructure:"seed"`
	Removals float64 `mapstructure:"removals"`
	Check    bool    `mapstructure:"check"`
	LogLevel string  `mapstructure:"log_level"`
}

// loadConfig merges defaults, the config file, RBBENCH_* environment
// variables and the flags that were set, in increasing priority.
// A missing config file is not an error.
func loadConfig(path string, flags *pflag.FlagSet) (*config, error) {
	v := viper.New()
	v.SetDefault("n", defaultN)
	v.SetDefault("seed", 0)
	v.SetDefault("removals", 0.0)
	v.SetDefault("check", false)
	v.SetDefault("log_level", "info")

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config")
		}
	}

	if flags != nil {
		for _, name := range []string{"n", "seed", "removals", "check"} {
			if err := v.BindPFlag(name, flags.Lookup(name)); err != nil {
				return nil, errors.Wrapf(err, "bind flag %s", name)
			}
		}
		if err := v.BindPFlag("log_level", flags.Lookup("log-level")); err != nil {
			return nil, errors.Wrap(err, "bind flag log-level")
		}
	}

	var cfg config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}
	return &cfg, nil
}

func (c *config) validate() error {
	if c.N < 0 {
		return errors.Newf("n must not be negative, got %d", c.N)
	}
	if c.Removals < 0 || c.Removals > 1 {
		return errors.Newf("removals must be between 0 and 1, got %g", c.Removals)
	}
	return nil
}
