//
//  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

// Package config loads configuration of ulid command from defaults,
// optional YAML file, ULID_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config of the command
type Config struct {
	// Format of the output: text or json
	Format string `mapstructure:"format"`

	// Seed makes entropy deterministic, 0 uses process-wide random generator
	Seed uint64 `mapstructure:"seed"`

	Log LogConfig `mapstructure:"log"`
}

// LogConfig of the command
type LogConfig struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string `mapstructure:"level"`

	// Format of log lines: console or json
	Format string `mapstructure:"format"`
}

// Defaults of the configuration
var Defaults = Config{
	Format: FormatText,
	Seed:   0,
	Log: LogConfig{
		Level:  "warn",
		Format: "console",
	},
}

// ErrInvalid indicates that configuration is malformed
var ErrInvalid = errors.New("invalid config")

// flags binds config keys to command line flags
var flags = map[string]string{
	"format":     "format",
	"seed":       "seed",
	"log.level":  "log-level",
	"log.format": "log-format",
}

// Load reads configuration. The path to YAML file is optional, flags may be nil.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("format", Defaults.Format)
	v.SetDefault("seed", Defaults.Seed)
	v.SetDefault("log.level", Defaults.Log.Level)
	v.SetDefault("log.format", Defaults.Log.Format)

	v.SetEnvPrefix("ULID")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for key, name := range flags {
			if flag := fs.Lookup(name); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigType("yaml")
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	cfg.Format = strings.ToLower(cfg.Format)
	if cfg.Format != FormatText && cfg.Format != FormatJSON {
		return fmt.Errorf("%w: unsupported format %q", ErrInvalid, cfg.Format)
	}

	cfg.Log.Level = strings.ToLower(cfg.Log.Level)
	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unsupported log level %q", ErrInvalid, cfg.Log.Level)
	}

	cfg.Log.Format = strings.ToLower(cfg.Log.Format)
	if cfg.Log.Format != "console" && cfg.Log.Format != "json" {
		return fmt.Errorf("%w: unsupported log format %q", ErrInvalid, cfg.Log.Format)
	}

	return nil
}
