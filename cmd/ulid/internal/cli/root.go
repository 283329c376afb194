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

// Package cli implements ulid command line tool.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fogfish/ulid"
	"github.com/fogfish/ulid/cmd/ulid/internal/config"
	"github.com/fogfish/ulid/cmd/ulid/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags
var (
	Version = "dev"
)

type app struct {
	configPath string
	config     *config.Config
	logger     zerolog.Logger
	clock      ulid.Chronos
}

func newApp(stderr io.Writer) *app {
	cfg := config.Defaults
	return &app{
		config: &cfg,
		logger: logging.New(cfg.Log, stderr),
		clock:  ulid.Clock,
	}
}

// NewRootCommand creates the command tree
func NewRootCommand() *cobra.Command {
	return newApp(os.Stderr).command()
}

// Execute runs the command, it returns exit code of the process
func Execute(ctx context.Context) int {
	a := newApp(os.Stderr)
	if err := a.command().ExecuteContext(ctx); err != nil {
		a.logger.Error().Err(err).Msg("command failed")
		return 1
	}
	return 0
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:           "ulid",
		Short:         "Generate and validate lexicographically sortable identifiers",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to YAML config file")
	root.PersistentFlags().String("format", config.Defaults.Format, "output format: text or json")
	root.PersistentFlags().Uint64("seed", config.Defaults.Seed, "seed of deterministic entropy, 0 is random")
	root.PersistentFlags().String("log-level", config.Defaults.Log.Level, "log level: debug, info, warn or error")
	root.PersistentFlags().String("log-format", config.Defaults.Log.Format, "log format: console or json")

	root.AddCommand(
		a.newCommand(),
		a.parseCommand(),
		a.validateCommand(),
		a.compareCommand(),
		a.sortCommand(),
	)

	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath, cmd.Flags())
	if err != nil {
		return err
	}

	a.config = cfg
	a.logger = logging.New(cfg.Log, cmd.ErrOrStderr())

	a.clock = ulid.Clock
	if cfg.Seed != 0 {
		a.clock = ulid.NewClock(ulid.WithSeed(cfg.Seed))
	}

	a.logger.Debug().
		Str("format", cfg.Format).
		Uint64("seed", cfg.Seed).
		Msg("config loaded")

	return nil
}

// print writes value as JSON line or as text
func (a *app) print(w io.Writer, text string, value any) error {
	if a.config.Format == config.FormatJSON {
		return json.NewEncoder(w).Encode(value)
	}

	_, err := fmt.Fprintln(w, text)
	return err
}
