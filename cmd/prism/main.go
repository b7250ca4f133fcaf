// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/xmidt-org/prism"
)

// run executes the program: greet once, greet cfg.Repeat more times,
// print the labeled sum of the addends, then print the configured status.
func run(cfg Config, stdout io.Writer, logger zerolog.Logger) error {
	g := prism.NewGreeter(
		cfg.Message,
		prism.WithOutput(stdout),
		prism.WithLogger(logger),
	)

	logger.Debug().Str("description", g.Description()).Msg("created greeter")

	g.Greet()
	g.GreetMultiple(cfg.Repeat)

	sum := prism.Add(cfg.Addends[0], cfg.Addends[1])
	if _, err := fmt.Fprintf(stdout, "Sum: %d\n", sum); err != nil {
		return err
	}

	if err := prism.PrintStatus(stdout, cfg.Status); err != nil {
		return err
	}

	logger.Debug().Int("greetings", g.Count()).Stringer("status", cfg.Status).Msg("done")
	return nil
}

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:           "prism",
		Short:         "Greets, adds, and reports a status",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			logger := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			return run(cfg, cmd.OutOrStdout(), logger)
		},
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "prism: %v\n", err)
		os.Exit(1)
	}
}
