// SPDX-License-Identifier: MIT

// Package cli implements the wfg command line.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix is the prefix of every environment override (WFG_STRATEGY, ...).
const envPrefix = "WFG"

// app carries the state shared by the commands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
}

// NewRootCommand builds the wfg command tree with its own viper instance.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "wfg [flags] FILE [REF...]",
		Short: "Exact hypervolume of Pareto fronts (WFG algorithm)",
		Long: `wfg computes the exact hypervolume of every front stored in FILE.

Fronts are separated by lines starting with '#'; each other line is one
point. FILE "-" reads standard input. The reference point is given as
trailing arguments or --reference and defaults to the origin. Files ending
in .gz, .zst or .lz4 are decompressed.

Every objective is maximized by default. --minimize flips all of them;
--maximize COLS maximizes only the listed input columns and minimizes the rest.`,
		Example: `  # Maximize, origin as reference
  wfg fronts.dat

  # Minimize against (1.1, 1.1, 1.1) with 4 workers
  wfg --minimize --jobs 4 fronts.dat.zst 1.1 1.1 1.1

  # Per-point contributions as YAML
  wfg --contributions --format yaml fronts.dat

  # Tab separated stdin, maximize column 2 only, report to a file
  cat fronts.tsv | wfg --tabs --maximize 2 --output hv.txt - 0 0 10`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.initConfig(cmd)
		},
		RunE: a.runCompute,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.wfg.yaml or ./.wfg.yaml)")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")

	f := root.Flags()
	f.StringSlice("reference", nil, "reference point, comma separated (default origin)")
	f.String("strategy", "treesweep", "recursion strategy: plain, sorted, sliced, treesweep")
	f.Bool("minimize", false, "minimize every objective instead of maximizing")
	f.StringSlice("maximize", nil, "zero-indexed input columns to maximize; every other objective is minimized")
	f.Bool("maximize-all", false, "maximize every objective (the default)")
	f.StringSlice("columns", nil, "zero-indexed objective columns to read")
	f.String("delimiter", "", "value delimiter (default whitespace)")
	f.Bool("tabs", false, "use tabs as the value delimiter")
	f.String("output", "", "write the report to this file instead of stdout")
	f.Int("jobs", 1, "fronts computed in parallel")
	f.Bool("contributions", false, "also report each point's exclusive contribution")
	f.String("metrics-addr", "", "serve Prometheus metrics on this address while running")
	f.String("format", "text", "report format: text or yaml")

	root.MarkFlagsMutuallyExclusive("minimize", "maximize-all")
	root.MarkFlagsMutuallyExclusive("maximize", "maximize-all")
	root.MarkFlagsMutuallyExclusive("delimiter", "tabs")

	root.AddCommand(newGenerateCommand(), newVersionCommand())

	return root
}

// Execute runs the command tree against os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// initConfig layers flags over WFG_* environment variables over the config file.
func (a *app) initConfig(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.AddConfigPath(".")
		a.v.SetConfigType("yaml")
		a.v.SetConfigName(".wfg")
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	if err := a.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || a.cfgFile != "" {
			return fmt.Errorf("config: %w", err)
		}
	}

	return nil
}
