// SPDX-License-Identifier: MIT

// Package commands implements the topomap command line.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/topomap"
	"github.com/katalvlaran/topomap/learner"
	"github.com/katalvlaran/topomap/telemetry"
)

// Version is stamped at build time.
var Version = "dev"

const envPrefix = "TOPOMAP"

// app is the state shared by all subcommands of one root command.
type app struct {
	v        *viper.Viper
	cfgFile  string
	logger   *learner.Logger
	shutdown func(context.Context) error
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "topomap",
		Short: "Online topological map learning (GNG, ITM, SOM)",
		Long: `topomap trains Growing Neural Gas, Instantaneous Topological Map and
Self-Organizing Map learners over a stream of points.

Policy parameters come from the config file (gng.eta_n, itm.r_max, som.dim, ...)
or from TOPOMAP_* environment variables (TOPOMAP_GNG_ETA_N).`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if a.shutdown == nil {
				return nil
			}
			return a.shutdown(cmd.Context())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	pf.String("log-level", "warn", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")
	pf.Bool("trace", false, "write OpenTelemetry spans to stderr")
	mustBind(a.v, pf)

	root.AddCommand(newTrainCmd(a))

	return root
}

// init loads configuration, then sets up logging and tracing.
func (a *app) init(cmd *cobra.Command) error {
	if err := a.initConfig(); err != nil {
		return err
	}
	mustBind(a.v, cmd.Flags())

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.v.GetString("log-level"))); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(a.v.GetString("log-format")) {
	case "text":
		a.logger = learner.NewLogger(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
	case "json":
		a.logger = learner.NewLogger(slog.NewJSONHandler(cmd.ErrOrStderr(), opts))
	default:
		return fmt.Errorf("log-format: unknown format %q", a.v.GetString("log-format"))
	}

	if a.v.GetBool("trace") {
		shutdown, err := telemetry.Init(cmd.Context(), cmd.ErrOrStderr(), "topomap", Version)
		if err != nil {
			return err
		}
		a.shutdown = shutdown
	}

	return nil
}

// initConfig registers every policy parameter as a default, so config files
// and TOPOMAP_* variables can override any of them, then reads the file.
func (a *app) initConfig() error {
	var defaults map[string]any
	if err := mapstructure.Decode(topomap.DefaultConfig(), &defaults); err != nil {
		return err
	}
	for key, val := range defaults {
		a.v.SetDefault(key, val)
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile == "" {
		return nil
	}
	a.v.SetConfigFile(a.cfgFile)
	if err := a.v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// policyConfig decodes the effective policy parameters.
func (a *app) policyConfig() (topomap.Config, error) {
	cfg := topomap.DefaultConfig()
	if err := a.v.Unmarshal(&cfg); err != nil {
		return topomap.Config{}, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

func mustBind(v *viper.Viper, fs *pflag.FlagSet) {
	if err := v.BindPFlags(fs); err != nil {
		panic(err)
	}
}
