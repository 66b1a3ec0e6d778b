package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/mercdex/internal/config"
	"github.com/KirkDiggler/mercdex/internal/errors"
)

// app carries the resolved configuration and the global flag values shared
// by every subcommand
type app struct {
	cfg *config.Config

	configPath string
	dataDir    string
	source     string
	redisAddr  string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "mercdex",
		Short: "Browse a mercenary roster",
		Long: `mercdex lists a mercenary roster grouped by faction, filters it by attack type,
faction and subclass, and derives stats and skill values at any level and reboot.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.loadConfig,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.StringVar(&a.dataDir, "data-dir", "", "directory holding mercs.json and filters.json")
	flags.StringVar(&a.source, "source", "", "dataset source: file or redis")
	flags.StringVar(&a.redisAddr, "redis-addr", "", "redis address for the dataset cache")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(
		a.newRosterCmd(),
		a.newShowCmd(),
		a.newExportCmd(),
		a.newSeedCmd(),
		a.newRangesCmd(),
	)

	return rootCmd
}

// loadConfig resolves defaults, the config file and the environment, then
// applies any flags given on the command line
func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("data-dir") {
		cfg.DataDir = a.dataDir
	}
	if flags.Changed("source") {
		cfg.Source = a.source
	}
	if flags.Changed("redis-addr") {
		cfg.RedisAddr = a.redisAddr
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	a.cfg = cfg
	return nil
}
