package main

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/vitalis-app/sysinfo/internal/collector"
	"github.com/vitalis-app/sysinfo/internal/config"
	"github.com/vitalis-app/sysinfo/internal/report"
	"github.com/vitalis-app/sysinfo/pkg/platform"
)

// errCollection is returned when at least one collector failed. The failure
// has already been logged and rendered, so main only sets the exit code.
var errCollection = errors.New("one or more collectors failed")

// app holds state resolved once per invocation by the root command.
type app struct {
	configPath string
	cli        config.CLIOverrides

	cfg    *config.Config
	logger *zap.Logger
	stats  platform.Stats
}

func newRootCmd() *cobra.Command {
	a := &app{stats: platform.Platform{}}

	rootCmd := &cobra.Command{
		Use:   "sysinfo",
		Short: "Report disk, memory, CPU, OS and host name statistics",
		Long: `sysinfo reads host statistics through the native interface of the
running operating system and prints them as text, JSON or YAML.

Running "sysinfo" with no command is the same as "sysinfo snapshot".`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, nil, nil)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (default: first of the standard locations)")
	flags.StringVarP(&a.cli.Format, "format", "f", "", "Output format: text, json or yaml")
	flags.StringVar(&a.cli.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.DurationVar(&a.cli.Timeout, "timeout", 0, "Maximum time to wait for all collectors")

	rootCmd.AddCommand(
		a.snapshotCmd(),
		a.diskCmd(),
		a.singleCmd(collector.NameMemory, "Show physical and swap memory"),
		a.singleCmd(collector.NameCPU, "Show the number of logical processors"),
		a.singleCmd(collector.NameOS, "Show the OS type and release"),
		a.singleCmd(collector.NameHostname, "Show the host name"),
		a.configCmd(),
		versionCmd(),
	)
	return rootCmd
}

// setup resolves configuration and the logger before any command runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.LoadLayered(a.cli, embeddedConfig, a.configPath)
	} else {
		cfg, err = config.LoadLayered(a.cli, embeddedConfig)
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a.cfg = cfg
	a.logger = initLogger(cfg)
	a.logger.Debug("Configuration loaded",
		zap.String("format", cfg.Output.Format),
		zap.Duration("timeout", cfg.Collection.Timeout.Duration),
		zap.Strings("collectors", cfg.Collection.Collectors))
	return nil
}

// run collects the named collectors (the configured set when names is
// empty) and renders one snapshot to the command's output.
func (a *app) run(cmd *cobra.Command, names, diskPaths []string) error {
	if len(names) == 0 {
		names = a.cfg.Collection.Collectors
	}
	if len(diskPaths) == 0 {
		diskPaths = a.cfg.Disk.Paths
	}

	registry, err := collector.NewDefaultRegistry(a.stats, names, diskPaths, a.logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.Collection.Timeout.Duration)
	defer cancel()

	results, collectErr := registry.CollectAll(ctx)
	snapshot := report.Assemble(results, collectErr)

	if err := report.Render(cmd.OutOrStdout(), snapshot, a.cfg.Output.Format); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	if collectErr != nil {
		return errCollection
	}
	return nil
}

func (a *app) snapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Show every configured statistic",
		Long: `Run every configured collector concurrently and print one snapshot.

A collector that fails is logged and listed under errors; the others are
still reported. The exit status is 1 if any collector failed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, nil, nil)
		},
	}
}

func (a *app) diskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disk [path...]",
		Short: "Show capacity of the given paths or of every local mount",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, []string{collector.NameDisk}, args)
		},
	}
}

func (a *app) singleCmd(name, short string) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, []string{name}, nil)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sysinfo %s (%s/%s)\n", version, runtime.GOOS, runtime.GOARCH)
		},
	}
}
