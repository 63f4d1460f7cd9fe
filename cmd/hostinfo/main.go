// Package main is the entry point for hostinfo.
// It loads configuration, builds the platform pipeline, prints one fact block
// to stdout and exits.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Guliveer/hostinfo/internal/config"
	"github.com/Guliveer/hostinfo/internal/platform"
	"github.com/Guliveer/hostinfo/internal/report"
)

// version is set at build time via -ldflags.
var version = "dev"

type options struct {
	configPath string
	cli        config.CLIOverrides
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "hostinfo",
		Short:        "Print a one-shot summary of host identity and resources",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			ctx, cancel := signalContext(cmd.Context())
			defer cancel()
			return run(ctx, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to configuration file (default: search standard locations)")
	flags.StringVar(&opts.cli.Pipeline, "pipeline", "", "Pipeline to run: auto, linux or windows")
	flags.StringVar(&opts.cli.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	flags.StringVar(&opts.cli.Root, "root", "", "Directory that host files are read under (library and syscall probes stay live)")

	cmd.AddCommand(newConfigCmd(opts))
	return cmd
}

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or write the effective configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "write PATH",
		Short: "Write the effective configuration to PATH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			if err := config.WriteConfig(cfg, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", args[0])
			return nil
		},
	})

	return cmd
}

// loadConfig layers flags over env and file settings and validates the result.
// An explicitly given --config path must exist.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if cmd.Flags().Changed("config") {
		cfg, err = config.LoadLayered(opts.cli, opts.configPath)
	} else {
		cfg, err = config.LoadLayered(opts.cli)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// run builds the pipeline and prints the report. Probe failures degrade the
// report; only writer and pipeline selection errors are returned.
func run(ctx context.Context, cfg *config.Config, stdout, stderr io.Writer) error {
	logger, closeLog := initLogger(cfg, stderr)
	defer closeLog()

	logger.Info("Starting hostinfo",
		zap.String("version", version),
		zap.String("pipeline", cfg.Pipeline),
		zap.String("root", cfg.Sources.Root))

	host := platform.New(cfg.Sources.Root, cfg.Timeouts.Command.Duration)
	paths := report.Paths{
		OSRelease:  cfg.Sources.OSRelease,
		Proc:       cfg.Sources.Proc,
		LSBRelease: cfg.Sources.LSBRelease,
	}

	r, err := report.New(cfg.Pipeline, report.FromOS(host), paths, logger)
	if err != nil {
		return err
	}
	if err := r.Run(ctx, stdout); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}

// signalContext cancels on SIGINT or SIGTERM so a hung command is abandoned.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
