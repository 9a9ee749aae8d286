// Package cmd implements the CLI commands for helpsite using Cobra.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/gaurav-prasanna/helpsite/config"
	"github.com/spf13/cobra"
)

// Global flag variables.
var (
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string
)

// Loaded by the root command before any subcommand runs.
var (
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "helpsite",
	Short: "Build an offline help center from an exported knowledge base",
	Long: `helpsite turns an exported knowledge base (categories, sections, articles)
into a static help center website, and rebuilds the export from a generated site.

Usage:
  helpsite generate    --input DIR --output DIR
  helpsite reconstruct --input SITE_DIR --output DIR
  helpsite index       --input DIR --output FILE
  helpsite export      --input DIR --output DIR --markdown`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML configuration file (default: built-in Userology tables)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format: text or json")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	l, err := newLogger(cmd.ErrOrStderr(), flagLogLevel, flagLogFormat)
	if err != nil {
		return err
	}
	logger = l
	slog.SetDefault(l)

	c, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	cfg = c
	return nil
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q: must be text or json", format)
	}
}
