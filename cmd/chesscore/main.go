// chesscore is a terminal front end for the rules engine: an interactive
// play shell, legal move listing and perft counting.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/lgbarn/chesscore-go/internal/config"
)

const programVersion = "0.1.0"

// app holds state shared by every subcommand.
type app struct {
	cfg        *config.Config
	configPath string
	logPath    string
	verbose    int

	// logFile is the --log target, closed once the command finishes.
	logFile *os.File
}

func newRootCmd() *cobra.Command {
	return (&app{}).rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "chesscore",
		Short:         "Chess move legality engine",
		Version:       programVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.closeLog()
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "yaml configuration file")
	root.PersistentFlags().StringVar(&a.logPath, "log", "", "append diagnostics to this file instead of stderr")
	root.PersistentFlags().CountVarP(&a.verbose, "verbose", "v", "verbosity (-v summary, -vv commentary)")

	root.AddCommand(newPlayCmd(a), newMovesCmd(a), newPerftCmd(a))
	return root
}

// setup loads the configuration and applies the persistent flags.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := config.NewConfig()
	if a.configPath != "" {
		loaded, err := config.LoadFile(a.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	cfg.OutputFile = cmd.OutOrStdout()
	cfg.LogFile = cmd.ErrOrStderr()
	if a.logPath != "" {
		file, err := os.OpenFile(a.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: log files are user readable
		if err != nil {
			return fmt.Errorf("opening log file %s: %w", a.logPath, err)
		}
		a.logFile = file
		cfg.LogFile = file
	}

	if cmd.Flags().Changed("verbose") {
		cfg.Verbosity = a.verbose
		if cfg.Verbosity > config.Commentary {
			cfg.Verbosity = config.Commentary
		}
	}
	if err := cfg.Validate(); err != nil {
		_ = a.closeLog()
		return err
	}
	a.cfg = cfg
	return nil
}

// closeLog closes the --log file, if one was opened.
func (a *app) closeLog() error {
	if a.logFile == nil {
		return nil
	}
	if err := a.logFile.Close(); err != nil {
		return fmt.Errorf("closing log file %s: %w", a.logPath, err)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "chesscore: %v\n", err)
		os.Exit(1)
	}
}
