// Command num512 is a calculator for 512-bit integers.
//
// Usage:
//
//	num512 add 1 2
//	num512 --signed mul -- 10 -20
//	num512 --base 16 --out-base 2 conv ff
//	num512 batch < ops.txt
//
// Negative operands must follow "--" so they are not read as flags.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/shabbyrobe/go-num512/internal/calc"
	"github.com/shabbyrobe/go-num512/internal/config"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	wrapColor = color.New(color.FgYellow)
)

// env is the state every subcommand runs with, assembled from the config file
// and flags before the subcommand starts.
type env struct {
	cfg    config.Config
	logger zerolog.Logger
	eval   *calc.Evaluator
}

var current env

var rootCmd = &cobra.Command{
	Use:               "num512",
	Short:             "Checked arithmetic on 512-bit integers",
	Long:              `num512 evaluates arithmetic on unsigned or signed 512-bit integers, reporting overflow, underflow and division by zero instead of wrapping silently.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "TOML config file")
	rootCmd.PersistentFlags().Int("base", 10, "input base (2-36)")
	rootCmd.PersistentFlags().Int("out-base", 10, "output base (2-36)")
	rootCmd.PersistentFlags().Bool("signed", false, "use signed (two's complement) integers")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug|info|warn|error)")

	for _, op := range calc.Ops {
		rootCmd.AddCommand(opCommand(op))
	}
	rootCmd.AddCommand(batchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads the config file, applies any flags the user set on top of it,
// then builds the logger and evaluator.
func setup(cmd *cobra.Command, args []string) error {
	flags := cmd.Root().PersistentFlags()

	path, err := flags.GetString("config")
	if err != nil {
		return fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	if flags.Changed("base") {
		if cfg.InBase, err = flags.GetInt("base"); err != nil {
			return fmt.Errorf("failed to get base flag: %w", err)
		}
	}
	if flags.Changed("out-base") {
		if cfg.OutBase, err = flags.GetInt("out-base"); err != nil {
			return fmt.Errorf("failed to get out-base flag: %w", err)
		}
	}
	if flags.Changed("signed") {
		if cfg.Signed, err = flags.GetBool("signed"); err != nil {
			return fmt.Errorf("failed to get signed flag: %w", err)
		}
	}
	if flags.Changed("log-level") {
		if cfg.LogLevel, err = flags.GetString("log-level"); err != nil {
			return fmt.Errorf("failed to get log-level flag: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()

	eval := calc.New(cfg)
	eval.SetLogger(logger)

	current = env{cfg: cfg, logger: logger, eval: eval}
	logger.Debug().
		Int("in_base", cfg.InBase).
		Int("out_base", cfg.OutBase).
		Bool("signed", cfg.Signed).
		Int("jobs", cfg.Jobs).
		Msg("configured")
	return nil
}
