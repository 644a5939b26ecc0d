// Package root contains the root command for the application
package root

import (
	"context"
	"fmt"

	"fjacquet/card-payoff/internal/config"
	"fjacquet/card-payoff/internal/container"
	"fjacquet/card-payoff/internal/logging"
	"fjacquet/card-payoff/internal/validation"

	"github.com/spf13/cobra"
)

// Persistent flag names shared by every command.
const (
	FlagConfig    = "config"
	FlagCards     = "cards"
	FlagFormat    = "format"
	FlagLanguage  = "lang"
	FlagCurrency  = "currency"
	FlagDelimiter = "delimiter"
	FlagLogLevel  = "log-level"
	FlagOutput    = "output"
)

type containerKey struct{}

var (
	// Log is the shared logger instance for commands. It is replaced with
	// the configured logger before any command runs.
	Log logging.Logger = logging.NewLogrusAdapter("info", "text")

	// Cmd is the root command
	Cmd = NewCommand()
)

// NewCommand builds a root command with its persistent flags. Subcommands
// are attached by the caller.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card-payoff",
		Short: "Credit card interest and payoff calculator.",
		Long: `card-payoff computes credit card payoff schedules, minimum payments,
the payment needed to clear a balance by a target month, debt growth
without payments, and the order in which to repay several cards.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(FlagConfig, "", "Config file (default: config.yaml in $HOME/.card-payoff, ./.card-payoff or .)")
	flags.String(FlagCards, "", "Card portfolio file (.yaml or .csv)")
	flags.StringP(FlagFormat, "f", "", "Output format: text, json, yaml or csv")
	flags.String(FlagLanguage, "", "Output language: en or tr")
	flags.String(FlagCurrency, "", "Currency code shown in text output, e.g. TRY or EUR")
	flags.String(FlagDelimiter, "", "CSV delimiter for portfolio files and csv output")
	flags.String(FlagLogLevel, "", "Log level: debug, info, warn or error")
	flags.StringP(FlagOutput, "o", "", "Write the report to this file instead of stdout")

	return cmd
}

// setup loads configuration, applies flag overrides and stores a wired
// container on the command context.
func setup(cmd *cobra.Command, args []string) error {
	config.LoadEnv()

	flags := cmd.Flags()
	configFile, _ := flags.GetString(FlagConfig)

	cfg, err := config.InitializeConfigFrom(configFile)
	if err != nil {
		return err
	}

	overrides := []struct {
		flag   string
		target *string
	}{
		{FlagCards, &cfg.Cards.File},
		{FlagFormat, &cfg.Output.Format},
		{FlagLanguage, &cfg.Output.Language},
		{FlagCurrency, &cfg.Output.Currency},
		{FlagDelimiter, &cfg.CSV.Delimiter},
		{FlagLogLevel, &cfg.Log.Level},
	}
	for _, o := range overrides {
		if flags.Changed(o.flag) {
			*o.target, _ = flags.GetString(o.flag)
		}
	}

	if err := validation.IsValidOutputFormat(cfg.Output.Format); err != nil {
		return err
	}
	if cfg.Output.Language, err = validation.NormalizeLanguage(cfg.Output.Language); err != nil {
		return err
	}
	if err := validation.IsValidDelimiter(cfg.CSV.Delimiter); err != nil {
		return err
	}
	if cfg.Cards.File != "" && flags.Changed(FlagCards) {
		if err := validation.IsValidInputFile(cfg.Cards.File); err != nil {
			return err
		}
	}

	logger := logging.NewLogrusLogger(cfg.Log.Level, cfg.Log.Format)
	logger.SetOutput(cmd.ErrOrStderr())
	Log = logging.NewLogrusAdapterFromLogger(logger)

	c, err := container.NewContainerWithLogger(cfg, Log)
	if err != nil {
		return fmt.Errorf("failed to initialize: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, containerKey{}, c))
	return nil
}

// GetContainer returns the container prepared for cmd by the root command.
func GetContainer(cmd *cobra.Command) (*container.Container, error) {
	if ctx := cmd.Context(); ctx != nil {
		if c, ok := ctx.Value(containerKey{}).(*container.Container); ok {
			return c, nil
		}
	}
	return nil, fmt.Errorf("command %s was run without initialization", cmd.Name())
}
