// Package container provides dependency injection for the card-payoff CLI.
// It centralizes the creation and wiring of the logger, card store and
// report renderer so that commands receive them ready to use.
package container

import (
	"fmt"

	"fjacquet/card-payoff/internal/config"
	"fjacquet/card-payoff/internal/logging"
	"fjacquet/card-payoff/internal/report"
	"fjacquet/card-payoff/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation; all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger   logging.Logger
	config   *config.Config
	store    store.CardSource
	renderer *report.Renderer
}

// NewContainer creates and wires all application dependencies, building the
// logger from the configuration.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, config.ConfigureLoggingFromConfig(cfg))
}

// NewContainerWithLogger is NewContainer with an existing logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}

	loc, err := report.NewLocalizer(cfg.Output.Language, cfg.Output.MessagesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load messages: %w", err)
	}

	delimiter := ','
	if cfg.CSV.Delimiter != "" {
		delimiter = cfg.Delimiter()
	}

	renderer := report.NewRenderer(format, loc, cfg.Output.Currency, delimiter)
	cardStore := store.NewCardStore(cfg.Cards.File, delimiter, logger)

	logger.Debug("Container initialized",
		logging.Field{Key: logging.FieldFormat, Value: string(format)},
		logging.Field{Key: logging.FieldLanguage, Value: loc.Language()},
		logging.Field{Key: logging.FieldFile, Value: cfg.Cards.File})

	return &Container{
		logger:   logger,
		config:   cfg,
		store:    cardStore,
		renderer: renderer,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the card portfolio.
func (c *Container) GetStore() store.CardSource {
	return c.store
}

// GetRenderer returns the report renderer for the configured format and
// language.
func (c *Container) GetRenderer() *report.Renderer {
	return c.renderer
}
