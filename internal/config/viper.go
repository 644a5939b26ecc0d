package config

import (
	"errors"
	"fmt"
	"strings"

	"fjacquet/card-payoff/internal/logging"
	"fjacquet/card-payoff/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CARDPAYOFF_LOG_LEVEL.
const EnvPrefix = "CARDPAYOFF"

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// CSVConfig controls CSV reading and writing.
type CSVConfig struct {
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
}

// OutputConfig controls how results are rendered.
type OutputConfig struct {
	Format   string `mapstructure:"format" yaml:"format"`
	Language string `mapstructure:"language" yaml:"language"`
	Currency string `mapstructure:"currency" yaml:"currency"`
	// MessagesFile optionally overrides entries of the built-in message catalog.
	MessagesFile string `mapstructure:"messages_file" yaml:"messages_file"`
}

// CardsConfig points at the default card portfolio.
type CardsConfig struct {
	File string `mapstructure:"file" yaml:"file"`
}

// Config represents the complete application configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log" yaml:"log"`
	CSV    CSVConfig    `mapstructure:"csv" yaml:"csv"`
	Output OutputConfig `mapstructure:"output" yaml:"output"`
	Cards  CardsConfig  `mapstructure:"cards" yaml:"cards"`
}

// Default returns the configuration used when nothing else is set.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	// Unmarshalling plain defaults cannot fail.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then config.yaml, then CARDPAYOFF_* environment variables.
func InitializeConfig() (*Config, error) {
	return InitializeConfigFrom("")
}

// InitializeConfigFrom is InitializeConfig with an explicit config file.
// An empty path searches $HOME/.card-payoff, ./.card-payoff and the current
// directory for config.yaml.
func InitializeConfigFrom(configFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.card-payoff")
		v.AddConfigPath(".card-payoff")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Plain LOG_LEVEL/LOG_FORMAT are honoured as in .env files
	if err := v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind log level: %w", err)
	}
	if err := v.BindEnv("log.format", EnvPrefix+"_LOG_FORMAT", "LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind log format: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	normalize(&config)
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("output.format", "text")
	v.SetDefault("output.language", "en")
	v.SetDefault("output.currency", "")
	v.SetDefault("output.messages_file", "")

	v.SetDefault("cards.file", "")
}

func normalize(config *Config) {
	config.Log.Level = strings.ToLower(config.Log.Level)
	config.Log.Format = strings.ToLower(config.Log.Format)
	config.Output.Format = strings.ToLower(config.Output.Format)
	config.Output.Language = strings.ToLower(config.Output.Language)
	if lang, err := validation.NormalizeLanguage(config.Output.Language); err == nil {
		config.Output.Language = lang
	}
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if err := validation.IsValidDelimiter(config.CSV.Delimiter); err != nil {
		return err
	}

	if err := validation.IsValidOutputFormat(config.Output.Format); err != nil {
		return err
	}

	return validation.IsValidLanguage(config.Output.Language)
}

// Delimiter returns the configured CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	return []rune(c.CSV.Delimiter)[0]
}

// ConfigureLoggingFromConfig builds the application logger from the Config.
func ConfigureLoggingFromConfig(config *Config) logging.Logger {
	return logging.NewLogrusAdapter(config.Log.Level, config.Log.Format)
}
