// Package config loads the bot's settings from an optional YAML file, the
// environment and command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/gobridge/autoresponder/responses"
)

// Config holds the settings of a bot process.
type Config struct {
	AppToken    string            `mapstructure:"app_token" validate:"required"`
	BotToken    string            `mapstructure:"bot_token" validate:"required"`
	Debug       bool              `mapstructure:"debug"`
	MetricsAddr string            `mapstructure:"metrics_addr" validate:"omitempty,hostname_port"`
	Responses   []responses.Entry `mapstructure:"responses" validate:"dive"`
}

// DefaultResponses seeds the store when no responses are configured.
var DefaultResponses = []responses.Entry{
	{Keyword: "Hey", Response: "What's up?"},
}

// Load reads configuration from configFile (or autoresponder.yaml in the
// working directory or $HOME/.config/autoresponder when empty), then the
// environment, then flags. Missing tokens are reported as an error.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("autoresponder")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/autoresponder")
	}

	v.SetDefault("debug", false)
	v.SetDefault("metrics_addr", "")

	for key, env := range map[string]string{
		"app_token":    "SLACK_APP_TOKEN",
		"bot_token":    "SLACK_BOT_TOKEN",
		"debug":        "AUTORESPONDER_DEBUG",
		"metrics_addr": "AUTORESPONDER_METRICS_ADDR",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", env, err)
		}
	}

	if flags != nil {
		for key, name := range map[string]string{
			"debug":        "debug",
			"metrics_addr": "metrics-addr",
		} {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind --%s flag: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	if !v.IsSet("responses") {
		cfg.Responses = append([]responses.Entry(nil), DefaultResponses...)
	}
	if cfg.Responses == nil {
		cfg.Responses = []responses.Entry{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every invalid field of c in a single error.
func (c *Config) Validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return err
	}

	err = validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validatorErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validating configuration: %w", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msg := fe.Translate(trans)
		if hint, ok := envHints[fe.Field()]; ok {
			msg += " (set " + hint + ")"
		}
		msgs = append(msgs, msg)
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
}
