package config

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/olusolaa/azmgmt/internal/errors"
	"github.com/olusolaa/azmgmt/internal/log"
)

// OutputFormat selects the emitter.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// DefaultAPIRPS is the client-side pacing of Azure management calls.
const DefaultAPIRPS = 20

type Config struct {
	Settings SettingsConfig `mapstructure:"settings"`
	Azure    AzureConfig    `mapstructure:"azure"`
}

type SettingsConfig struct {
	LogLevel  log.Level    `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	LogFormat log.Format   `mapstructure:"log_format" validate:"oneof=text json"`
	Output    OutputFormat `mapstructure:"output" validate:"oneof=text json"`
	NoColor   bool         `mapstructure:"no_color"`
	Verbose   bool         `mapstructure:"verbose"`
	APIRPS    int          `mapstructure:"api_rps" validate:"gte=1,lte=100"`
}

type AzureConfig struct {
	SubscriptionID       string `mapstructure:"subscription_id" validate:"required"`
	TenantID             string `mapstructure:"tenant_id"`
	DefaultResourceGroup string `mapstructure:"default_resource_group"`
}

func DefaultConfig() *Config {
	return &Config{
		Settings: SettingsConfig{
			LogLevel:  log.LevelInfo,
			LogFormat: log.FormatText,
			Output:    OutputText,
			APIRPS:    DefaultAPIRPS,
		},
	}
}

// SetDefaults registers the defaults with v so they outrank the zero values
// of bound but unset flags.
func SetDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("settings.log_level", string(def.Settings.LogLevel))
	v.SetDefault("settings.log_format", string(def.Settings.LogFormat))
	v.SetDefault("settings.output", string(def.Settings.Output))
	v.SetDefault("settings.no_color", def.Settings.NoColor)
	v.SetDefault("settings.verbose", false)
	v.SetDefault("settings.api_rps", def.Settings.APIRPS)
}

// DecodeHook turns the string forms of the enum settings into their types.
func DecodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		stringToLevelHook,
		stringToFormatHook,
		stringToOutputHook,
		mapstructure.StringToTimeDurationHookFunc(),
	)
}

func stringToLevelHook(f reflect.Type, t reflect.Type, data any) (any, error) {
	if f.Kind() != reflect.String || t != reflect.TypeOf(log.Level("")) {
		return data, nil
	}
	return log.ParseLevel(data.(string))
}

func stringToFormatHook(f reflect.Type, t reflect.Type, data any) (any, error) {
	if f.Kind() != reflect.String || t != reflect.TypeOf(log.Format("")) {
		return data, nil
	}
	return log.ParseFormat(data.(string))
}

func stringToOutputHook(f reflect.Type, t reflect.Type, data any) (any, error) {
	if f.Kind() != reflect.String || t != reflect.TypeOf(OutputFormat("")) {
		return data, nil
	}
	return ParseOutputFormat(data.(string))
}

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch o := OutputFormat(strings.ToLower(strings.TrimSpace(s))); o {
	case OutputText, OutputJSON:
		return o, nil
	case "":
		return OutputText, nil
	}
	return "", fmt.Errorf("unknown output format %q (valid: text, json)", s)
}

// Load unmarshals v over the defaults and validates the result.
func Load(ctx context.Context, v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg, viper.DecodeHook(DecodeHook())); err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodeConfigParseError, "failed to parse configuration",
			"Check the values in your configuration file, environment and flags.")
	}
	if cfg.Settings.Verbose {
		cfg.Settings.LogLevel = log.LevelDebug
	}
	if err := cfg.Validate(ctx); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate(ctx context.Context) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	err := validate.StructCtx(ctx, c)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.Wrap(err, errors.CodeConfigValidation, "configuration validation failed")
	}
	var details strings.Builder
	details.WriteString("Configuration validation failed:")
	for _, fe := range validationErrors {
		details.WriteString(fmt.Sprintf("\n - Field '%s': Failed on '%s' validation (value: '%v')", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return errors.NewUserFacing(errors.CodeConfigValidation, details.String(), suggestionFor(validationErrors))
}

func suggestionFor(errs validator.ValidationErrors) string {
	for _, fe := range errs {
		if fe.StructField() == "SubscriptionID" {
			return "Set azure.subscription_id in .azmgmt.yaml, AZMGMT_AZURE_SUBSCRIPTION_ID, or pass --subscription."
		}
	}
	return "Please check your configuration file or flags."
}
