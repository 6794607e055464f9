package config

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/azmgmt/internal/errors"
	"github.com/olusolaa/azmgmt/internal/log"
)

func newViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(yaml)))
	return v
}

func TestLoad_Defaults(t *testing.T) {
	v := newViper(t, "azure:\n  subscription_id: 00000000-0000-0000-0000-000000000001\n")

	cfg, err := Load(context.Background(), v)

	require.NoError(t, err)
	assert.Equal(t, log.LevelInfo, cfg.Settings.LogLevel)
	assert.Equal(t, log.FormatText, cfg.Settings.LogFormat)
	assert.Equal(t, OutputText, cfg.Settings.Output)
	assert.Equal(t, DefaultAPIRPS, cfg.Settings.APIRPS)
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", cfg.Azure.SubscriptionID)
}

func TestLoad_DecodesEnumsCaseInsensitively(t *testing.T) {
	v := newViper(t, `
settings:
  log_level: WARN
  log_format: Json
  output: JSON
  api_rps: 5
azure:
  subscription_id: sub
  tenant_id: tenant
  default_resource_group: rg-default
`)

	cfg, err := Load(context.Background(), v)

	require.NoError(t, err)
	assert.Equal(t, log.LevelWarn, cfg.Settings.LogLevel)
	assert.Equal(t, log.FormatJSON, cfg.Settings.LogFormat)
	assert.Equal(t, OutputJSON, cfg.Settings.Output)
	assert.Equal(t, 5, cfg.Settings.APIRPS)
	assert.Equal(t, "rg-default", cfg.Azure.DefaultResourceGroup)
}

func TestLoad_VerboseForcesDebug(t *testing.T) {
	v := newViper(t, "settings:\n  log_level: error\n  verbose: true\nazure:\n  subscription_id: sub\n")

	cfg, err := Load(context.Background(), v)

	require.NoError(t, err)
	assert.Equal(t, log.LevelDebug, cfg.Settings.LogLevel)
}

func TestLoad_UnknownOutput(t *testing.T) {
	v := newViper(t, "settings:\n  output: yaml\nazure:\n  subscription_id: sub\n")

	_, err := Load(context.Background(), v)

	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigParseError, errors.GetCode(err))
}

func TestLoad_MissingSubscription(t *testing.T) {
	v := newViper(t, "settings:\n  log_level: debug\n")

	_, err := Load(context.Background(), v)

	require.Error(t, err)
	assert.Equal(t, errors.CodeConfigValidation, errors.GetCode(err))
	msg, suggestion, userFacing := errors.GetUserFacingMessage(err)
	assert.True(t, userFacing)
	assert.Contains(t, msg, "SubscriptionID")
	assert.Contains(t, suggestion, "--subscription")
}

func TestValidate_RPSRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Azure.SubscriptionID = "sub"
	cfg.Settings.APIRPS = 500

	err := cfg.Validate(context.Background())

	require.Error(t, err)
	msg, _, _ := errors.GetUserFacingMessage(err)
	assert.Contains(t, msg, "APIRPS")
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"text", OutputText, false},
		{" JSON ", OutputJSON, false},
		{"", OutputText, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
