package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, envs := range envBindings {
		for _, e := range envs {
			t.Setenv(e, "")
		}
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, SeedSourceDemo, cfg.Seed.Source)
	assert.Equal(t, "ops_seed", cfg.Seed.Table)
	assert.False(t, cfg.PaymentsMockEnabled())
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
server:
  port: 9090
log:
  level: debug
  format: console
seed:
  source: dynamodb
  table: print_seed
aws:
  region: ap-southeast-1
  endpoint: http://localhost:8000
payments:
  mock: "on"
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, SeedSourceDynamoDB, cfg.Seed.Source)
	assert.Equal(t, "print_seed", cfg.Seed.Table)
	assert.Equal(t, "ap-southeast-1", cfg.AWS.Region)
	assert.Equal(t, "http://localhost:8000", cfg.AWS.Endpoint)
	assert.True(t, cfg.PaymentsMockEnabled())
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7070")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-123")
	t.Setenv("MERCADOPAGO_MOCK", "mock")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "http://dynamodb:8000", cfg.AWS.Endpoint)
	assert.Equal(t, "TEST-123", cfg.Payments.AccessToken)
	assert.True(t, cfg.PaymentsMockEnabled())
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		c := &Config{}
		c.Server.Port = 8080
		c.Seed.Source = SeedSourceDemo
		c.Log.Format = "json"
		return c
	}

	t.Run("valid", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("bad port", func(t *testing.T) {
		c := valid()
		c.Server.Port = 0
		require.Error(t, c.Validate())
	})

	t.Run("unknown seed source", func(t *testing.T) {
		c := valid()
		c.Seed.Source = "postgres"
		require.Error(t, c.Validate())
	})

	t.Run("dynamodb needs a table", func(t *testing.T) {
		c := valid()
		c.Seed.Source = SeedSourceDynamoDB
		require.Error(t, c.Validate())
	})

	t.Run("unknown log format", func(t *testing.T) {
		c := valid()
		c.Log.Format = "xml"
		require.Error(t, c.Validate())
	})
}

func TestPaymentsMockEnabled(t *testing.T) {
	for in, want := range map[string]bool{"1": true, "TRUE": true, " yes ": true, "mock": true, "off": false, "": false, "0": false} {
		c := &Config{}
		c.Payments.Mock = in
		assert.Equal(t, want, c.PaymentsMockEnabled(), "input %q", in)
	}
}
