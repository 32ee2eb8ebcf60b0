package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

const DefaultConfigFile = "configs/config.yaml"

const (
	SeedSourceDemo     = "demo"
	SeedSourceDynamoDB = "dynamodb"
)

type Config struct {
	Server struct {
		Port int    `mapstructure:"port"`
		Mode string `mapstructure:"mode"`
	} `mapstructure:"server"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`

	Seed struct {
		Source string `mapstructure:"source"`
		Table  string `mapstructure:"table"`
	} `mapstructure:"seed"`

	AWS struct {
		Region          string `mapstructure:"region"`
		Endpoint        string `mapstructure:"endpoint"`
		AccessKeyID     string `mapstructure:"access_key_id"`
		SecretAccessKey string `mapstructure:"secret_access_key"`
	} `mapstructure:"aws"`

	Payments struct {
		// Mock accepts the usual switch spellings: 1, true, yes, on, mock.
		Mock        string `mapstructure:"mock"`
		AccessToken string `mapstructure:"access_token"`
	} `mapstructure:"payments"`
}

// envBindings maps config keys to the environment variables the service has
// always honored. The first variable that is set wins.
var envBindings = map[string][]string{
	"server.port":           {"PORT"},
	"server.mode":           {"GIN_MODE"},
	"log.level":             {"LOG_LEVEL"},
	"log.format":            {"LOG_FORMAT"},
	"seed.source":           {"SEED_SOURCE"},
	"seed.table":            {"SEED_TABLE"},
	"aws.region":            {"AWS_REGION"},
	"aws.endpoint":          {"DYNAMODB_ENDPOINT"},
	"aws.access_key_id":     {"AWS_ACCESS_KEY_ID"},
	"aws.secret_access_key": {"AWS_SECRET_ACCESS_KEY"},
	"payments.mock":         {"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"},
	"payments.access_token": {"MERCADOPAGO_ACCESS_TOKEN"},
}

// Load reads path (DefaultConfigFile when empty), then the environment.
// A missing file is not an error; the defaults are enough to boot the demo.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFile
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("seed.source", SeedSourceDemo)
	v.SetDefault("seed.table", "ops_seed")
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.access_key_id", "local")
	v.SetDefault("aws.secret_access_key", "local")
	v.SetDefault("payments.mock", "false")

	for key, envs := range envBindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("invalid server.port %d", c.Server.Port)
	}
	switch c.Seed.Source {
	case SeedSourceDemo, SeedSourceDynamoDB:
	default:
		return fmt.Errorf("invalid seed.source %q (want %s or %s)", c.Seed.Source, SeedSourceDemo, SeedSourceDynamoDB)
	}
	if c.Seed.Source == SeedSourceDynamoDB && strings.TrimSpace(c.Seed.Table) == "" {
		return errors.New("seed.table is required for the dynamodb seed source")
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log.format %q", c.Log.Format)
	}
	return nil
}

// PaymentsMockEnabled reports whether captures skip the real payment gateway.
func (c *Config) PaymentsMockEnabled() bool {
	switch strings.ToLower(strings.TrimSpace(c.Payments.Mock)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
