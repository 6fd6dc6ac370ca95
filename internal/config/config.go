package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/valpere/aztran/internal/logger"
	"github.com/valpere/aztran/internal/translator"
)

const (
	AppName    = "aztran"
	AppVersion = "0.1.0"

	DefaultAddr     = ":8080"
	DefaultLogLevel = "info"
	DefaultEnvFile  = ".env"
)

// envBindings maps config keys to the environment variables that set them.
var envBindings = map[string]string{
	"subscription_key": "SUBSCRIPTION_KEY",
	"service_region":   "SERVICE_REGION",
	"endpoint":         "TRANSLATOR_ENDPOINT",
	"timeout":          "TRANSLATOR_TIMEOUT",
	"addr":             "AZTRAN_ADDR",
	"log_level":        "LOG_LEVEL",
}

type Config struct {
	Translator translator.ServiceConfig `mapstructure:",squash"`
	Addr       string                   `mapstructure:"addr"`
	LogLevel   string                   `mapstructure:"log_level"`
}

type Options struct {
	// ConfigFile is an explicit YAML file; when empty, .aztran.yaml is
	// searched in $HOME and the working directory and may be absent.
	ConfigFile string
	// EnvFile is loaded into the process environment if it exists.
	// Variables already set in the environment win.
	EnvFile string
}

// Load resolves configuration from flags bound on v, the environment, the
// .env file, the config file and defaults, in that order of precedence.
func Load(v *viper.Viper, opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	v.SetDefault("subscription_key", "")
	v.SetDefault("service_region", "")
	v.SetDefault("endpoint", translator.DefaultEndpoint)
	v.SetDefault("timeout", translator.DefaultTimeout)
	v.SetDefault("addr", DefaultAddr)
	v.SetDefault("log_level", DefaultLogLevel)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("." + AppName)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if opts.ConfigFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.Translator.Timeout <= 0 {
		cfg.Translator.Timeout = translator.DefaultTimeout
	}
	return &cfg, nil
}

// ReportCredentials logs which credentials are set. Values are never logged.
func (c *Config) ReportCredentials() {
	missing := c.Translator.Missing()
	for _, name := range missing {
		logger.Error("environment variable not set", "module", "config", "name", name)
	}
	logger.Info("credentials loaded",
		"module", "config",
		"subscription_key_set", c.Translator.SubscriptionKey != "",
		"service_region_set", c.Translator.Region != "",
		"endpoint", c.Translator.Endpoint,
		"timeout", c.Translator.Timeout.String(),
	)
}
