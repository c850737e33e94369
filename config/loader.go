package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoaderConfig controls how configuration files are resolved.
type LoaderConfig struct {
	// ConfigFile is an explicit config file path. When empty, standard
	// locations are searched.
	ConfigFile string
	// EnvFile is an explicit .env file path. When empty, ./.env is used
	// if present.
	EnvFile string
	// EnvPrefix is the prefix for environment variable overrides.
	// Defaults to "SUPPLIER".
	EnvPrefix string
}

// Load reads configuration from file and environment, applies defaults,
// and validates the result.
func Load(opts LoaderConfig) (*Config, error) {
	if opts.EnvPrefix == "" {
		opts.EnvPrefix = "SUPPLIER"
	}

	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(opts.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %q: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err != nil {
			// Missing file is fine when not explicitly requested;
			// env vars and defaults still apply.
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadEnvFile loads variables from a .env file when one exists.
func loadEnvFile(path string) error {
	if path == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading env file %q: %w", path, err)
	}
	return nil
}
