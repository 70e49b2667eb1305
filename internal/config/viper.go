// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Database struct {
		Host     string `mapstructure:"host" yaml:"host"`
		Port     string `mapstructure:"port" yaml:"port"`
		Name     string `mapstructure:"name" yaml:"name"`
		User     string `mapstructure:"user" yaml:"user"`
		Password string `mapstructure:"password" yaml:"-"` // Never serialize credentials
		SSLMode  string `mapstructure:"sslmode" yaml:"sslmode"`
	} `mapstructure:"database" yaml:"database"`

	Import struct {
		StrictHeaders bool   `mapstructure:"strict_headers" yaml:"strict_headers"`
		AllOrNothing  bool   `mapstructure:"all_or_nothing" yaml:"all_or_nothing"`
		SynonymsFile  string `mapstructure:"synonyms_file" yaml:"synonyms_file"`
	} `mapstructure:"import" yaml:"import"`

	Export struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"export" yaml:"export"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.inventox")
	v.AddConfigPath(".inventox")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("INVENTOX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log the error but don't fail - continue with defaults and env vars
			Logger.Warnf("error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
		// Config file not found or invalid is OK, we'll use defaults and env vars
	}

	// 5. The database variables keep their historical unprefixed names so
	// existing deployments keep working.
	bindings := map[string]string{
		"database.host":     "DB_HOST",
		"database.port":     "DB_PORT",
		"database.name":     "DB_NAME",
		"database.user":     "DB_USER",
		"database.password": "DB_PASS",
		"database.sslmode":  "DB_SSLMODE",
	}
	for key, env := range bindings {
		if err := v.BindEnv(key, env); err != nil {
			Logger.Warnf("failed to bind %s environment variable: %v", env, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.name", "inventox")
	v.SetDefault("database.user", "inventox_user")
	v.SetDefault("database.password", "change_me")
	v.SetDefault("database.sslmode", "disable")

	// Import defaults
	v.SetDefault("import.strict_headers", false)
	v.SetDefault("import.all_or_nothing", false)
	v.SetDefault("import.synonyms_file", "")

	// Export defaults
	v.SetDefault("export.delimiter", ",")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Database.Host == "" {
		return fmt.Errorf("database host must not be empty")
	}
	if config.Database.Name == "" {
		return fmt.Errorf("database name must not be empty")
	}

	if len(config.Export.Delimiter) != 1 {
		return fmt.Errorf("export delimiter must be a single character, got: %s", config.Export.Delimiter)
	}

	return nil
}

// DatabaseURL renders the connection settings as a postgres:// URL with
// credentials escaped.
func (c *Config) DatabaseURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Database.User, c.Database.Password),
		Host:     c.Database.Host + ":" + c.Database.Port,
		Path:     "/" + c.Database.Name,
		RawQuery: "sslmode=" + c.Database.SSLMode,
	}
	return u.String()
}
