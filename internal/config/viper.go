// Package config provides Viper-based hierarchical configuration management
// and the built-in categorization rule set.
package config

import (
	"fmt"
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

	Analytics struct {
		TopMerchants int `mapstructure:"top_merchants" yaml:"top_merchants"`
		Recurring    struct {
			MinMonths int     `mapstructure:"min_months" yaml:"min_months"`
			Tolerance float64 `mapstructure:"tolerance" yaml:"tolerance"`
		} `mapstructure:"recurring" yaml:"recurring"`
	} `mapstructure:"analytics" yaml:"analytics"`

	Categorization struct {
		DefaultCategory string `mapstructure:"default_category" yaml:"default_category"`
	} `mapstructure:"categorization" yaml:"categorization"`

	Files struct {
		Rules   string `mapstructure:"rules" yaml:"rules"`
		Budgets string `mapstructure:"budgets" yaml:"budgets"`
	} `mapstructure:"files" yaml:"files"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading:
// defaults, then an optional config file, then FINANCE_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.finance-analyzer")
	v.AddConfigPath(".finance-analyzer")
	v.AddConfigPath(".")

	v.SetEnvPrefix("FINANCE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
		// Missing or invalid config file is OK, defaults and env vars apply.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("analytics.top_merchants", 10)
	v.SetDefault("analytics.recurring.min_months", 3)
	v.SetDefault("analytics.recurring.tolerance", 0.15)

	v.SetDefault("categorization.default_category", "Other")

	v.SetDefault("files.rules", "rules.yaml")
	v.SetDefault("files.budgets", "budgets.yaml")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if config.Analytics.TopMerchants < 1 {
		return fmt.Errorf("analytics.top_merchants must be positive, got: %d", config.Analytics.TopMerchants)
	}

	if config.Analytics.Recurring.MinMonths < 1 {
		return fmt.Errorf("analytics.recurring.min_months must be positive, got: %d", config.Analytics.Recurring.MinMonths)
	}

	if config.Analytics.Recurring.Tolerance < 0.0 || config.Analytics.Recurring.Tolerance > 1.0 {
		return fmt.Errorf("analytics.recurring.tolerance must be between 0.0 and 1.0, got: %f", config.Analytics.Recurring.Tolerance)
	}

	if config.Categorization.DefaultCategory == "" {
		return fmt.Errorf("categorization.default_category must not be empty")
	}

	return nil
}
