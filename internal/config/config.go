// Package config loads carworld settings from an optional .carworld.yaml,
// CARWORLD_* environment variables, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config keys. Command-line flags are bound to these keys.
const (
	KeyCustomersFile = "customers-file"
	KeyPurchasesFile = "purchases-file"
	KeyExportFile    = "export-file"
	KeyLogLevel      = "log-level"
	KeyColor         = "color"
	KeyAutoAccount   = "auto-account"
)

// Default configuration values
const (
	DefaultCustomersFile = "customers.txt"
	DefaultPurchasesFile = "purchases.txt"
	DefaultExportFile    = "output.txt"
	DefaultLogLevel      = "WARNING"
	DefaultColor         = "auto"
	DefaultAutoAccount   = true

	// DefaultConfigName is looked up in the working directory when no
	// explicit config file is given.
	DefaultConfigName = ".carworld"

	envPrefix = "CARWORLD"
)

// Config represents the resolved application settings.
type Config struct {
	// CustomersFile is the customer data file.
	CustomersFile string `mapstructure:"customers-file"`

	// PurchasesFile is the purchase data file.
	PurchasesFile string `mapstructure:"purchases-file"`

	// ExportFile receives the human-readable report.
	ExportFile string `mapstructure:"export-file"`

	// LogLevel is a go-logging level name.
	LogLevel string `mapstructure:"log-level"`

	// Color is "auto", "always", or "never".
	Color string `mapstructure:"color"`

	// AutoAccount assigns account numbers to new customers instead of
	// prompting for one.
	AutoAccount bool `mapstructure:"auto-account"`
}

// Loader resolves a Config. Precedence, highest first: bound flags,
// environment, config file, defaults.
type Loader struct {
	v *viper.Viper
}

// NewLoader returns a Loader with defaults and environment binding in place.
func NewLoader() *Loader {
	v := viper.New()

	v.SetDefault(KeyCustomersFile, DefaultCustomersFile)
	v.SetDefault(KeyPurchasesFile, DefaultPurchasesFile)
	v.SetDefault(KeyExportFile, DefaultExportFile)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyColor, DefaultColor)
	v.SetDefault(KeyAutoAccount, DefaultAutoAccount)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return &Loader{v: v}
}

// Viper exposes the underlying viper instance so commands can bind flags.
func (l *Loader) Viper() *viper.Viper {
	return l.v
}

// Load reads the config file and returns the merged configuration.
// An empty path searches the working directory for .carworld.yaml; a missing
// file there is not an error. An explicit path must exist.
func (l *Loader) Load(path string) (*Config, error) {
	if path != "" {
		l.v.SetConfigFile(path)
	} else {
		l.v.SetConfigName(DefaultConfigName)
		l.v.SetConfigType("yaml")
		l.v.AddConfigPath(".")
	}

	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("could not read config: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every file setting is present and the color mode is
// known.
func (c *Config) Validate() error {
	required := map[string]string{
		KeyCustomersFile: c.CustomersFile,
		KeyPurchasesFile: c.PurchasesFile,
		KeyExportFile:    c.ExportFile,
	}
	for _, key := range []string{KeyCustomersFile, KeyPurchasesFile, KeyExportFile} {
		if strings.TrimSpace(required[key]) == "" {
			return fmt.Errorf("missing required config field: %s", key)
		}
	}

	switch strings.ToLower(c.Color) {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid config field %s: %q (expected auto, always, or never)", KeyColor, c.Color)
	}
	return nil
}
