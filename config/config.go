package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Log     LogConfig          `yaml:"log"`
	Webhook WebhookConfig      `yaml:"webhook"`
	IDs     IDConfig           `yaml:"ids"`
	Company CompanyConfig      `yaml:"company"`
	Prices  map[string]float64 `yaml:"prices"`
}

// LogConfig selects the zap preset: Mode "development" logs to the console,
// "production" logs JSON. A non-empty File adds a rotated JSON log file.
type LogConfig struct {
	Level      string `yaml:"level"`
	Mode       string `yaml:"mode"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

type WebhookConfig struct {
	URL        string `yaml:"url"`
	Timeout    string `yaml:"timeout"`
	RetryCount int    `yaml:"retry_count"`
}

// TimeoutDuration parses Timeout, falling back to 15s when it is not a
// positive duration.
func (w WebhookConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(w.Timeout)
	if err != nil || d <= 0 {
		return 15 * time.Second
	}
	return d
}

// IDConfig picks the entity id generator: "snowflake", "uuid" or "sequence".
type IDConfig struct {
	Strategy string `yaml:"strategy"`
	Node     int64  `yaml:"node"`
}

// CompanyConfig is printed on generated quotes. VATExempt companies print no
// VAT line whatever VATPercent says.
type CompanyConfig struct {
	Name         string  `yaml:"name"`
	Contact      string  `yaml:"contact"`
	Legal        string  `yaml:"legal"`
	ValidityDays int     `yaml:"validity_days"`
	VATPercent   float64 `yaml:"vat_percent"`
	VATExempt    bool    `yaml:"vat_exempt"`
}

// Load reads the YAML file at path, expanding ${VAR} references from the
// environment. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("reading config file: %w", err)
	default:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	cfg.setDefaults()

	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Mode == "" {
		c.Log.Mode = "development"
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = 64
	}
	if c.Log.MaxBackups == 0 {
		c.Log.MaxBackups = 7
	}
	if c.Webhook.Timeout == "" {
		c.Webhook.Timeout = "15s"
	}
	if c.Webhook.RetryCount == 0 {
		c.Webhook.RetryCount = 2
	}
	if c.IDs.Strategy == "" {
		c.IDs.Strategy = "snowflake"
	}
	if c.Company.Name == "" {
		c.Company.Name = "TUTOLEC"
	}
	if c.Company.Contact == "" {
		c.Company.Contact = "contact@tutolec.fr — 06 01 36 57 35"
	}
	if c.Company.Legal == "" {
		c.Company.Legal = "Tutolec – SIRET 123 456 789 00010 – www.tutolec.fr"
	}
	if c.Company.ValidityDays == 0 {
		c.Company.ValidityDays = 30
	}
	if c.Company.VATPercent == 0 && !c.Company.VATExempt {
		c.Company.VATPercent = 20
	}
}
