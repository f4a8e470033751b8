// Package config loads report job settings from defaults, a YAML file and
// the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/equipmail-go/pkg/equipmail/classify"
	"github.com/ukaji3/equipmail-go/pkg/equipmail/mail"
	"github.com/ukaji3/equipmail-go/pkg/equipmail/models"
)

// ErrInvalidConfig indicates a configuration that fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds everything the report jobs need.
type Config struct {
	// Workbook is the path of the xlsx workbook holding both sheets.
	Workbook string `yaml:"workbook"`
	// Recipient receives every report email.
	Recipient string          `yaml:"recipient"`
	Laptops   LaptopConfig    `yaml:"laptops"`
	Orders    OrderConfig     `yaml:"orders"`
	SMTP      mail.SMTPConfig `yaml:"smtp"`
}

// LaptopConfig configures the laptop replacement report.
type LaptopConfig struct {
	// Sheet is a sheet name or a #N position.
	Sheet       string               `yaml:"sheet"`
	MaxAge      float64              `yaml:"max_age"`
	SpareMarker string               `yaml:"spare_marker"`
	Columns     models.LaptopColumns `yaml:"columns"`
}

// OrderConfig configures the order digest.
type OrderConfig struct {
	// Sheet is a sheet name or a #N position.
	Sheet              string              `yaml:"sheet"`
	MaxUndeliveredDays int                 `yaml:"max_undelivered_days"`
	Columns            models.OrderColumns `yaml:"columns"`
}

// Rule returns the classification rule for laptops.
func (c LaptopConfig) Rule() classify.LaptopRule {
	return classify.LaptopRule{MaxAge: c.MaxAge, SpareMarker: c.SpareMarker}
}

// Rule returns the classification rule for orders.
func (c OrderConfig) Rule() classify.OrderRule {
	return classify.OrderRule{MaxUndeliveredDays: c.MaxUndeliveredDays}
}

// DefaultConfig returns the standard sheet layout and thresholds.
// Workbook, recipient and SMTP host have no defaults.
func DefaultConfig() *Config {
	laptopRule := classify.DefaultLaptopRule()
	orderRule := classify.DefaultOrderRule()

	return &Config{
		Laptops: LaptopConfig{
			Sheet:       "Laptop List",
			MaxAge:      laptopRule.MaxAge,
			SpareMarker: laptopRule.SpareMarker,
			Columns:     models.DefaultLaptopColumns(),
		},
		Orders: OrderConfig{
			Sheet:              "#0",
			MaxUndeliveredDays: orderRule.MaxUndeliveredDays,
			Columns:            models.DefaultOrderColumns(),
		},
		SMTP: mail.SMTPConfig{
			Port:     587,
			Security: mail.SecuritySTARTTLS,
		},
	}
}

// Load reads configuration from a YAML file over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case !os.IsNotExist(err):
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies EQUIPMAIL_* environment variables.
func (c *Config) applyEnvOverrides() error {
	c.Workbook = getEnvOrDefault("EQUIPMAIL_WORKBOOK", c.Workbook)
	c.Recipient = getEnvOrDefault("EQUIPMAIL_RECIPIENT", c.Recipient)
	c.Laptops.Sheet = getEnvOrDefault("EQUIPMAIL_LAPTOP_SHEET", c.Laptops.Sheet)
	c.Laptops.SpareMarker = getEnvOrDefault("EQUIPMAIL_SPARE_MARKER", c.Laptops.SpareMarker)
	c.Orders.Sheet = getEnvOrDefault("EQUIPMAIL_ORDER_SHEET", c.Orders.Sheet)

	c.SMTP.Host = getEnvOrDefault("EQUIPMAIL_SMTP_HOST", c.SMTP.Host)
	c.SMTP.Username = getEnvOrDefault("EQUIPMAIL_SMTP_USERNAME", c.SMTP.Username)
	c.SMTP.Password = getEnvOrDefault("EQUIPMAIL_SMTP_PASSWORD", c.SMTP.Password)
	c.SMTP.From = getEnvOrDefault("EQUIPMAIL_SMTP_FROM", c.SMTP.From)
	c.SMTP.Security = mail.Security(getEnvOrDefault("EQUIPMAIL_SMTP_SECURITY", string(c.SMTP.Security)))

	var err error
	if c.Laptops.MaxAge, err = getEnvFloatOrDefault("EQUIPMAIL_LAPTOP_MAX_AGE", c.Laptops.MaxAge); err != nil {
		return err
	}
	if c.Orders.MaxUndeliveredDays, err = getEnvIntOrDefault("EQUIPMAIL_ORDER_MAX_UNDELIVERED_DAYS", c.Orders.MaxUndeliveredDays); err != nil {
		return err
	}
	if c.SMTP.Port, err = getEnvIntOrDefault("EQUIPMAIL_SMTP_PORT", c.SMTP.Port); err != nil {
		return err
	}
	return nil
}

// Validate checks the configuration. SMTP settings are only required when
// messages will actually be sent.
func (c *Config) Validate(requireSMTP bool) error {
	var problems []string

	if c.Workbook == "" {
		problems = append(problems, "workbook is required")
	}
	if c.Recipient == "" {
		problems = append(problems, "recipient is required")
	}
	if c.Laptops.Sheet == "" || c.Orders.Sheet == "" {
		problems = append(problems, "sheet references are required")
	}
	if c.Laptops.MaxAge <= 0 {
		problems = append(problems, "laptops.max_age must be positive")
	}
	if c.Orders.MaxUndeliveredDays <= 0 {
		problems = append(problems, "orders.max_undelivered_days must be positive")
	}
	problems = append(problems, checkColumns("laptops", c.Laptops.Columns.Width, c.Laptops.Columns.Indexes())...)
	problems = append(problems, checkColumns("orders", c.Orders.Columns.Width, c.Orders.Columns.Indexes())...)

	if requireSMTP {
		if c.SMTP.Host == "" {
			problems = append(problems, "smtp.host is required")
		}
		if c.SMTP.Port <= 0 {
			problems = append(problems, "smtp.port must be positive")
		}
		switch c.SMTP.Security {
		case mail.SecuritySTARTTLS, mail.SecurityTLS:
		default:
			problems = append(problems, fmt.Sprintf("smtp.security %q must be starttls or tls", c.SMTP.Security))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

func checkColumns(section string, width int, indexes []int) []string {
	if width <= 0 {
		return []string{section + ".columns.width must be positive"}
	}
	var problems []string
	for _, idx := range indexes {
		if idx < 0 || idx >= width {
			problems = append(problems, fmt.Sprintf("%s column %d outside width %d", section, idx, width))
		}
	}
	return problems
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfig, key, value)
	}
	return intValue, nil
}

func getEnvFloatOrDefault(key string, defaultValue float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, key, value)
	}
	return floatValue, nil
}
