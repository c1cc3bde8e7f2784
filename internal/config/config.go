package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/hourbill/hourbill/internal/types"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Auth       AuthConfig       `validate:"required"`
	Postgres   PostgresConfig   `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Billing    BillingConfig    `validate:"required"`
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type AuthConfig struct {
	// Secret is the HMAC secret used to validate bearer tokens
	Secret string `validate:"required"`
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

// BillingConfig carries the billing constants injected into the document
// renderers. Keeping them in configuration means a rate change never needs a
// recompile.
type BillingConfig struct {
	HourlyRate     float64 `mapstructure:"hourly_rate" validate:"required,gt=0"`
	ClientName     string  `mapstructure:"client_name" validate:"required"`
	ContactName    string  `mapstructure:"contact_name" validate:"required"`
	ContactPhone   string  `mapstructure:"contact_phone" validate:"required"`
	ContactEmail   string  `mapstructure:"contact_email" validate:"required,email"`
	HoursLogPrefix string  `mapstructure:"hours_log_prefix" validate:"required"`
}

// Rate returns the hourly rate as a decimal for billing arithmetic.
func (c BillingConfig) Rate() decimal.Decimal {
	return decimal.NewFromFloat(c.HourlyRate)
}

func NewConfig() (*Configuration, error) {
	// Load .env if present; env vars still win via viper
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/hourbill")

	v.SetEnvPrefix("HOURBILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func (c PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
		c.User,
		c.Password,
		c.DBName,
		c.Host,
		c.Port,
		c.SSLMode,
	)
}

// GetDefaultConfig returns a default configuration for local development.
// This is useful for running scripts, tests or other non-web applications.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Auth:       AuthConfig{Secret: "local-dev-secret"},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Billing: BillingConfig{
			HourlyRate:     55.0,
			ClientName:     "Merging Solutions, LLC",
			ContactName:    "Daniel Piper",
			ContactPhone:   "(541) 363-9921",
			ContactEmail:   "daniel@danielpiper.dev",
			HoursLogPrefix: "PG&E",
		},
	}
}
