package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config represents the application configuration structure
type Config struct {
	Environment string `envconfig:"environment" default:"dev"`

	// HR portal access
	PortalBaseURL string        `envconfig:"portal_base_url" default:"https://www.longwapps.com/hrm/web"`
	HRMUsername   string        `envconfig:"hrm_username"`
	HRMPassword   string        `envconfig:"hrm_password"`
	HTTPTimeout   time.Duration `envconfig:"http_timeout" default:"30s"`

	// Roster & date handling
	RosterPath string `envconfig:"roster_path" default:"roster.yml"`
	Timezone   string `envconfig:"timezone" default:"Local"`

	// Mail delivery
	SMTPHost     string `envconfig:"smtp_host"`
	SMTPPort     int    `envconfig:"smtp_port" default:"587"`
	SMTPUsername string `envconfig:"smtp_username"`
	SMTPPassword string `envconfig:"smtp_password"`
	SMTPFrom     string `envconfig:"smtp_from"`

	// Dispatch ledger. An empty DSN selects the in-memory backend.
	PostgresDSN     string        `envconfig:"postgres_dsn"`
	SuppressResend  bool          `envconfig:"suppress_resend" default:"false"`
	LedgerRetention time.Duration `envconfig:"ledger_retention" default:"720h"`
}

// LoadFromEnv loads a new configuration structure using environment variables and an optional .env file
func LoadFromEnv() (*Config, error) {
	// Load a .env file if it exists
	_ = godotenv.Overload()

	// Load a new configuration structure using environment variables
	config := new(Config)
	if err := envconfig.Process("la", config); err != nil {
		return nil, err
	}
	return config, nil
}

// IsEnvProduction returns whether the application runs in a production environment
func (config *Config) IsEnvProduction() bool {
	return config.Environment == "prod" || config.Environment == "production"
}

// Location resolves the configured timezone
func (config *Config) Location() (*time.Location, error) {
	return time.LoadLocation(config.Timezone)
}

// HasCredentials returns whether both portal credentials are configured
func (config *Config) HasCredentials() bool {
	return config.HRMUsername != "" && config.HRMPassword != ""
}

// HasSMTP returns whether a mail transport is configured
func (config *Config) HasSMTP() bool {
	return config.SMTPHost != "" && config.SMTPFrom != ""
}
