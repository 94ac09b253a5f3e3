package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Log    LogConfig
	CORS   CORSConfig
	Issuer IssuerConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings for the municipality
// reference table.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// IssuerConfig is the process-wide identity of the issuing organization.
// Every document assembled by this process carries this profile; an empty
// tax ID makes document assembly fail rather than emit a placeholder
// identity.
type IssuerConfig struct {
	Name             string `mapstructure:"name"`
	TaxID            string `mapstructure:"tax_id"`
	TaxRegime        string `mapstructure:"tax_regime"`
	Street           string `mapstructure:"street"`
	Number           string `mapstructure:"number"`
	District         string `mapstructure:"district"`
	City             string `mapstructure:"city"`
	State            string `mapstructure:"state"`
	PostalCode       string `mapstructure:"postal_code"`
	MunicipalityCode string `mapstructure:"municipality_code"`
}

// Load reads configuration from environment variables with the FISCO prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "fisco")
	v.SetDefault("db.password", "fisco_secret")
	v.SetDefault("db.name", "fisco_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Issuer defaults: tax regime only. Identity fields have no default on
	// purpose; a process without a configured tax ID must not assemble
	// documents.
	v.SetDefault("issuer.tax_regime", "normal")
	v.SetDefault("issuer.tax_id", "")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "FISCO_SERVER_PORT",
		"server.read_timeout":      "FISCO_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "FISCO_SERVER_WRITE_TIMEOUT",
		"server.environment":       "FISCO_SERVER_ENVIRONMENT",
		"db.host":                  "FISCO_DB_HOST",
		"db.port":                  "FISCO_DB_PORT",
		"db.user":                  "FISCO_DB_USER",
		"db.password":              "FISCO_DB_PASSWORD",
		"db.name":                  "FISCO_DB_NAME",
		"db.sslmode":               "FISCO_DB_SSLMODE",
		"db.max_open":              "FISCO_DB_MAX_OPEN",
		"db.max_idle":              "FISCO_DB_MAX_IDLE",
		"log.level":                "FISCO_LOG_LEVEL",
		"log.format":               "FISCO_LOG_FORMAT",
		"cors.allowed_origins":     "FISCO_CORS_ALLOWED_ORIGINS",
		"issuer.name":              "FISCO_ISSUER_NAME",
		"issuer.tax_id":            "FISCO_ISSUER_TAX_ID",
		"issuer.tax_regime":        "FISCO_ISSUER_TAX_REGIME",
		"issuer.street":            "FISCO_ISSUER_STREET",
		"issuer.number":            "FISCO_ISSUER_NUMBER",
		"issuer.district":          "FISCO_ISSUER_DISTRICT",
		"issuer.city":              "FISCO_ISSUER_CITY",
		"issuer.state":             "FISCO_ISSUER_STATE",
		"issuer.postal_code":       "FISCO_ISSUER_POSTAL_CODE",
		"issuer.municipality_code": "FISCO_ISSUER_MUNICIPALITY_CODE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if FISCO_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FISCO_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Issuer = IssuerConfig{
		Name:             v.GetString("issuer.name"),
		TaxID:            v.GetString("issuer.tax_id"),
		TaxRegime:        v.GetString("issuer.tax_regime"),
		Street:           v.GetString("issuer.street"),
		Number:           v.GetString("issuer.number"),
		District:         v.GetString("issuer.district"),
		City:             v.GetString("issuer.city"),
		State:            v.GetString("issuer.state"),
		PostalCode:       v.GetString("issuer.postal_code"),
		MunicipalityCode: v.GetString("issuer.municipality_code"),
	}

	return cfg, nil
}
