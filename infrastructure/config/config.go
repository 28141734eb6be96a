package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	domainconfig "mhtrends-backend/domain/config"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string
	AppEnv        string
	Timezone      string

	// Dashboard rules file, hot reloaded in development
	ConfigFile string

	// Lambda configuration
	IsLambda           bool
	LambdaFunctionName string

	// CORS
	CORSAllowedOrigins []string

	// Logging
	LogLevel string

	// Feature flags
	EnableMetrics bool
	EnableTracing bool
	OTLPEndpoint  string

	// Dashboard business rules
	Dashboard *domainconfig.DomainConfig
}

// LoadConfig loads configuration from environment variables. When APP_ENV is
// set, config/envs/.env.<APP_ENV> is read first without overriding variables
// already present in the process environment.
func LoadConfig() (*Config, error) {
	appEnv := getEnv("APP_ENV", "")
	if appEnv != "" {
		if err := LoadEnvFile(appEnv); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":5000"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		AppEnv:        appEnv,
		Timezone:      getEnv("TIMEZONE", ""),
		ConfigFile:    getEnv("CONFIG_FILE", ""),

		// Lambda configuration
		IsLambda:           getEnvBool("IS_LAMBDA", false),
		LambdaFunctionName: getEnv("AWS_LAMBDA_FUNCTION_NAME", ""),

		CORSAllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),

		// Logging and features
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", true),
		EnableTracing: getEnvBool("ENABLE_TRACING", false),
		OTLPEndpoint:  getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}

	dashboard, err := LoadDashboardSettings(cfg.ConfigFile)
	if err != nil {
		return nil, err
	}
	cfg.Dashboard = dashboard

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.ServerAddress == "" && !c.IsLambda {
		return fmt.Errorf("SERVER_ADDRESS is required")
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if c.Dashboard == nil {
		return fmt.Errorf("dashboard settings are required")
	}
	if err := c.Dashboard.Validate(); err != nil {
		return fmt.Errorf("invalid dashboard settings: %w", err)
	}
	return nil
}

// Location resolves TIMEZONE; empty means the host's local zone
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// applyDashboardEnv overlays DASHBOARD_* variables on the rules
func applyDashboardEnv(cfg *domainconfig.DomainConfig) {
	cfg.DefaultPlatform = getEnv("DASHBOARD_DEFAULT_PLATFORM", cfg.DefaultPlatform)
	cfg.DefaultWindowDays = getEnvInt("DASHBOARD_DEFAULT_WINDOW_DAYS", cfg.DefaultWindowDays)
	cfg.MaxRangeDays = getEnvInt("DASHBOARD_MAX_RANGE_DAYS", cfg.MaxRangeDays)
	cfg.GraphNodeCount = getEnvInt("DASHBOARD_GRAPH_NODES", cfg.GraphNodeCount)
	cfg.GraphLinkCount = getEnvInt("DASHBOARD_GRAPH_LINKS", cfg.GraphLinkCount)
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated variable, dropping blanks
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
