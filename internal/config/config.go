// Package config loads and validates application configuration from
// environment variables.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "3333".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// WebBaseURL is the public base URL of the web client, used as the
	// redirect target after trip confirmation. Required, must be a URL.
	WebBaseURL string

	// APIBaseURL is the public base URL of this API, embedded in the
	// confirmation links sent by email. Required, must be a URL.
	APIBaseURL string

	// SMTPHost is the outbound mail server. Defaults to "smtp.gmail.com".
	SMTPHost string

	// SMTPPort is the outbound mail port. Defaults to 465 (implicit TLS).
	SMTPPort int

	// MailUsername and MailPassword authenticate against the SMTP server.
	// Both required.
	MailUsername string
	MailPassword string

	// MailFromName and MailFromAddress form the From header of every
	// outgoing message. The address defaults to MailUsername.
	MailFromName    string
	MailFromAddress string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["*"]. Set CORS_ORIGINS to a comma-separated list to
	// restrict it.
	CORSOrigins []string
}

// Load reads configuration from environment variables and returns a
// Config. Returns an error listing any required variables that are not
// set, and rejects malformed URL and port values so the process fails at
// startup rather than when the first email goes out.
func Load() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "3333"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		SMTPHost:     getEnv("SMTP_HOST", "smtp.gmail.com"),
		MailFromName: getEnv("MAIL_FROM_NAME", "Trip Planner"),
		CORSOrigins:  splitCSV(getEnv("CORS_ORIGINS", "*")),
	}

	var missing []string
	for _, req := range []struct {
		key  string
		dest *string
	}{
		{"DATABASE_URL", &cfg.DatabaseURL},
		{"WEB_BASE_URL", &cfg.WebBaseURL},
		{"API_BASE_URL", &cfg.APIBaseURL},
		{"MAIL_USERNAME", &cfg.MailUsername},
		{"MAIL_PASSWORD", &cfg.MailPassword},
	} {
		*req.dest = os.Getenv(req.key)
		if *req.dest == "" {
			missing = append(missing, req.key)
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	for _, u := range []struct {
		key   string
		value string
	}{
		{"WEB_BASE_URL", cfg.WebBaseURL},
		{"API_BASE_URL", cfg.APIBaseURL},
	} {
		if parsed, err := url.Parse(u.value); err != nil || !parsed.IsAbs() || parsed.Host == "" {
			return Config{}, fmt.Errorf("%s must be an absolute URL, got %q", u.key, u.value)
		}
	}

	port, err := strconv.Atoi(getEnv("SMTP_PORT", "465"))
	if err != nil {
		return Config{}, fmt.Errorf("SMTP_PORT must be a number: %w", err)
	}
	cfg.SMTPPort = port

	cfg.MailFromAddress = getEnv("MAIL_FROM_ADDRESS", cfg.MailUsername)

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring
// empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
