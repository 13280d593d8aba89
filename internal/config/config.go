package config

import (
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// CDN defaults for the scripts linked from the page shell.
const (
	DefaultHTMXScriptURL     = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"
	DefaultTailwindScriptURL = "https://cdn.tailwindcss.com"
)

var validate = newValidator()

// newValidator registers "listen_addr": a host:port pair as accepted by
// net.Listen, with any host (empty, name, IPv4 or bracketed IPv6) and a
// port in 0..65535.
func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("listen_addr", func(fl validator.FieldLevel) bool {
		return validListenAddr(fl.Field().String())
	}); err != nil {
		panic(fmt.Sprintf("register listen_addr validation: %v", err))
	}
	return v
}

func validListenAddr(addr string) bool {
	_, port, err := net.SplitHostPort(addr)
	if err != nil || port == "" {
		return false
	}
	n, err := strconv.ParseUint(port, 10, 16)
	return err == nil && n <= 65535
}

// Config holds all configuration for the application.
type Config struct {
	Addr              string  `validate:"required,listen_addr"`
	AppBaseURL        string  `validate:"omitempty,url"`
	LogFormat         string  `validate:"oneof=text json"`
	LogLevel          string  `validate:"oneof=debug info warn error"`
	HTMXScriptURL     string  `validate:"omitempty,url"`
	TailwindScriptURL string  `validate:"omitempty,url"`
	RateLimit         float64 `validate:"gte=0"`
}

// New loads configuration from a .env file, when present, and the
// environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Addr:              getenv("APP_ADDR", ":8080"),
		AppBaseURL:        strings.TrimSuffix(os.Getenv("APP_BASE_URL"), "/"),
		LogFormat:         getenv("LOG_FORMAT", "text"),
		LogLevel:          strings.ToLower(getenv("LOG_LEVEL", "info")),
		HTMXScriptURL:     getenv("HTMX_SCRIPT_URL", DefaultHTMXScriptURL),
		TailwindScriptURL: getenv("TAILWIND_SCRIPT_URL", DefaultTailwindScriptURL),
		RateLimit:         20,
	}

	if raw := os.Getenv("RATE_LIMIT"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("RATE_LIMIT: %w", err)
		}
		cfg.RateLimit = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Canonical returns the absolute URL of path, or "" without APP_BASE_URL.
func (c *Config) Canonical(path string) string {
	if c.AppBaseURL == "" {
		return ""
	}
	return c.AppBaseURL + path
}

// getenv returns the value of key, or fallback when it is unset or empty.
func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
