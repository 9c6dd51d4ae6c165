// Package config loads storefront runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"

	"finitefield.org/shoe-catalog/internal/catalog/card"
	"finitefield.org/shoe-catalog/internal/catalog/format"
)

const (
	defaultEnvFile      = ".env"
	defaultAddress      = ":8080"
	defaultEnvironment  = "Development"
	defaultLanguage     = "en"
	defaultLogLevel     = "info"
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 30 * time.Second
	defaultIdleTimeout  = 60 * time.Second
)

// Config groups runtime configuration by concern.
type Config struct {
	Server  ServerConfig
	Catalog CatalogConfig
	Logging LoggingConfig
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Address      string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// CatalogConfig controls how listings are sourced and displayed.
type CatalogConfig struct {
	Currency         string
	Language         language.Tag
	NewReleaseWindow time.Duration
	SeedFile         string
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level string
}

// ValidationError is returned when configuration values are invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the dotenv file read before the process environment.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap supplies values directly and ignores the process environment.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
		o.useSystemEnv = false
	}
}

// Load resolves configuration. Process environment variables take precedence
// over values from the dotenv file.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	values, err := readEnvFile(options.envFile)
	if err != nil {
		return Config{}, err
	}
	for k, v := range options.envMap {
		values[k] = v
	}
	lookup := func(key, fallback string) string {
		if options.useSystemEnv {
			if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		}
		if v := strings.TrimSpace(values[key]); v != "" {
			return v
		}
		return fallback
	}

	var invalid []string
	cfg := Config{
		Server: ServerConfig{
			Address:      lookup("CATALOG_HTTP_ADDR", defaultAddress),
			Environment:  lookup("CATALOG_ENVIRONMENT", defaultEnvironment),
			ReadTimeout:  defaultReadTimeout,
			WriteTimeout: defaultWriteTimeout,
			IdleTimeout:  defaultIdleTimeout,
		},
		Catalog: CatalogConfig{
			Currency: strings.ToUpper(lookup("CATALOG_CURRENCY", format.DefaultCurrency)),
			SeedFile: lookup("CATALOG_SEED_FILE", ""),
		},
		Logging: LoggingConfig{
			Level: strings.ToLower(lookup("LOG_LEVEL", defaultLogLevel)),
		},
	}

	if _, err := currency.ParseISO(cfg.Catalog.Currency); err != nil {
		invalid = append(invalid, "CATALOG_CURRENCY")
	}

	tag, err := language.Parse(lookup("CATALOG_LANGUAGE", defaultLanguage))
	if err != nil {
		invalid = append(invalid, "CATALOG_LANGUAGE")
	}
	cfg.Catalog.Language = tag

	window, err := time.ParseDuration(lookup("CATALOG_NEW_RELEASE_WINDOW", card.DefaultNewReleaseWindow.String()))
	if err != nil || window <= 0 {
		invalid = append(invalid, "CATALOG_NEW_RELEASE_WINDOW")
	}
	cfg.Catalog.NewReleaseWindow = window

	for _, name := range []struct {
		key string
		dst *time.Duration
	}{
		{"CATALOG_READ_TIMEOUT", &cfg.Server.ReadTimeout},
		{"CATALOG_WRITE_TIMEOUT", &cfg.Server.WriteTimeout},
		{"CATALOG_IDLE_TIMEOUT", &cfg.Server.IdleTimeout},
	} {
		raw := lookup(name.key, "")
		if raw == "" {
			continue
		}
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			invalid = append(invalid, name.key)
			continue
		}
		*name.dst = d
	}

	if len(invalid) > 0 {
		return Config{}, &ValidationError{fields: invalid}
	}
	return cfg, nil
}

func readEnvFile(path string) (map[string]string, error) {
	if strings.TrimSpace(path) == "" {
		return map[string]string{}, nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("read env file %s: %w", path, err)
	}
	return values, nil
}
