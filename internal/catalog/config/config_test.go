package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(WithEnvFile(""), WithEnvMap(nil))
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Server.Address)
	require.Equal(t, "Development", cfg.Server.Environment)
	require.Equal(t, "USD", cfg.Catalog.Currency)
	require.Equal(t, language.English, cfg.Catalog.Language)
	require.Equal(t, 30*24*time.Hour, cfg.Catalog.NewReleaseWindow)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Empty(t, cfg.Catalog.SeedFile)
}

func TestLoadFromEnvMap(t *testing.T) {
	t.Parallel()

	cfg, err := Load(WithEnvFile(""), WithEnvMap(map[string]string{
		"CATALOG_HTTP_ADDR":          ":9090",
		"CATALOG_CURRENCY":           "jpy",
		"CATALOG_LANGUAGE":           "ja",
		"CATALOG_NEW_RELEASE_WINDOW": "168h",
		"CATALOG_SEED_FILE":          "catalog.yaml",
		"CATALOG_WRITE_TIMEOUT":      "5s",
		"LOG_LEVEL":                  "DEBUG",
	}))
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Server.Address)
	require.Equal(t, "JPY", cfg.Catalog.Currency)
	require.Equal(t, language.Japanese, cfg.Catalog.Language)
	require.Equal(t, 7*24*time.Hour, cfg.Catalog.NewReleaseWindow)
	require.Equal(t, "catalog.yaml", cfg.Catalog.SeedFile)
	require.Equal(t, 5*time.Second, cfg.Server.WriteTimeout)
	require.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadReadsDotEnv(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("CATALOG_CURRENCY=EUR\nCATALOG_ENVIRONMENT=Staging\n"), 0o600))

	cfg, err := Load(WithEnvFile(path), WithEnvMap(map[string]string{"CATALOG_ENVIRONMENT": "Production"}))
	require.NoError(t, err)
	require.Equal(t, "EUR", cfg.Catalog.Currency)
	require.Equal(t, "Production", cfg.Server.Environment, "explicit values override the env file")
}

func TestLoadValidation(t *testing.T) {
	t.Parallel()

	_, err := Load(WithEnvFile(""), WithEnvMap(map[string]string{
		"CATALOG_CURRENCY":           "DOLLARS",
		"CATALOG_NEW_RELEASE_WINDOW": "-1h",
		"CATALOG_READ_TIMEOUT":       "soon",
	}))
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.ElementsMatch(t, []string{"CATALOG_CURRENCY", "CATALOG_NEW_RELEASE_WINDOW", "CATALOG_READ_TIMEOUT"}, verr.Fields())
}

func TestLoadRejectsUnknownCurrencyCode(t *testing.T) {
	t.Parallel()

	_, err := Load(WithEnvFile(""), WithEnvMap(map[string]string{"CATALOG_CURRENCY": "QQQ"}))
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Equal(t, []string{"CATALOG_CURRENCY"}, verr.Fields())

	cfg, err := Load(WithEnvFile(""), WithEnvMap(map[string]string{"CATALOG_CURRENCY": "chf"}))
	require.NoError(t, err)
	require.Equal(t, "CHF", cfg.Catalog.Currency)
}
