package config

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	Environment string `envconfig:"ENV" default:"development"`

	// Catalog API client settings
	CatalogBaseURL        string `envconfig:"CATALOG_BASE_URL" default:"http://localhost:8080"`
	CatalogTimeoutSec     int    `envconfig:"CATALOG_TIMEOUT_SEC" default:"10"`
	CatalogRetryCount     int    `envconfig:"CATALOG_RETRY_COUNT" default:"2"`
	CatalogRetryWaitMs    int    `envconfig:"CATALOG_RETRY_WAIT_MS" default:"200"`
	CatalogRetryMaxWaitMs int    `envconfig:"CATALOG_RETRY_MAX_WAIT_MS" default:"2000"`

	// Catalog cache settings
	CacheTTLSec   int `envconfig:"CACHE_TTL_SEC" default:"60"`
	CacheMaxItems int `envconfig:"CACHE_MAX_ITEMS" default:"128"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
