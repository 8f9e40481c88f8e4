package router

import (
	"net/http"

	"academy-core/internal/api/v1/handler"
	"academy-core/internal/config"
	"academy-core/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// New builds the stub catalog API handler chain.
func New(cfg *config.Config, logger zerolog.Logger) http.Handler {
	logger.Info().Str("environment", cfg.Environment).Msg("Router initialized")

	// 1. Initialize validator
	validate := validator.New(validator.WithRequiredStructEnabled())

	// 2. Initialize handlers
	catalogHandler := handler.NewCatalogHandler(validate, logger)

	// 3. Create ServeMux router with the API v1 routes mounted under /v1
	apiV1Mux := http.NewServeMux()
	catalogHandler.RegisterRoutes(apiV1Mux)

	mux := http.NewServeMux()
	mux.Handle("/v1/", http.StripPrefix("/v1", apiV1Mux))

	// 4. Apply CORS middleware, permissive for local development
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	return middleware.Logger(logger)(c.Handler(mux))
}
