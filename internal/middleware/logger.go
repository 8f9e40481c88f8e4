package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Logger returns middleware that logs incoming HTTP requests with the
// injected logger.
func Logger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Call the next handler in the chain
			next.ServeHTTP(w, r)

			logger.Debug().
				Str("method", r.Method).
				Str("uri", r.URL.RequestURI()).
				Dur("elapsed", time.Since(start)).
				Msg("Request handled")
		})
	}
}
