package api

import (
	"net/http"
	"strconv"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/carson-networks/ledger-server/internal/handlers"
)

func newCORS(origin string) func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{origin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Disposition", "X-Transaction-Found"},
	}).Handler
}

// newRateLimit limits requests per client IP. formatted uses the limiter
// syntax, e.g. "100-M" for 100 requests a minute.
func newRateLimit(formatted string, log *logrus.Logger) (func(http.Handler) http.Handler, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, err
	}
	ipLimiter := limiter.New(memory.NewStore(), rate)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			key := ipLimiter.GetIPKey(req)

			limit, err := ipLimiter.Get(req.Context(), key)
			if err != nil {
				log.WithError(err).WithField("key", key).Error("RateLimit.Get")
				handlers.WriteError(w, http.StatusInternalServerError, "Internal server error during rate limit check")
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.FormatInt(limit.Limit, 10))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(limit.Remaining, 10))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(limit.Reset, 10))

			if limit.Reached {
				log.WithFields(logrus.Fields{"key": key, "limit": limit.Limit}).Warn("RateLimit.Reached")
				handlers.WriteError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
				return
			}

			next.ServeHTTP(w, req)
		})
	}, nil
}
