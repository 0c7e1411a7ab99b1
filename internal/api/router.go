package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"

	"github.com/wonny/kbostats/internal/api/handlers"
	"github.com/wonny/kbostats/pkg/logger"
)

// NewRouter creates and configures the HTTP router
// ⭐ SSOT: 라우팅 설정은 이 함수에서만
func NewRouter(pages *handlers.PageHandler, players *handlers.PlayerHandler, staticDir string, log *logger.Logger) http.Handler {
	r := mux.NewRouter()

	// Pages
	r.HandleFunc("/", pages.Ranking).Methods("GET")
	r.HandleFunc("/analysis", pages.Analysis).Methods("GET")
	r.HandleFunc("/player_compare", pages.PlayerCompare).Methods("GET")
	r.HandleFunc("/team/{name}", pages.TeamDetail).Methods("GET")
	r.HandleFunc("/player/{id}", pages.PlayerDetail).Methods("GET")

	// JSON API
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/players/{team}", players.ListByTeam).Methods("GET")
	api.HandleFunc("/player/{id}", players.Get).Methods("GET")

	// On-demand comparison chart. 렌더링 비용 보호를 위한 rate limit
	plot := r.PathPrefix("/plot").Subrouter()
	plot.HandleFunc("/compare/{p1}/{p2}", players.ComparePlot).Methods("GET")
	plot.Use(rateLimitMiddleware(rate.NewLimiter(rate.Limit(5), 10), log))

	// Static artifacts and assets
	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	// Apply middleware
	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))

	return r
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			log.WithFields(map[string]interface{}{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": time.Since(start),
			}).Debug("HTTP request")
		})
	}
}

// recoveryMiddleware recovers from panics
func recoveryMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.WithFields(map[string]interface{}{
						"error": err,
						"path":  r.URL.Path,
					}).Error("Panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{
						"error": "Internal server error",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// rateLimitMiddleware rejects requests beyond the limiter's budget with 429
func rateLimitMiddleware(limiter *rate.Limiter, log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.WithField("path", r.URL.Path).Warn("Rate limit exceeded")
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
