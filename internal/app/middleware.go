package app

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/kharcha/kharcha/internal/config"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Tag every request with a trace id for log correlation
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			traceId := uuid.NewString()
			w.Header().Set("X-Trace-Id", traceId)
			log.Debugf("[%s] %s %s", traceId, req.Method, req.URL.Path)
			next.ServeHTTP(w, req)
		})
	})

	// Roll the ledger over before any handler runs, so every interaction
	// observes the current calendar month as the open one
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if _, err := deps.RolloverEngine.EnsureCurrentMonth(req.Context()); err != nil {
				log.Errorf("month rollover failed: %v", err)
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			next.ServeHTTP(w, req)
		})
	})
}
