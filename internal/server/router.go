package server

import (
	"net/http"

	"go.uber.org/zap"
)

// NewRouter wires the demo backend routes with request logging.
func NewRouter(handler *HoursHandler, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("/login", handler.Login)
	mux.HandleFunc("/employees", handler.Employees)
	mux.HandleFunc("/locations", handler.Locations)
	mux.HandleFunc("/hours", handler.Hours)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info("HTTP request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("remote_addr", r.RemoteAddr),
		)
		mux.ServeHTTP(w, r)
	})
}
