package main

import (
	"database/sql"
	"net/http"
	"time"
)

// APIServer carries the request-independent collaborators: config, counters
// and the optional diagnostic datastore. Each search is self-contained, so
// nothing here needs locking beyond the metrics atomics.
type APIServer struct {
	cfg     Config
	metrics *apiMetrics
	stateDB *sql.DB
	start   time.Time
}

func newAPIServer(cfg Config, db *sql.DB) *APIServer {
	return &APIServer{
		cfg:     cfg,
		metrics: &apiMetrics{},
		stateDB: db,
		start:   time.Now(),
	}
}

func (s *APIServer) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/api/hello", s.handleHello)
	mux.HandleFunc("/api/mine", s.handleMine)
	mux.HandleFunc("/api/hash", s.handleHash)
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/test", s.handleDatabaseDiag)
	return mux
}

// withOpenCORS stamps fully permissive CORS headers on every route and
// answers preflight directly. Demo-grade boundary; there is nothing here
// worth locking down.
func withOpenCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "*")
		h.Set("Access-Control-Allow-Headers", "*")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	payload, err := fastJSONMarshal(v)
	if err != nil {
		logger.Error("marshal response", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

type apiError struct {
	Detail string `json:"detail"`
}

func writeJSONError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, apiError{Detail: detail})
}
