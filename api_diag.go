package main

import (
	"net/http"
	"os"
	"strings"
)

// databaseDiag is the /test response. Every collaborator failure is folded
// into a descriptive string; this route never returns an HTTP error.
type databaseDiag struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

func (s *APIServer) handleDatabaseDiag(w http.ResponseWriter, r *http.Request) {
	diag := databaseDiag{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      envSetStatus("DATABASE_URL"),
		DatabaseName:     envSetStatus("DATABASE_NAME"),
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}

	if s.stateDB == nil {
		if strings.TrimSpace(s.cfg.DatabaseURL) == "" {
			diag.Database = "not configured (set DATABASE_URL to enable)"
		} else {
			diag.Database = "configured but not connected"
		}
		writeJSON(w, http.StatusOK, diag)
		return
	}

	diag.Database = "available"
	diag.ConnectionStatus = "connected"
	if err := s.stateDB.Ping(); err != nil {
		diag.Database = "connected but error: " + truncateErrorString(err)
		writeJSON(w, http.StatusOK, diag)
		return
	}

	names, err := listTableNames(s.stateDB, diagTableSampleLimit)
	if err != nil {
		diag.Database = "connected but error: " + truncateErrorString(err)
	} else {
		diag.Database = "connected and working"
		if len(names) > 0 {
			diag.Collections = names
		}
	}
	writeJSON(w, http.StatusOK, diag)
}

func envSetStatus(key string) string {
	if os.Getenv(key) != "" {
		return "set"
	}
	return "not set"
}

func truncateErrorString(err error) string {
	msg := err.Error()
	if len(msg) > 50 {
		msg = msg[:50]
	}
	return msg
}
