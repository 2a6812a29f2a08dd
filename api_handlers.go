package main

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hako/durafmt"
)

type greeting struct {
	Message string `json:"message"`
}

func (s *APIServer) handleRoot(w http.ResponseWriter, r *http.Request) {
	// The "/" pattern is the mux catch-all; anything but the root itself
	// is a 404 here.
	if r.URL.Path != "/" && r.URL.Path != "" {
		writeJSONError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, greeting{Message: "Hello from the minelab backend!"})
}

func (s *APIServer) handleHello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, greeting{Message: "Hello from the backend API!"})
}

type hashResponse struct {
	Data   string `json:"data"`
	SHA256 string `json:"sha256"`
}

// handleHash returns the sha256 hex digest of the provided data. The value
// may arrive as a query parameter or as a JSON body field; query wins.
func (s *APIServer) handleHash(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	data, ok := hashInput(r)
	if !ok {
		s.metrics.badRequests.Add(1)
		writeJSONError(w, http.StatusBadRequest, "missing required parameter: data")
		return
	}
	s.metrics.hashRequests.Add(1)
	writeJSON(w, http.StatusOK, hashResponse{
		Data:   data,
		SHA256: sha256Hex([]byte(data)),
	})
}

func hashInput(r *http.Request) (string, bool) {
	if r.URL.Query().Has("data") {
		return r.URL.Query().Get("data"), true
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil || len(body) == 0 {
		return "", false
	}
	var req struct {
		Data *string `json:"data"`
	}
	if err := fastJSONUnmarshal(body, &req); err != nil || req.Data == nil {
		return "", false
	}
	return *req.Data, true
}

type statusData struct {
	APIVersion   string          `json:"api_version"`
	Service      string          `json:"service"`
	BuildVersion string          `json:"build_version,omitempty"`
	BuildTime    string          `json:"build_time,omitempty"`
	UptimeSec    int64           `json:"uptime_sec"`
	Uptime       string          `json:"uptime"`
	SHA256Impl   string          `json:"sha256_impl"`
	Datastore    bool            `json:"datastore"`
	Counters     metricsSnapshot `json:"counters"`
}

func (s *APIServer) handleStatus(w http.ResponseWriter, r *http.Request) {
	up := time.Since(s.start)
	writeJSON(w, http.StatusOK, statusData{
		APIVersion:   apiVersion,
		Service:      serviceName,
		BuildVersion: buildVersionString(),
		BuildTime:    strings.TrimSpace(buildTime),
		UptimeSec:    int64(up.Seconds()),
		Uptime:       durafmt.Parse(up.Truncate(time.Second)).LimitFirstN(2).String(),
		SHA256Impl:   sha256ImplementationName(),
		Datastore:    s.stateDB != nil,
		Counters:     s.metrics.snapshot(),
	})
}
