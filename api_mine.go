package main

import (
	"io"
	"net/http"
)

// handleMine runs one bounded proof-of-work search per request. This does
// not mine real Bitcoin; it looks for a nonce whose sha256(data|nonce)
// digest starts with the requested number of zero hex digits, under hard
// safety caps on hash count and wall-clock time.
func (s *APIServer) handleMine(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "unreadable request body")
		return
	}

	req := defaultMineRequest()
	if len(body) > 0 {
		if err := fastJSONUnmarshal(body, &req); err != nil {
			s.metrics.badRequests.Add(1)
			writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
	}
	if err := validateMineRequest(req); err != nil {
		s.metrics.badRequests.Add(1)
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	res := mineSearch(req)
	s.metrics.recordMine(res)
	logger.Debug("mine search finished",
		"found", res.Found,
		"tried", res.TriedHashes,
		"elapsed_ms", res.ElapsedMS,
		"difficulty", req.Difficulty)
	writeJSON(w, http.StatusOK, res)
}
