package handler

import "net/http"

// HandleHealth is the liveness probe.
//
// GET /api/health
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "API is running",
	})
}
