package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"quizlens-backend/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   message,
	})
}

// uploadStatus maps an upload failure to the HTTP status surfaced to the
// client: 504 on timeout, the upstream status on a non-2xx reply, 500
// otherwise. Other routes report upstream failures uniformly as 500.
func uploadStatus(err error) int {
	var ue *services.UpstreamError
	if errors.As(err, &ue) {
		switch ue.Kind {
		case services.ErrTimeout:
			return http.StatusGatewayTimeout
		case services.ErrHTTPStatus:
			return ue.Status
		}
	}
	return http.StatusInternalServerError
}
