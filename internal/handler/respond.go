package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// respondJSON writes v as JSON with the given status. Encoding failures are
// logged, not surfaced; headers are already gone by then.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("handler: encode response", "error", err)
	}
}

// respondError writes the {"error": message} body the browser client
// expects from every failure path.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
