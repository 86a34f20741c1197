package handler

import "net/http"

// health answers liveness probes. No dependencies are touched.
func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
