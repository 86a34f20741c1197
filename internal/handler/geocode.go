package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/501wxrit/TripDiary-PWA/internal/domain"
)

// geocode handles GET /api/geocode?lat=&lng=. An unreachable geocoder is
// not an error for the caller: the entry form works fine without a place
// name, so upstream failures answer 200 with an empty name.
func (s *Server) geocode(w http.ResponseWriter, r *http.Request) {
	if s.geocoder == nil {
		respondError(w, http.StatusServiceUnavailable, "geocoding not configured")
		return
	}

	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(r.URL.Query().Get("lng"), 64)
	if errLat != nil || errLng != nil {
		respondError(w, http.StatusUnprocessableEntity, "lat and lng are required numbers")
		return
	}

	name, err := s.geocoder.ReverseLookup(r.Context(), lat, lng)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			respondError(w, http.StatusUnprocessableEntity, "coordinates out of range")
			return
		}
		slog.WarnContext(r.Context(), "geocode lookup failed", "error", err)
		name = ""
	}
	respondJSON(w, http.StatusOK, map[string]string{"name": name})
}
