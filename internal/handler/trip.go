package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/501wxrit/TripDiary-PWA/internal/domain"
)

// listTrips handles GET /api/trips.
func (s *Server) listTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list trips")
		return
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	respondJSON(w, http.StatusOK, trips)
}

// createTrip handles POST /api/trips. The client may supply its own id
// (the local store does); a missing id gets a server-generated one.
func (s *Server) createTrip(w http.ResponseWriter, r *http.Request) {
	var trip domain.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(trip.Name) == "" {
		respondError(w, http.StatusUnprocessableEntity, "name is required")
		return
	}
	if trip.ID == "" {
		trip.ID = domain.NewID()
	}
	if trip.Entries == nil {
		trip.Entries = []domain.DiaryEntry{}
	}

	created, err := s.trips.Create(r.Context(), trip)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create trip")
		return
	}
	respondJSON(w, http.StatusCreated, created)
}

// getTrip handles GET /api/trips/{id}.
func (s *Server) getTrip(w http.ResponseWriter, r *http.Request) {
	trip, err := s.trips.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Trip not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load trip")
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

// deleteTrip handles DELETE /api/trips/{id}.
func (s *Server) deleteTrip(w http.ResponseWriter, r *http.Request) {
	if err := s.trips.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Trip not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to delete trip")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// entryRequest is the POST /api/trips/{id}/entries body. The id and
// timestamp are server-generated; images arrive as already-uploaded refs.
type entryRequest struct {
	Text         string            `json:"text"`
	Images       []domain.ImageRef `json:"images"`
	LocationName string            `json:"locationName"`
	Lat          *float64          `json:"lat"`
	Lng          *float64          `json:"lng"`
}

// addEntry handles POST /api/trips/{id}/entries.
func (s *Server) addEntry(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "id")

	if _, err := s.trips.GetByID(r.Context(), tripID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Trip not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to load trip")
		return
	}

	var req entryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		respondError(w, http.StatusUnprocessableEntity, "text is required")
		return
	}
	if req.Lat != nil && req.Lng != nil && !domain.ValidCoordinates(*req.Lat, *req.Lng) {
		respondError(w, http.StatusUnprocessableEntity, "coordinates out of range")
		return
	}
	if req.Images == nil {
		req.Images = []domain.ImageRef{}
	}

	entry := domain.DiaryEntry{
		ID:           domain.NewID(),
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
		Text:         req.Text,
		Images:       req.Images,
		LocationName: req.LocationName,
		Lat:          req.Lat,
		Lng:          req.Lng,
	}

	if err := s.trips.AppendEntry(r.Context(), tripID, entry); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondError(w, http.StatusNotFound, "Trip not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to add entry")
		return
	}
	respondJSON(w, http.StatusCreated, map[string]domain.DiaryEntry{"entry": entry})
}
