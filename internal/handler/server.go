// Package handler implements the HTTP handlers for the TripDiary fallback
// API: the document-store trip routes plus the upload and geocoding
// proxies. All handlers are methods on Server; routes are registered in
// Routes. Handlers are split into domain-specific files but share the same
// Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/go-chi/chi/v5"

	"github.com/501wxrit/TripDiary-PWA/internal/domain"
	"github.com/501wxrit/TripDiary-PWA/internal/media"
)

// TripStorer defines the document-store operations the trip handlers
// depend on. Defining the interface here, in the consumer package, lets
// handler tests inject a mock without a database.
type TripStorer interface {
	List(ctx context.Context) ([]domain.Trip, error)
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, id string) (domain.Trip, error)
	AppendEntry(ctx context.Context, tripID string, entry domain.DiaryEntry) error
	Delete(ctx context.Context, tripID string) error
}

// Uploader forwards image files to the media host.
type Uploader interface {
	Upload(ctx context.Context, files []media.File) ([]domain.ImageRef, error)
}

// Geocoder resolves coordinates to a place name.
type Geocoder interface {
	ReverseLookup(ctx context.Context, lat, lng float64) (string, error)
}

// Server holds the handler dependencies. uploader and geocoder may be nil
// when the corresponding collaborator is not configured; their routes then
// answer 503.
type Server struct {
	trips    TripStorer
	uploader Uploader
	geocoder Geocoder
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripStorer, uploader Uploader, geocoder Geocoder) *Server {
	return &Server{trips: trips, uploader: uploader, geocoder: geocoder}
}

// Routes returns the router for every API endpoint.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/trips", s.listTrips)
		r.Post("/trips", s.createTrip)
		r.Get("/trips/{id}", s.getTrip)
		r.Delete("/trips/{id}", s.deleteTrip)
		r.Post("/trips/{id}/entries", s.addEntry)
		r.Post("/upload", s.uploadImages)
		r.Get("/geocode", s.geocode)
	})
	return r
}
