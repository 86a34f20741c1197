package handler_test

import (
	"context"

	"github.com/501wxrit/TripDiary-PWA/internal/domain"
	"github.com/501wxrit/TripDiary-PWA/internal/handler"
	"github.com/501wxrit/TripDiary-PWA/internal/media"
)

// mockTripStorer implements handler.TripStorer with per-test func fields.
type mockTripStorer struct {
	ListFunc        func(ctx context.Context) ([]domain.Trip, error)
	CreateFunc      func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	GetByIDFunc     func(ctx context.Context, id string) (domain.Trip, error)
	AppendEntryFunc func(ctx context.Context, tripID string, entry domain.DiaryEntry) error
	DeleteFunc      func(ctx context.Context, tripID string) error
}

var _ handler.TripStorer = (*mockTripStorer)(nil)

func (m *mockTripStorer) List(ctx context.Context) ([]domain.Trip, error) {
	return m.ListFunc(ctx)
}

func (m *mockTripStorer) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.CreateFunc(ctx, trip)
}

func (m *mockTripStorer) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *mockTripStorer) AppendEntry(ctx context.Context, tripID string, entry domain.DiaryEntry) error {
	return m.AppendEntryFunc(ctx, tripID, entry)
}

func (m *mockTripStorer) Delete(ctx context.Context, tripID string) error {
	return m.DeleteFunc(ctx, tripID)
}

// mockUploader implements handler.Uploader.
type mockUploader struct {
	UploadFunc func(ctx context.Context, files []media.File) ([]domain.ImageRef, error)
}

var _ handler.Uploader = (*mockUploader)(nil)

func (m *mockUploader) Upload(ctx context.Context, files []media.File) ([]domain.ImageRef, error) {
	return m.UploadFunc(ctx, files)
}

// mockGeocoder implements handler.Geocoder.
type mockGeocoder struct {
	ReverseLookupFunc func(ctx context.Context, lat, lng float64) (string, error)
}

var _ handler.Geocoder = (*mockGeocoder)(nil)

func (m *mockGeocoder) ReverseLookup(ctx context.Context, lat, lng float64) (string, error) {
	return m.ReverseLookupFunc(ctx, lat, lng)
}
