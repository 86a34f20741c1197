// Package domain contains the core data types for the TripDiary application.
// This package has zero dependencies on the rest of the module and is
// imported by every other internal package (storage, persist, store, repo,
// handler).
package domain

import "github.com/google/uuid"

// Trip is the top-level record grouping diary entries under a destination,
// date range, and vehicle. A trip owns its entries list; insertion order is
// display order.
//
// StartedAt/EndedAt are the current field names; StartDate/EndDate are kept
// because persisted data written by older versions still carries them. Both
// pairs hold ISO date strings.
type Trip struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Province    string       `json:"province,omitempty"`
	StartedAt   string       `json:"startedAt,omitempty"`
	EndedAt     string       `json:"endedAt,omitempty"`
	StartDate   string       `json:"startDate,omitempty"`
	EndDate     string       `json:"endDate,omitempty"`
	Entries     []DiaryEntry `json:"entries"`
	Vehicle     *Vehicle     `json:"vehicle,omitempty"`
	Description string       `json:"description,omitempty"`

	// CoverImage may transiently hold a base64 data URI while a freshly
	// captured image is still uploading. Such a value must never survive a
	// persistence cycle; the stripper drops it.
	CoverImage string `json:"coverImage,omitempty"`
}

// DiaryEntry is one logged stop within a trip: text, photos, coordinates,
// timestamp. An entry is owned by exactly one trip and addressed by the
// (tripID, entryID) pair.
type DiaryEntry struct {
	ID           string     `json:"id"`
	CreatedAt    string     `json:"createdAt"`
	Text         string     `json:"text"`
	Images       []ImageRef `json:"images"`
	LocationName string     `json:"locationName,omitempty"`
	Lat          *float64   `json:"lat,omitempty"`
	Lng          *float64   `json:"lng,omitempty"`
}

// NewID returns a fresh unique id for any entity.
func NewID() string {
	return uuid.NewString()
}

// ValidCoordinates reports whether the pair lies within valid latitude and
// longitude bounds. Implemented identically across the legacy clients so
// imported data stays interoperable.
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
