package store

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/501wxrit/TripDiary-PWA/internal/domain"
)

// exportFile is the {trips, vehicles} shape shared by export and import.
// Exports carry the raw in-memory collections, not the stripped persisted
// form, so a backup taken mid-upload is as complete as the screen.
type exportFile struct {
	Trips    []domain.Trip    `json:"trips"`
	Vehicles []domain.Vehicle `json:"vehicles"`
}

// ClearAll resets every collection to empty and evicts the persisted
// record from both storage backends.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.trips = []domain.Trip{}
	s.vehicles = []domain.Vehicle{}
	s.currentTrip = nil
	s.loading = false
	s.errMsg = ""
	s.writer.enqueue(writeJob{evict: true})
}

// WriteExport serializes {trips, vehicles} as pretty-printed JSON to w.
func (s *Store) WriteExport(w io.Writer) error {
	s.mu.RLock()
	data := exportFile{Trips: s.trips, Vehicles: s.vehicles}
	s.mu.RUnlock()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("store.Store.WriteExport: %w", err)
	}
	return nil
}

// ExportData writes the export file into dir and returns its path. The
// filename embeds a millisecond timestamp: trip-diary-<unix-ms>.json.
func (s *Store) ExportData(dir string) (string, error) {
	name := fmt.Sprintf("trip-diary-%d.json", time.Now().UnixMilli())
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("store.Store.ExportData: %w", err)
	}
	defer f.Close()

	if err := s.WriteExport(f); err != nil {
		return "", err
	}
	return path, nil
}

// ImportData parses r as an export file and replaces both collections
// wholesale. A parse failure or a missing trips/vehicles array returns
// domain.ErrImport and leaves the state untouched; the failure message is
// also recorded for UI surfacing.
func (s *Store) ImportData(r io.Reader) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return s.importFailed(fmt.Errorf("%w: %v", domain.ErrImport, err))
	}

	// Verify the shape before decoding elements: both top-level fields
	// must be present and must be arrays.
	var probe struct {
		Trips    json.RawMessage `json:"trips"`
		Vehicles json.RawMessage `json:"vehicles"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return s.importFailed(fmt.Errorf("%w: %v", domain.ErrImport, err))
	}
	if !isJSONArray(probe.Trips) || !isJSONArray(probe.Vehicles) {
		return s.importFailed(fmt.Errorf("%w: missing trips or vehicles", domain.ErrImport))
	}

	var data exportFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return s.importFailed(fmt.Errorf("%w: %v", domain.ErrImport, err))
	}
	if data.Trips == nil {
		data.Trips = []domain.Trip{}
	}
	if data.Vehicles == nil {
		data.Vehicles = []domain.Vehicle{}
	}

	s.mu.Lock()
	s.trips = data.Trips
	s.vehicles = data.Vehicles
	s.errMsg = ""
	s.persistLocked()
	s.mu.Unlock()
	return nil
}

func (s *Store) importFailed(err error) error {
	s.mu.Lock()
	s.errMsg = err.Error()
	s.mu.Unlock()
	return err
}

// isJSONArray reports whether raw is present and its first token opens an
// array.
func isJSONArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case '[':
			return true
		default:
			return false
		}
	}
	return false
}
