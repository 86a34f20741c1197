// Package strip removes heavy inline payloads from trip data before it is
// persisted. Freshly captured photos live in memory as base64 data URIs
// until their upload completes; persisting them would balloon the stored
// record, so the durable copy keeps only lightweight URL references.
//
// The transform is idempotent and never mutates its input: the in-memory
// state keeps its data URIs for immediate display while the returned deep
// copy is what goes to storage.
package strip

import "github.com/501wxrit/TripDiary-PWA/internal/domain"

// Trips returns a deep copy of trips with every inline base64 payload
// removed:
//
//   - a coverImage holding a data URI is dropped entirely;
//   - an image whose URL is a data URI is filtered out of the entry;
//   - everything else passes through unchanged.
//
// Missing or nil entry/image slices are treated as empty.
func Trips(trips []domain.Trip) []domain.Trip {
	if trips == nil {
		return nil
	}
	out := make([]domain.Trip, len(trips))
	for i, t := range trips {
		out[i] = trip(t)
	}
	return out
}

func trip(t domain.Trip) domain.Trip {
	if domain.IsDataURI(t.CoverImage) {
		t.CoverImage = ""
	}
	if t.Vehicle != nil {
		v := *t.Vehicle
		t.Vehicle = &v
	}

	entries := make([]domain.DiaryEntry, len(t.Entries))
	for i, e := range t.Entries {
		entries[i] = entry(e)
	}
	t.Entries = entries
	return t
}

func entry(e domain.DiaryEntry) domain.DiaryEntry {
	imgs := make([]domain.ImageRef, 0, len(e.Images))
	for _, img := range e.Images {
		if domain.IsDataURI(img.URL) {
			continue
		}
		imgs = append(imgs, img)
	}
	e.Images = imgs

	if e.Lat != nil {
		lat := *e.Lat
		e.Lat = &lat
	}
	if e.Lng != nil {
		lng := *e.Lng
		e.Lng = &lng
	}
	return e
}
