package store

import "github.com/501wxrit/TripDiary-PWA/internal/domain"

// AddTrip appends trip to the collection. The caller supplies the id and is
// responsible for its uniqueness; two trips with the same id is caller
// error and is not deduplicated here.
func (s *Store) AddTrip(trip domain.Trip) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trips := make([]domain.Trip, 0, len(s.trips)+1)
	trips = append(trips, s.trips...)
	s.trips = append(trips, trip)
	s.errMsg = ""
	s.persistLocked()
}

// AddDiaryEntry appends entry to the named trip's entry list. An unmatched
// tripID leaves the state unchanged — silently, matching the established
// behavior UI flows rely on.
func (s *Store) AddDiaryEntry(tripID string, entry domain.DiaryEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trips := make([]domain.Trip, len(s.trips))
	for i, t := range s.trips {
		if t.ID == tripID {
			entries := make([]domain.DiaryEntry, 0, len(t.Entries)+1)
			entries = append(entries, t.Entries...)
			t.Entries = append(entries, entry)
		}
		trips[i] = t
	}
	s.trips = trips
	s.errMsg = ""
	s.persistLocked()
}

// DeleteDiaryEntry filters the entry out of the named trip. Unmatched trip
// or entry ids are silent no-ops.
func (s *Store) DeleteDiaryEntry(tripID, entryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trips := make([]domain.Trip, len(s.trips))
	for i, t := range s.trips {
		if t.ID == tripID {
			entries := make([]domain.DiaryEntry, 0, len(t.Entries))
			for _, e := range t.Entries {
				if e.ID != entryID {
					entries = append(entries, e)
				}
			}
			t.Entries = entries
		}
		trips[i] = t
	}
	s.trips = trips
	s.errMsg = ""
	s.persistLocked()
}

// SetCurrentTrip points currentTrip at the matching trip, or nil when the
// id matches nothing.
func (s *Store) SetCurrentTrip(tripID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentTrip = nil
	for i := range s.trips {
		if s.trips[i].ID == tripID {
			t := s.trips[i]
			s.currentTrip = &t
			break
		}
	}
	s.errMsg = ""
}

// DeleteTrip removes the trip with the given id and clears currentTrip if
// it pointed at the deleted trip.
func (s *Store) DeleteTrip(tripID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trips := make([]domain.Trip, 0, len(s.trips))
	for _, t := range s.trips {
		if t.ID != tripID {
			trips = append(trips, t)
		}
	}
	s.trips = trips
	if s.currentTrip != nil && s.currentTrip.ID == tripID {
		s.currentTrip = nil
	}
	s.errMsg = ""
	s.persistLocked()
}

// TripUpdate carries the partial fields UpdateTrip shallow-merges into a
// trip. Nil pointers mean "leave unchanged".
type TripUpdate struct {
	Name        *string
	Province    *string
	StartedAt   *string
	EndedAt     *string
	Description *string
	CoverImage  *string
	Vehicle     *domain.Vehicle
}

// UpdateTrip shallow-merges updates into the matching trip, and into
// currentTrip when it is the same trip. An unmatched id is a silent no-op.
func (s *Store) UpdateTrip(tripID string, updates TripUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	trips := make([]domain.Trip, len(s.trips))
	for i, t := range s.trips {
		if t.ID == tripID {
			t = mergeTrip(t, updates)
		}
		trips[i] = t
	}
	s.trips = trips
	if s.currentTrip != nil && s.currentTrip.ID == tripID {
		merged := mergeTrip(*s.currentTrip, updates)
		s.currentTrip = &merged
	}
	s.errMsg = ""
	s.persistLocked()
}

func mergeTrip(t domain.Trip, u TripUpdate) domain.Trip {
	if u.Name != nil {
		t.Name = *u.Name
	}
	if u.Province != nil {
		t.Province = *u.Province
	}
	if u.StartedAt != nil {
		t.StartedAt = *u.StartedAt
	}
	if u.EndedAt != nil {
		t.EndedAt = *u.EndedAt
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.CoverImage != nil {
		t.CoverImage = *u.CoverImage
	}
	if u.Vehicle != nil {
		v := *u.Vehicle
		t.Vehicle = &v
	}
	return t
}
