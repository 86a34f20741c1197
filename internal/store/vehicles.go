package store

import "github.com/501wxrit/TripDiary-PWA/internal/domain"

// AddVehicle appends vehicle to the collection.
func (s *Store) AddVehicle(vehicle domain.Vehicle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vehicles := make([]domain.Vehicle, 0, len(s.vehicles)+1)
	vehicles = append(vehicles, s.vehicles...)
	s.vehicles = append(vehicles, vehicle)
	s.errMsg = ""
	s.persistLocked()
}

// DeleteVehicle removes the vehicle with the given id. Trips referencing
// the vehicle keep their embedded copy; the reference is allowed to dangle.
func (s *Store) DeleteVehicle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vehicles := make([]domain.Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		if v.ID != id {
			vehicles = append(vehicles, v)
		}
	}
	s.vehicles = vehicles
	s.persistLocked()
}
