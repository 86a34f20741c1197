package domain

import "encoding/json"

// Vehicle is a reusable mode-of-transport record attachable to trips.
// Vehicles are created whole and deleted by id, never mutated in place.
// A trip keeps its own copy of the vehicle it was created with, so deleting
// a vehicle does not cascade into trips referencing it.
type Vehicle struct {
	ID    string `json:"id"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Plate string `json:"plate,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// vehicleJSON carries both the canonical fields and the legacy flat shape
// ({name, type, description, image}) that older persisted data still uses.
type vehicleJSON struct {
	ID    string `json:"id"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Plate string `json:"plate"`
	Notes string `json:"notes"`

	Name        string `json:"name"`
	Description string `json:"description"`
}

// UnmarshalJSON accepts both vehicle shapes and maps the legacy one onto
// the canonical fields: name becomes Model, description becomes Notes.
// The legacy type and image fields have no canonical slot and are dropped
// (image in particular may hold an inline base64 payload).
func (v *Vehicle) UnmarshalJSON(data []byte) error {
	var raw vehicleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := Vehicle{
		ID:    raw.ID,
		Brand: raw.Brand,
		Model: raw.Model,
		Plate: raw.Plate,
		Notes: raw.Notes,
	}
	if out.Brand == "" && out.Model == "" && raw.Name != "" {
		out.Model = raw.Name
	}
	if out.Notes == "" && raw.Description != "" {
		out.Notes = raw.Description
	}

	*v = out
	return nil
}
