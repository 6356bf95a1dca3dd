package model

import (
	"github.com/google/uuid"
)

// Ingredient is immutable reference data, bulk-loaded once.
type Ingredient struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	MeasurementUnit string    `json:"measurement_unit"`
}
