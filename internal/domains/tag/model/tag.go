package model

import (
	"github.com/google/uuid"
)

// Tag is immutable reference data attached to recipes.
type Tag struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"` // hex, e.g. "#49B64E"
	Slug  string    `json:"slug"`
}
