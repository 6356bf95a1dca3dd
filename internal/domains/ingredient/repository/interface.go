package repository

import (
	"context"

	"github.com/google/uuid"

	"foodgram-backend/internal/domains/ingredient/model"
)

// IngredientRepository is the data access contract for ingredients.
type IngredientRepository interface {
	// Search returns ingredients whose name starts with prefix
	// (case-insensitive); empty prefix returns everything.
	Search(ctx context.Context, prefix string) ([]model.Ingredient, error)

	GetByID(ctx context.Context, id uuid.UUID) (*model.Ingredient, error)

	// BulkCreate inserts reference data rows. Used by the import command.
	BulkCreate(ctx context.Context, ingredients []model.Ingredient) (int, error)
}
