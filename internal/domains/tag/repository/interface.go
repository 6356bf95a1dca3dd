package repository

import (
	"context"

	"github.com/google/uuid"

	"foodgram-backend/internal/domains/tag/model"
)

// TagRepository is the data access contract for tags.
type TagRepository interface {
	List(ctx context.Context) ([]model.Tag, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Tag, error)

	// BulkCreate inserts reference data rows. Used by the import command.
	BulkCreate(ctx context.Context, tags []model.Tag) (int, error)
}
