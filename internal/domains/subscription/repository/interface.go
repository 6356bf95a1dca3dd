package repository

import (
	"context"

	"github.com/google/uuid"

	"foodgram-backend/internal/domains/subscription/model"
)

// SubscriptionRepository is the data access contract for subscriptions.
type SubscriptionRepository interface {
	Create(ctx context.Context, userID, authorID uuid.UUID) error
	Delete(ctx context.Context, userID, authorID uuid.UUID) error

	// ListAuthors returns the viewer's followed authors in subscription
	// insertion order, each with up to recipesLimit embedded recipes
	// (0 means no cap) and the author's total recipe count.
	ListAuthors(ctx context.Context, userID uuid.UUID, page, limit, recipesLimit int) ([]model.AuthorResponse, int, error)
}
