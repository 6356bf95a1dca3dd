package repository

import (
	"context"

	"github.com/google/uuid"

	"foodgram-backend/internal/domains/user/model"
)

// UserRepository is the data access contract for users.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// GetView resolves the viewer-relative read view (is_subscribed).
	// viewer == nil means anonymous.
	GetView(ctx context.Context, id uuid.UUID, viewer *uuid.UUID) (*model.UserResponse, error)

	// ListViews returns a page of user views plus the total count.
	ListViews(ctx context.Context, viewer *uuid.UUID, page, limit int) ([]model.UserResponse, int, error)
}
