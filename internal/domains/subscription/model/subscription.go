package model

import (
	"time"

	"github.com/google/uuid"
)

// Subscription links a subscriber to an author. A user follows an
// author at most once, enforced by a unique constraint on
// (user_id, author_id).
type Subscription struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
}

// RecipeMini is the compact recipe view embedded in subscription
// listings.
type RecipeMini struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	CookingTime int       `json:"cooking_time"`
}

// AuthorResponse is an author as seen in the viewer's subscription
// feed. IsSubscribed is always true here since the feed only contains
// followed authors.
type AuthorResponse struct {
	ID           uuid.UUID    `json:"id"`
	Email        string       `json:"email"`
	Username     string       `json:"username"`
	FirstName    string       `json:"first_name"`
	LastName     string       `json:"last_name"`
	IsSubscribed bool         `json:"is_subscribed"`
	Recipes      []RecipeMini `json:"recipes"`
	RecipesCount int          `json:"recipes_count"`
}
