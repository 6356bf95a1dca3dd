package model

import (
	"time"

	"github.com/google/uuid"

	tagmodel "foodgram-backend/internal/domains/tag/model"
)

// =====================================================
// ENTITIES
// =====================================================

// Recipe is the central content entity. Image holds the storage URL of
// the original upload.
type Recipe struct {
	ID          uuid.UUID `json:"id"`
	AuthorID    uuid.UUID `json:"author_id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Text        string    `json:"text"`
	CookingTime int       `json:"cooking_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IngredientAmount pairs an ingredient reference with a quantity
// inside a recipe composition.
type IngredientAmount struct {
	IngredientID uuid.UUID `json:"ingredient_id"`
	Amount       int       `json:"amount"`
}

// Favorite marks a recipe as favorited by a user.
type Favorite struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	RecipeID  uuid.UUID `json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ShoppingCartEntry marks a recipe as queued for purchase planning.
type ShoppingCartEntry struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	RecipeID  uuid.UUID `json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
}

// =====================================================
// READ VIEWS
// =====================================================

// AuthorInfo is the embedded author block of a recipe view.
type AuthorInfo struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	IsSubscribed bool      `json:"is_subscribed"`
}

// IngredientInRecipe is an ingredient line of a recipe view, joined
// with its reference data.
type IngredientInRecipe struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	MeasurementUnit string    `json:"measurement_unit"`
	Amount          int       `json:"amount"`
}

// RecipeResponse is the full viewer-relative recipe view. The flags
// are false for anonymous viewers.
type RecipeResponse struct {
	ID                uuid.UUID            `json:"id"`
	Author            AuthorInfo           `json:"author"`
	Name              string               `json:"name"`
	Image             string               `json:"image"`
	Text              string               `json:"text"`
	CookingTime       int                  `json:"cooking_time"`
	Tags              []tagmodel.Tag       `json:"tags"`
	Ingredients       []IngredientInRecipe `json:"ingredients"`
	IsFavorited       bool                 `json:"is_favorited"`
	IsInShoppingCart  bool                 `json:"is_in_shopping_cart"`
	CreatedAt         time.Time            `json:"created_at"`
}

// RecipeMiniResponse is the compact view returned when a recipe is
// added to a favorites or shopping cart list.
type RecipeMiniResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	CookingTime int       `json:"cooking_time"`
}

// CartIngredientSample is one ingredient row drawn from the viewer's
// shopping cart, as fed to the shopping list builder.
type CartIngredientSample struct {
	Name            string
	MeasurementUnit string
	Amount          int64
}
