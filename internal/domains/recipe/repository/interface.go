package repository

import (
	"context"

	"github.com/google/uuid"

	"foodgram-backend/internal/domains/recipe/model"
)

// RecipeRepository is the data access contract for the recipe catalog.
type RecipeRepository interface {
	// Create persists the recipe, its ingredient lines and tag links in
	// one transaction.
	Create(ctx context.Context, recipe *model.Recipe, ingredients []model.IngredientAmount, tagIDs []uuid.UUID) error

	// Update replaces the recipe's scalar fields, ingredient lines and
	// tag links in one transaction.
	Update(ctx context.Context, recipe *model.Recipe, ingredients []model.IngredientAmount, tagIDs []uuid.UUID) error

	Delete(ctx context.Context, id uuid.UUID) error

	// GetByID resolves the full viewer-relative view.
	GetByID(ctx context.Context, id uuid.UUID, viewer *uuid.UUID) (*model.RecipeResponse, error)

	// GetOwner returns the author id and stored image URL, used for
	// ownership checks and image cleanup.
	GetOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, string, error)

	GetMini(ctx context.Context, id uuid.UUID) (*model.RecipeMiniResponse, error)

	// List returns a filtered page of viewer-relative views plus the
	// total match count. Recipes come back in insertion order.
	List(ctx context.Context, viewer *uuid.UUID, req model.ListRecipesRequest) ([]model.RecipeResponse, int, error)
}

// RelationRepository is the data access contract for the per-user
// recipe lists (favorites and shopping cart).
type RelationRepository interface {
	AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) error
	RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) error

	AddCartEntry(ctx context.Context, userID, recipeID uuid.UUID) error
	RemoveCartEntry(ctx context.Context, userID, recipeID uuid.UUID) error

	// CartIngredientSamples streams the ingredient rows of every recipe
	// in the user's cart, in cart insertion order. When firstRowOnly is
	// set, only the alphabetically first ingredient of each cart entry
	// is sampled, reproducing the historical shopping list output.
	CartIngredientSamples(ctx context.Context, userID uuid.UUID, firstRowOnly bool) ([]model.CartIngredientSample, error)
}
