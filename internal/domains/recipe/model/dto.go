package model

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// IngredientAmountRequest is one ingredient line of a write request.
type IngredientAmountRequest struct {
	ID     uuid.UUID `json:"id"`
	Amount int       `json:"amount"`
}

// WriteRecipeRequest is the payload for both create and update.
// Image is a base64 data URI. A nil Image on update keeps the current
// one; an explicitly empty Image is rejected in both cases.
type WriteRecipeRequest struct {
	Name        string                    `json:"name"`
	Text        string                    `json:"text"`
	Image       *string                   `json:"image"`
	CookingTime int                       `json:"cooking_time"`
	Tags        []uuid.UUID               `json:"tags"`
	Ingredients []IngredientAmountRequest `json:"ingredients"`
}

// ValidateCreate validates the payload for recipe creation.
func (req WriteRecipeRequest) ValidateCreate() error {
	if req.Image == nil || *req.Image == "" {
		return NewRecipeValidationError("Image is required")
	}
	return req.validateCommon()
}

// ValidateUpdate validates the payload for recipe update. A missing
// image field keeps the stored one, but sending an empty image is an
// error rather than a silent no-op.
func (req WriteRecipeRequest) ValidateUpdate() error {
	if req.Image != nil && *req.Image == "" {
		return NewRecipeValidationError("Image cannot be empty")
	}
	return req.validateCommon()
}

func (req WriteRecipeRequest) validateCommon() error {
	err := validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Text, validation.Required),
		validation.Field(&req.CookingTime, validation.Required, validation.Min(1)),
	)
	if err != nil {
		return err
	}

	if len(req.Ingredients) == 0 {
		return NewRecipeValidationError("At least one ingredient is required")
	}
	seenIngredients := make(map[uuid.UUID]struct{}, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		if ing.Amount < 1 {
			return NewRecipeValidationError(fmt.Sprintf("Ingredient amount must be positive, got %d", ing.Amount))
		}
		if _, dup := seenIngredients[ing.ID]; dup {
			return NewRecipeValidationError("Duplicate ingredient in recipe")
		}
		seenIngredients[ing.ID] = struct{}{}
	}

	if len(req.Tags) == 0 {
		return NewRecipeValidationError("At least one tag is required")
	}
	seenTags := make(map[uuid.UUID]struct{}, len(req.Tags))
	for _, tagID := range req.Tags {
		if _, dup := seenTags[tagID]; dup {
			return NewRecipeValidationError("Duplicate tag in recipe")
		}
		seenTags[tagID] = struct{}{}
	}

	return nil
}

// ListRecipesRequest carries the recipe catalog filters. Tags holds
// tag slugs combined with OR semantics. The viewer-relative filters
// only apply to authenticated requests.
type ListRecipesRequest struct {
	Page             int      `form:"page"`
	Limit            int      `form:"limit"`
	Author           string   `form:"author"`
	Tags             []string `form:"tags"`
	IsFavorited      bool     `form:"is_favorited"`
	IsInShoppingCart bool     `form:"is_in_shopping_cart"`
}

func (r *ListRecipesRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 20
	}
}
