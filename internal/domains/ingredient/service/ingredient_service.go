package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"foodgram-backend/internal/domains/ingredient/model"
	"foodgram-backend/internal/domains/ingredient/repository"
)

// IngredientService exposes read operations over ingredient reference data.
type IngredientService interface {
	SearchIngredients(ctx context.Context, namePrefix string) ([]model.Ingredient, error)
	GetIngredient(ctx context.Context, id uuid.UUID) (*model.Ingredient, error)
}

type ingredientService struct {
	ingredientRepo repository.IngredientRepository
}

func NewIngredientService(ingredientRepo repository.IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepo: ingredientRepo}
}

func (s *ingredientService) SearchIngredients(ctx context.Context, namePrefix string) ([]model.Ingredient, error) {
	ingredients, err := s.ingredientRepo.Search(ctx, namePrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to search ingredients: %w", err)
	}
	return ingredients, nil
}

func (s *ingredientService) GetIngredient(ctx context.Context, id uuid.UUID) (*model.Ingredient, error) {
	ing, err := s.ingredientRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrIngredientNotFound) {
			return nil, model.NewIngredientNotFoundError()
		}
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}
	return ing, nil
}
