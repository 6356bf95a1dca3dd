package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"foodgram-backend/internal/domains/recipe/model"
	"foodgram-backend/internal/domains/recipe/repository"
)

// =============================================================================
// RELATION SERVICE
// =============================================================================

// RelationService manages the per-user recipe lists. Both lists share
// the same semantics, adding twice conflicts, removing an absent entry
// reads as not found.
type RelationService interface {
	AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) (*model.RecipeMiniResponse, error)
	RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) error

	AddToCart(ctx context.Context, userID, recipeID uuid.UUID) (*model.RecipeMiniResponse, error)
	RemoveFromCart(ctx context.Context, userID, recipeID uuid.UUID) error
}

type relationService struct {
	recipeRepo   repository.RecipeRepository
	relationRepo repository.RelationRepository
}

func NewRelationService(recipeRepo repository.RecipeRepository, relationRepo repository.RelationRepository) RelationService {
	return &relationService{
		recipeRepo:   recipeRepo,
		relationRepo: relationRepo,
	}
}

func (s *relationService) AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) (*model.RecipeMiniResponse, error) {
	return s.add(ctx, userID, recipeID, s.relationRepo.AddFavorite, "favorites")
}

func (s *relationService) RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) error {
	return s.remove(ctx, userID, recipeID, s.relationRepo.RemoveFavorite, "favorites")
}

func (s *relationService) AddToCart(ctx context.Context, userID, recipeID uuid.UUID) (*model.RecipeMiniResponse, error) {
	return s.add(ctx, userID, recipeID, s.relationRepo.AddCartEntry, "shopping cart")
}

func (s *relationService) RemoveFromCart(ctx context.Context, userID, recipeID uuid.UUID) error {
	return s.remove(ctx, userID, recipeID, s.relationRepo.RemoveCartEntry, "shopping cart")
}

type relationOp func(ctx context.Context, userID, recipeID uuid.UUID) error

func (s *relationService) add(ctx context.Context, userID, recipeID uuid.UUID, op relationOp, list string) (*model.RecipeMiniResponse, error) {
	if err := op(ctx, userID, recipeID); err != nil {
		switch {
		case errors.Is(err, model.ErrAlreadyInList):
			return nil, model.NewAlreadyInListError(list)
		case errors.Is(err, model.ErrRecipeNotFound):
			return nil, model.NewRecipeNotFoundError()
		}
		return nil, err
	}

	mini, err := s.recipeRepo.GetMini(ctx, recipeID)
	if err != nil {
		if errors.Is(err, model.ErrRecipeNotFound) {
			return nil, model.NewRecipeNotFoundError()
		}
		return nil, err
	}
	return mini, nil
}

func (s *relationService) remove(ctx context.Context, userID, recipeID uuid.UUID, op relationOp, list string) error {
	if err := op(ctx, userID, recipeID); err != nil {
		if errors.Is(err, model.ErrNotInList) {
			return model.NewNotInListError(list)
		}
		return err
	}
	return nil
}
