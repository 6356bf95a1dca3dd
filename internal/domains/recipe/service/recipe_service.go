package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"foodgram-backend/internal/domains/recipe/model"
	"foodgram-backend/internal/domains/recipe/repository"
	"foodgram-backend/internal/shared"
	"foodgram-backend/pkg/logger"
)

// =============================================================================
// RECIPE SERVICE INTERFACE
// =============================================================================

type RecipeService interface {
	CreateRecipe(ctx context.Context, authorID uuid.UUID, req model.WriteRecipeRequest) (*model.RecipeResponse, error)
	UpdateRecipe(ctx context.Context, userID, recipeID uuid.UUID, req model.WriteRecipeRequest) (*model.RecipeResponse, error)
	DeleteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error
	GetRecipe(ctx context.Context, id uuid.UUID, viewer *uuid.UUID) (*model.RecipeResponse, error)
	ListRecipes(ctx context.Context, viewer *uuid.UUID, req model.ListRecipesRequest) ([]model.RecipeResponse, int, error)
}

// =============================================================================
// RECIPE SERVICE IMPLEMENTATION
// =============================================================================

type recipeService struct {
	repo         repository.RecipeRepository
	imageService ImageService
	queueClient  *asynq.Client
}

func NewRecipeService(repo repository.RecipeRepository, imageService ImageService, queueClient *asynq.Client) RecipeService {
	return &recipeService{
		repo:         repo,
		imageService: imageService,
		queueClient:  queueClient,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, authorID uuid.UUID, req model.WriteRecipeRequest) (*model.RecipeResponse, error) {
	// 1. Validate payload
	if err := req.ValidateCreate(); err != nil {
		return nil, err
	}

	// 2. Store the original image before touching the catalog so a
	//    storage failure leaves no half-created recipe behind
	recipeID := uuid.New()
	imageURL, err := s.imageService.Store(ctx, recipeID, *req.Image)
	if err != nil {
		return nil, err
	}

	// 3. Persist recipe, ingredient lines and tag links atomically
	recipe := &model.Recipe{
		ID:          recipeID,
		AuthorID:    authorID,
		Name:        req.Name,
		Image:       imageURL,
		Text:        req.Text,
		CookingTime: req.CookingTime,
	}
	if err := s.repo.Create(ctx, recipe, toIngredientAmounts(req.Ingredients), req.Tags); err != nil {
		return nil, mapCompositionError(err)
	}

	// 4. Queue variant generation off the request path
	s.enqueue(ctx, shared.TypeProcessRecipeImage, shared.ProcessRecipeImagePayload{RecipeID: recipeID.String()}, shared.QueueLow)

	logger.Info("recipe created", map[string]interface{}{
		"recipe_id": recipeID.String(),
		"author_id": authorID.String(),
	})

	return s.repo.GetByID(ctx, recipeID, &authorID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, userID, recipeID uuid.UUID, req model.WriteRecipeRequest) (*model.RecipeResponse, error) {
	// 1. Validate payload
	if err := req.ValidateUpdate(); err != nil {
		return nil, err
	}

	// 2. Only the author can modify a recipe
	authorID, currentImage, err := s.repo.GetOwner(ctx, recipeID)
	if err != nil {
		if errors.Is(err, model.ErrRecipeNotFound) {
			return nil, model.NewRecipeNotFoundError()
		}
		return nil, err
	}
	if authorID != userID {
		return nil, model.NewNotAuthorError()
	}

	// 3. Replace the image only when a new one was sent
	imageURL := currentImage
	imageReplaced := false
	if req.Image != nil {
		imageURL, err = s.imageService.Store(ctx, recipeID, *req.Image)
		if err != nil {
			return nil, err
		}
		imageReplaced = true
	}

	// 4. Persist the new state atomically
	recipe := &model.Recipe{
		ID:          recipeID,
		AuthorID:    authorID,
		Name:        req.Name,
		Image:       imageURL,
		Text:        req.Text,
		CookingTime: req.CookingTime,
	}
	if err := s.repo.Update(ctx, recipe, toIngredientAmounts(req.Ingredients), req.Tags); err != nil {
		return nil, mapCompositionError(err)
	}

	if imageReplaced {
		s.enqueue(ctx, shared.TypeProcessRecipeImage, shared.ProcessRecipeImagePayload{RecipeID: recipeID.String()}, shared.QueueLow)
	}

	return s.repo.GetByID(ctx, recipeID, &userID)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	authorID, _, err := s.repo.GetOwner(ctx, recipeID)
	if err != nil {
		if errors.Is(err, model.ErrRecipeNotFound) {
			return model.NewRecipeNotFoundError()
		}
		return err
	}
	if authorID != userID {
		return model.NewNotAuthorError()
	}

	if err := s.repo.Delete(ctx, recipeID); err != nil {
		if errors.Is(err, model.ErrRecipeNotFound) {
			return model.NewRecipeNotFoundError()
		}
		return err
	}

	s.enqueue(ctx, shared.TypeDeleteRecipeImages, shared.DeleteRecipeImagesPayload{RecipeID: recipeID.String()}, shared.QueueLow)

	logger.Info("recipe deleted", map[string]interface{}{
		"recipe_id": recipeID.String(),
		"author_id": userID.String(),
	})

	return nil
}

func (s *recipeService) GetRecipe(ctx context.Context, id uuid.UUID, viewer *uuid.UUID) (*model.RecipeResponse, error) {
	view, err := s.repo.GetByID(ctx, id, viewer)
	if err != nil {
		if errors.Is(err, model.ErrRecipeNotFound) {
			return nil, model.NewRecipeNotFoundError()
		}
		return nil, err
	}
	return view, nil
}

func (s *recipeService) ListRecipes(ctx context.Context, viewer *uuid.UUID, req model.ListRecipesRequest) ([]model.RecipeResponse, int, error) {
	req.Normalize()
	return s.repo.List(ctx, viewer, req)
}

// enqueue pushes a background task, logging instead of failing the
// request when the queue is unavailable.
func (s *recipeService) enqueue(ctx context.Context, taskType string, payload interface{}, queue string) {
	if s.queueClient == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		logger.Error("failed to marshal task payload", err)
		return
	}

	task := asynq.NewTask(taskType, data)
	if _, err := s.queueClient.EnqueueContext(ctx, task, asynq.Queue(queue)); err != nil {
		logger.Warn("failed to enqueue task", map[string]interface{}{
			"task_type": taskType,
			"error":     err.Error(),
		})
	}
}

func toIngredientAmounts(lines []model.IngredientAmountRequest) []model.IngredientAmount {
	amounts := make([]model.IngredientAmount, len(lines))
	for i, line := range lines {
		amounts[i] = model.IngredientAmount{
			IngredientID: line.ID,
			Amount:       line.Amount,
		}
	}
	return amounts
}

func mapCompositionError(err error) error {
	switch {
	case errors.Is(err, model.ErrUnknownIngredient):
		return model.NewUnknownIngredientError()
	case errors.Is(err, model.ErrUnknownTag):
		return model.NewUnknownTagError()
	case errors.Is(err, model.ErrRecipeNotFound):
		return model.NewRecipeNotFoundError()
	}
	return err
}
