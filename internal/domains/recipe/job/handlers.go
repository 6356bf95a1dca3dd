package job

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"foodgram-backend/internal/domains/recipe/model"
	"foodgram-backend/internal/domains/recipe/repository"
	"foodgram-backend/internal/domains/recipe/service"
	"foodgram-backend/internal/infrastructure/storage"
	"foodgram-backend/internal/shared"
	"foodgram-backend/pkg/logger"
)

// =============================================================================
// RECIPE IMAGE JOBS
// =============================================================================

// Handlers holds the worker-side task handlers for recipe images.
type Handlers struct {
	imageService service.ImageService
	recipeRepo   repository.RecipeRepository
	storage      *storage.MinIOStorage
}

func NewHandlers(imageService service.ImageService, recipeRepo repository.RecipeRepository, store *storage.MinIOStorage) *Handlers {
	return &Handlers{
		imageService: imageService,
		recipeRepo:   recipeRepo,
		storage:      store,
	}
}

// Register wires the handlers into the asynq mux.
func (h *Handlers) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(shared.TypeProcessRecipeImage, h.HandleProcessImage)
	mux.HandleFunc(shared.TypeDeleteRecipeImages, h.HandleDeleteImages)
	mux.HandleFunc(shared.TypeCleanupOrphanImages, h.HandleCleanupOrphans)
}

// HandleProcessImage generates the resized image variants for a recipe.
func (h *Handlers) HandleProcessImage(ctx context.Context, t *asynq.Task) error {
	var payload shared.ProcessRecipeImagePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid payload: %w: %w", err, asynq.SkipRetry)
	}

	recipeID, err := uuid.Parse(payload.RecipeID)
	if err != nil {
		return fmt.Errorf("invalid recipe id: %w: %w", err, asynq.SkipRetry)
	}

	// The recipe may be gone by the time the task runs
	if _, _, err := h.recipeRepo.GetOwner(ctx, recipeID); err != nil {
		if errors.Is(err, model.ErrRecipeNotFound) {
			logger.Warn("skipping variant generation for deleted recipe", map[string]interface{}{
				"recipe_id": payload.RecipeID,
			})
			return nil
		}
		return err
	}

	if err := h.imageService.ProcessVariants(ctx, recipeID); err != nil {
		return fmt.Errorf("failed to process image variants: %w", err)
	}

	logger.Info("image variants generated", map[string]interface{}{
		"recipe_id": payload.RecipeID,
	})
	return nil
}

// HandleDeleteImages drops every stored image of a deleted recipe.
func (h *Handlers) HandleDeleteImages(ctx context.Context, t *asynq.Task) error {
	var payload shared.DeleteRecipeImagesPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("invalid payload: %w: %w", err, asynq.SkipRetry)
	}

	recipeID, err := uuid.Parse(payload.RecipeID)
	if err != nil {
		return fmt.Errorf("invalid recipe id: %w: %w", err, asynq.SkipRetry)
	}

	if err := h.imageService.DeleteImages(ctx, recipeID); err != nil {
		return fmt.Errorf("failed to delete recipe images: %w", err)
	}

	logger.Info("recipe images deleted", map[string]interface{}{
		"recipe_id": payload.RecipeID,
	})
	return nil
}

// HandleCleanupOrphans diffs stored image prefixes against the catalog
// and removes images whose recipe no longer exists. Scheduled
// periodically.
func (h *Handlers) HandleCleanupOrphans(ctx context.Context, t *asynq.Task) error {
	keys, err := h.storage.ListKeys(ctx, "recipes/")
	if err != nil {
		return fmt.Errorf("failed to list stored images: %w", err)
	}

	checked := make(map[uuid.UUID]bool)
	removed := 0
	for _, key := range keys {
		recipeID, ok := recipeIDFromKey(key)
		if !ok {
			continue
		}
		if _, done := checked[recipeID]; done {
			continue
		}
		checked[recipeID] = true

		_, _, err := h.recipeRepo.GetOwner(ctx, recipeID)
		if err == nil {
			continue
		}
		if !errors.Is(err, model.ErrRecipeNotFound) {
			return err
		}

		if err := h.storage.DeleteByPrefix(ctx, fmt.Sprintf("recipes/%s/", recipeID)); err != nil {
			return fmt.Errorf("failed to delete orphan images: %w", err)
		}
		removed++
	}

	logger.Info("orphan image cleanup done", map[string]interface{}{
		"prefixes_checked": len(checked),
		"prefixes_removed": removed,
	})
	return nil
}

// recipeIDFromKey extracts the recipe id from a storage key shaped
// like recipes/<uuid>/<variant>.
func recipeIDFromKey(key string) (uuid.UUID, bool) {
	parts := strings.Split(key, "/")
	if len(parts) < 3 || parts[0] != "recipes" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(parts[1])
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
