package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"foodgram-backend/internal/domains/recipe/model"
	"foodgram-backend/internal/infrastructure/storage"
)

// =============================================================================
// IMAGE SERVICE
// =============================================================================

// ImageService moves recipe images between the API payloads (base64
// data URIs) and object storage.
type ImageService interface {
	// Store decodes, validates and uploads the original image under the
	// recipe's storage prefix, returning its public URL.
	Store(ctx context.Context, recipeID uuid.UUID, dataURI string) (string, error)

	// ProcessVariants downloads the stored original and uploads the
	// resized variants. Runs in the worker, not the request path.
	ProcessVariants(ctx context.Context, recipeID uuid.UUID) error

	// DeleteImages drops every stored object of a recipe.
	DeleteImages(ctx context.Context, recipeID uuid.UUID) error
}

type imageService struct {
	storage   *storage.MinIOStorage
	processor *storage.ImageProcessor
}

func NewImageService(store *storage.MinIOStorage, processor *storage.ImageProcessor) ImageService {
	return &imageService{
		storage:   store,
		processor: processor,
	}
}

func (s *imageService) Store(ctx context.Context, recipeID uuid.UUID, dataURI string) (string, error) {
	data, contentType, err := decodeDataURI(dataURI)
	if err != nil {
		return "", model.NewInvalidImageError(err.Error())
	}

	if err := s.processor.ValidateImage(data); err != nil {
		return "", model.NewInvalidImageError(err.Error())
	}

	key := originalKey(recipeID, contentType)
	url, err := s.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to store recipe image: %w", err)
	}

	return url, nil
}

func (s *imageService) ProcessVariants(ctx context.Context, recipeID uuid.UUID) error {
	prefix := recipePrefix(recipeID)
	keys, err := s.storage.ListKeys(ctx, prefix+"original")
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return fmt.Errorf("no original image stored for recipe %s", recipeID)
	}

	data, err := s.storage.Download(ctx, keys[0])
	if err != nil {
		return err
	}

	variants, err := s.processor.ProcessImage(data)
	if err != nil {
		return err
	}

	for name, payload := range variants {
		key := fmt.Sprintf("%s%s.jpg", prefix, name)
		if _, err := s.storage.Upload(ctx, key, payload, "image/jpeg"); err != nil {
			return err
		}
	}

	return nil
}

func (s *imageService) DeleteImages(ctx context.Context, recipeID uuid.UUID) error {
	return s.storage.DeleteByPrefix(ctx, recipePrefix(recipeID))
}

func recipePrefix(recipeID uuid.UUID) string {
	return fmt.Sprintf("recipes/%s/", recipeID)
}

func originalKey(recipeID uuid.UUID, contentType string) string {
	ext := "jpg"
	if contentType == "image/png" {
		ext = "png"
	}
	return fmt.Sprintf("%soriginal.%s", recipePrefix(recipeID), ext)
}

// decodeDataURI parses a "data:image/...;base64,...." payload.
func decodeDataURI(dataURI string) ([]byte, string, error) {
	header, encoded, found := strings.Cut(dataURI, ",")
	if !found || !strings.HasPrefix(header, "data:") || !strings.HasSuffix(header, ";base64") {
		return nil, "", fmt.Errorf("image must be a base64 data URI")
	}

	contentType := strings.TrimSuffix(strings.TrimPrefix(header, "data:"), ";base64")
	if contentType != "image/jpeg" && contentType != "image/png" {
		return nil, "", fmt.Errorf("image content type %s not allowed", contentType)
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", fmt.Errorf("invalid base64 image data: %w", err)
	}

	return data, contentType, nil
}
