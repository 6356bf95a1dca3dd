package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"foodgram-backend/internal/domains/tag/model"
	"foodgram-backend/internal/domains/tag/repository"
)

// TagService exposes read operations over tag reference data.
type TagService interface {
	ListTags(ctx context.Context) ([]model.Tag, error)
	GetTag(ctx context.Context, id uuid.UUID) (*model.Tag, error)
}

type tagService struct {
	tagRepo repository.TagRepository
}

func NewTagService(tagRepo repository.TagRepository) TagService {
	return &tagService{tagRepo: tagRepo}
}

func (s *tagService) ListTags(ctx context.Context) ([]model.Tag, error) {
	tags, err := s.tagRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	return tags, nil
}

func (s *tagService) GetTag(ctx context.Context, id uuid.UUID) (*model.Tag, error) {
	tag, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrTagNotFound) {
			return nil, model.NewTagNotFoundError()
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return tag, nil
}
