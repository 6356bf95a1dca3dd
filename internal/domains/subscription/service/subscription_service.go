package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"foodgram-backend/internal/domains/subscription/model"
	"foodgram-backend/internal/domains/subscription/repository"
	userrepo "foodgram-backend/internal/domains/user/repository"
	"foodgram-backend/pkg/logger"
)

// =============================================================================
// SUBSCRIPTION SERVICE INTERFACE
// =============================================================================

type SubscriptionService interface {
	Subscribe(ctx context.Context, userID, authorID uuid.UUID) error
	Unsubscribe(ctx context.Context, userID, authorID uuid.UUID) error
	ListSubscriptions(ctx context.Context, userID uuid.UUID, req model.ListSubscriptionsRequest) ([]model.AuthorResponse, int, error)
}

// =============================================================================
// SUBSCRIPTION SERVICE IMPLEMENTATION
// =============================================================================

type subscriptionService struct {
	repo     repository.SubscriptionRepository
	userRepo userrepo.UserRepository
}

func NewSubscriptionService(repo repository.SubscriptionRepository, userRepo userrepo.UserRepository) SubscriptionService {
	return &subscriptionService{
		repo:     repo,
		userRepo: userRepo,
	}
}

func (s *subscriptionService) Subscribe(ctx context.Context, userID, authorID uuid.UUID) error {
	// 1. Reject self-subscription before touching storage
	if userID == authorID {
		return model.NewSelfSubscribeError()
	}

	// 2. Resolve the target so an unknown author reads as not found
	//    rather than a constraint violation
	exists, err := s.userRepo.Exists(ctx, authorID)
	if err != nil {
		return err
	}
	if !exists {
		return model.NewAuthorNotFoundError()
	}

	// 3. Insert, letting the unique constraint settle concurrent
	//    duplicate attempts
	if err := s.repo.Create(ctx, userID, authorID); err != nil {
		switch {
		case errors.Is(err, model.ErrAlreadySubscribed):
			return model.NewAlreadySubscribedError()
		case errors.Is(err, model.ErrAuthorNotFound):
			return model.NewAuthorNotFoundError()
		case errors.Is(err, model.ErrSelfSubscribe):
			return model.NewSelfSubscribeError()
		}
		return err
	}

	logger.Info("subscription created", map[string]interface{}{
		"user_id":   userID.String(),
		"author_id": authorID.String(),
	})

	return nil
}

func (s *subscriptionService) Unsubscribe(ctx context.Context, userID, authorID uuid.UUID) error {
	if err := s.repo.Delete(ctx, userID, authorID); err != nil {
		if errors.Is(err, model.ErrNotSubscribed) {
			return model.NewNotSubscribedError()
		}
		return err
	}

	return nil
}

func (s *subscriptionService) ListSubscriptions(ctx context.Context, userID uuid.UUID, req model.ListSubscriptionsRequest) ([]model.AuthorResponse, int, error) {
	req.Normalize()
	return s.repo.ListAuthors(ctx, userID, req.Page, req.Limit, req.RecipesLimit)
}
