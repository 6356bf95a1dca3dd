package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"foodgram-backend/internal/domains/user/model"
	"foodgram-backend/internal/domains/user/repository"
	"foodgram-backend/pkg/jwt"
	"foodgram-backend/pkg/logger"
)

// =============================================================================
// USER SERVICE INTERFACE
// =============================================================================

type UserService interface {
	Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error)
	GetUser(ctx context.Context, id uuid.UUID, viewer *uuid.UUID) (*model.UserResponse, error)
	ListUsers(ctx context.Context, viewer *uuid.UUID, req model.ListUsersRequest) ([]model.UserResponse, int, error)
}

// =============================================================================
// USER SERVICE IMPLEMENTATION
// =============================================================================

type userService struct {
	repo       repository.UserRepository
	jwtManager *jwt.Manager
}

func NewUserService(repo repository.UserRepository, jwtManager *jwt.Manager) UserService {
	return &userService{
		repo:       repo,
		jwtManager: jwtManager,
	}
}

func (s *userService) Register(ctx context.Context, req model.RegisterRequest) (*model.AuthResponse, error) {
	// 1. Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// 3. Persist, relying on unique constraints for email/username races
	user := &model.User{
		ID:           uuid.New(),
		Email:        req.Email,
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, model.ErrEmailTaken):
			return nil, model.NewEmailTakenError()
		case errors.Is(err, model.ErrUsernameTaken):
			return nil, model.NewUsernameTakenError()
		}
		return nil, err
	}

	logger.Info("user registered", map[string]interface{}{
		"user_id":  user.ID.String(),
		"username": user.Username,
	})

	// 4. Issue token pair
	return s.issueTokens(user)
}

func (s *userService) Login(ctx context.Context, req model.LoginRequest) (*model.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.NewInvalidCredentialsError()
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, model.NewInvalidCredentialsError()
	}

	return s.issueTokens(user)
}

func (s *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.UserResponse, error) {
	view, err := s.repo.GetView(ctx, userID, &userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.NewUserNotFoundError()
		}
		return nil, err
	}
	return view, nil
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID, viewer *uuid.UUID) (*model.UserResponse, error) {
	view, err := s.repo.GetView(ctx, id, viewer)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.NewUserNotFoundError()
		}
		return nil, err
	}
	return view, nil
}

func (s *userService) ListUsers(ctx context.Context, viewer *uuid.UUID, req model.ListUsersRequest) ([]model.UserResponse, int, error) {
	req.Normalize()
	return s.repo.ListViews(ctx, viewer, req.Page, req.Limit)
}

func (s *userService) issueTokens(user *model.User) (*model.AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID.String(), user.Email)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID.String())
	if err != nil {
		return nil, err
	}

	return &model.AuthResponse{
		User: model.UserResponse{
			ID:        user.ID,
			Email:     user.Email,
			Username:  user.Username,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
