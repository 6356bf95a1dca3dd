package model

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

var usernameRegexp = regexp.MustCompile(`^[\w.@+-]+$`)

// =====================================================
// REQUEST DTOs
// =====================================================

// RegisterRequest request to create an account
type RegisterRequest struct {
	Email     string `json:"email" binding:"required"`
	Username  string `json:"username" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// Validate validates RegisterRequest
func (req RegisterRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Email, validation.Required, is.Email, validation.Length(3, 254)),
		validation.Field(&req.Username, validation.Required, validation.Length(1, 150),
			validation.Match(usernameRegexp)),
		validation.Field(&req.FirstName, validation.Required, validation.Length(1, 150)),
		validation.Field(&req.LastName, validation.Required, validation.Length(1, 150)),
		validation.Field(&req.Password, validation.Required, validation.Length(8, 150)),
	)
}

// LoginRequest request to exchange credentials for tokens
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (req LoginRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
}

// ListUsersRequest request to list users
type ListUsersRequest struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

func (r *ListUsersRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 20
	}
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// UserResponse is the viewer-relative read view of a user.
// IsSubscribed is false for anonymous viewers.
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	IsSubscribed bool      `json:"is_subscribed"`
}

// AuthResponse carries the token pair issued on register/login
type AuthResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}
