package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"foodgram-backend/internal/domains/user/model"
	"foodgram-backend/internal/domains/user/service"
	"foodgram-backend/internal/shared/middleware"
	"foodgram-backend/internal/shared/response"
)

// =====================================================
// USER HANDLER
// =====================================================

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register creates a new account and issues a token pair
// POST /api/v1/auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	auth, err := h.userService.Register(c.Request.Context(), req)
	if err != nil {
		mapUserError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, auth)
}

// Login exchanges credentials for a token pair
// POST /api/v1/auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	auth, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		mapUserError(c, err)
		return
	}

	response.Success(c, http.StatusOK, auth)
}

// Me returns the authenticated user's own profile
// GET /api/v1/users/me
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, model.ErrCodeUnauthorized, "Authentication required")
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		mapUserError(c, err)
		return
	}

	response.Success(c, http.StatusOK, profile)
}

// GetByID returns a user profile relative to the viewer
// GET /api/v1/users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid user ID")
		return
	}

	view, err := h.userService.GetUser(c.Request.Context(), id, middleware.Viewer(c))
	if err != nil {
		mapUserError(c, err)
		return
	}

	response.Success(c, http.StatusOK, view)
}

// List returns a page of users relative to the viewer
// GET /api/v1/users
func (h *UserHandler) List(c *gin.Context) {
	var req model.ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	req.Normalize()

	views, total, err := h.userService.ListUsers(c.Request.Context(), middleware.Viewer(c), req)
	if err != nil {
		mapUserError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, views, &response.Meta{
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
	})
}

// mapUserError maps domain errors to HTTP responses
func mapUserError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		response.FailWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrs)
		return
	}

	var userErr *model.UserError
	if errors.As(err, &userErr) {
		switch userErr.Code {
		case model.ErrCodeUserNotFound:
			response.Fail(c, http.StatusNotFound, userErr.Code, userErr.Message)
		case model.ErrCodeEmailTaken, model.ErrCodeUsernameTaken:
			response.Fail(c, http.StatusConflict, userErr.Code, userErr.Message)
		case model.ErrCodeInvalidCredentials:
			response.Fail(c, http.StatusUnauthorized, userErr.Code, userErr.Message)
		default:
			response.Fail(c, http.StatusInternalServerError, userErr.Code, userErr.Message)
		}
		return
	}

	response.Fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}
