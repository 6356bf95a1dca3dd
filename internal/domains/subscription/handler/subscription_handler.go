package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"foodgram-backend/internal/domains/subscription/model"
	"foodgram-backend/internal/domains/subscription/service"
	"foodgram-backend/internal/shared/middleware"
	"foodgram-backend/internal/shared/response"
)

// =====================================================
// SUBSCRIPTION HANDLER
// =====================================================

type SubscriptionHandler struct {
	subscriptionService service.SubscriptionService
}

func NewSubscriptionHandler(subscriptionService service.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: subscriptionService}
}

// Subscribe follows an author
// POST /api/v1/users/:id/subscribe
func (h *SubscriptionHandler) Subscribe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	authorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid author ID")
		return
	}

	if err := h.subscriptionService.Subscribe(c.Request.Context(), userID, authorID); err != nil {
		mapSubscriptionError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"subscribed": true})
}

// Unsubscribe unfollows an author
// DELETE /api/v1/users/:id/subscribe
func (h *SubscriptionHandler) Unsubscribe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	authorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid author ID")
		return
	}

	if err := h.subscriptionService.Unsubscribe(c.Request.Context(), userID, authorID); err != nil {
		mapSubscriptionError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// List returns the viewer's followed authors with embedded recipes
// GET /api/v1/users/subscriptions
func (h *SubscriptionHandler) List(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req model.ListSubscriptionsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	req.Normalize()

	authors, total, err := h.subscriptionService.ListSubscriptions(c.Request.Context(), userID, req)
	if err != nil {
		mapSubscriptionError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, authors, &response.Meta{
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
	})
}

// mapSubscriptionError maps domain errors to HTTP responses
func mapSubscriptionError(c *gin.Context, err error) {
	var subErr *model.SubscriptionError
	if errors.As(err, &subErr) {
		switch subErr.Code {
		case model.ErrCodeAuthorNotFound, model.ErrCodeNotSubscribed:
			response.Fail(c, http.StatusNotFound, subErr.Code, subErr.Message)
		case model.ErrCodeAlreadySubscribed:
			response.Fail(c, http.StatusConflict, subErr.Code, subErr.Message)
		case model.ErrCodeSelfSubscribe:
			response.Fail(c, http.StatusBadRequest, subErr.Code, subErr.Message)
		default:
			response.Fail(c, http.StatusInternalServerError, subErr.Code, subErr.Message)
		}
		return
	}

	response.Fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}
