package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"foodgram-backend/internal/domains/ingredient/model"
	"foodgram-backend/internal/domains/ingredient/service"
	"foodgram-backend/internal/shared/response"
)

// =====================================================
// INGREDIENT HANDLER
// =====================================================

type IngredientHandler struct {
	ingredientService service.IngredientService
}

func NewIngredientHandler(ingredientService service.IngredientService) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService}
}

// Search lists ingredients, optionally filtered by name prefix
// GET /api/v1/ingredients?name=
func (h *IngredientHandler) Search(c *gin.Context) {
	prefix := c.Query("name")

	ingredients, err := h.ingredientService.SearchIngredients(c.Request.Context(), prefix)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, ingredients)
}

// GetByID gets an ingredient by ID
// GET /api/v1/ingredients/:id
func (h *IngredientHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid ingredient ID")
		return
	}

	ing, err := h.ingredientService.GetIngredient(c.Request.Context(), id)
	if err != nil {
		if ingErr, ok := err.(*model.IngredientError); ok && ingErr.Code == model.ErrCodeIngredientNotFound {
			response.Fail(c, http.StatusNotFound, ingErr.Code, ingErr.Message)
			return
		}
		response.Fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, ing)
}
