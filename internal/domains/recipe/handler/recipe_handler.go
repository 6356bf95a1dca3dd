package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"foodgram-backend/internal/domains/recipe/model"
	"foodgram-backend/internal/domains/recipe/service"
	"foodgram-backend/internal/shared/middleware"
	"foodgram-backend/internal/shared/response"
)

// =====================================================
// RECIPE HANDLER
// =====================================================

type RecipeHandler struct {
	recipeService       service.RecipeService
	relationService     service.RelationService
	shoppingListService service.ShoppingListService
}

func NewRecipeHandler(
	recipeService service.RecipeService,
	relationService service.RelationService,
	shoppingListService service.ShoppingListService,
) *RecipeHandler {
	return &RecipeHandler{
		recipeService:       recipeService,
		relationService:     relationService,
		shoppingListService: shoppingListService,
	}
}

// Create creates a recipe owned by the caller
// POST /api/v1/recipes
func (h *RecipeHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	var req model.WriteRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	view, err := h.recipeService.CreateRecipe(c.Request.Context(), userID, req)
	if err != nil {
		mapRecipeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, view)
}

// Update replaces a recipe's content
// PATCH /api/v1/recipes/:id
func (h *RecipeHandler) Update(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe ID")
		return
	}

	var req model.WriteRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	view, err := h.recipeService.UpdateRecipe(c.Request.Context(), userID, recipeID, req)
	if err != nil {
		mapRecipeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, view)
}

// Delete removes a recipe
// DELETE /api/v1/recipes/:id
func (h *RecipeHandler) Delete(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe ID")
		return
	}

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), userID, recipeID); err != nil {
		mapRecipeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetByID returns the full viewer-relative recipe view
// GET /api/v1/recipes/:id
func (h *RecipeHandler) GetByID(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe ID")
		return
	}

	view, err := h.recipeService.GetRecipe(c.Request.Context(), recipeID, middleware.Viewer(c))
	if err != nil {
		mapRecipeError(c, err)
		return
	}

	response.Success(c, http.StatusOK, view)
}

// List returns a filtered page of recipes
// GET /api/v1/recipes
func (h *RecipeHandler) List(c *gin.Context) {
	var req model.ListRecipesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}
	req.Normalize()

	if req.Author != "" {
		if _, err := uuid.Parse(req.Author); err != nil {
			response.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid author ID")
			return
		}
	}

	views, total, err := h.recipeService.ListRecipes(c.Request.Context(), middleware.Viewer(c), req)
	if err != nil {
		mapRecipeError(c, err)
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, views, &response.Meta{
		Page:  req.Page,
		Limit: req.Limit,
		Total: total,
	})
}

// AddFavorite puts a recipe into the caller's favorites
// POST /api/v1/recipes/:id/favorite
func (h *RecipeHandler) AddFavorite(c *gin.Context) {
	h.addRelation(c, h.relationService.AddFavorite)
}

// RemoveFavorite removes a recipe from the caller's favorites
// DELETE /api/v1/recipes/:id/favorite
func (h *RecipeHandler) RemoveFavorite(c *gin.Context) {
	h.removeRelation(c, h.relationService.RemoveFavorite)
}

// AddToCart puts a recipe into the caller's shopping cart
// POST /api/v1/recipes/:id/shopping_cart
func (h *RecipeHandler) AddToCart(c *gin.Context) {
	h.addRelation(c, h.relationService.AddToCart)
}

// RemoveFromCart removes a recipe from the caller's shopping cart
// DELETE /api/v1/recipes/:id/shopping_cart
func (h *RecipeHandler) RemoveFromCart(c *gin.Context) {
	h.removeRelation(c, h.relationService.RemoveFromCart)
}

// DownloadShoppingCart streams the aggregated shopping list as a text
// attachment. An empty cart downloads as an empty file.
// GET /api/v1/recipes/download_shopping_cart
func (h *RecipeHandler) DownloadShoppingCart(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	manifest, err := h.shoppingListService.Download(c.Request.Context(), userID)
	if err != nil {
		mapRecipeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", service.ShoppingListFilename))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(manifest))
}

func (h *RecipeHandler) addRelation(c *gin.Context, op func(ctx context.Context, userID, recipeID uuid.UUID) (*model.RecipeMiniResponse, error)) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe ID")
		return
	}

	mini, err := op(c.Request.Context(), userID, recipeID)
	if err != nil {
		mapRecipeError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, mini)
}

func (h *RecipeHandler) removeRelation(c *gin.Context, op func(ctx context.Context, userID, recipeID uuid.UUID) error) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "INVALID_ID", "Invalid recipe ID")
		return
	}

	if err := op(c.Request.Context(), userID, recipeID); err != nil {
		mapRecipeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// mapRecipeError maps domain errors to HTTP responses
func mapRecipeError(c *gin.Context, err error) {
	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		response.FailWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", validationErrs)
		return
	}

	var recipeErr *model.RecipeError
	if errors.As(err, &recipeErr) {
		switch recipeErr.Code {
		case model.ErrCodeRecipeNotFound, model.ErrCodeNotInList:
			response.Fail(c, http.StatusNotFound, recipeErr.Code, recipeErr.Message)
		case model.ErrCodeRecipeValidation, model.ErrCodeUnknownIngredient, model.ErrCodeUnknownTag, model.ErrCodeInvalidImage:
			response.Fail(c, http.StatusBadRequest, recipeErr.Code, recipeErr.Message)
		case model.ErrCodeNotAuthor:
			response.Fail(c, http.StatusForbidden, recipeErr.Code, recipeErr.Message)
		case model.ErrCodeAlreadyInList:
			response.Fail(c, http.StatusConflict, recipeErr.Code, recipeErr.Message)
		default:
			response.Fail(c, http.StatusInternalServerError, recipeErr.Code, recipeErr.Message)
		}
		return
	}

	response.Fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}
