package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"foodgram-backend/internal/shared/middleware"
)

type stubShoppingListService struct {
	manifest string
}

func (s *stubShoppingListService) Download(context.Context, uuid.UUID) (string, error) {
	return s.manifest, nil
}

func downloadRequest(t *testing.T, manifest string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewRecipeHandler(nil, nil, &stubShoppingListService{manifest: manifest})

	router := gin.New()
	router.GET("/recipes/download_shopping_cart", func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uuid.New())
		h.DownloadShoppingCart(c)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/recipes/download_shopping_cart", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestDownloadShoppingCart_Attachment(t *testing.T) {
	w := downloadRequest(t, "Salt (g) — 15\n")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="shopping_cart.txt"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "Salt (g) — 15\n", w.Body.String())
}

func TestDownloadShoppingCart_EmptyCartIsEmptyFile(t *testing.T) {
	w := downloadRequest(t, "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "", w.Body.String())
}

func TestList_MalformedAuthorIsRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewRecipeHandler(nil, nil, nil)

	router := gin.New()
	router.GET("/recipes", h.List)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/recipes?author=not-a-uuid", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ID")
}

func TestDownloadShoppingCart_Unauthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewRecipeHandler(nil, nil, &stubShoppingListService{})

	router := gin.New()
	router.GET("/recipes/download_shopping_cart", h.DownloadShoppingCart)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/recipes/download_shopping_cart", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
