package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validWriteRequest() WriteRecipeRequest {
	image := "data:image/jpeg;base64,/9j/4AAQ"
	return WriteRecipeRequest{
		Name:        "Borscht",
		Text:        "Cook it slowly.",
		Image:       &image,
		CookingTime: 90,
		Tags:        []uuid.UUID{uuid.New()},
		Ingredients: []IngredientAmountRequest{
			{ID: uuid.New(), Amount: 300},
		},
	}
}

func TestWriteRecipeRequest_ValidCreate(t *testing.T) {
	req := validWriteRequest()
	assert.NoError(t, req.ValidateCreate())
}

func TestWriteRecipeRequest_CreateRequiresImage(t *testing.T) {
	req := validWriteRequest()
	req.Image = nil
	assertValidationError(t, req.ValidateCreate())

	empty := ""
	req.Image = &empty
	assertValidationError(t, req.ValidateCreate())
}

func TestWriteRecipeRequest_UpdateAllowsMissingImage(t *testing.T) {
	req := validWriteRequest()
	req.Image = nil
	assert.NoError(t, req.ValidateUpdate())
}

func TestWriteRecipeRequest_UpdateRejectsEmptyImage(t *testing.T) {
	req := validWriteRequest()
	empty := ""
	req.Image = &empty
	assertValidationError(t, req.ValidateUpdate())
}

func TestWriteRecipeRequest_RequiresIngredients(t *testing.T) {
	req := validWriteRequest()
	req.Ingredients = nil
	assertValidationError(t, req.ValidateCreate())
}

func TestWriteRecipeRequest_RejectsDuplicateIngredients(t *testing.T) {
	req := validWriteRequest()
	id := uuid.New()
	req.Ingredients = []IngredientAmountRequest{
		{ID: id, Amount: 100},
		{ID: id, Amount: 200},
	}
	assertValidationError(t, req.ValidateCreate())
}

func TestWriteRecipeRequest_RejectsNonPositiveAmount(t *testing.T) {
	for _, amount := range []int{0, -5} {
		req := validWriteRequest()
		req.Ingredients = []IngredientAmountRequest{{ID: uuid.New(), Amount: amount}}
		assertValidationError(t, req.ValidateCreate())
	}
}

func TestWriteRecipeRequest_RequiresTags(t *testing.T) {
	req := validWriteRequest()
	req.Tags = []uuid.UUID{}
	assertValidationError(t, req.ValidateCreate())
}

func TestWriteRecipeRequest_RejectsDuplicateTags(t *testing.T) {
	req := validWriteRequest()
	id := uuid.New()
	req.Tags = []uuid.UUID{id, id}
	assertValidationError(t, req.ValidateCreate())
}

func TestWriteRecipeRequest_RejectsNonPositiveCookingTime(t *testing.T) {
	req := validWriteRequest()
	req.CookingTime = 0
	require.Error(t, req.ValidateCreate())

	req.CookingTime = -10
	require.Error(t, req.ValidateCreate())
}

func TestListRecipesRequest_Normalize(t *testing.T) {
	req := ListRecipesRequest{Page: 0, Limit: 500}
	req.Normalize()
	assert.Equal(t, 1, req.Page)
	assert.Equal(t, 20, req.Limit)
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	var recipeErr *RecipeError
	require.ErrorAs(t, err, &recipeErr)
	assert.Equal(t, ErrCodeRecipeValidation, recipeErr.Code)
}
