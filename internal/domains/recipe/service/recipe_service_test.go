package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodgram-backend/internal/domains/recipe/model"
)

// ownedRecipeRepo serves GetOwner for a single recipe and records
// mutations.
type ownedRecipeRepo struct {
	fakeRecipeRepo
	recipeID uuid.UUID
	authorID uuid.UUID
	image    string
	updated  bool
	deleted  bool
}

func (f *ownedRecipeRepo) GetOwner(_ context.Context, id uuid.UUID) (uuid.UUID, string, error) {
	if id != f.recipeID {
		return uuid.Nil, "", model.ErrRecipeNotFound
	}
	return f.authorID, f.image, nil
}

func (f *ownedRecipeRepo) Update(_ context.Context, recipe *model.Recipe, _ []model.IngredientAmount, _ []uuid.UUID) error {
	f.updated = true
	f.image = recipe.Image
	return nil
}

func (f *ownedRecipeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if id != f.recipeID {
		return model.ErrRecipeNotFound
	}
	f.deleted = true
	return nil
}

func (f *ownedRecipeRepo) GetByID(_ context.Context, id uuid.UUID, _ *uuid.UUID) (*model.RecipeResponse, error) {
	if id != f.recipeID {
		return nil, model.ErrRecipeNotFound
	}
	return &model.RecipeResponse{ID: id}, nil
}

// stubImageService fails the test if the request path touches storage.
type stubImageService struct {
	t *testing.T
}

func (s *stubImageService) Store(context.Context, uuid.UUID, string) (string, error) {
	s.t.Fatal("image storage should not be reached")
	return "", nil
}

func (s *stubImageService) ProcessVariants(context.Context, uuid.UUID) error { return nil }
func (s *stubImageService) DeleteImages(context.Context, uuid.UUID) error    { return nil }

func validUpdateRequest() model.WriteRecipeRequest {
	return model.WriteRecipeRequest{
		Name:        "Updated soup",
		Text:        "Now with more carrots.",
		CookingTime: 45,
		Tags:        []uuid.UUID{uuid.New()},
		Ingredients: []model.IngredientAmountRequest{{ID: uuid.New(), Amount: 3}},
	}
}

func TestRecipeService_UpdateByNonAuthorForbidden(t *testing.T) {
	repo := &ownedRecipeRepo{recipeID: uuid.New(), authorID: uuid.New(), image: "http://x/a.jpg"}
	svc := NewRecipeService(repo, &stubImageService{t: t}, nil)

	_, err := svc.UpdateRecipe(context.Background(), uuid.New(), repo.recipeID, validUpdateRequest())
	var recipeErr *model.RecipeError
	require.ErrorAs(t, err, &recipeErr)
	assert.Equal(t, model.ErrCodeNotAuthor, recipeErr.Code)
	assert.False(t, repo.updated)
}

func TestRecipeService_UpdateKeepsImageWhenOmitted(t *testing.T) {
	repo := &ownedRecipeRepo{recipeID: uuid.New(), authorID: uuid.New(), image: "http://x/a.jpg"}
	svc := NewRecipeService(repo, &stubImageService{t: t}, nil)

	_, err := svc.UpdateRecipe(context.Background(), repo.authorID, repo.recipeID, validUpdateRequest())
	require.NoError(t, err)
	assert.True(t, repo.updated)
	assert.Equal(t, "http://x/a.jpg", repo.image)
}

func TestRecipeService_UpdateRejectsEmptyImageBeforeOwnershipCheck(t *testing.T) {
	repo := &ownedRecipeRepo{recipeID: uuid.New(), authorID: uuid.New()}
	svc := NewRecipeService(repo, &stubImageService{t: t}, nil)

	req := validUpdateRequest()
	empty := ""
	req.Image = &empty

	_, err := svc.UpdateRecipe(context.Background(), repo.authorID, repo.recipeID, req)
	var recipeErr *model.RecipeError
	require.ErrorAs(t, err, &recipeErr)
	assert.Equal(t, model.ErrCodeRecipeValidation, recipeErr.Code)
}

func TestRecipeService_DeleteByNonAuthorForbidden(t *testing.T) {
	repo := &ownedRecipeRepo{recipeID: uuid.New(), authorID: uuid.New()}
	svc := NewRecipeService(repo, &stubImageService{t: t}, nil)

	err := svc.DeleteRecipe(context.Background(), uuid.New(), repo.recipeID)
	var recipeErr *model.RecipeError
	require.ErrorAs(t, err, &recipeErr)
	assert.Equal(t, model.ErrCodeNotAuthor, recipeErr.Code)
	assert.False(t, repo.deleted)
}

func TestRecipeService_DeleteByAuthor(t *testing.T) {
	repo := &ownedRecipeRepo{recipeID: uuid.New(), authorID: uuid.New()}
	svc := NewRecipeService(repo, &stubImageService{t: t}, nil)

	require.NoError(t, svc.DeleteRecipe(context.Background(), repo.authorID, repo.recipeID))
	assert.True(t, repo.deleted)
}

func TestRecipeService_DeleteUnknownRecipeNotFound(t *testing.T) {
	repo := &ownedRecipeRepo{recipeID: uuid.New(), authorID: uuid.New()}
	svc := NewRecipeService(repo, &stubImageService{t: t}, nil)

	err := svc.DeleteRecipe(context.Background(), repo.authorID, uuid.New())
	var recipeErr *model.RecipeError
	require.ErrorAs(t, err, &recipeErr)
	assert.Equal(t, model.ErrCodeRecipeNotFound, recipeErr.Code)
}
