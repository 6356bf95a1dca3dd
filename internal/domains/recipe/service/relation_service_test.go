package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodgram-backend/internal/domains/recipe/model"
)

// =============================================================================
// FAKES
// =============================================================================

// fakeRelationRepo keeps list membership in memory with the same
// semantics as the postgres implementation.
type fakeRelationRepo struct {
	favorites map[string]bool
	cart      map[string]bool
}

func newFakeRelationRepo() *fakeRelationRepo {
	return &fakeRelationRepo{
		favorites: map[string]bool{},
		cart:      map[string]bool{},
	}
}

func relKey(userID, recipeID uuid.UUID) string {
	return userID.String() + "/" + recipeID.String()
}

func (f *fakeRelationRepo) AddFavorite(_ context.Context, userID, recipeID uuid.UUID) error {
	return addTo(f.favorites, userID, recipeID)
}

func (f *fakeRelationRepo) RemoveFavorite(_ context.Context, userID, recipeID uuid.UUID) error {
	return removeFrom(f.favorites, userID, recipeID)
}

func (f *fakeRelationRepo) AddCartEntry(_ context.Context, userID, recipeID uuid.UUID) error {
	return addTo(f.cart, userID, recipeID)
}

func (f *fakeRelationRepo) RemoveCartEntry(_ context.Context, userID, recipeID uuid.UUID) error {
	return removeFrom(f.cart, userID, recipeID)
}

func (f *fakeRelationRepo) CartIngredientSamples(_ context.Context, _ uuid.UUID, _ bool) ([]model.CartIngredientSample, error) {
	return nil, nil
}

func addTo(list map[string]bool, userID, recipeID uuid.UUID) error {
	key := relKey(userID, recipeID)
	if list[key] {
		return model.ErrAlreadyInList
	}
	list[key] = true
	return nil
}

func removeFrom(list map[string]bool, userID, recipeID uuid.UUID) error {
	key := relKey(userID, recipeID)
	if !list[key] {
		return model.ErrNotInList
	}
	delete(list, key)
	return nil
}

// fakeRecipeRepo serves mini views for a fixed set of recipes.
type fakeRecipeRepo struct {
	recipes map[uuid.UUID]*model.RecipeMiniResponse
}

func (f *fakeRecipeRepo) Create(context.Context, *model.Recipe, []model.IngredientAmount, []uuid.UUID) error {
	return errors.New("not implemented")
}

func (f *fakeRecipeRepo) Update(context.Context, *model.Recipe, []model.IngredientAmount, []uuid.UUID) error {
	return errors.New("not implemented")
}

func (f *fakeRecipeRepo) Delete(context.Context, uuid.UUID) error {
	return errors.New("not implemented")
}

func (f *fakeRecipeRepo) GetByID(context.Context, uuid.UUID, *uuid.UUID) (*model.RecipeResponse, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRecipeRepo) GetOwner(context.Context, uuid.UUID) (uuid.UUID, string, error) {
	return uuid.Nil, "", errors.New("not implemented")
}

func (f *fakeRecipeRepo) GetMini(_ context.Context, id uuid.UUID) (*model.RecipeMiniResponse, error) {
	mini, ok := f.recipes[id]
	if !ok {
		return nil, model.ErrRecipeNotFound
	}
	return mini, nil
}

func (f *fakeRecipeRepo) List(context.Context, *uuid.UUID, model.ListRecipesRequest) ([]model.RecipeResponse, int, error) {
	return nil, 0, errors.New("not implemented")
}

// =============================================================================
// TESTS
// =============================================================================

func newRelationFixture() (RelationService, uuid.UUID, uuid.UUID) {
	recipeID := uuid.New()
	userID := uuid.New()
	recipeRepo := &fakeRecipeRepo{
		recipes: map[uuid.UUID]*model.RecipeMiniResponse{
			recipeID: {ID: recipeID, Name: "Pancakes", Image: "http://x/p.jpg", CookingTime: 20},
		},
	}
	return NewRelationService(recipeRepo, newFakeRelationRepo()), userID, recipeID
}

func TestRelationService_AddFavoriteReturnsMiniView(t *testing.T) {
	svc, userID, recipeID := newRelationFixture()

	mini, err := svc.AddFavorite(context.Background(), userID, recipeID)
	require.NoError(t, err)
	assert.Equal(t, recipeID, mini.ID)
	assert.Equal(t, "Pancakes", mini.Name)
}

func TestRelationService_DuplicateAddConflicts(t *testing.T) {
	svc, userID, recipeID := newRelationFixture()

	_, err := svc.AddFavorite(context.Background(), userID, recipeID)
	require.NoError(t, err)

	_, err = svc.AddFavorite(context.Background(), userID, recipeID)
	var recipeErr *model.RecipeError
	require.ErrorAs(t, err, &recipeErr)
	assert.Equal(t, model.ErrCodeAlreadyInList, recipeErr.Code)
}

func TestRelationService_RemoveAbsentIsNotFound(t *testing.T) {
	svc, userID, recipeID := newRelationFixture()

	err := svc.RemoveFromCart(context.Background(), userID, recipeID)
	var recipeErr *model.RecipeError
	require.ErrorAs(t, err, &recipeErr)
	assert.Equal(t, model.ErrCodeNotInList, recipeErr.Code)
}

func TestRelationService_ListsAreIndependent(t *testing.T) {
	svc, userID, recipeID := newRelationFixture()

	_, err := svc.AddFavorite(context.Background(), userID, recipeID)
	require.NoError(t, err)

	// Favoriting does not put the recipe in the cart
	err = svc.RemoveFromCart(context.Background(), userID, recipeID)
	var recipeErr *model.RecipeError
	require.ErrorAs(t, err, &recipeErr)
	assert.Equal(t, model.ErrCodeNotInList, recipeErr.Code)

	_, err = svc.AddToCart(context.Background(), userID, recipeID)
	require.NoError(t, err)
	require.NoError(t, svc.RemoveFavorite(context.Background(), userID, recipeID))
	require.NoError(t, svc.RemoveFromCart(context.Background(), userID, recipeID))
}

func TestRelationService_AddUnknownRecipeIsNotFound(t *testing.T) {
	svc, userID, _ := newRelationFixture()

	_, err := svc.AddFavorite(context.Background(), userID, uuid.New())
	var recipeErr *model.RecipeError
	require.ErrorAs(t, err, &recipeErr)
	assert.Equal(t, model.ErrCodeRecipeNotFound, recipeErr.Code)
}

func TestRelationService_RemoveThenAddAgain(t *testing.T) {
	svc, userID, recipeID := newRelationFixture()

	_, err := svc.AddToCart(context.Background(), userID, recipeID)
	require.NoError(t, err)
	require.NoError(t, svc.RemoveFromCart(context.Background(), userID, recipeID))

	_, err = svc.AddToCart(context.Background(), userID, recipeID)
	assert.NoError(t, err)
}
