package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ingredientModel "foodgram-backend/internal/domains/ingredient/model"
	tagModel "foodgram-backend/internal/domains/tag/model"
)

type fakeIngredientRepo struct {
	created []ingredientModel.Ingredient
}

func (f *fakeIngredientRepo) Search(context.Context, string) ([]ingredientModel.Ingredient, error) {
	return nil, nil
}

func (f *fakeIngredientRepo) GetByID(context.Context, uuid.UUID) (*ingredientModel.Ingredient, error) {
	return nil, ingredientModel.ErrIngredientNotFound
}

func (f *fakeIngredientRepo) BulkCreate(_ context.Context, ingredients []ingredientModel.Ingredient) (int, error) {
	f.created = append(f.created, ingredients...)
	return len(ingredients), nil
}

type fakeTagRepo struct {
	created []tagModel.Tag
}

func (f *fakeTagRepo) List(context.Context) ([]tagModel.Tag, error) { return nil, nil }

func (f *fakeTagRepo) GetByID(context.Context, uuid.UUID) (*tagModel.Tag, error) {
	return nil, tagModel.ErrTagNotFound
}

func (f *fakeTagRepo) BulkCreate(_ context.Context, tags []tagModel.Tag) (int, error) {
	f.created = append(f.created, tags...)
	return len(tags), nil
}

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportIngredients_CSV(t *testing.T) {
	path := writeTempCSV(t, "ingredients.csv",
		"name,measurement_unit\n"+
			"salt,g\n"+
			"milk,ml\n")

	repo := &fakeIngredientRepo{}
	svc := NewImportService(repo, &fakeTagRepo{})

	result, err := svc.ImportIngredients(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Rows)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 0, result.Skipped)
	require.Len(t, repo.created, 2)
	assert.Equal(t, "salt", repo.created[0].Name)
	assert.Equal(t, "g", repo.created[0].MeasurementUnit)
}

func TestImportIngredients_SkipsRaggedAndEmptyRows(t *testing.T) {
	path := writeTempCSV(t, "ingredients.csv",
		"name,measurement_unit\n"+
			"flour,g\n"+
			"incomplete\n"+
			",ml\n")

	repo := &fakeIngredientRepo{}
	svc := NewImportService(repo, &fakeTagRepo{})

	result, err := svc.ImportIngredients(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Rows)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 2, result.Skipped)
}

func TestImportTags_CSV(t *testing.T) {
	path := writeTempCSV(t, "tags.csv",
		"name,color,slug\n"+
			"Breakfast,#E26C2D,breakfast\n")

	tagRepo := &fakeTagRepo{}
	svc := NewImportService(&fakeIngredientRepo{}, tagRepo)

	result, err := svc.ImportTags(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Created)
	require.Len(t, tagRepo.created, 1)
	assert.Equal(t, "breakfast", tagRepo.created[0].Slug)
}

func TestImport_RejectsUnknownExtension(t *testing.T) {
	svc := NewImportService(&fakeIngredientRepo{}, &fakeTagRepo{})

	_, err := svc.ImportIngredients(context.Background(), "data/ingredients.json")
	var impErr *ingredientModel.IngredientError
	require.ErrorAs(t, err, &impErr)
	assert.Equal(t, ingredientModel.ErrCodeImportFailed, impErr.Code)
}
