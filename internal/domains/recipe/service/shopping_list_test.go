package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodgram-backend/internal/domains/recipe/model"
)

func TestBuildShoppingList_EmptyCart(t *testing.T) {
	assert.Equal(t, "", BuildShoppingList(nil))
	assert.Equal(t, "", BuildShoppingList([]model.CartIngredientSample{}))
}

func TestBuildShoppingList_SumsSameIngredient(t *testing.T) {
	samples := []model.CartIngredientSample{
		{Name: "Salt", MeasurementUnit: "g", Amount: 10},
		{Name: "Salt", MeasurementUnit: "g", Amount: 5},
	}

	assert.Equal(t, "Salt (g) — 15\n", BuildShoppingList(samples))
}

func TestBuildShoppingList_FirstSeenOrder(t *testing.T) {
	samples := []model.CartIngredientSample{
		{Name: "Flour", MeasurementUnit: "g", Amount: 200},
		{Name: "Milk", MeasurementUnit: "ml", Amount: 300},
		{Name: "Flour", MeasurementUnit: "g", Amount: 100},
		{Name: "Egg", MeasurementUnit: "pcs", Amount: 2},
	}

	expected := "Flour (g) — 300\n" +
		"Milk (ml) — 300\n" +
		"Egg (pcs) — 2\n"

	assert.Equal(t, expected, BuildShoppingList(samples))
}

func TestBuildShoppingList_UnitSeparatesKeys(t *testing.T) {
	samples := []model.CartIngredientSample{
		{Name: "Sugar", MeasurementUnit: "g", Amount: 50},
		{Name: "Sugar", MeasurementUnit: "tbsp", Amount: 2},
	}

	assert.Equal(t, "Sugar (g) — 50\nSugar (tbsp) — 2\n", BuildShoppingList(samples))
}

func TestBuildShoppingList_NameMatchingIsCaseSensitive(t *testing.T) {
	samples := []model.CartIngredientSample{
		{Name: "Salt", MeasurementUnit: "g", Amount: 10},
		{Name: "salt", MeasurementUnit: "g", Amount: 5},
	}

	assert.Equal(t, "Salt (g) — 10\nsalt (g) — 5\n", BuildShoppingList(samples))
}

// fakeSampleRepo returns canned samples depending on the sampling mode.
type fakeSampleRepo struct {
	fakeRelationRepo
	full     []model.CartIngredientSample
	firstRow []model.CartIngredientSample
}

func (f *fakeSampleRepo) CartIngredientSamples(_ context.Context, _ uuid.UUID, firstRowOnly bool) ([]model.CartIngredientSample, error) {
	if firstRowOnly {
		return f.firstRow, nil
	}
	return f.full, nil
}

func TestShoppingListService_SamplingModesDiverge(t *testing.T) {
	// One cart entry whose recipe has two ingredients. Full sampling
	// sees both lines, first-row sampling only the alphabetically
	// first.
	repo := &fakeSampleRepo{
		full: []model.CartIngredientSample{
			{Name: "Butter", MeasurementUnit: "g", Amount: 20},
			{Name: "Flour", MeasurementUnit: "g", Amount: 200},
		},
		firstRow: []model.CartIngredientSample{
			{Name: "Butter", MeasurementUnit: "g", Amount: 20},
		},
	}

	fullList, err := NewShoppingListService(repo, false).Download(context.Background(), uuid.New())
	require.NoError(t, err)
	legacyList, err := NewShoppingListService(repo, true).Download(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.Equal(t, "Butter (g) — 20\nFlour (g) — 200\n", fullList)
	assert.Equal(t, "Butter (g) — 20\n", legacyList)
}
