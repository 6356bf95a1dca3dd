package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"foodgram-backend/internal/domains/recipe/model"
	"foodgram-backend/internal/domains/recipe/repository"
)

// ShoppingListFilename is the attachment name of the downloaded list.
const ShoppingListFilename = "shopping_cart.txt"

// ingredientKey groups samples for aggregation. Name matching is
// case-sensitive, "Salt" and "salt" stay separate lines.
type ingredientKey struct {
	name            string
	measurementUnit string
}

// BuildShoppingList aggregates cart ingredient samples into the plain
// text manifest. Samples sharing a (name, measurement_unit) key are
// summed into one line; lines appear in first-seen order.
func BuildShoppingList(samples []model.CartIngredientSample) string {
	order := make([]ingredientKey, 0, len(samples))
	totals := make(map[ingredientKey]int64, len(samples))

	for _, sample := range samples {
		key := ingredientKey{name: sample.Name, measurementUnit: sample.MeasurementUnit}
		if _, seen := totals[key]; !seen {
			order = append(order, key)
		}
		totals[key] += sample.Amount
	}

	var sb strings.Builder
	for _, key := range order {
		fmt.Fprintf(&sb, "%s (%s) — %d\n", key.name, key.measurementUnit, totals[key])
	}
	return sb.String()
}

// =============================================================================
// SHOPPING LIST SERVICE
// =============================================================================

type ShoppingListService interface {
	// Download renders the viewer's aggregated shopping list. An empty
	// cart yields an empty document, not an error.
	Download(ctx context.Context, userID uuid.UUID) (string, error)
}

type shoppingListService struct {
	relationRepo repository.RelationRepository
	firstRowOnly bool
}

// NewShoppingListService builds the service. firstRowOnly selects the
// historical sampling mode where each cart entry contributes only one
// ingredient row.
func NewShoppingListService(relationRepo repository.RelationRepository, firstRowOnly bool) ShoppingListService {
	return &shoppingListService{
		relationRepo: relationRepo,
		firstRowOnly: firstRowOnly,
	}
}

func (s *shoppingListService) Download(ctx context.Context, userID uuid.UUID) (string, error) {
	samples, err := s.relationRepo.CartIngredientSamples(ctx, userID, s.firstRowOnly)
	if err != nil {
		return "", err
	}
	return BuildShoppingList(samples), nil
}
