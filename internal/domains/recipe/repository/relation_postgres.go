package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodgram-backend/internal/domains/recipe/model"
)

// =============================================================================
// POSTGRES RELATION REPOSITORY
// =============================================================================

type postgresRelationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRelationRepository(db *pgxpool.Pool) RelationRepository {
	return &postgresRelationRepository{db: db}
}

func (r *postgresRelationRepository) AddFavorite(ctx context.Context, userID, recipeID uuid.UUID) error {
	return r.addEntry(ctx, "favorites", userID, recipeID)
}

func (r *postgresRelationRepository) RemoveFavorite(ctx context.Context, userID, recipeID uuid.UUID) error {
	return r.removeEntry(ctx, "favorites", userID, recipeID)
}

func (r *postgresRelationRepository) AddCartEntry(ctx context.Context, userID, recipeID uuid.UUID) error {
	return r.addEntry(ctx, "shopping_cart_entries", userID, recipeID)
}

func (r *postgresRelationRepository) RemoveCartEntry(ctx context.Context, userID, recipeID uuid.UUID) error {
	return r.removeEntry(ctx, "shopping_cart_entries", userID, recipeID)
}

// addEntry inserts into a (user_id, recipe_id) list table. The unique
// constraint settles concurrent duplicate attempts, only one insert
// wins and the rest surface as already-in-list.
func (r *postgresRelationRepository) addEntry(ctx context.Context, table string, userID, recipeID uuid.UUID) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (id, user_id, recipe_id) VALUES ($1, $2, $3)`, table)

	_, err := r.db.Exec(ctx, query, uuid.New(), userID, recipeID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return model.ErrAlreadyInList
			case "23503":
				return model.ErrRecipeNotFound
			}
		}
		return fmt.Errorf("failed to add entry to %s: %w", table, err)
	}

	return nil
}

func (r *postgresRelationRepository) removeEntry(ctx context.Context, table string, userID, recipeID uuid.UUID) error {
	query := fmt.Sprintf(
		`DELETE FROM %s WHERE user_id = $1 AND recipe_id = $2`, table)

	tag, err := r.db.Exec(ctx, query, userID, recipeID)
	if err != nil {
		return fmt.Errorf("failed to remove entry from %s: %w", table, err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotInList
	}

	return nil
}

func (r *postgresRelationRepository) CartIngredientSamples(ctx context.Context, userID uuid.UUID, firstRowOnly bool) ([]model.CartIngredientSample, error) {
	query := fullSampleQuery
	if firstRowOnly {
		query = firstRowSampleQuery
	}

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to sample cart ingredients: %w", err)
	}
	defer rows.Close()

	samples := []model.CartIngredientSample{}
	for rows.Next() {
		var sample model.CartIngredientSample
		if err := rows.Scan(&sample.Name, &sample.MeasurementUnit, &sample.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan cart ingredient: %w", err)
		}
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cart ingredients: %w", err)
	}

	return samples, nil
}

// fullSampleQuery yields every ingredient line of every cart entry, in
// cart insertion order with lines ordered by ingredient name inside
// each entry.
const fullSampleQuery = `
	SELECT i.name, i.measurement_unit, ri.amount
	FROM shopping_cart_entries sce
	JOIN recipe_ingredients ri ON ri.recipe_id = sce.recipe_id
	JOIN ingredients i ON i.id = ri.ingredient_id
	WHERE sce.user_id = $1
	ORDER BY sce.created_at ASC, i.name ASC
`

// firstRowSampleQuery reproduces the historical behavior where each
// cart entry contributes only the alphabetically first ingredient of
// its recipe.
const firstRowSampleQuery = `
	SELECT first_line.name, first_line.measurement_unit, first_line.amount
	FROM shopping_cart_entries sce
	CROSS JOIN LATERAL (
		SELECT i.name, i.measurement_unit, ri.amount
		FROM recipe_ingredients ri
		JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE ri.recipe_id = sce.recipe_id
		ORDER BY i.name ASC
		LIMIT 1
	) AS first_line
	WHERE sce.user_id = $1
	ORDER BY sce.created_at ASC
`
