package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodgram-backend/internal/domains/ingredient/model"
	"foodgram-backend/pkg/cache"
)

const (
	ingredientListCacheKey = "ingredients:all"
	ingredientCacheTTL     = 10 * time.Minute
)

type postgresIngredientRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresIngredientRepository(pool *pgxpool.Pool, cache cache.Cache) IngredientRepository {
	return &postgresIngredientRepository{pool: pool, cache: cache}
}

// Search matches on a case-insensitive name prefix, ordered by name.
// The unfiltered listing is cached; prefix queries go to the database.
func (r *postgresIngredientRepository) Search(ctx context.Context, prefix string) ([]model.Ingredient, error) {
	if prefix == "" && r.cache != nil {
		var cached []model.Ingredient
		if found, err := r.cache.Get(ctx, ingredientListCacheKey, &cached); err == nil && found {
			return cached, nil
		}
	}

	query := `
		SELECT id, name, measurement_unit
		FROM ingredients
		WHERE name ILIKE $1 || '%'
		ORDER BY name
	`

	// Escape LIKE wildcards so a literal "%" in the prefix stays literal.
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(prefix)

	rows, err := r.pool.Query(ctx, query, escaped)
	if err != nil {
		return nil, fmt.Errorf("failed to search ingredients: %w", err)
	}
	defer rows.Close()

	var ingredients []model.Ingredient
	for rows.Next() {
		var ing model.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name, &ing.MeasurementUnit); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ingredients = append(ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ingredients: %w", err)
	}

	if prefix == "" && r.cache != nil {
		_ = r.cache.Set(ctx, ingredientListCacheKey, ingredients, ingredientCacheTTL)
	}

	return ingredients, nil
}

func (r *postgresIngredientRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Ingredient, error) {
	query := `
		SELECT id, name, measurement_unit
		FROM ingredients
		WHERE id = $1
	`

	ing := &model.Ingredient{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&ing.ID, &ing.Name, &ing.MeasurementUnit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrIngredientNotFound
		}
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}

	return ing, nil
}

// BulkCreate batches the reference data inserts through pgx's Batch API.
func (r *postgresIngredientRepository) BulkCreate(ctx context.Context, ingredients []model.Ingredient) (int, error) {
	query := `
		INSERT INTO ingredients (id, name, measurement_unit)
		VALUES ($1, $2, $3)
		ON CONFLICT (name, measurement_unit) DO NOTHING
	`

	batch := &pgx.Batch{}
	for _, ing := range ingredients {
		if ing.ID == uuid.Nil {
			ing.ID = uuid.New()
		}
		batch.Queue(query, ing.ID, ing.Name, ing.MeasurementUnit)
	}

	results := r.pool.SendBatch(ctx, batch)
	defer results.Close()

	created := 0
	for range ingredients {
		tag, err := results.Exec()
		if err != nil {
			return created, fmt.Errorf("failed to insert ingredient: %w", err)
		}
		created += int(tag.RowsAffected())
	}

	if r.cache != nil {
		_ = r.cache.Delete(ctx, ingredientListCacheKey)
	}

	return created, nil
}
