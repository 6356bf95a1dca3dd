package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodgram-backend/internal/domains/tag/model"
	"foodgram-backend/pkg/cache"
)

const (
	tagListCacheKey = "tags:list"
	tagCacheTTL     = 10 * time.Minute
)

type postgresTagRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresTagRepository(pool *pgxpool.Pool, cache cache.Cache) TagRepository {
	return &postgresTagRepository{pool: pool, cache: cache}
}

// List returns all tags ordered by name. Reference data, so cached.
func (r *postgresTagRepository) List(ctx context.Context) ([]model.Tag, error) {
	if r.cache != nil {
		var cached []model.Tag
		if found, err := r.cache.Get(ctx, tagListCacheKey, &cached); err == nil && found {
			return cached, nil
		}
	}

	query := `
		SELECT id, name, color, slug
		FROM tags
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	var tags []model.Tag
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.ID, &t.Name, &t.Color, &t.Slug); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read tags: %w", err)
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, tagListCacheKey, tags, tagCacheTTL)
	}

	return tags, nil
}

func (r *postgresTagRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Tag, error) {
	query := `
		SELECT id, name, color, slug
		FROM tags
		WHERE id = $1
	`

	t := &model.Tag{}
	err := r.pool.QueryRow(ctx, query, id).Scan(&t.ID, &t.Name, &t.Color, &t.Slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	return t, nil
}

func (r *postgresTagRepository) BulkCreate(ctx context.Context, tags []model.Tag) (int, error) {
	query := `
		INSERT INTO tags (id, name, color, slug)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (slug) DO NOTHING
	`

	created := 0
	for _, t := range tags {
		if t.ID == uuid.Nil {
			t.ID = uuid.New()
		}
		result, err := r.pool.Exec(ctx, query, t.ID, t.Name, t.Color, t.Slug)
		if err != nil {
			return created, fmt.Errorf("failed to insert tag %s: %w", t.Slug, err)
		}
		created += int(result.RowsAffected())
	}

	if r.cache != nil {
		_ = r.cache.Delete(ctx, tagListCacheKey)
	}

	return created, nil
}
