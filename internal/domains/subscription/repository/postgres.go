package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodgram-backend/internal/domains/subscription/model"
)

// =============================================================================
// POSTGRES SUBSCRIPTION REPOSITORY
// =============================================================================

type postgresSubscriptionRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSubscriptionRepository(db *pgxpool.Pool) SubscriptionRepository {
	return &postgresSubscriptionRepository{db: db}
}

func (r *postgresSubscriptionRepository) Create(ctx context.Context, userID, authorID uuid.UUID) error {
	query := `
		INSERT INTO subscriptions (id, user_id, author_id)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, uuid.New(), userID, authorID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return model.ErrAlreadySubscribed
			case "23503":
				return model.ErrAuthorNotFound
			case "23514":
				return model.ErrSelfSubscribe
			}
		}
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	return nil
}

func (r *postgresSubscriptionRepository) Delete(ctx context.Context, userID, authorID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM subscriptions WHERE user_id = $1 AND author_id = $2`,
		userID, authorID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotSubscribed
	}

	return nil
}

func (r *postgresSubscriptionRepository) ListAuthors(ctx context.Context, userID uuid.UUID, page, limit, recipesLimit int) ([]model.AuthorResponse, int, error) {
	var total int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM subscriptions WHERE user_id = $1`,
		userID,
	).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	query := `
		SELECT u.id, u.email, u.username, u.first_name, u.last_name,
		       (SELECT COUNT(*) FROM recipes r WHERE r.author_id = u.id) AS recipes_count
		FROM subscriptions s
		JOIN users u ON u.id = s.author_id
		WHERE s.user_id = $1
		ORDER BY s.created_at ASC
		LIMIT $2 OFFSET $3
	`

	offset := (page - 1) * limit
	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	defer rows.Close()

	authors := make([]model.AuthorResponse, 0, limit)
	for rows.Next() {
		author := model.AuthorResponse{IsSubscribed: true}
		if err := rows.Scan(
			&author.ID,
			&author.Email,
			&author.Username,
			&author.FirstName,
			&author.LastName,
			&author.RecipesCount,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, author)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate authors: %w", err)
	}

	for i := range authors {
		recipes, err := r.authorRecipes(ctx, authors[i].ID, recipesLimit)
		if err != nil {
			return nil, 0, err
		}
		authors[i].Recipes = recipes
	}

	return authors, total, nil
}

func (r *postgresSubscriptionRepository) authorRecipes(ctx context.Context, authorID uuid.UUID, recipesLimit int) ([]model.RecipeMini, error) {
	query := `
		SELECT id, name, image, cooking_time
		FROM recipes
		WHERE author_id = $1
		ORDER BY created_at ASC
	`
	args := []interface{}{authorID}
	if recipesLimit > 0 {
		query += ` LIMIT $2`
		args = append(args, recipesLimit)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list author recipes: %w", err)
	}
	defer rows.Close()

	recipes := make([]model.RecipeMini, 0)
	for rows.Next() {
		var recipe model.RecipeMini
		if err := rows.Scan(&recipe.ID, &recipe.Name, &recipe.Image, &recipe.CookingTime); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}

	return recipes, nil
}
