package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodgram-backend/internal/domains/recipe/model"
	tagmodel "foodgram-backend/internal/domains/tag/model"
	"foodgram-backend/pkg/database"
)

// =============================================================================
// POSTGRES RECIPE REPOSITORY
// =============================================================================

type postgresRecipeRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRecipeRepository(db *pgxpool.Pool) RecipeRepository {
	return &postgresRecipeRepository{db: db}
}

func (r *postgresRecipeRepository) Create(ctx context.Context, recipe *model.Recipe, ingredients []model.IngredientAmount, tagIDs []uuid.UUID) error {
	return database.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO recipes (id, author_id, name, image, text, cooking_time)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING created_at, updated_at
		`
		err := tx.QueryRow(ctx, query,
			recipe.ID,
			recipe.AuthorID,
			recipe.Name,
			recipe.Image,
			recipe.Text,
			recipe.CookingTime,
		).Scan(&recipe.CreatedAt, &recipe.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create recipe: %w", err)
		}

		if err := insertComposition(ctx, tx, recipe.ID, ingredients, tagIDs); err != nil {
			return err
		}

		return nil
	})
}

func (r *postgresRecipeRepository) Update(ctx context.Context, recipe *model.Recipe, ingredients []model.IngredientAmount, tagIDs []uuid.UUID) error {
	return database.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			UPDATE recipes
			SET name = $2, image = $3, text = $4, cooking_time = $5, updated_at = NOW()
			WHERE id = $1
			RETURNING updated_at
		`
		err := tx.QueryRow(ctx, query,
			recipe.ID,
			recipe.Name,
			recipe.Image,
			recipe.Text,
			recipe.CookingTime,
		).Scan(&recipe.UpdatedAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return model.ErrRecipeNotFound
			}
			return fmt.Errorf("failed to update recipe: %w", err)
		}

		// Replace the composition wholesale
		if _, err := tx.Exec(ctx, `DELETE FROM recipe_ingredients WHERE recipe_id = $1`, recipe.ID); err != nil {
			return fmt.Errorf("failed to clear recipe ingredients: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM recipe_tags WHERE recipe_id = $1`, recipe.ID); err != nil {
			return fmt.Errorf("failed to clear recipe tags: %w", err)
		}

		return insertComposition(ctx, tx, recipe.ID, ingredients, tagIDs)
	})
}

// insertComposition writes the ingredient lines and tag links of a
// recipe. Foreign key violations surface as unknown reference errors.
func insertComposition(ctx context.Context, tx pgx.Tx, recipeID uuid.UUID, ingredients []model.IngredientAmount, tagIDs []uuid.UUID) error {
	for _, ing := range ingredients {
		_, err := tx.Exec(ctx,
			`INSERT INTO recipe_ingredients (recipe_id, ingredient_id, amount) VALUES ($1, $2, $3)`,
			recipeID, ing.IngredientID, ing.Amount,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return model.ErrUnknownIngredient
			}
			return fmt.Errorf("failed to insert recipe ingredient: %w", err)
		}
	}

	for _, tagID := range tagIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO recipe_tags (recipe_id, tag_id) VALUES ($1, $2)`,
			recipeID, tagID,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return model.ErrUnknownTag
			}
			return fmt.Errorf("failed to insert recipe tag: %w", err)
		}
	}

	return nil
}

func (r *postgresRecipeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRecipeNotFound
	}
	return nil
}

func (r *postgresRecipeRepository) GetOwner(ctx context.Context, id uuid.UUID) (uuid.UUID, string, error) {
	var authorID uuid.UUID
	var image string
	err := r.db.QueryRow(ctx, `SELECT author_id, image FROM recipes WHERE id = $1`, id).Scan(&authorID, &image)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, "", model.ErrRecipeNotFound
		}
		return uuid.Nil, "", fmt.Errorf("failed to get recipe owner: %w", err)
	}
	return authorID, image, nil
}

func (r *postgresRecipeRepository) GetMini(ctx context.Context, id uuid.UUID) (*model.RecipeMiniResponse, error) {
	mini := &model.RecipeMiniResponse{}
	err := r.db.QueryRow(ctx,
		`SELECT id, name, image, cooking_time FROM recipes WHERE id = $1`, id,
	).Scan(&mini.ID, &mini.Name, &mini.Image, &mini.CookingTime)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	return mini, nil
}

func (r *postgresRecipeRepository) GetByID(ctx context.Context, id uuid.UUID, viewer *uuid.UUID) (*model.RecipeResponse, error) {
	query := baseViewQuery + ` WHERE r.id = $2`

	rows, err := r.db.Query(ctx, query, viewerParam(viewer), id)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}
	defer rows.Close()

	views, err := scanViews(rows)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, model.ErrRecipeNotFound
	}

	if err := r.attachComposition(ctx, views); err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (r *postgresRecipeRepository) List(ctx context.Context, viewer *uuid.UUID, req model.ListRecipesRequest) ([]model.RecipeResponse, int, error) {
	// The count query binds only what its WHERE clause references, so
	// it gets its own arg list instead of inheriting the view query's
	// viewer binding.
	countWhere, countArgs := buildRecipeFilter(viewer, req, nil)

	var total int
	countQuery := `SELECT COUNT(*) FROM recipes r` + countWhere
	if err := r.db.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count recipes: %w", err)
	}

	where, args := buildRecipeFilter(viewer, req, []interface{}{viewerParam(viewer)})
	query := baseViewQuery + where +
		fmt.Sprintf(` ORDER BY r.created_at ASC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, req.Limit, (req.Page-1)*req.Limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	views, err := scanViews(rows)
	if err != nil {
		return nil, 0, err
	}

	if err := r.attachComposition(ctx, views); err != nil {
		return nil, 0, err
	}
	return views, total, nil
}

// baseViewQuery resolves the scalar recipe view with its author block
// and viewer-relative flags. $1 is always the viewer id (uuid.Nil for
// anonymous, which never matches any relation row).
const baseViewQuery = `
	SELECT r.id, r.name, r.image, r.text, r.cooking_time, r.created_at,
	       u.id, u.email, u.username, u.first_name, u.last_name,
	       EXISTS(SELECT 1 FROM subscriptions s WHERE s.user_id = $1 AND s.author_id = u.id) AS is_subscribed,
	       EXISTS(SELECT 1 FROM favorites f WHERE f.user_id = $1 AND f.recipe_id = r.id) AS is_favorited,
	       EXISTS(SELECT 1 FROM shopping_cart_entries sc WHERE sc.user_id = $1 AND sc.recipe_id = r.id) AS is_in_shopping_cart
	FROM recipes r
	JOIN users u ON u.id = r.author_id
`

// buildRecipeFilter assembles the WHERE clause for the recipe list
// queries. args may arrive pre-seeded (the view query binds the viewer
// id as $1); conditions referencing the viewer reuse that binding when
// present and bind their own argument otherwise, so every returned
// clause declares exactly the placeholders its arguments fill.
func buildRecipeFilter(viewer *uuid.UUID, req model.ListRecipesRequest, args []interface{}) (string, []interface{}) {
	viewerRef := ""
	if len(args) > 0 {
		viewerRef = "$1"
	}
	bindViewer := func() string {
		if viewerRef == "" {
			args = append(args, viewerParam(viewer))
			viewerRef = fmt.Sprintf("$%d", len(args))
		}
		return viewerRef
	}

	conditions := []string{}

	if req.Author != "" {
		if authorID, err := uuid.Parse(req.Author); err == nil {
			args = append(args, authorID)
			conditions = append(conditions, fmt.Sprintf("r.author_id = $%d", len(args)))
		} else {
			// A malformed author id matches nothing
			conditions = append(conditions, "FALSE")
		}
	}

	if len(req.Tags) > 0 {
		args = append(args, req.Tags)
		conditions = append(conditions, fmt.Sprintf(
			`EXISTS(SELECT 1 FROM recipe_tags rt JOIN tags t ON t.id = rt.tag_id WHERE rt.recipe_id = r.id AND t.slug = ANY($%d))`,
			len(args)))
	}

	// The viewer-relative filters are meaningless for anonymous
	// requests, an anonymous cart or favorites list is empty.
	if viewer != nil {
		if req.IsFavorited {
			conditions = append(conditions, fmt.Sprintf(
				`EXISTS(SELECT 1 FROM favorites f WHERE f.user_id = %s AND f.recipe_id = r.id)`,
				bindViewer()))
		}
		if req.IsInShoppingCart {
			conditions = append(conditions, fmt.Sprintf(
				`EXISTS(SELECT 1 FROM shopping_cart_entries sc WHERE sc.user_id = %s AND sc.recipe_id = r.id)`,
				bindViewer()))
		}
	}

	if len(conditions) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func scanViews(rows pgx.Rows) ([]model.RecipeResponse, error) {
	views := []model.RecipeResponse{}
	for rows.Next() {
		var view model.RecipeResponse
		if err := rows.Scan(
			&view.ID,
			&view.Name,
			&view.Image,
			&view.Text,
			&view.CookingTime,
			&view.CreatedAt,
			&view.Author.ID,
			&view.Author.Email,
			&view.Author.Username,
			&view.Author.FirstName,
			&view.Author.LastName,
			&view.Author.IsSubscribed,
			&view.IsFavorited,
			&view.IsInShoppingCart,
		); err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipes: %w", err)
	}
	return views, nil
}

// attachComposition batch-loads the tags and ingredient lines for a
// page of recipe views.
func (r *postgresRecipeRepository) attachComposition(ctx context.Context, views []model.RecipeResponse) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(views))
	index := make(map[uuid.UUID]*model.RecipeResponse, len(views))
	for i := range views {
		ids[i] = views[i].ID
		index[views[i].ID] = &views[i]
		views[i].Tags = []tagmodel.Tag{}
		views[i].Ingredients = []model.IngredientInRecipe{}
	}

	tagRows, err := r.db.Query(ctx, `
		SELECT rt.recipe_id, t.id, t.name, t.color, t.slug
		FROM recipe_tags rt
		JOIN tags t ON t.id = rt.tag_id
		WHERE rt.recipe_id = ANY($1)
		ORDER BY t.name ASC
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to load recipe tags: %w", err)
	}
	defer tagRows.Close()

	for tagRows.Next() {
		var recipeID uuid.UUID
		var tag tagmodel.Tag
		if err := tagRows.Scan(&recipeID, &tag.ID, &tag.Name, &tag.Color, &tag.Slug); err != nil {
			return fmt.Errorf("failed to scan recipe tag: %w", err)
		}
		if view, ok := index[recipeID]; ok {
			view.Tags = append(view.Tags, tag)
		}
	}
	if err := tagRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate recipe tags: %w", err)
	}

	ingRows, err := r.db.Query(ctx, `
		SELECT ri.recipe_id, i.id, i.name, i.measurement_unit, ri.amount
		FROM recipe_ingredients ri
		JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE ri.recipe_id = ANY($1)
		ORDER BY i.name ASC
	`, ids)
	if err != nil {
		return fmt.Errorf("failed to load recipe ingredients: %w", err)
	}
	defer ingRows.Close()

	for ingRows.Next() {
		var recipeID uuid.UUID
		var line model.IngredientInRecipe
		if err := ingRows.Scan(&recipeID, &line.ID, &line.Name, &line.MeasurementUnit, &line.Amount); err != nil {
			return fmt.Errorf("failed to scan recipe ingredient: %w", err)
		}
		if view, ok := index[recipeID]; ok {
			view.Ingredients = append(view.Ingredients, line)
		}
	}
	if err := ingRows.Err(); err != nil {
		return fmt.Errorf("failed to iterate recipe ingredients: %w", err)
	}

	return nil
}

func viewerParam(viewer *uuid.UUID) uuid.UUID {
	if viewer == nil {
		return uuid.Nil
	}
	return *viewer
}
