package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"foodgram-backend/internal/domains/user/model"
)

// =============================================================================
// POSTGRES USER REPOSITORY
// =============================================================================

type postgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) UserRepository {
	return &postgresUserRepository{db: db}
}

func (r *postgresUserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (id, email, username, first_name, last_name, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		user.ID,
		user.Email,
		user.Username,
		user.FirstName,
		user.LastName,
		user.PasswordHash,
	).Scan(&user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "users_email_key":
				return model.ErrEmailTaken
			case "users_username_key":
				return model.ErrUsernameTaken
			}
			return model.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `
		SELECT id, email, username, first_name, last_name, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	user := &model.User{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

func (r *postgresUserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `
		SELECT id, email, username, first_name, last_name, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	user := &model.User{}
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

func (r *postgresUserRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return exists, nil
}

func (r *postgresUserRepository) GetView(ctx context.Context, id uuid.UUID, viewer *uuid.UUID) (*model.UserResponse, error) {
	query := `
		SELECT u.id, u.email, u.username, u.first_name, u.last_name,
		       EXISTS(
		           SELECT 1 FROM subscriptions s
		           WHERE s.user_id = $2 AND s.author_id = u.id
		       ) AS is_subscribed
		FROM users u
		WHERE u.id = $1
	`

	view := &model.UserResponse{}
	err := r.db.QueryRow(ctx, query, id, viewerParam(viewer)).Scan(
		&view.ID,
		&view.Email,
		&view.Username,
		&view.FirstName,
		&view.LastName,
		&view.IsSubscribed,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user view: %w", err)
	}

	return view, nil
}

func (r *postgresUserRepository) ListViews(ctx context.Context, viewer *uuid.UUID, page, limit int) ([]model.UserResponse, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	query := `
		SELECT u.id, u.email, u.username, u.first_name, u.last_name,
		       EXISTS(
		           SELECT 1 FROM subscriptions s
		           WHERE s.user_id = $1 AND s.author_id = u.id
		       ) AS is_subscribed
		FROM users u
		ORDER BY u.created_at ASC
		LIMIT $2 OFFSET $3
	`

	offset := (page - 1) * limit
	rows, err := r.db.Query(ctx, query, viewerParam(viewer), limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	views := make([]model.UserResponse, 0, limit)
	for rows.Next() {
		var view model.UserResponse
		if err := rows.Scan(
			&view.ID,
			&view.Email,
			&view.Username,
			&view.FirstName,
			&view.LastName,
			&view.IsSubscribed,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan user: %w", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate users: %w", err)
	}

	return views, total, nil
}

// viewerParam maps an optional viewer to a SQL parameter. The EXISTS
// subqueries compare against it directly, so anonymous reads use the
// nil UUID which never matches a subscription row.
func viewerParam(viewer *uuid.UUID) uuid.UUID {
	if viewer == nil {
		return uuid.Nil
	}
	return *viewer
}
