package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-messenger/internal/logger"
	"github.com/sbilibin2017/gw-messenger/internal/models"
)

// UserReadRepository handles user read operations.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsername returns the full user row, or nil if the username is absent.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `
		SELECT username, password_hash, first_name, last_name, phone, join_at, last_login_at
		FROM users
		WHERE username = $1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// List returns the public fields of every user, ordered by username.
func (r *UserReadRepository) List(ctx context.Context) ([]models.PublicUser, error) {
	const query = `
		SELECT username, first_name, last_name, phone
		FROM users
		ORDER BY username
	`

	var users []models.PublicUser
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow("user list query",
		"query", strings.Join(strings.Fields(query), " "),
		"count", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return users, nil
}

// UserWriteRepository handles user write operations.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user row. join_at and last_login_at are set to NOW().
// A duplicate username surfaces as a unique-violation error from the driver.
func (r *UserWriteRepository) Save(ctx context.Context, username, passwordHash, firstName, lastName, phone string) error {
	const query = `
		INSERT INTO users (username, password_hash, first_name, last_name, phone, join_at, last_login_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
	`
	args := []any{username, passwordHash, firstName, lastName, phone}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username, firstName, lastName, phone},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// UpdateLastLogin advances last_login_at for an existing username.
// Returns the number of rows updated; zero means the username is absent.
func (r *UserWriteRepository) UpdateLastLogin(ctx context.Context, username string) (int64, error) {
	const query = `
		UPDATE users
		SET last_login_at = NOW()
		WHERE username = $1
	`

	res, err := r.db.ExecContext(ctx, query, username)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("user last_login update",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"result", rowsAffected,
		"error", err,
	)

	return rowsAffected, err
}
