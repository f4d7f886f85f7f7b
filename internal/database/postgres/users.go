// Package postgres implements the repository interfaces on PostgreSQL via
// pgxpool. Storage errors are wrapped; row-absence maps to domain errors.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wrenbeck/WanderBot_Go/internal/domain"
)

// UsersRepository implements repository.Users for PostgreSQL
type UsersRepository struct {
	db *pgxpool.Pool
}

// NewUsersRepository creates a new UsersRepository
func NewUsersRepository(db *pgxpool.Pool) *UsersRepository {
	return &UsersRepository{db: db}
}

const userColumns = `user_id, username, display_name, xp, message_count, last_award_at, created_at, updated_at`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.UserID, &u.Username, &u.DisplayName, &u.XP, &u.MessageCount,
		&u.LastAwardAt, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetUser returns the user row, or domain.ErrUserNotFound
func (r *UsersRepository) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`

	user, err := scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, userID)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetOrCreateUser loads the user, creating a zeroed row on first sight
func (r *UsersRepository) GetOrCreateUser(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		INSERT INTO users (user_id, created_at, updated_at)
		VALUES ($1, NOW(), NOW())
		ON CONFLICT (user_id) DO NOTHING
	`
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return r.GetUser(ctx, userID)
}

// SaveProgress writes the progression fields and cached names in one statement
func (r *UsersRepository) SaveProgress(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET username = $2, display_name = $3, xp = $4, message_count = $5,
		    last_award_at = $6, updated_at = NOW()
		WHERE user_id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		user.UserID, user.Username, user.DisplayName, user.XP, user.MessageCount, user.LastAwardAt)
	if err != nil {
		return fmt.Errorf("failed to save progression: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, user.UserID)
	}
	return nil
}

// TopByXP returns the chat leaderboard, xp descending
func (r *UsersRepository) TopByXP(ctx context.Context, limit int) ([]domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE message_count > 0
		ORDER BY xp DESC
		LIMIT $1
	`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard row: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read leaderboard rows: %w", err)
	}
	return users, nil
}
