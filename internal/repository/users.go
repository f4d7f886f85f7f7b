package repository

import (
	"context"

	"github.com/wrenbeck/WanderBot_Go/internal/domain"
)

// Users defines the interface for user and chat-progression data access.
type Users interface {
	// GetUser returns the user row, or domain.ErrUserNotFound.
	GetUser(ctx context.Context, userID string) (*domain.User, error)

	// GetOrCreateUser loads the user, lazily creating a zeroed row on first
	// sight. Creation is a persisted write.
	GetOrCreateUser(ctx context.Context, userID string) (*domain.User, error)

	// SaveProgress writes xp, message count, last-award timestamp and the
	// cached names for the user in one statement.
	SaveProgress(ctx context.Context, user *domain.User) error

	// TopByXP returns the chat leaderboard, xp descending.
	TopByXP(ctx context.Context, limit int) ([]domain.User, error)
}
