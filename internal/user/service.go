// Package user resolves display names for user IDs, fronted by an expiring
// LRU so leaderboard rendering does not hammer the users table.
package user

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/wrenbeck/WanderBot_Go/internal/domain"
	"github.com/wrenbeck/WanderBot_Go/internal/repository"
)

const (
	cacheSize = 512
	cacheTTL  = 5 * time.Minute
)

type Service interface {
	// Get returns the user row, or domain.ErrUserNotFound.
	Get(ctx context.Context, userID string) (*domain.User, error)

	// DisplayName returns the best display label for the user. Unknown
	// users get a generic label rather than an error.
	DisplayName(ctx context.Context, userID string) string

	// Invalidate drops a cached name, forcing the next lookup to hit storage.
	Invalidate(userID string)
}

type service struct {
	repo  repository.Users
	names *expirable.LRU[string, string]
}

func NewService(repo repository.Users) Service {
	return &service{
		repo:  repo,
		names: expirable.NewLRU[string, string](cacheSize, nil, cacheTTL),
	}
}

func (s *service) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.GetUser(ctx, userID)
}

func (s *service) DisplayName(ctx context.Context, userID string) string {
	if name, ok := s.names.Get(userID); ok {
		return name
	}

	name := "User " + userID
	if user, err := s.repo.GetUser(ctx, userID); err == nil {
		name = user.Name()
	}
	s.names.Add(userID, name)
	return name
}

func (s *service) Invalidate(userID string) {
	s.names.Remove(userID)
}
