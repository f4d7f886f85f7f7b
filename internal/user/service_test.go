package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenbeck/WanderBot_Go/internal/domain"
)

type mockUsersRepo struct {
	users map[string]*domain.User
	hits  int
}

func (m *mockUsersRepo) GetUser(_ context.Context, userID string) (*domain.User, error) {
	m.hits++
	if u, ok := m.users[userID]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, domain.ErrUserNotFound
}

func (m *mockUsersRepo) GetOrCreateUser(_ context.Context, userID string) (*domain.User, error) {
	return m.GetUser(context.Background(), userID)
}

func (m *mockUsersRepo) SaveProgress(_ context.Context, _ *domain.User) error {
	return nil
}

func (m *mockUsersRepo) TopByXP(_ context.Context, _ int) ([]domain.User, error) {
	return nil, nil
}

func TestDisplayName_ResolvesAndCaches(t *testing.T) {
	repo := &mockUsersRepo{users: map[string]*domain.User{
		"u1": {UserID: "u1", Username: "alice", DisplayName: "Alice"},
	}}
	svc := NewService(repo)

	assert.Equal(t, "Alice", svc.DisplayName(context.Background(), "u1"))
	assert.Equal(t, "Alice", svc.DisplayName(context.Background(), "u1"))
	assert.Equal(t, 1, repo.hits, "second lookup is served from cache")
}

func TestDisplayName_UnknownUserFallback(t *testing.T) {
	repo := &mockUsersRepo{users: map[string]*domain.User{}}
	svc := NewService(repo)

	assert.Equal(t, "User ghost", svc.DisplayName(context.Background(), "ghost"))
}

func TestInvalidate_ForcesRefresh(t *testing.T) {
	repo := &mockUsersRepo{users: map[string]*domain.User{
		"u1": {UserID: "u1", Username: "alice"},
	}}
	svc := NewService(repo)

	assert.Equal(t, "alice", svc.DisplayName(context.Background(), "u1"))

	repo.users["u1"].DisplayName = "Alice Prime"
	svc.Invalidate("u1")

	assert.Equal(t, "Alice Prime", svc.DisplayName(context.Background(), "u1"))
	assert.Equal(t, 2, repo.hits)
}

func TestGet_PassesThrough(t *testing.T) {
	repo := &mockUsersRepo{users: map[string]*domain.User{
		"u1": {UserID: "u1", XP: 99},
	}}
	svc := NewService(repo)

	u, err := svc.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 99, u.XP)

	_, err = svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
