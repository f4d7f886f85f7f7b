package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenbeck/WanderBot_Go/internal/config"
	"github.com/wrenbeck/WanderBot_Go/internal/repository"
)

type mockStatsRepo struct {
	chat      repository.ChatTotals
	adventure repository.AdventureTotals
	claims    int
	claimDate string
}

func (m *mockStatsRepo) ChatTotals(_ context.Context) (*repository.ChatTotals, error) {
	cp := m.chat
	return &cp, nil
}

func (m *mockStatsRepo) AdventureTotals(_ context.Context) (*repository.AdventureTotals, error) {
	cp := m.adventure
	return &cp, nil
}

func (m *mockStatsRepo) QuestClaimsOn(_ context.Context, date string) (int, error) {
	m.claimDate = date
	return m.claims, nil
}

func TestOverview_DerivesLevelsFromXP(t *testing.T) {
	repo := &mockStatsRepo{
		chat:      repository.ChatTotals{Users: 12, Messages: 340, TotalXP: 5100, MaxXP: 500},
		adventure: repository.AdventureTotals{Adventurers: 5, Gold: 2100, MonstersDefeated: 18, MaxAdventureXP: 450},
		claims:    3,
	}
	svc := NewService(repo, config.NewSettingsStore(nil)).(*service)
	svc.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, overview.Chat.Users)
	assert.Equal(t, 3, overview.MaxChatLevel, "500 XP is chat level 3")
	assert.Equal(t, 3, overview.MaxAdventureLevel, "450 XP at 200 per level is level 3")
	assert.Equal(t, 3, overview.QuestClaimsToday)
	assert.Equal(t, "2025-06-01", repo.claimDate)
}

func TestOverview_EmptyServer(t *testing.T) {
	repo := &mockStatsRepo{}
	svc := NewService(repo, config.NewSettingsStore(nil)).(*service)
	svc.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}

	overview, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Zero(t, overview.MaxChatLevel)
	assert.Zero(t, overview.MaxAdventureLevel)
	assert.Zero(t, overview.QuestClaimsToday)
}
