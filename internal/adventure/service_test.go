package adventure

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenbeck/WanderBot_Go/internal/concurrency"
	"github.com/wrenbeck/WanderBot_Go/internal/config"
	"github.com/wrenbeck/WanderBot_Go/internal/domain"
)

// mockAdventureRepo is an in-memory repository.Adventure that counts writes.
type mockAdventureRepo struct {
	states         map[string]*domain.AdventureState
	logs           map[string]*domain.QuestLog
	stateSaves     int
	questLogSaves  int
	turnSaves      int
	turnErr        error
	topByGold      []domain.AdventureState
	topByLevel     []domain.AdventureState
	topByMonsters  []domain.AdventureState
	lastTopLimit   int
	deletedBefore  string
	deleteReturned int64
}

func newMockAdventureRepo() *mockAdventureRepo {
	return &mockAdventureRepo{
		states: map[string]*domain.AdventureState{},
		logs:   map[string]*domain.QuestLog{},
	}
}

func (m *mockAdventureRepo) LoadState(_ context.Context, userID string) (*domain.AdventureState, error) {
	if s, ok := m.states[userID]; ok {
		cp := *s
		return &cp, nil
	}
	s := domain.NewAdventureState(userID)
	m.states[userID] = s
	cp := *s
	return &cp, nil
}

func (m *mockAdventureRepo) SaveState(_ context.Context, state *domain.AdventureState) error {
	cp := *state
	m.states[state.UserID] = &cp
	m.stateSaves++
	return nil
}

func (m *mockAdventureRepo) LoadQuestLog(_ context.Context, userID, today string) (*domain.QuestLog, error) {
	if l, ok := m.logs[userID]; ok {
		l.ResetIfStale(today)
		cp := *l
		return &cp, nil
	}
	l := domain.NewQuestLog(userID, today)
	m.logs[userID] = l
	cp := *l
	return &cp, nil
}

func (m *mockAdventureRepo) SaveQuestLog(_ context.Context, log *domain.QuestLog) error {
	cp := *log
	m.logs[log.UserID] = &cp
	m.questLogSaves++
	return nil
}

func (m *mockAdventureRepo) SaveTurn(_ context.Context, state *domain.AdventureState, log *domain.QuestLog) error {
	if m.turnErr != nil {
		return m.turnErr
	}
	cpState := *state
	m.states[state.UserID] = &cpState
	cpLog := *log
	m.logs[log.UserID] = &cpLog
	m.turnSaves++
	return nil
}

func (m *mockAdventureRepo) TopByGold(_ context.Context, limit int) ([]domain.AdventureState, error) {
	m.lastTopLimit = limit
	return m.topByGold, nil
}

func (m *mockAdventureRepo) TopByLevel(_ context.Context, limit int) ([]domain.AdventureState, error) {
	m.lastTopLimit = limit
	return m.topByLevel, nil
}

func (m *mockAdventureRepo) TopByMonsters(_ context.Context, limit int) ([]domain.AdventureState, error) {
	m.lastTopLimit = limit
	return m.topByMonsters, nil
}

func (m *mockAdventureRepo) DeleteStaleQuestLogs(_ context.Context, before string) (int64, error) {
	m.deletedBefore = before
	return m.deleteReturned, nil
}

// mockSettingsRepo is an in-memory repository.Settings.
type mockSettingsRepo struct {
	data map[string]string
}

func (m *mockSettingsRepo) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *mockSettingsRepo) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func (m *mockSettingsRepo) All(_ context.Context) (map[string]string, error) {
	return m.data, nil
}

func newTestService(t *testing.T, repo *mockAdventureRepo, settings map[string]string) *service {
	t.Helper()
	store := config.NewSettingsStore(&mockSettingsRepo{data: settings})
	if settings != nil {
		require.NoError(t, store.Reload(context.Background()))
	}
	svc := NewService(repo, store, concurrency.NewLockManager()).(*service)
	svc.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestPerformAction_GameDisabled(t *testing.T) {
	svc := newTestService(t, newMockAdventureRepo(), map[string]string{
		config.KeyGameEnabled: "false",
	})

	_, err := svc.PerformAction(context.Background(), "user-1", "explore")
	assert.ErrorIs(t, err, domain.ErrGameDisabled)
}

func TestPerformAction_EmptyAction(t *testing.T) {
	svc := newTestService(t, newMockAdventureRepo(), nil)

	_, err := svc.PerformAction(context.Background(), "user-1", "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPerformAction_MoveToAdjacentLocation(t *testing.T) {
	repo := newMockAdventureRepo()
	svc := newTestService(t, repo, nil)

	result, err := svc.PerformAction(context.Background(), "user-1", "forest")
	require.NoError(t, err)

	assert.True(t, result.Moved)
	assert.Equal(t, domain.LocationForest, result.Location)
	assert.Nil(t, result.Outcome, "a move is not an encounter")
	assert.Equal(t, domain.LocationForest, repo.states["user-1"].Location, "move must be persisted")
}

func TestPerformAction_MoveIsCaseInsensitive(t *testing.T) {
	repo := newMockAdventureRepo()
	svc := newTestService(t, repo, nil)

	result, err := svc.PerformAction(context.Background(), "user-1", "  Forest ")
	require.NoError(t, err)
	assert.True(t, result.Moved)
}

func TestPerformAction_MoveToUnreachableLocation(t *testing.T) {
	repo := newMockAdventureRepo()
	svc := newTestService(t, repo, nil)

	// Already in town; town does not connect to itself.
	_, err := svc.PerformAction(context.Background(), "user-1", "town")
	assert.ErrorIs(t, err, domain.ErrUnreachableLocation)
	assert.Zero(t, repo.stateSaves)
}

func TestPerformAction_UnknownActionAtLocation(t *testing.T) {
	repo := newMockAdventureRepo()
	svc := newTestService(t, repo, nil)

	// Mining is a cave action; new users start in town.
	_, err := svc.PerformAction(context.Background(), "user-1", "mine")
	assert.ErrorIs(t, err, domain.ErrUnknownAction)
	assert.Contains(t, err.Error(), "explore", "error should list available actions")
	assert.Zero(t, repo.stateSaves)
}

func TestPerformAction_ResolvesAndPersists(t *testing.T) {
	repo := newMockAdventureRepo()
	svc := newTestService(t, repo, nil)
	// Pin the rolls: normal band, explore outcome 0 (+50 gold).
	ints := []int{50, 0}
	svc.resolver.randInt = func(lo, hi int) int {
		v := ints[0]
		ints = ints[1:]
		return v
	}

	result, err := svc.PerformAction(context.Background(), "user-1", "explore")
	require.NoError(t, err)

	assert.False(t, result.Moved)
	require.NotNil(t, result.Outcome)
	assert.Equal(t, BandNormal, result.Outcome.Band)
	assert.Equal(t, 50, result.Gold)
	assert.Equal(t, 50, repo.states["user-1"].Gold, "state must be persisted")
	assert.Equal(t, 1, repo.turnSaves, "state and quest log go through one atomic write")
	assert.Zero(t, repo.stateSaves)

	// Quest progress rides along in the same turn.
	log := repo.logs["user-1"]
	require.NotNil(t, log)
	assert.Equal(t, "2025-06-01", log.Date)
	assert.Equal(t, 1, log.Progress[domain.ProgressExplore])
	assert.Equal(t, 50, log.Progress[domain.ProgressGold])
}

func TestPerformAction_QuestProgressSkippedWhenDisabled(t *testing.T) {
	repo := newMockAdventureRepo()
	svc := newTestService(t, repo, map[string]string{
		config.KeyDailyQuestsEnabled: "false",
	})
	ints := []int{50, 0}
	svc.resolver.randInt = func(lo, hi int) int {
		v := ints[0]
		ints = ints[1:]
		return v
	}

	_, err := svc.PerformAction(context.Background(), "user-1", "explore")
	require.NoError(t, err)

	assert.Zero(t, repo.questLogSaves)
	assert.Zero(t, repo.turnSaves)
	assert.Equal(t, 1, repo.stateSaves, "state still persists without quests")
}

func TestPerformAction_FailedTurnWriteLeavesNothingBehind(t *testing.T) {
	repo := newMockAdventureRepo()
	repo.turnErr = errors.New("connection lost")
	svc := newTestService(t, repo, nil)
	ints := []int{50, 0}
	svc.resolver.randInt = func(lo, hi int) int {
		v := ints[0]
		ints = ints[1:]
		return v
	}

	_, err := svc.PerformAction(context.Background(), "user-1", "explore")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save adventure turn")

	assert.Zero(t, repo.states["user-1"].Gold, "stored state keeps its pre-turn value")
	assert.Empty(t, repo.logs["user-1"].Progress, "no quest progress without the state write")
}

func TestPerformAction_ShopScreenDoesNotPersist(t *testing.T) {
	repo := newMockAdventureRepo()
	svc := newTestService(t, repo, nil)
	svc.resolver.randInt = func(lo, hi int) int { return 50 }

	result, err := svc.PerformAction(context.Background(), "user-1", "shop")
	require.NoError(t, err)

	require.NotNil(t, result.Outcome)
	assert.True(t, result.Outcome.Shop)
	assert.Zero(t, repo.stateSaves)
	assert.Zero(t, repo.questLogSaves)
}

func TestState_ReturnsStatusCard(t *testing.T) {
	repo := newMockAdventureRepo()
	svc := newTestService(t, repo, nil)

	state := domain.NewAdventureState("user-1")
	state.Location = domain.LocationCave
	state.Gold = 75
	state.AdventureXP = 450
	repo.states["user-1"] = state

	view, err := svc.State(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, domain.LocationCave, view.Location)
	assert.Equal(t, 75, view.Gold)
	assert.Equal(t, 3, view.AdventureLevel, "450 XP at 200 per level is level 3")
	assert.Equal(t, domain.MaxHealth, view.MaxHealth)
	assert.Contains(t, view.Actions, domain.ActionMine)
	assert.Contains(t, view.Connections, domain.LocationTown)
}

func TestState_GameDisabled(t *testing.T) {
	svc := newTestService(t, newMockAdventureRepo(), map[string]string{
		config.KeyGameEnabled: "false",
	})

	_, err := svc.State(context.Background(), "user-1")
	assert.ErrorIs(t, err, domain.ErrGameDisabled)
}

func TestLeaderboard_CategoryRouting(t *testing.T) {
	repo := newMockAdventureRepo()
	repo.topByGold = []domain.AdventureState{{UserID: "rich"}}
	repo.topByLevel = []domain.AdventureState{{UserID: "strong"}}
	repo.topByMonsters = []domain.AdventureState{{UserID: "fierce"}}
	svc := newTestService(t, repo, nil)

	ctx := context.Background()

	gold, err := svc.Leaderboard(ctx, CategoryGold, 10)
	require.NoError(t, err)
	assert.Equal(t, "rich", gold[0].UserID)

	level, err := svc.Leaderboard(ctx, CategoryLevel, 10)
	require.NoError(t, err)
	assert.Equal(t, "strong", level[0].UserID)

	monsters, err := svc.Leaderboard(ctx, CategoryMonsters, 10)
	require.NoError(t, err)
	assert.Equal(t, "fierce", monsters[0].UserID)

	defaulted, err := svc.Leaderboard(ctx, "", 10)
	require.NoError(t, err)
	assert.Equal(t, "rich", defaulted[0].UserID, "empty category defaults to gold")
}

func TestLeaderboard_InvalidCategory(t *testing.T) {
	svc := newTestService(t, newMockAdventureRepo(), nil)

	_, err := svc.Leaderboard(context.Background(), "charisma", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLeaderboard_LimitNormalized(t *testing.T) {
	repo := newMockAdventureRepo()
	svc := newTestService(t, repo, nil)

	_, err := svc.Leaderboard(context.Background(), CategoryGold, 0)
	require.NoError(t, err)
	assert.Equal(t, 10, repo.lastTopLimit)

	_, err = svc.Leaderboard(context.Background(), CategoryGold, 500)
	require.NoError(t, err)
	assert.Equal(t, 10, repo.lastTopLimit)
}

func TestLeaderboard_Disabled(t *testing.T) {
	svc := newTestService(t, newMockAdventureRepo(), map[string]string{
		config.KeyAdventureLeaderboardEnabled: "false",
	})

	_, err := svc.Leaderboard(context.Background(), CategoryGold, 10)
	assert.ErrorIs(t, err, domain.ErrGameDisabled)
}
