package quest

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

// mockAdventureRepo is an in-memory repository.Adventure.
type mockAdventureRepo struct {
	states  map[string]*domain.AdventureState
	logs    map[string]*domain.QuestLog
	turnErr error
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
	return nil
}

func (m *mockAdventureRepo) TopByGold(_ context.Context, _ int) ([]domain.AdventureState, error) {
	return nil, nil
}

func (m *mockAdventureRepo) TopByLevel(_ context.Context, _ int) ([]domain.AdventureState, error) {
	return nil, nil
}

func (m *mockAdventureRepo) TopByMonsters(_ context.Context, _ int) ([]domain.AdventureState, error) {
	return nil, nil
}

func (m *mockAdventureRepo) DeleteStaleQuestLogs(_ context.Context, _ string) (int64, error) {
	return 0, nil
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

func newTestService(repo *mockAdventureRepo, settings map[string]string) *service {
	store := config.NewSettingsStore(&mockSettingsRepo{data: settings})
	if settings != nil {
		if err := store.Reload(context.Background()); err != nil {
			panic(err)
		}
	}
	svc := NewService(repo, store, concurrency.NewLockManager()).(*service)
	svc.now = func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestToday_NewUserHasZeroProgress(t *testing.T) {
	svc := newTestService(newMockAdventureRepo(), nil)

	today, err := svc.Today(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "2025-06-01", today.Date)
	assert.Equal(t, QuestFor("user-1", "2025-06-01"), today.Quest)
	assert.Zero(t, today.Progress)
	assert.False(t, today.Completed)
	assert.False(t, today.Claimed)
}

func TestToday_ReportsCompletion(t *testing.T) {
	repo := newMockAdventureRepo()
	svc := newTestService(repo, nil)

	q := QuestFor("user-1", "2025-06-01")
	log := domain.NewQuestLog("user-1", "2025-06-01")
	log.Progress[q.Type] = q.Target
	repo.logs["user-1"] = log

	today, err := svc.Today(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, today.Completed)
	assert.False(t, today.Claimed)
}

func TestToday_QuestsDisabled(t *testing.T) {
	svc := newTestService(newMockAdventureRepo(), map[string]string{
		config.KeyDailyQuestsEnabled: "false",
	})

	_, err := svc.Today(context.Background(), "user-1")
	assert.ErrorIs(t, err, domain.ErrQuestsDisabled)
}

func TestClaim_PaysReward(t *testing.T) {
	repo := newMockAdventureRepo()
	svc := newTestService(repo, nil)

	q := QuestFor("user-1", "2025-06-01")
	log := domain.NewQuestLog("user-1", "2025-06-01")
	log.Progress[q.Type] = q.Target + 3
	repo.logs["user-1"] = log

	result, err := svc.Claim(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, q.Reward, result.Reward)
	assert.Equal(t, q.Reward, result.Gold, "new user starts at zero gold")
	assert.Equal(t, q.Reward, repo.states["user-1"].Gold, "gold must be persisted")
	assert.True(t, repo.logs["user-1"].Claimed[q.Name], "claim marker must be persisted")
}

func TestClaim_NotCompleted(t *testing.T) {
	repo := newMockAdventureRepo()
	svc := newTestService(repo, nil)

	q := QuestFor("user-1", "2025-06-01")
	log := domain.NewQuestLog("user-1", "2025-06-01")
	log.Progress[q.Type] = q.Target - 1
	repo.logs["user-1"] = log

	_, err := svc.Claim(context.Background(), "user-1")
	assert.ErrorIs(t, err, domain.ErrQuestNotCompleted)
	assert.Contains(t, err.Error(), domain.ErrMsgQuestNotCompleted)
}

func TestClaim_AlreadyClaimed(t *testing.T) {
	repo := newMockAdventureRepo()
	svc := newTestService(repo, nil)

	q := QuestFor("user-1", "2025-06-01")
	log := domain.NewQuestLog("user-1", "2025-06-01")
	log.Progress[q.Type] = q.Target
	log.Claimed[q.Name] = true
	repo.logs["user-1"] = log

	_, err := svc.Claim(context.Background(), "user-1")
	assert.ErrorIs(t, err, domain.ErrQuestAlreadyClaimed)
}

func TestClaim_SecondClaimRejected(t *testing.T) {
	repo := newMockAdventureRepo()
	svc := newTestService(repo, nil)

	q := QuestFor("user-1", "2025-06-01")
	log := domain.NewQuestLog("user-1", "2025-06-01")
	log.Progress[q.Type] = q.Target
	repo.logs["user-1"] = log

	_, err := svc.Claim(context.Background(), "user-1")
	require.NoError(t, err)

	_, err = svc.Claim(context.Background(), "user-1")
	assert.ErrorIs(t, err, domain.ErrQuestAlreadyClaimed)
	assert.Equal(t, q.Reward, repo.states["user-1"].Gold, "reward must not be paid twice")
}

func TestClaim_FailedWritePaysNothingAndRetriesOnce(t *testing.T) {
	repo := newMockAdventureRepo()
	repo.turnErr = errors.New("connection lost")
	svc := newTestService(repo, nil)

	q := QuestFor("user-1", "2025-06-01")
	log := domain.NewQuestLog("user-1", "2025-06-01")
	log.Progress[q.Type] = q.Target
	repo.logs["user-1"] = log

	_, err := svc.Claim(context.Background(), "user-1")
	require.Error(t, err)
	assert.Zero(t, repo.states["user-1"].Gold, "no payout without the claim marker")
	assert.False(t, repo.logs["user-1"].Claimed[q.Name])

	// A retry after the outage pays exactly once.
	repo.turnErr = nil
	result, err := svc.Claim(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, q.Reward, result.Gold)
	assert.Equal(t, q.Reward, repo.states["user-1"].Gold)
}

func TestClaim_DayRolloverClearsProgress(t *testing.T) {
	repo := newMockAdventureRepo()
	svc := newTestService(repo, nil)

	// Yesterday's completed-but-unclaimed log must not be claimable today.
	q := QuestFor("user-1", "2025-05-31")
	log := domain.NewQuestLog("user-1", "2025-05-31")
	log.Progress[q.Type] = q.Target
	repo.logs["user-1"] = log

	_, err := svc.Claim(context.Background(), "user-1")
	assert.ErrorIs(t, err, domain.ErrQuestNotCompleted)
}

func TestClaim_QuestsDisabled(t *testing.T) {
	svc := newTestService(newMockAdventureRepo(), map[string]string{
		config.KeyDailyQuestsEnabled: "false",
	})

	_, err := svc.Claim(context.Background(), "user-1")
	assert.ErrorIs(t, err, domain.ErrQuestsDisabled)
}
