package economy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wrenbeck/WanderBot_Go/internal/concurrency"
	"github.com/wrenbeck/WanderBot_Go/internal/domain"
)

// mockAdventureRepo is an in-memory repository.Adventure.
type mockAdventureRepo struct {
	states map[string]*domain.AdventureState
	saves  int
}

func newMockAdventureRepo() *mockAdventureRepo {
	return &mockAdventureRepo{states: map[string]*domain.AdventureState{}}
}

func (m *mockAdventureRepo) LoadState(_ context.Context, userID string) (*domain.AdventureState, error) {
	if s, ok := m.states[userID]; ok {
		cp := *s
		cp.Inventory = map[string]int{}
		for k, v := range s.Inventory {
			cp.Inventory[k] = v
		}
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
	m.saves++
	return nil
}

func (m *mockAdventureRepo) LoadQuestLog(_ context.Context, userID, today string) (*domain.QuestLog, error) {
	return domain.NewQuestLog(userID, today), nil
}

func (m *mockAdventureRepo) SaveQuestLog(_ context.Context, _ *domain.QuestLog) error {
	return nil
}

func (m *mockAdventureRepo) SaveTurn(_ context.Context, state *domain.AdventureState, _ *domain.QuestLog) error {
	return m.SaveState(context.Background(), state)
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

func newTestService(repo *mockAdventureRepo) Service {
	return NewService(repo, concurrency.NewLockManager())
}

func townUser(repo *mockAdventureRepo, gold int) *domain.AdventureState {
	state := domain.NewAdventureState("user-1")
	state.Gold = gold
	repo.states["user-1"] = state
	return state
}

func TestShop_ListsAllItems(t *testing.T) {
	svc := newTestService(newMockAdventureRepo())

	entries, err := svc.Shop(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 4)

	assert.Equal(t, domain.ItemHealthPotion, entries[0].Item.Name)
	assert.Equal(t, 20, entries[0].Item.Price)
	assert.Equal(t, domain.ItemMagicScroll, entries[3].Item.Name)
}

func TestBuy_Succeeds(t *testing.T) {
	repo := newMockAdventureRepo()
	townUser(repo, 150)
	svc := newTestService(repo)

	result, err := svc.Buy(context.Background(), "user-1", "Sword")
	require.NoError(t, err)

	assert.Equal(t, 50, result.Gold)
	assert.Equal(t, 1, result.Held)
	assert.Equal(t, 50, repo.states["user-1"].Gold)
	assert.Equal(t, 1, repo.states["user-1"].Held(domain.ItemSword))
}

func TestBuy_CaseInsensitiveName(t *testing.T) {
	repo := newMockAdventureRepo()
	townUser(repo, 100)
	svc := newTestService(repo)

	result, err := svc.Buy(context.Background(), "user-1", "health potion")
	require.NoError(t, err)
	assert.Equal(t, domain.ItemHealthPotion, result.Item.Name)
}

func TestBuy_OnlyInTown(t *testing.T) {
	repo := newMockAdventureRepo()
	state := townUser(repo, 500)
	state.Location = domain.LocationForest
	svc := newTestService(repo)

	_, err := svc.Buy(context.Background(), "user-1", "Sword")
	assert.ErrorIs(t, err, domain.ErrNotInTown)
	assert.Zero(t, repo.saves)
}

func TestBuy_UnknownItem(t *testing.T) {
	repo := newMockAdventureRepo()
	townUser(repo, 500)
	svc := newTestService(repo)

	_, err := svc.Buy(context.Background(), "user-1", "Bazooka")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestBuy_InsufficientFunds(t *testing.T) {
	repo := newMockAdventureRepo()
	townUser(repo, 99)
	svc := newTestService(repo)

	_, err := svc.Buy(context.Background(), "user-1", "Sword")
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Contains(t, err.Error(), "need 100 gold but have 99")
	assert.Equal(t, 99, repo.states["user-1"].Gold, "gold untouched on failure")
}

func TestBuy_ExactPrice(t *testing.T) {
	repo := newMockAdventureRepo()
	townUser(repo, 100)
	svc := newTestService(repo)

	result, err := svc.Buy(context.Background(), "user-1", "Sword")
	require.NoError(t, err)
	assert.Zero(t, result.Gold)
}

func TestUse_HealthPotionHealsAndConsumes(t *testing.T) {
	repo := newMockAdventureRepo()
	state := townUser(repo, 0)
	state.Health = 40
	state.AddItem(domain.ItemHealthPotion, 2)
	svc := newTestService(repo)

	result, err := svc.Use(context.Background(), "user-1", "Health Potion")
	require.NoError(t, err)

	assert.Equal(t, 90, result.Health)
	assert.Equal(t, 1, result.Remaining)
	assert.Contains(t, result.Text, "restored 50 health")
	assert.Equal(t, 1, repo.states["user-1"].Held(domain.ItemHealthPotion))
}

func TestUse_HealClampsAtMaxHealth(t *testing.T) {
	repo := newMockAdventureRepo()
	state := townUser(repo, 0)
	state.Health = 80
	state.AddItem(domain.ItemHealthPotion, 1)
	svc := newTestService(repo)

	result, err := svc.Use(context.Background(), "user-1", "Health Potion")
	require.NoError(t, err)

	assert.Equal(t, domain.MaxHealth, result.Health)
	assert.Contains(t, result.Text, "restored 20 health", "only the effective heal is reported")
}

func TestUse_MagicScrollGrantsXP(t *testing.T) {
	repo := newMockAdventureRepo()
	state := townUser(repo, 0)
	state.AddItem(domain.ItemMagicScroll, 1)
	svc := newTestService(repo)

	result, err := svc.Use(context.Background(), "user-1", "Magic Scroll")
	require.NoError(t, err)

	assert.Equal(t, 25, result.AdventureXP)
	assert.Zero(t, result.Remaining)
	assert.Zero(t, repo.states["user-1"].Held(domain.ItemMagicScroll), "zero stacks are pruned")
}

func TestUse_PassiveEquipmentRejected(t *testing.T) {
	repo := newMockAdventureRepo()
	state := townUser(repo, 0)
	state.AddItem(domain.ItemSword, 1)
	svc := newTestService(repo)

	_, err := svc.Use(context.Background(), "user-1", "Sword")
	assert.ErrorIs(t, err, domain.ErrNotUsable)
	assert.Equal(t, 1, repo.states["user-1"].Held(domain.ItemSword), "item not consumed")
}

func TestUse_NotHeld(t *testing.T) {
	repo := newMockAdventureRepo()
	townUser(repo, 0)
	svc := newTestService(repo)

	_, err := svc.Use(context.Background(), "user-1", "Health Potion")
	assert.ErrorIs(t, err, domain.ErrNotHeld)
}

func TestUse_UnknownItem(t *testing.T) {
	repo := newMockAdventureRepo()
	townUser(repo, 0)
	svc := newTestService(repo)

	_, err := svc.Use(context.Background(), "user-1", "Mystery Box")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestInventory_StableOrderAndGold(t *testing.T) {
	repo := newMockAdventureRepo()
	state := townUser(repo, 321)
	state.AddItem(domain.ItemMagicScroll, 1)
	state.AddItem(domain.ItemHealthPotion, 3)
	svc := newTestService(repo)

	view, err := svc.Inventory(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, 321, view.Gold)
	require.Len(t, view.Items, 2)
	assert.Equal(t, domain.ItemHealthPotion, view.Items[0].Item.Name, "shop order is stable")
	assert.Equal(t, 3, view.Items[0].Count)
	assert.Equal(t, domain.ItemMagicScroll, view.Items[1].Item.Name)
}

func TestInventory_EmptyForNewUser(t *testing.T) {
	repo := newMockAdventureRepo()
	svc := newTestService(repo)

	view, err := svc.Inventory(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.Gold)
}
