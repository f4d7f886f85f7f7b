package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wrenbeck/WanderBot_Go/internal/domain"
	"github.com/wrenbeck/WanderBot_Go/internal/economy"
)

type mockEconomyService struct {
	shop      []economy.ShopEntry
	buy       *economy.PurchaseResult
	buyErr    error
	use       *economy.UseResult
	useErr    error
	inventory *economy.InventoryView
	invErr    error
}

func (m *mockEconomyService) Shop(ctx context.Context) ([]economy.ShopEntry, error) {
	return m.shop, nil
}

func (m *mockEconomyService) Buy(ctx context.Context, userID, itemName string) (*economy.PurchaseResult, error) {
	return m.buy, m.buyErr
}

func (m *mockEconomyService) Use(ctx context.Context, userID, itemName string) (*economy.UseResult, error) {
	return m.use, m.useErr
}

func (m *mockEconomyService) Inventory(ctx context.Context, userID string) (*economy.InventoryView, error) {
	return m.inventory, m.invErr
}

func TestEconomyHandlers_Shop(t *testing.T) {
	svc := &mockEconomyService{
		shop: []economy.ShopEntry{
			{Item: domain.Item{Name: "Health Potion", Price: 50, Effect: "heal", Value: 30}},
		},
	}
	h := NewEconomyHandlers(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/economy/shop", nil)
	w := httptest.NewRecorder()
	h.HandleShop().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Health Potion"`)
	assert.Contains(t, w.Body.String(), `"price":50`)
}

func TestEconomyHandlers_Buy(t *testing.T) {
	InitValidator()

	t.Run("purchase succeeds", func(t *testing.T) {
		svc := &mockEconomyService{
			buy: &economy.PurchaseResult{
				Item: domain.Item{Name: "Sword", Price: 100, Effect: "weapon", Value: 15},
				Gold: 25,
				Held: 1,
			},
		}
		h := NewEconomyHandlers(svc)

		w := postJSON(t, h.HandleBuy(), "/api/v1/economy/buy", ItemRequest{
			UserID: "user-1",
			Item:   "sword",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"gold":25`)
	})

	t.Run("insufficient funds maps to 400", func(t *testing.T) {
		svc := &mockEconomyService{buyErr: domain.ErrInsufficientFunds}
		h := NewEconomyHandlers(svc)

		w := postJSON(t, h.HandleBuy(), "/api/v1/economy/buy", ItemRequest{
			UserID: "user-1",
			Item:   "sword",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNotEnoughGoldError)
	})

	t.Run("not in town maps to 400", func(t *testing.T) {
		svc := &mockEconomyService{buyErr: domain.ErrNotInTown}
		h := NewEconomyHandlers(svc)

		w := postJSON(t, h.HandleBuy(), "/api/v1/economy/buy", ItemRequest{
			UserID: "user-1",
			Item:   "shield",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNotInTownError)
	})

	t.Run("missing item fails validation", func(t *testing.T) {
		h := NewEconomyHandlers(&mockEconomyService{})

		w := postJSON(t, h.HandleBuy(), "/api/v1/economy/buy", ItemRequest{UserID: "user-1"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEconomyHandlers_Use(t *testing.T) {
	InitValidator()

	t.Run("consumes item", func(t *testing.T) {
		svc := &mockEconomyService{
			use: &economy.UseResult{
				Item:      domain.Item{Name: "Health Potion", Price: 50, Effect: "heal", Value: 30},
				Text:      "You drink the potion and recover 30 health!",
				Health:    100,
				Remaining: 0,
			},
		}
		h := NewEconomyHandlers(svc)

		w := postJSON(t, h.HandleUse(), "/api/v1/economy/use", ItemRequest{
			UserID: "user-1",
			Item:   "health potion",
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"remaining":0`)
	})

	t.Run("passive equipment maps to 400", func(t *testing.T) {
		svc := &mockEconomyService{useErr: domain.ErrNotUsable}
		h := NewEconomyHandlers(svc)

		w := postJSON(t, h.HandleUse(), "/api/v1/economy/use", ItemRequest{
			UserID: "user-1",
			Item:   "sword",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgNotUsableError)
	})
}

func TestEconomyHandlers_Inventory(t *testing.T) {
	t.Run("returns held items", func(t *testing.T) {
		svc := &mockEconomyService{
			inventory: &economy.InventoryView{
				Gold: 75,
				Items: []economy.InventoryItem{
					{Item: domain.Item{Name: "Shield", Price: 80, Effect: "defense", Value: 5}, Count: 2},
				},
			},
		}
		h := NewEconomyHandlers(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/economy/inventory?user_id=user-1", nil)
		w := httptest.NewRecorder()
		h.HandleInventory().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"gold":75`)
		assert.Contains(t, w.Body.String(), `"count":2`)
	})

	t.Run("missing user_id", func(t *testing.T) {
		h := NewEconomyHandlers(&mockEconomyService{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/economy/inventory", nil)
		w := httptest.NewRecorder()
		h.HandleInventory().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
