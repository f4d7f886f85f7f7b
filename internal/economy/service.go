// Package economy implements the shop: buying items, using consumables and
// the inventory view. Prices and effects come from the static item table.
package economy

import (
	"context"
	"fmt"
	"strings"

	"github.com/wrenbeck/WanderBot_Go/internal/concurrency"
	"github.com/wrenbeck/WanderBot_Go/internal/domain"
	"github.com/wrenbeck/WanderBot_Go/internal/game"
	"github.com/wrenbeck/WanderBot_Go/internal/logger"
	"github.com/wrenbeck/WanderBot_Go/internal/repository"
)

// ShopEntry is one purchasable item with its live definition.
type ShopEntry struct {
	Item domain.Item `json:"item"`
}

// PurchaseResult reports a completed purchase.
type PurchaseResult struct {
	Item domain.Item `json:"item"`
	Gold int         `json:"gold"` // balance after the purchase
	Held int         `json:"held"` // count held after the purchase
}

// UseResult reports a consumed item.
type UseResult struct {
	Item        domain.Item `json:"item"`
	Text        string      `json:"text"`
	Health      int         `json:"health"`
	AdventureXP int         `json:"adventure_xp"`
	Remaining   int         `json:"remaining"`
}

// InventoryView is the inventory card: held counts joined with definitions.
type InventoryView struct {
	Gold  int             `json:"gold"`
	Items []InventoryItem `json:"items"`
}

// InventoryItem is one held stack.
type InventoryItem struct {
	Item  domain.Item `json:"item"`
	Count int         `json:"count"`
}

type Service interface {
	// Shop returns the full shop listing.
	Shop(ctx context.Context) ([]ShopEntry, error)

	// Buy purchases one unit. Town only; fails with domain.ErrNotInTown,
	// domain.ErrItemNotFound or domain.ErrInsufficientFunds.
	Buy(ctx context.Context, userID, itemName string) (*PurchaseResult, error)

	// Use consumes a held potion or scroll. Passive equipment fails with
	// domain.ErrNotUsable.
	Use(ctx context.Context, userID, itemName string) (*UseResult, error)

	// Inventory returns the user's held items and gold.
	Inventory(ctx context.Context, userID string) (*InventoryView, error)
}

type service struct {
	repo  repository.Adventure
	locks *concurrency.LockManager
}

func NewService(repo repository.Adventure, locks *concurrency.LockManager) Service {
	return &service{repo: repo, locks: locks}
}

// resolveItem matches an item name case-insensitively against the shop table.
func resolveItem(name string) (domain.Item, bool) {
	name = strings.TrimSpace(name)
	if item, ok := game.Item(name); ok {
		return item, true
	}
	for canonical, item := range game.Items {
		if strings.EqualFold(canonical, name) {
			return item, true
		}
	}
	return domain.Item{}, false
}

func (s *service) Shop(_ context.Context) ([]ShopEntry, error) {
	entries := make([]ShopEntry, 0, len(game.Items))
	for _, name := range []string{
		domain.ItemHealthPotion, domain.ItemSword, domain.ItemShield, domain.ItemMagicScroll,
	} {
		entries = append(entries, ShopEntry{Item: game.Items[name]})
	}
	return entries, nil
}

func (s *service) Buy(ctx context.Context, userID, itemName string) (*PurchaseResult, error) {
	item, ok := resolveItem(itemName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemName)
	}

	mu := s.locks.GetLock(userID)
	mu.Lock()
	defer mu.Unlock()

	state, err := s.repo.LoadState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load adventure state: %w", err)
	}

	if state.Location != domain.LocationTown {
		return nil, domain.ErrNotInTown
	}
	if state.Gold < item.Price {
		return nil, fmt.Errorf("%w: need %d gold but have %d", domain.ErrInsufficientFunds, item.Price, state.Gold)
	}

	state.Gold -= item.Price
	state.AddItem(item.Name, 1)

	if err := s.repo.SaveState(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save adventure state: %w", err)
	}

	logger.FromContext(ctx).Info("Item purchased",
		"user_id", userID, "item", item.Name, "price", item.Price)

	return &PurchaseResult{Item: item, Gold: state.Gold, Held: state.Held(item.Name)}, nil
}

func (s *service) Use(ctx context.Context, userID, itemName string) (*UseResult, error) {
	item, ok := resolveItem(itemName)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrItemNotFound, itemName)
	}

	mu := s.locks.GetLock(userID)
	mu.Lock()
	defer mu.Unlock()

	state, err := s.repo.LoadState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load adventure state: %w", err)
	}

	if state.Held(item.Name) <= 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotHeld, item.Name)
	}
	if !item.Consumable() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotUsable, item.Name)
	}

	var text string
	switch item.Effect {
	case domain.EffectHeal:
		before := state.Health
		state.Health += item.Value
		state.ClampHealth()
		text = fmt.Sprintf("💚 You used %s and restored %d health!", item.Name, state.Health-before)
	case domain.EffectMagic:
		state.AdventureXP += item.Value
		text = fmt.Sprintf("✨ You used %s and gained %d adventure XP!", item.Name, item.Value)
	}

	state.RemoveItem(item.Name, 1)

	if err := s.repo.SaveState(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save adventure state: %w", err)
	}

	return &UseResult{
		Item:        item,
		Text:        text,
		Health:      state.Health,
		AdventureXP: state.AdventureXP,
		Remaining:   state.Held(item.Name),
	}, nil
}

func (s *service) Inventory(ctx context.Context, userID string) (*InventoryView, error) {
	state, err := s.repo.LoadState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load adventure state: %w", err)
	}

	view := &InventoryView{Gold: state.Gold, Items: []InventoryItem{}}
	// Stable shop order, then anything else the record happens to hold.
	for _, name := range []string{
		domain.ItemHealthPotion, domain.ItemSword, domain.ItemShield, domain.ItemMagicScroll,
	} {
		if count := state.Held(name); count > 0 {
			view.Items = append(view.Items, InventoryItem{Item: game.Items[name], Count: count})
		}
	}
	return view, nil
}
