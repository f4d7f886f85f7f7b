// Package adventure implements the text-adventure mini-game: moving through
// the world graph, the tiered encounter roll, boss combat and the status card.
package adventure

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wrenbeck/WanderBot_Go/internal/concurrency"
	"github.com/wrenbeck/WanderBot_Go/internal/config"
	"github.com/wrenbeck/WanderBot_Go/internal/domain"
	"github.com/wrenbeck/WanderBot_Go/internal/game"
	"github.com/wrenbeck/WanderBot_Go/internal/logger"
	"github.com/wrenbeck/WanderBot_Go/internal/repository"
)

// Leaderboard categories.
const (
	CategoryGold     = "gold"
	CategoryLevel    = "level"
	CategoryMonsters = "monsters"
)

// ActionResult is the full report of one action turn.
type ActionResult struct {
	Moved    bool     `json:"moved"`
	Location string   `json:"location"`
	Outcome  *Outcome `json:"outcome,omitempty"`

	Health           int `json:"health"`
	Gold             int `json:"gold"`
	AdventureLevel   int `json:"adventure_level"`
	AdventureXP      int `json:"adventure_xp"`
	MonstersDefeated int `json:"monsters_defeated"`
}

// StateView is the adventure status card.
type StateView struct {
	UserID           string         `json:"user_id"`
	Health           int            `json:"health"`
	MaxHealth        int            `json:"max_health"`
	Gold             int            `json:"gold"`
	Location         string         `json:"location"`
	Description      string         `json:"description"`
	Actions          []string       `json:"actions"`
	Connections      []string       `json:"connections"`
	Inventory        map[string]int `json:"inventory"`
	AdventureLevel   int            `json:"adventure_level"`
	AdventureXP      int            `json:"adventure_xp"`
	MonstersDefeated int            `json:"monsters_defeated"`
}

type Service interface {
	// PerformAction runs one serialized turn: move to an adjacent location,
	// or resolve the action through the tiered encounter roll.
	PerformAction(ctx context.Context, userID, action string) (*ActionResult, error)

	// State returns the status card for the user's current situation.
	State(ctx context.Context, userID string) (*StateView, error)

	// Leaderboard returns the top adventure records for a category
	// (gold, level or monsters).
	Leaderboard(ctx context.Context, category string, limit int) ([]domain.AdventureState, error)
}

type service struct {
	repo     repository.Adventure
	settings *config.SettingsStore
	locks    *concurrency.LockManager
	resolver *resolver
	now      func() time.Time
}

func NewService(repo repository.Adventure, settings *config.SettingsStore, locks *concurrency.LockManager) Service {
	return &service{
		repo:     repo,
		settings: settings,
		locks:    locks,
		resolver: newResolver(),
		now:      time.Now,
	}
}

func (s *service) PerformAction(ctx context.Context, userID, action string) (*ActionResult, error) {
	gs := s.settings.Current()
	if !gs.GameEnabled {
		return nil, domain.ErrGameDisabled
	}

	action = strings.ToLower(strings.TrimSpace(action))
	if action == "" {
		return nil, fmt.Errorf("%w: action is required", domain.ErrInvalidInput)
	}

	// One turn per user at a time.
	mu := s.locks.GetLock(userID)
	mu.Lock()
	defer mu.Unlock()

	state, err := s.repo.LoadState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load adventure state: %w", err)
	}

	// Location names double as movement actions.
	if game.IsLocation(action) {
		if !game.Adjacent(state.Location, action) {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnreachableLocation, action)
		}
		state.Location = action
		if err := s.repo.SaveState(ctx, state); err != nil {
			return nil, fmt.Errorf("failed to save adventure state: %w", err)
		}
		return s.result(state, nil, true), nil
	}

	if !game.HasAction(state.Location, action) {
		loc := game.Locations[state.Location]
		return nil, fmt.Errorf("%w: %s (available: %s)",
			domain.ErrUnknownAction, action, strings.Join(loc.Actions, ", "))
	}

	outcome := s.resolver.Resolve(state, action, gs)
	if outcome.Shop {
		// Shop screen: nothing to persist.
		return s.result(state, outcome, false), nil
	}

	// Quest progress rides in the same write as the state so a failed turn
	// leaves neither half behind.
	if gs.DailyQuestsEnabled && len(outcome.QuestUpdates) > 0 {
		log, err := s.questLogWith(ctx, userID, outcome.QuestUpdates)
		if err != nil {
			return nil, err
		}
		if err := s.repo.SaveTurn(ctx, state, log); err != nil {
			return nil, fmt.Errorf("failed to save adventure turn: %w", err)
		}
	} else if err := s.repo.SaveState(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save adventure state: %w", err)
	}

	logger.FromContext(ctx).Info("Adventure action resolved",
		"user_id", userID, "action", action, "band", outcome.Band,
		"gold_delta", outcome.GoldDelta, "leveled_up", outcome.LeveledUp)

	return s.result(state, outcome, false), nil
}

// questLogWith loads today's quest log and applies the turn's progress
// deltas without persisting; the caller saves it with the state.
func (s *service) questLogWith(ctx context.Context, userID string, updates map[string]int) (*domain.QuestLog, error) {
	today := s.now().UTC().Format(domain.DateLayout)
	log, err := s.repo.LoadQuestLog(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to load quest log: %w", err)
	}
	for key, amount := range updates {
		log.Add(key, amount)
	}
	return log, nil
}

func (s *service) result(state *domain.AdventureState, outcome *Outcome, moved bool) *ActionResult {
	return &ActionResult{
		Moved:            moved,
		Location:         state.Location,
		Outcome:          outcome,
		Health:           state.Health,
		Gold:             state.Gold,
		AdventureLevel:   state.Level(),
		AdventureXP:      state.AdventureXP,
		MonstersDefeated: state.MonstersDefeated,
	}
}

func (s *service) State(ctx context.Context, userID string) (*StateView, error) {
	if !s.settings.Current().GameEnabled {
		return nil, domain.ErrGameDisabled
	}

	state, err := s.repo.LoadState(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load adventure state: %w", err)
	}

	loc := game.Locations[state.Location]
	return &StateView{
		UserID:           state.UserID,
		Health:           state.Health,
		MaxHealth:        domain.MaxHealth,
		Gold:             state.Gold,
		Location:         state.Location,
		Description:      loc.Description,
		Actions:          loc.Actions,
		Connections:      loc.Connections,
		Inventory:        state.Inventory,
		AdventureLevel:   state.Level(),
		AdventureXP:      state.AdventureXP,
		MonstersDefeated: state.MonstersDefeated,
	}, nil
}

func (s *service) Leaderboard(ctx context.Context, category string, limit int) ([]domain.AdventureState, error) {
	if !s.settings.Current().AdventureLeaderboardEnabled {
		return nil, domain.ErrGameDisabled
	}
	if limit <= 0 || limit > 25 {
		limit = 10
	}

	switch category {
	case CategoryGold, "":
		return s.repo.TopByGold(ctx, limit)
	case CategoryLevel:
		return s.repo.TopByLevel(ctx, limit)
	case CategoryMonsters:
		return s.repo.TopByMonsters(ctx, limit)
	default:
		return nil, fmt.Errorf("%w: unknown leaderboard category %q", domain.ErrInvalidInput, category)
	}
}
