package repository

import (
	"context"

	"github.com/wrenbeck/WanderBot_Go/internal/domain"
)

// Adventure defines the interface for adventure state and quest log access.
// This is the game's storage boundary: implementations own record atomicity
// (a saved state is visible to readers whole or not at all) while the
// services own turn serialization.
type Adventure interface {
	// LoadState returns the adventure record, creating and persisting the
	// default record (full health, no gold, town) on first access.
	LoadState(ctx context.Context, userID string) (*domain.AdventureState, error)

	// SaveState writes the full adventure record for the user.
	SaveState(ctx context.Context, state *domain.AdventureState) error

	// LoadQuestLog returns the quest log with the day-rollover invariant
	// already applied for today: a log stamped with an older date comes back
	// empty and restamped. The rollover is applied with the read.
	LoadQuestLog(ctx context.Context, userID, today string) (*domain.QuestLog, error)

	// SaveQuestLog writes the full quest log row (date, progress, claimed)
	// in one statement.
	SaveQuestLog(ctx context.Context, log *domain.QuestLog) error

	// SaveTurn writes the adventure record and the quest log atomically:
	// both rows are persisted or neither is. Turns that touch gold and the
	// claim markers together go through here.
	SaveTurn(ctx context.Context, state *domain.AdventureState, log *domain.QuestLog) error

	// Leaderboards. Adventure level is derived from XP, including in the
	// ordering: level descending, then XP descending.
	TopByGold(ctx context.Context, limit int) ([]domain.AdventureState, error)
	TopByLevel(ctx context.Context, limit int) ([]domain.AdventureState, error)
	TopByMonsters(ctx context.Context, limit int) ([]domain.AdventureState, error)

	// DeleteStaleQuestLogs removes logs stamped before the given date.
	// Housekeeping only; correctness never depends on it because rollover
	// is applied lazily on read.
	DeleteStaleQuestLogs(ctx context.Context, before string) (int64, error)
}
