package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wrenbeck/WanderBot_Go/internal/domain"
	"github.com/wrenbeck/WanderBot_Go/internal/logger"
)

// AdventureRepository implements repository.Adventure for PostgreSQL
type AdventureRepository struct {
	db *pgxpool.Pool
}

// NewAdventureRepository creates a new AdventureRepository
func NewAdventureRepository(db *pgxpool.Pool) *AdventureRepository {
	return &AdventureRepository{db: db}
}

const stateColumns = `user_id, health, gold, inventory, location, adventure_xp, monsters_defeated`

// decodeJSONMap decodes a jsonb map column, falling back to an empty map
// when the stored value is malformed. A corrupt column must never make the
// record unreadable; the next full-record save rewrites it whole.
func decodeJSONMap[V any](ctx context.Context, column string, raw []byte) map[string]V {
	if len(raw) == 0 {
		return map[string]V{}
	}
	m := map[string]V{}
	if err := json.Unmarshal(raw, &m); err != nil {
		logger.FromContext(ctx).Warn("Malformed stored JSON, treating as empty",
			"column", column, "error", err)
		return map[string]V{}
	}
	return m
}

func scanState(ctx context.Context, row pgx.Row) (*domain.AdventureState, error) {
	var s domain.AdventureState
	var inventory []byte
	err := row.Scan(&s.UserID, &s.Health, &s.Gold, &inventory, &s.Location,
		&s.AdventureXP, &s.MonstersDefeated)
	if err != nil {
		return nil, err
	}
	s.Inventory = decodeJSONMap[int](ctx, "inventory", inventory)
	return &s, nil
}

// LoadState returns the adventure record, creating the default on first access
func (r *AdventureRepository) LoadState(ctx context.Context, userID string) (*domain.AdventureState, error) {
	query := `SELECT ` + stateColumns + ` FROM adventure_state WHERE user_id = $1`

	state, err := scanState(ctx, r.db.QueryRow(ctx, query, userID))
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to load adventure state: %w", err)
	}

	state = domain.NewAdventureState(userID)
	if err := r.SaveState(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// execer is the statement surface shared by the pool and a transaction.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func upsertState(ctx context.Context, db execer, state *domain.AdventureState) error {
	inventory, err := json.Marshal(state.Inventory)
	if err != nil {
		return fmt.Errorf("failed to encode inventory: %w", err)
	}

	query := `
		INSERT INTO adventure_state (user_id, health, gold, inventory, location, adventure_xp, monsters_defeated)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE
		SET health = EXCLUDED.health,
		    gold = EXCLUDED.gold,
		    inventory = EXCLUDED.inventory,
		    location = EXCLUDED.location,
		    adventure_xp = EXCLUDED.adventure_xp,
		    monsters_defeated = EXCLUDED.monsters_defeated
	`
	_, err = db.Exec(ctx, query,
		state.UserID, state.Health, state.Gold, inventory, state.Location,
		state.AdventureXP, state.MonstersDefeated)
	if err != nil {
		return fmt.Errorf("failed to save adventure state: %w", err)
	}
	return nil
}

// SaveState writes the full adventure record in one statement
func (r *AdventureRepository) SaveState(ctx context.Context, state *domain.AdventureState) error {
	return upsertState(ctx, r.db, state)
}

// LoadQuestLog returns the quest log normalized for today. A log stamped
// with an older date comes back empty and restamped.
func (r *AdventureRepository) LoadQuestLog(ctx context.Context, userID, today string) (*domain.QuestLog, error) {
	query := `SELECT user_id, quest_date, progress, claimed FROM quest_log WHERE user_id = $1`

	var log domain.QuestLog
	var questDate time.Time
	var progress, claimed []byte

	err := r.db.QueryRow(ctx, query, userID).Scan(&log.UserID, &questDate, &progress, &claimed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewQuestLog(userID, today), nil
		}
		return nil, fmt.Errorf("failed to load quest log: %w", err)
	}

	log.Date = questDate.Format(domain.DateLayout)
	log.Progress = decodeJSONMap[int](ctx, "progress", progress)
	log.Claimed = decodeJSONMap[bool](ctx, "claimed", claimed)

	log.ResetIfStale(today)
	return &log, nil
}

func upsertQuestLog(ctx context.Context, db execer, log *domain.QuestLog) error {
	progress, err := json.Marshal(log.Progress)
	if err != nil {
		return fmt.Errorf("failed to encode quest progress: %w", err)
	}
	claimed, err := json.Marshal(log.Claimed)
	if err != nil {
		return fmt.Errorf("failed to encode quest claims: %w", err)
	}

	query := `
		INSERT INTO quest_log (user_id, quest_date, progress, claimed)
		VALUES ($1, $2::date, $3, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET quest_date = EXCLUDED.quest_date,
		    progress = EXCLUDED.progress,
		    claimed = EXCLUDED.claimed
	`
	if _, err := db.Exec(ctx, query, log.UserID, log.Date, progress, claimed); err != nil {
		return fmt.Errorf("failed to save quest log: %w", err)
	}
	return nil
}

// SaveQuestLog writes the full quest log row in one statement
func (r *AdventureRepository) SaveQuestLog(ctx context.Context, log *domain.QuestLog) error {
	return upsertQuestLog(ctx, r.db, log)
}

// SaveTurn writes the adventure record and the quest log in one
// transaction: both rows commit together or not at all.
func (r *AdventureRepository) SaveTurn(ctx context.Context, state *domain.AdventureState, log *domain.QuestLog) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin turn transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := upsertState(ctx, tx, state); err != nil {
		return err
	}
	if err := upsertQuestLog(ctx, tx, log); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit turn transaction: %w", err)
	}
	return nil
}

func (r *AdventureRepository) queryStates(ctx context.Context, query string, limit int) ([]domain.AdventureState, error) {
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query adventure leaderboard: %w", err)
	}
	defer rows.Close()

	var states []domain.AdventureState
	for rows.Next() {
		state, err := scanState(ctx, rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan adventure row: %w", err)
		}
		states = append(states, *state)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read adventure rows: %w", err)
	}
	return states, nil
}

// Each leaderboard scopes its filter to its own category so a freshly
// created record never pads an unrelated board.
const (
	topByGoldQuery = `
		SELECT ` + stateColumns + `
		FROM adventure_state
		WHERE gold > 0
		ORDER BY gold DESC
		LIMIT $1
	`
	topByLevelQuery = `
		SELECT ` + stateColumns + `
		FROM adventure_state
		WHERE adventure_xp > 0
		ORDER BY (adventure_xp / 200) + 1 DESC, adventure_xp DESC
		LIMIT $1
	`
	topByMonstersQuery = `
		SELECT ` + stateColumns + `
		FROM adventure_state
		WHERE monsters_defeated > 0
		ORDER BY monsters_defeated DESC
		LIMIT $1
	`
)

// TopByGold returns the richest adventurers
func (r *AdventureRepository) TopByGold(ctx context.Context, limit int) ([]domain.AdventureState, error) {
	return r.queryStates(ctx, topByGoldQuery, limit)
}

// TopByLevel orders by derived adventure level, XP as tiebreaker.
// Level is computed in the query, never stored.
func (r *AdventureRepository) TopByLevel(ctx context.Context, limit int) ([]domain.AdventureState, error) {
	return r.queryStates(ctx, topByLevelQuery, limit)
}

// TopByMonsters returns the fiercest monster hunters
func (r *AdventureRepository) TopByMonsters(ctx context.Context, limit int) ([]domain.AdventureState, error) {
	return r.queryStates(ctx, topByMonstersQuery, limit)
}

// DeleteStaleQuestLogs removes quest rows stamped before the given date
func (r *AdventureRepository) DeleteStaleQuestLogs(ctx context.Context, before string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM quest_log WHERE quest_date < $1::date`, before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale quest logs: %w", err)
	}
	return tag.RowsAffected(), nil
}
