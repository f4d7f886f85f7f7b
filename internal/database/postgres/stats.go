package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wrenbeck/WanderBot_Go/internal/repository"
)

// StatsRepository implements repository.Stats for PostgreSQL
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

// ChatTotals aggregates the users table over active chatters
func (r *StatsRepository) ChatTotals(ctx context.Context) (*repository.ChatTotals, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(message_count), 0),
		       COALESCE(SUM(xp), 0),
		       COALESCE(MAX(xp), 0)
		FROM users
		WHERE message_count > 0
	`
	var totals repository.ChatTotals
	err := r.db.QueryRow(ctx, query).Scan(&totals.Users, &totals.Messages, &totals.TotalXP, &totals.MaxXP)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate chat totals: %w", err)
	}
	return &totals, nil
}

// AdventureTotals aggregates the adventure table over active adventurers
func (r *StatsRepository) AdventureTotals(ctx context.Context) (*repository.AdventureTotals, error) {
	query := `
		SELECT COUNT(*),
		       COALESCE(SUM(gold), 0),
		       COALESCE(SUM(monsters_defeated), 0),
		       COALESCE(MAX(adventure_xp), 0)
		FROM adventure_state
		WHERE gold > 0 OR monsters_defeated > 0
	`
	var totals repository.AdventureTotals
	err := r.db.QueryRow(ctx, query).Scan(&totals.Adventurers, &totals.Gold,
		&totals.MonstersDefeated, &totals.MaxAdventureXP)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate adventure totals: %w", err)
	}
	return &totals, nil
}

// QuestClaimsOn counts users with at least one claimed quest on the date
func (r *StatsRepository) QuestClaimsOn(ctx context.Context, date string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM quest_log
		WHERE quest_date = $1::date AND claimed <> '{}'::jsonb
	`
	var count int
	if err := r.db.QueryRow(ctx, query, date).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count quest claims: %w", err)
	}
	return count, nil
}
