package repository

import "context"

// ChatTotals aggregates the chat progression table.
type ChatTotals struct {
	Users    int `json:"users"`
	Messages int `json:"messages"`
	TotalXP  int `json:"total_xp"`
	MaxXP    int `json:"max_xp"`
}

// AdventureTotals aggregates the adventure state table.
type AdventureTotals struct {
	Adventurers      int `json:"adventurers"`
	Gold             int `json:"gold"`
	MonstersDefeated int `json:"monsters_defeated"`
	MaxAdventureXP   int `json:"max_adventure_xp"`
}

// Stats defines the interface for aggregate statistics queries.
type Stats interface {
	ChatTotals(ctx context.Context) (*ChatTotals, error)
	AdventureTotals(ctx context.Context) (*AdventureTotals, error)

	// QuestClaimsOn counts users with at least one claimed quest on the date.
	QuestClaimsOn(ctx context.Context, date string) (int, error)
}
