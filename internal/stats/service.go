// Package stats aggregates server-wide activity numbers for the stats card.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/wrenbeck/WanderBot_Go/internal/config"
	"github.com/wrenbeck/WanderBot_Go/internal/domain"
	"github.com/wrenbeck/WanderBot_Go/internal/levels"
	"github.com/wrenbeck/WanderBot_Go/internal/repository"
)

// Overview is the full statistics card.
type Overview struct {
	Chat              repository.ChatTotals      `json:"chat"`
	Adventure         repository.AdventureTotals `json:"adventure"`
	MaxChatLevel      int                        `json:"max_chat_level"`
	MaxAdventureLevel int                        `json:"max_adventure_level"`
	QuestClaimsToday  int                        `json:"quest_claims_today"`
}

type Service interface {
	// Overview aggregates chat and adventure totals. Max levels are derived
	// from the max XP values, never read from storage.
	Overview(ctx context.Context) (*Overview, error)
}

type service struct {
	repo     repository.Stats
	settings *config.SettingsStore
	now      func() time.Time
}

func NewService(repo repository.Stats, settings *config.SettingsStore) Service {
	return &service{repo: repo, settings: settings, now: time.Now}
}

func (s *service) Overview(ctx context.Context) (*Overview, error) {
	chat, err := s.repo.ChatTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat totals: %w", err)
	}

	adv, err := s.repo.AdventureTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load adventure totals: %w", err)
	}

	today := s.now().UTC().Format(domain.DateLayout)
	claims, err := s.repo.QuestClaimsOn(ctx, today)
	if err != nil {
		return nil, fmt.Errorf("failed to count quest claims: %w", err)
	}

	gs := s.settings.Current()
	curve := levels.Curve{BaseXP: gs.LevelMultiplier, ScalingFactor: gs.LevelScalingFactor}

	maxChatLevel := 0
	if chat.MaxXP > 0 {
		maxChatLevel = curve.LevelFor(chat.MaxXP)
	}
	maxAdvLevel := 0
	if adv.MaxAdventureXP > 0 || adv.Adventurers > 0 {
		maxAdvLevel = adv.MaxAdventureXP/domain.AdventureXPPerLevel + 1
	}

	return &Overview{
		Chat:              *chat,
		Adventure:         *adv,
		MaxChatLevel:      maxChatLevel,
		MaxAdventureLevel: maxAdvLevel,
		QuestClaimsToday:  claims,
	}, nil
}
