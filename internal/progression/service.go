// Package progression implements the chat XP system: cooldown-gated awards
// on messages, the level curve views and the chat leaderboard.
package progression

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wrenbeck/WanderBot_Go/internal/concurrency"
	"github.com/wrenbeck/WanderBot_Go/internal/config"
	"github.com/wrenbeck/WanderBot_Go/internal/domain"
	"github.com/wrenbeck/WanderBot_Go/internal/levels"
	"github.com/wrenbeck/WanderBot_Go/internal/logger"
	"github.com/wrenbeck/WanderBot_Go/internal/repository"
)

// MessageResult reports the outcome of one chat message.
type MessageResult struct {
	Awarded      bool `json:"awarded"`
	XPAwarded    int  `json:"xp_awarded"`
	TotalXP      int  `json:"total_xp"`
	MessageCount int  `json:"message_count"`
	Level        int  `json:"level"`
	LeveledUp    bool `json:"leveled_up"`

	// Announcement is the level-up message with {level} already filled in;
	// {user} is left for the caller, which knows how to mention. Empty
	// unless LeveledUp.
	Announcement string `json:"announcement,omitempty"`

	// AnnounceChannel is the configured announcement channel ID, empty to
	// reply where the message was sent.
	AnnounceChannel string `json:"announce_channel,omitempty"`

	// Welcome is the first-message greeting, set only when this message
	// created the user's record. {user} is left for the caller.
	Welcome string `json:"welcome,omitempty"`
}

// ProfileView is the level card for one user.
type ProfileView struct {
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Level        int    `json:"level"`
	XP           int    `json:"xp"`
	IntoLevel    int    `json:"into_level"`
	Needed       int    `json:"needed"`
	MessageCount int    `json:"message_count"`
}

// XPTableRow is one row of the level requirements table.
type XPTableRow struct {
	Level    int `json:"level"`
	XPNeeded int `json:"xp_needed"` // delta from the previous level
	TotalXP  int `json:"total_xp"`  // cumulative threshold
}

// LeaderboardEntry is one row of the chat leaderboard.
type LeaderboardEntry struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	Level int    `json:"level"`
	XP    int    `json:"xp"`
}

type Service interface {
	// OnMessage runs the cooldown-gated XP award for one chat message.
	// On cooldown nothing is written and Awarded is false.
	OnMessage(ctx context.Context, userID, username, displayName string) (*MessageResult, error)

	// Profile returns the level card, deriving level from cumulative XP.
	Profile(ctx context.Context, userID string) (*ProfileView, error)

	// XPTable returns per-level requirements up to maxLevel.
	XPTable(ctx context.Context, maxLevel int) ([]XPTableRow, error)

	// Leaderboard returns the top chatters by XP.
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}

type service struct {
	repo     repository.Users
	settings *config.SettingsStore
	locks    *concurrency.LockManager
	now      func() time.Time
}

func NewService(repo repository.Users, settings *config.SettingsStore, locks *concurrency.LockManager) Service {
	return &service{
		repo:     repo,
		settings: settings,
		locks:    locks,
		now:      time.Now,
	}
}

func (s *service) curve() levels.Curve {
	gs := s.settings.Current()
	return levels.Curve{BaseXP: gs.LevelMultiplier, ScalingFactor: gs.LevelScalingFactor}
}

func (s *service) OnMessage(ctx context.Context, userID, username, displayName string) (*MessageResult, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user_id is required", domain.ErrInvalidInput)
	}

	gs := s.settings.Current()
	curve := levels.Curve{BaseXP: gs.LevelMultiplier, ScalingFactor: gs.LevelScalingFactor}

	mu := s.locks.GetLock(userID)
	mu.Lock()
	defer mu.Unlock()

	user, err := s.repo.GetOrCreateUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	now := s.now()
	if user.LastAwardAt != nil && now.Sub(*user.LastAwardAt) < gs.XPCooldown {
		// Cooldown: the message earns nothing and writes nothing.
		return &MessageResult{
			TotalXP:      user.XP,
			MessageCount: user.MessageCount,
			Level:        curve.LevelFor(user.XP),
		}, nil
	}

	levelBefore := curve.LevelFor(user.XP)
	firstMessage := user.MessageCount == 0 && user.XP == 0

	user.XP += gs.XPPerMessage
	user.MessageCount++
	user.LastAwardAt = &now
	user.Username = username
	user.DisplayName = displayName

	if err := s.repo.SaveProgress(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save progression: %w", err)
	}

	newLevel := curve.LevelFor(user.XP)
	result := &MessageResult{
		Awarded:      true,
		XPAwarded:    gs.XPPerMessage,
		TotalXP:      user.XP,
		MessageCount: user.MessageCount,
		Level:        newLevel,
		LeveledUp:    newLevel > levelBefore,
	}

	if firstMessage {
		result.Welcome = gs.WelcomeMessage
	}

	if result.LeveledUp {
		result.Announcement = strings.ReplaceAll(gs.LevelUpMessage, "{level}", fmt.Sprintf("%d", newLevel))
		result.AnnounceChannel = gs.XPChannel
		logger.FromContext(ctx).Info("Chat level up",
			"user_id", userID, "level", newLevel, "xp", user.XP)
	}

	return result, nil
}

func (s *service) Profile(ctx context.Context, userID string) (*ProfileView, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	progress := s.curve().ProgressFor(user.XP)
	return &ProfileView{
		UserID:       user.UserID,
		Name:         user.Name(),
		Level:        progress.Level,
		XP:           user.XP,
		IntoLevel:    progress.IntoLevel,
		Needed:       progress.Needed,
		MessageCount: user.MessageCount,
	}, nil
}

func (s *service) XPTable(_ context.Context, maxLevel int) ([]XPTableRow, error) {
	if maxLevel <= 0 {
		maxLevel = 10
	}
	if maxLevel > 25 {
		maxLevel = 25
	}

	curve := s.curve()
	rows := make([]XPTableRow, 0, maxLevel)
	for level := 1; level <= maxLevel; level++ {
		rows = append(rows, XPTableRow{
			Level:    level,
			XPNeeded: curve.XPForNextLevel(level - 1),
			TotalXP:  curve.ThresholdFor(level),
		})
	}
	rows[0].XPNeeded = 0 // level 1 is the starting level
	return rows, nil
}

func (s *service) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 || limit > 25 {
		limit = 10
	}

	users, err := s.repo.TopByXP(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}

	curve := s.curve()
	entries := make([]LeaderboardEntry, 0, len(users))
	for i := range users {
		entries = append(entries, LeaderboardEntry{
			Rank:  i + 1,
			Name:  users[i].Name(),
			Level: curve.LevelFor(users[i].XP),
			XP:    users[i].XP,
		})
	}
	return entries, nil
}
