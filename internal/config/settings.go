package config

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/wrenbeck/WanderBot_Go/internal/logger"
	"github.com/wrenbeck/WanderBot_Go/internal/repository"
)

// Setting keys stored in the settings table. Values are strings; parsing
// falls back to the documented default on any malformed or missing value.
const (
	KeyXPPerMessage                = "xp_per_message"
	KeyXPCooldown                  = "xp_cooldown"
	KeyLevelMultiplier             = "level_multiplier"
	KeyLevelScalingFactor          = "level_scaling_factor"
	KeyGameEnabled                 = "game_enabled"
	KeyRareEventChance             = "rare_event_chance"
	KeyLegendaryEventChance        = "legendary_event_chance"
	KeyBossEncounterChance         = "boss_encounter_chance"
	KeyDailyQuestsEnabled          = "daily_quests_enabled"
	KeyAdventureLeaderboardEnabled = "adventure_leaderboard_enabled"
	KeyXPChannel                   = "xp_channel"
	KeyLevelUpMessage              = "level_up_message"
	KeyWelcomeMessage              = "welcome_message"
)

var knownKeys = map[string]struct{}{
	KeyXPPerMessage:                {},
	KeyXPCooldown:                  {},
	KeyLevelMultiplier:             {},
	KeyLevelScalingFactor:          {},
	KeyGameEnabled:                 {},
	KeyRareEventChance:             {},
	KeyLegendaryEventChance:        {},
	KeyBossEncounterChance:         {},
	KeyDailyQuestsEnabled:          {},
	KeyAdventureLeaderboardEnabled: {},
	KeyXPChannel:                   {},
	KeyLevelUpMessage:              {},
	KeyWelcomeMessage:              {},
}

// KnownKey reports whether key is one of the tunable settings.
func KnownKey(key string) bool {
	_, ok := knownKeys[key]
	return ok
}

// GameSettings is an immutable snapshot of the tunable game configuration.
type GameSettings struct {
	XPPerMessage                int           `json:"xp_per_message"`
	XPCooldown                  time.Duration `json:"xp_cooldown"`
	LevelMultiplier             int           `json:"level_multiplier"`
	LevelScalingFactor          float64       `json:"level_scaling_factor"`
	GameEnabled                 bool          `json:"game_enabled"`
	RareEventChance             int           `json:"rare_event_chance"`
	LegendaryEventChance        int           `json:"legendary_event_chance"`
	BossEncounterChance         int           `json:"boss_encounter_chance"`
	DailyQuestsEnabled          bool          `json:"daily_quests_enabled"`
	AdventureLeaderboardEnabled bool          `json:"adventure_leaderboard_enabled"`
	XPChannel                   string        `json:"xp_channel"`
	LevelUpMessage              string        `json:"level_up_message"`
	WelcomeMessage              string        `json:"welcome_message"`
}

// DefaultGameSettings returns the documented defaults.
func DefaultGameSettings() GameSettings {
	return GameSettings{
		XPPerMessage:                15,
		XPCooldown:                  60 * time.Second,
		LevelMultiplier:             100,
		LevelScalingFactor:          1.2,
		GameEnabled:                 true,
		RareEventChance:             5,
		LegendaryEventChance:        1,
		BossEncounterChance:         3,
		DailyQuestsEnabled:          true,
		AdventureLeaderboardEnabled: true,
		XPChannel:                   "",
		LevelUpMessage:              "Congratulations {user}! You reached level {level}!",
		WelcomeMessage:              "Welcome to the server, {user}!",
	}
}

// SettingsStore holds the current GameSettings snapshot. The snapshot is
// loaded once at startup and replaced only by Reload (admin mutation path);
// engines read it without any storage round-trip.
type SettingsStore struct {
	repo repository.Settings
	snap atomic.Pointer[GameSettings]
}

// NewSettingsStore creates a store primed with defaults.
func NewSettingsStore(repo repository.Settings) *SettingsStore {
	s := &SettingsStore{repo: repo}
	defaults := DefaultGameSettings()
	s.snap.Store(&defaults)
	return s
}

// Current returns the active snapshot.
func (s *SettingsStore) Current() GameSettings {
	return *s.snap.Load()
}

// Reload reads the settings table and swaps in a fresh snapshot.
// Unknown keys are ignored; malformed values keep their defaults.
func (s *SettingsStore) Reload(ctx context.Context) error {
	stored, err := s.repo.All(ctx)
	if err != nil {
		return err
	}

	gs := DefaultGameSettings()
	parseInt(stored, KeyXPPerMessage, &gs.XPPerMessage)
	parseSeconds(stored, KeyXPCooldown, &gs.XPCooldown)
	parsePositiveInt(stored, KeyLevelMultiplier, &gs.LevelMultiplier)
	parsePositiveFloat(stored, KeyLevelScalingFactor, &gs.LevelScalingFactor)
	parseBool(stored, KeyGameEnabled, &gs.GameEnabled)
	parseInt(stored, KeyRareEventChance, &gs.RareEventChance)
	parseInt(stored, KeyLegendaryEventChance, &gs.LegendaryEventChance)
	parseInt(stored, KeyBossEncounterChance, &gs.BossEncounterChance)
	parseBool(stored, KeyDailyQuestsEnabled, &gs.DailyQuestsEnabled)
	parseBool(stored, KeyAdventureLeaderboardEnabled, &gs.AdventureLeaderboardEnabled)
	parseString(stored, KeyXPChannel, &gs.XPChannel)
	parseString(stored, KeyLevelUpMessage, &gs.LevelUpMessage)
	parseString(stored, KeyWelcomeMessage, &gs.WelcomeMessage)

	s.snap.Store(&gs)
	logger.FromContext(ctx).Info("Game settings reloaded")
	return nil
}

// Set persists a key and reloads the snapshot so the change is visible
// to all engines at once.
func (s *SettingsStore) Set(ctx context.Context, key, value string) error {
	if err := s.repo.Set(ctx, key, value); err != nil {
		return err
	}
	return s.Reload(ctx)
}

// All returns the stored settings table contents.
func (s *SettingsStore) All(ctx context.Context) (map[string]string, error) {
	return s.repo.All(ctx)
}

func parseString(stored map[string]string, key string, dst *string) {
	if v, ok := stored[key]; ok {
		*dst = v
	}
}

func parseInt(stored map[string]string, key string, dst *int) {
	v, ok := stored[key]
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return
	}
	*dst = n
}

func parseFloat(stored map[string]string, key string, dst *float64) {
	v, ok := stored[key]
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return
	}
	*dst = f
}

// parsePositiveInt is parseInt for keys where zero or negative values are
// meaningless. The level curve parameters must stay positive, so a stored
// "0" or "-5" keeps the default instead of degenerating the curve.
func parsePositiveInt(stored map[string]string, key string, dst *int) {
	v, ok := stored[key]
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	*dst = n
}

func parsePositiveFloat(stored map[string]string, key string, dst *float64) {
	v, ok := stored[key]
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f <= 0 {
		return
	}
	*dst = f
}

func parseBool(stored map[string]string, key string, dst *bool) {
	v, ok := stored[key]
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return
	}
	*dst = b
}

func parseSeconds(stored map[string]string, key string, dst *time.Duration) {
	v, ok := stored[key]
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return
	}
	*dst = time.Duration(n) * time.Second
}
