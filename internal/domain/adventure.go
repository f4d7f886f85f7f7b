package domain

// AdventureState is the persistent per-user mini-game record.
type AdventureState struct {
	UserID           string         `json:"user_id"`
	Health           int            `json:"health"`
	Gold             int            `json:"gold"`
	Inventory        map[string]int `json:"inventory"`
	Location         string         `json:"location"`
	AdventureXP      int            `json:"adventure_xp"`
	MonstersDefeated int            `json:"monsters_defeated"`
}

// NewAdventureState returns the default record created on first play.
func NewAdventureState(userID string) *AdventureState {
	return &AdventureState{
		UserID:    userID,
		Health:    MaxHealth,
		Gold:      0,
		Inventory: map[string]int{},
		Location:  LocationTown,
	}
}

// Level derives the adventure level from adventure XP.
func (s *AdventureState) Level() int {
	return s.AdventureXP/AdventureXPPerLevel + 1
}

// ClampHealth forces health back into [0, MaxHealth].
func (s *AdventureState) ClampHealth() {
	if s.Health > MaxHealth {
		s.Health = MaxHealth
	}
	if s.Health < 0 {
		s.Health = 0
	}
}

// Held returns the held count for an item, zero when absent.
func (s *AdventureState) Held(item string) int {
	return s.Inventory[item]
}

// AddItem increments an item count.
func (s *AdventureState) AddItem(item string, count int) {
	if s.Inventory == nil {
		s.Inventory = map[string]int{}
	}
	s.Inventory[item] += count
}

// RemoveItem decrements an item count, pruning the entry at zero.
// Zero-count entries never persist.
func (s *AdventureState) RemoveItem(item string, count int) {
	if s.Inventory == nil {
		return
	}
	s.Inventory[item] -= count
	if s.Inventory[item] <= 0 {
		delete(s.Inventory, item)
	}
}
