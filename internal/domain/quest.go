package domain

// QuestDefinition is one entry of the fixed daily quest catalog.
type QuestDefinition struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"` // progress key: monsters, explore, mine, gold
	Target      int    `json:"target"`
	Reward      int    `json:"reward"` // gold
}

// QuestLog is the per-user daily quest progress record. Progress never
// carries across a day boundary: every reader and writer must call
// ResetIfStale with the current date before touching it.
type QuestLog struct {
	UserID   string          `json:"user_id"`
	Date     string          `json:"date"` // DateLayout
	Progress map[string]int  `json:"progress"`
	Claimed  map[string]bool `json:"claimed"`
}

// NewQuestLog returns an empty log stamped with the given date.
func NewQuestLog(userID, date string) *QuestLog {
	return &QuestLog{
		UserID:   userID,
		Date:     date,
		Progress: map[string]int{},
		Claimed:  map[string]bool{},
	}
}

// ResetIfStale empties the log and restamps it when its stored date differs
// from today. Returns true when a rollover happened.
func (q *QuestLog) ResetIfStale(today string) bool {
	if q.Date == today {
		if q.Progress == nil {
			q.Progress = map[string]int{}
		}
		if q.Claimed == nil {
			q.Claimed = map[string]bool{}
		}
		return false
	}
	q.Date = today
	q.Progress = map[string]int{}
	q.Claimed = map[string]bool{}
	return true
}

// Add accumulates progress for a key. Zero amounts are ignored.
func (q *QuestLog) Add(key string, amount int) {
	if amount == 0 {
		return
	}
	if q.Progress == nil {
		q.Progress = map[string]int{}
	}
	q.Progress[key] += amount
}
