package domain

import "time"

// User is a chat participant with their progression record.
// Level is intentionally absent: it is always recomputed from XP through
// levels.Curve so the two can never drift apart.
type User struct {
	UserID       string     `json:"user_id"`
	Username     string     `json:"username"`
	DisplayName  string     `json:"display_name"`
	XP           int        `json:"xp"`
	MessageCount int        `json:"message_count"`
	LastAwardAt  *time.Time `json:"last_award_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Name returns the best display label for the user.
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	if u.Username != "" {
		return u.Username
	}
	return "User " + u.UserID
}
