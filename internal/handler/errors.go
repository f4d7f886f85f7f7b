package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidMaxLevel   = "Invalid max_level parameter"

	// Operation failure messages
	ErrMsgHandleMessageFailed  = "Failed to handle message"
	ErrMsgGetProfileFailed     = "Failed to retrieve profile"
	ErrMsgGetXPTableFailed     = "Failed to retrieve XP table"
	ErrMsgGetLeaderboardFailed = "Failed to retrieve leaderboard"
	ErrMsgGetStateFailed       = "Failed to retrieve adventure state"
	ErrMsgGetShopFailed        = "Failed to retrieve shop listing"
	ErrMsgGetInventoryFailed   = "Failed to retrieve inventory"
	ErrMsgGetQuestFailed       = "Failed to retrieve daily quest"
	ErrMsgGetStatsFailed       = "Failed to retrieve server stats"
	ErrMsgGetSettingsFailed    = "Failed to retrieve settings"
	ErrMsgSetSettingFailed     = "Failed to update setting"
)

// Success messages for API responses
const (
	MsgSettingUpdatedSuccess = "Setting updated successfully"
)
