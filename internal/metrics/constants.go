package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameMessagesProcessed  = "messages_processed_total"
	MetricNameXPAwarded          = "xp_awarded_total"
	MetricNameLevelUps           = "level_ups_total"
	MetricNameActionsPerformed   = "adventure_actions_total"
	MetricNameEncountersResolved = "encounters_resolved_total"
	MetricNameQuestsClaimed      = "quests_claimed_total"
	MetricNameItemsBought        = "items_bought_total"
	MetricNameItemsUsed          = "items_used_total"
	MetricNameGoldSpent          = "gold_spent_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextMessagesProcessed  = "Total number of chat messages processed"
	HelpTextXPAwarded          = "Total chat XP awarded"
	HelpTextLevelUps           = "Total chat level-ups"
	HelpTextActionsPerformed   = "Total adventure actions performed"
	HelpTextEncountersResolved = "Total encounters resolved, by band"
	HelpTextQuestsClaimed      = "Total daily quest rewards claimed"
	HelpTextItemsBought        = "Total number of items bought"
	HelpTextItemsUsed          = "Total number of items used"
	HelpTextGoldSpent          = "Total gold spent in the shop"
)

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelBand   = "band"
	LabelAction = "action"
	LabelItem   = "item"
)

// HTTPLatencyBuckets covers the expected latency range of game endpoints.
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
