// Package metrics defines the Prometheus collectors and the HTTP middleware
// that feeds the request metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	MessagesProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMessagesProcessed,
			Help: HelpTextMessagesProcessed,
		},
	)

	XPAwarded = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameXPAwarded,
			Help: HelpTextXPAwarded,
		},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	ActionsPerformed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameActionsPerformed,
			Help: HelpTextActionsPerformed,
		},
		[]string{LabelAction},
	)

	EncountersResolved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEncountersResolved,
			Help: HelpTextEncountersResolved,
		},
		[]string{LabelBand},
	)

	QuestsClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQuestsClaimed,
			Help: HelpTextQuestsClaimed,
		},
	)

	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelItem},
	)

	ItemsUsed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsUsed,
			Help: HelpTextItemsUsed,
		},
		[]string{LabelItem},
	)

	GoldSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameGoldSpent,
			Help: HelpTextGoldSpent,
		},
	)
)
