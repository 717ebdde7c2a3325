package usecase

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultApplied  = "applied"
	resultIgnored  = "ignored"
	resultRejected = "rejected"
)

var (
	eventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tictactoe",
		Name:      "events_total",
		Help:      "Events dispatched to games, by event and result.",
	}, []string{"event", "result"})

	historyLength = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "tictactoe",
		Name:      "history_length",
		Help:      "Number of snapshots in a game's history after an applied event.",
		Buckets:   prometheus.LinearBuckets(1, 1, 10),
	})
)
