package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RecommendServedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reco_recommendations_served_total",
			Help: "Count of served recommendation lists by vertical and experiment group.",
		},
		[]string{"vertical", "experiment_group"},
	)

	FeedbackEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reco_feedback_events_total",
			Help: "Count of feedback events by vertical, event_type, and experiment group.",
		},
		[]string{"vertical", "event_type", "experiment_group"},
	)
)

func init() {
	prometheus.MustRegister(RecommendServedTotal, FeedbackEventsTotal)
}
