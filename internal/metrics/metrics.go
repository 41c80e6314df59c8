package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Cycle metrics
var (
	// CyclesTotal counts resolve->fetch->build cycles by trigger and outcome
	CyclesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_cycles_total",
			Help: "Total number of weather lookup cycles",
		},
		[]string{"trigger", "status"},
	)

	// CycleDuration tracks how long a cycle takes end to end
	CycleDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "weather_cycle_duration_seconds",
			Help:    "Duration of weather lookup cycles in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"trigger"},
	)
)

// Provider metrics
var (
	// ProviderRequestsTotal counts outbound requests to geocoding and forecast providers
	ProviderRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_provider_requests_total",
			Help: "Total number of requests sent to external providers",
		},
		[]string{"provider", "status"},
	)

	// ProviderRequestDuration tracks provider latency
	ProviderRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "weather_provider_request_duration_seconds",
			Help:    "Duration of provider requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"provider"},
	)
)

// SuggestionLookupsTotal counts debounced suggestion lookups by outcome:
// "rendered", "stale" or "failed".
var SuggestionLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "weather_suggestion_lookups_total",
		Help: "Total number of debounced suggestion lookups",
	},
	[]string{"outcome"},
)

// AppStartTime records when the application started
var AppStartTime = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "weather_lookup_app_start_time_seconds",
		Help: "Unix timestamp of when the application started",
	},
)

func init() {
	AppStartTime.SetToCurrentTime()
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordCycle records a finished cycle
func RecordCycle(trigger string, duration time.Duration, err error) {
	CyclesTotal.WithLabelValues(trigger, status(err)).Inc()
	CycleDuration.WithLabelValues(trigger).Observe(duration.Seconds())
}

// RecordProviderRequest records one outbound provider call
func RecordProviderRequest(provider string, duration time.Duration, err error) {
	ProviderRequestsTotal.WithLabelValues(provider, status(err)).Inc()
	ProviderRequestDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordSuggestion records the outcome of a suggestion lookup
func RecordSuggestion(outcome string) {
	SuggestionLookupsTotal.WithLabelValues(outcome).Inc()
}
