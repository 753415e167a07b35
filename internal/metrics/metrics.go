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

// Group Metrics
var (
	MemberUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMemberUpdatesTotal,
			Help: HelpTextMemberUpdatesTotal,
		},
		[]string{LabelResult},
	)

	ValidationFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameValidationFailuresTotal,
			Help: HelpTextValidationFailuresTotal,
		},
		[]string{LabelField},
	)

	MemberChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMemberChangesTotal,
			Help: HelpTextMemberChangesTotal,
		},
		[]string{LabelOperation, LabelResult},
	)
)

// Notification Metrics
var (
	ItemRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemRequestsTotal,
			Help: HelpTextItemRequestsTotal,
		},
		[]string{LabelResult},
	)

	WebhookDispatchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameWebhookDispatchDuration,
			Help:    HelpTextWebhookDispatchDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelResult},
	)
)

// Maintenance Metrics
var (
	SkillSnapshotsPrunedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSkillSnapshotsPrunedTotal,
			Help: HelpTextSkillSnapshotsPrunedTotal,
		},
		[]string{LabelPeriod},
	)
)
