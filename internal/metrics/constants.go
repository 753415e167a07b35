package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Group metric names
const (
	MetricNameMemberUpdatesTotal      = "member_updates_total"
	MetricNameValidationFailuresTotal = "validation_failures_total"
	MetricNameMemberChangesTotal      = "member_changes_total"
)

// Notification metric names
const (
	MetricNameItemRequestsTotal       = "item_requests_total"
	MetricNameWebhookDispatchDuration = "webhook_dispatch_duration_seconds"
)

// Maintenance metric names
const (
	MetricNameSkillSnapshotsPrunedTotal = "skill_snapshots_pruned_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal       = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration     = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight    = "Current number of HTTP requests being served"
	HelpTextMemberUpdatesTotal      = "Total number of member state updates by result"
	HelpTextValidationFailuresTotal = "Total number of rejected member payloads by field"
	HelpTextMemberChangesTotal      = "Total number of member add, rename and delete operations"
	HelpTextItemRequestsTotal       = "Total number of item requests by result"
	HelpTextWebhookDispatchDuration = "Discord webhook call latency in seconds"

	HelpTextSkillSnapshotsPrunedTotal = "Total number of expired skill snapshots deleted by period"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelResult    = "result"
	LabelField     = "field"
	LabelOperation = "operation"
	LabelPeriod    = "period"
)

const (
	ResultSuccess  = "success"
	ResultFailure  = "failure"
	ResultRejected = "rejected"

	// PathUnmatched labels requests that matched no route
	PathUnmatched = "unmatched"
)

// HTTPLatencyBuckets defines the histogram buckets for request durations
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
