package group

import "github.com/osse101/GroupIronmen_Go/internal/metrics"

// Member change operation labels
const (
	OpAdd    = "add"
	OpDelete = "delete"
	OpRename = "rename"
)

func recordChange(op string, err error) {
	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultFailure
	}
	metrics.MemberChangesTotal.WithLabelValues(op, result).Inc()
}
