package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Validation errors
	ErrMsgValidation = "validation failed"

	// Authorization errors
	ErrMsgNotGroupMember = "player is not a member of this group"
	ErrMsgUnauthorized   = "unauthorized"

	// Member errors
	ErrMsgReservedMemberName  = "member name is reserved"
	ErrMsgInvalidMemberName   = "member name is not valid"
	ErrMsgMemberAlreadyExists = "member already exists"
	ErrMsgGroupFull           = "group already has the maximum number of members"
	ErrMsgInvalidSkillPeriod  = "invalid skill data period"
	ErrMsgInvalidFromTime     = "invalid from_time"

	// Notification configuration errors
	ErrMsgInvalidWebhookURL    = "invalid discord webhook url"
	ErrMsgItemRequestsDisabled = "item requests are not enabled for this group"
	ErrMsgWebhookNotConfigured = "discord webhook url is not configured"

	// Dispatch errors
	ErrMsgDispatchFailed = "failed to send item request"

	// Database/System errors
	ErrMsgGroupNotFound = "group not found"
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Validation errors. *ValidationError matches ErrValidation via errors.Is.
	ErrValidation = errors.New(ErrMsgValidation)

	// Authorization errors
	ErrNotGroupMember = errors.New(ErrMsgNotGroupMember)
	ErrUnauthorized   = errors.New(ErrMsgUnauthorized)

	// Configuration errors
	ErrReservedMemberName   = errors.New(ErrMsgReservedMemberName)
	ErrInvalidMemberName    = errors.New(ErrMsgInvalidMemberName)
	ErrInvalidWebhookURL    = errors.New(ErrMsgInvalidWebhookURL)
	ErrItemRequestsDisabled = errors.New(ErrMsgItemRequestsDisabled)
	ErrWebhookNotConfigured = errors.New(ErrMsgWebhookNotConfigured)

	// Member errors
	ErrMemberAlreadyExists = errors.New(ErrMsgMemberAlreadyExists)
	ErrGroupFull           = errors.New(ErrMsgGroupFull)
	ErrInvalidSkillPeriod  = errors.New(ErrMsgInvalidSkillPeriod)
	ErrInvalidFromTime     = errors.New(ErrMsgInvalidFromTime)

	// Dispatch errors. *DispatchError matches ErrDispatchFailed via errors.Is.
	ErrDispatchFailed = errors.New(ErrMsgDispatchFailed)

	// Database/System errors
	ErrGroupNotFound = errors.New(ErrMsgGroupNotFound)
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)

// ValidationError reports a single failed structural rule on a submitted
// member payload. Length violations carry the bounds; reference lookups
// carry the offending Key.
type ValidationError struct {
	Field  string
	Length int
	Min    int
	Max    int
	Key    string
	Reason string
}

func (e *ValidationError) Error() string {
	switch {
	case e.Reason != "":
		return fmt.Sprintf("%s %s: %s", e.Field, e.Key, e.Reason)
	case e.Key != "":
		return fmt.Sprintf("%s contains unknown key %s", e.Field, e.Key)
	default:
		return fmt.Sprintf("%s length %d violated range constraint %d..=%d", e.Field, e.Length, e.Min, e.Max)
	}
}

// Is lets callers match any validation failure with errors.Is(err, ErrValidation).
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// DispatchError describes a failed outbound notification. StatusCode is zero
// when the request never produced a response.
type DispatchError struct {
	StatusCode int
	Reason     string
}

func (e *DispatchError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("failed to send webhook: %s", e.Reason)
	}
	return fmt.Sprintf("discord webhook failed with status %d: %s", e.StatusCode, e.Reason)
}

// Is lets callers match any dispatch failure with errors.Is(err, ErrDispatchFailed).
func (e *DispatchError) Is(target error) bool {
	return target == ErrDispatchFailed
}
