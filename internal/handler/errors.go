package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidFromTime   = "from_time must be an RFC3339 timestamp"
	ErrMsgInvalidPeriod     = "period must be one of Day, Week, Month, Year"

	// Member operation error messages
	ErrMsgAddMemberFailed    = "Failed to add group member"
	ErrMsgDeleteMemberFailed = "Failed to delete group member"
	ErrMsgRenameMemberFailed = "Failed to rename group member"
	ErrMsgUpdateMemberFailed = "Failed to update group member"

	// Query error messages
	ErrMsgGetGroupDataFailed     = "Failed to get group data"
	ErrMsgGetSkillDataFailed     = "Failed to get skill data"
	ErrMsgGetCollectionLogFailed = "Failed to get collection log"
	ErrMsgMembershipCheckFailed  = "Failed to check group membership"

	// Notification error messages
	ErrMsgGetWebhookSettingsFailed    = "Failed to get webhook settings"
	ErrMsgUpdateWebhookSettingsFailed = "Failed to update webhook settings"
	ErrMsgRequestItemFailed           = "Failed to request item"
)

// Success messages for API responses
// These are user-facing success messages returned in JSON responses
const (
	MsgMemberAddedSuccess     = "Member added successfully"
	MsgMemberDeletedSuccess   = "Member deleted successfully"
	MsgMemberRenamedSuccess   = "Member renamed successfully"
	MsgMemberUpdatedSuccess   = "Member updated successfully"
	MsgLoggedIn               = "Logged in"
	MsgInGroup                = "Member is in the group"
)
