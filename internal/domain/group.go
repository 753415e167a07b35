package domain

// Group identifies an authenticated group.
type Group struct {
	ID   int64  `json:"group_id"`
	Name string `json:"group_name"`
}

// WebhookSettings is the per-group notification configuration.
type WebhookSettings struct {
	DiscordWebhookURL   *string `json:"discord_webhook_url"`
	ItemRequestsEnabled bool    `json:"item_requests_enabled"`
}

// WebhookURL returns the configured webhook url, or "" when unset.
func (s WebhookSettings) WebhookURL() string {
	if s.DiscordWebhookURL == nil {
		return ""
	}
	return *s.DiscordWebhookURL
}

// ItemRequest asks the group's channel for an item held by other members.
// It is never persisted.
type ItemRequest struct {
	ItemID           int32            `json:"item_id"`
	ItemName         string           `json:"item_name"`
	Quantity         int32            `json:"quantity"`
	Note             *string          `json:"note,omitempty"`
	MemberQuantities map[string]int32 `json:"member_quantities"`
	RequesterName    string           `json:"requester_name"`
}

// ItemRequestResult is returned once an item request has been delivered.
type ItemRequestResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
