package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/GroupIronmen_Go/internal/domain"
	"github.com/osse101/GroupIronmen_Go/internal/logger"
	"github.com/osse101/GroupIronmen_Go/internal/metrics"
)

// maxErrorBody caps how much of a failed response is kept for the error.
const maxErrorBody = 1024

// Dispatcher delivers item request notifications.
type Dispatcher interface {
	DispatchItemRequest(ctx context.Context, webhookURL, requesterName string, req *domain.ItemRequest) error
}

// WebhookPayload is the body posted to a Discord webhook.
type WebhookPayload struct {
	Embeds []*discordgo.MessageEmbed `json:"embeds"`
}

// embedField always carries inline; discordgo omits it when false.
type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// wireEmbed shadows the embed's fields with embedField.
type wireEmbed struct {
	*discordgo.MessageEmbed
	Fields []embedField `json:"fields,omitempty"`
}

// MarshalJSON writes every embed field as {name, value, inline}.
func (p WebhookPayload) MarshalJSON() ([]byte, error) {
	embeds := make([]wireEmbed, 0, len(p.Embeds))
	for _, embed := range p.Embeds {
		wire := wireEmbed{MessageEmbed: embed}
		for _, field := range embed.Fields {
			wire.Fields = append(wire.Fields, embedField{Name: field.Name, Value: field.Value, Inline: field.Inline})
		}
		embeds = append(embeds, wire)
	}
	return json.Marshal(struct {
		Embeds []wireEmbed `json:"embeds"`
	}{Embeds: embeds})
}

// WebhookClient posts to Discord webhooks. It makes exactly one attempt per
// notification.
type WebhookClient struct {
	client *http.Client
	now    func() time.Time
}

// NewWebhookClient creates a WebhookClient whose requests time out after timeout.
func NewWebhookClient(timeout time.Duration) *WebhookClient {
	return &WebhookClient{
		client: &http.Client{Timeout: timeout},
		now:    time.Now,
	}
}

// DispatchItemRequest builds the item request embed and posts it to webhookURL.
func (c *WebhookClient) DispatchItemRequest(ctx context.Context, webhookURL, requesterName string, req *domain.ItemRequest) error {
	payload := BuildItemRequestPayload(requesterName, req, c.now())
	body, err := json.Marshal(payload)
	if err != nil {
		return &domain.DispatchError{Reason: fmt.Sprintf("failed to marshal payload: %v", err)}
	}

	start := time.Now()
	err = c.post(ctx, webhookURL, body)
	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultFailure
	}
	metrics.WebhookDispatchDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())

	if err != nil {
		logger.FromContext(ctx).Warn("Discord webhook dispatch failed", "error", err, "item_id", req.ItemID)
		return err
	}
	logger.FromContext(ctx).Info("Item request sent", "requester", requesterName, "item_id", req.ItemID)
	return nil
}

func (c *WebhookClient) post(ctx context.Context, webhookURL string, body []byte) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return &domain.DispatchError{Reason: err.Error()}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return &domain.DispatchError{Reason: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, readErr := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		reason := strings.TrimSpace(string(text))
		if readErr != nil || reason == "" {
			reason = "Unknown error"
		}
		return &domain.DispatchError{StatusCode: resp.StatusCode, Reason: reason}
	}

	// Drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// BuildItemRequestPayload renders req as a single Discord embed.
func BuildItemRequestPayload(requesterName string, req *domain.ItemRequest, now time.Time) *WebhookPayload {
	fields := []*discordgo.MessageEmbedField{
		{Name: domain.ItemRequestFieldRequest, Value: requesterName, Inline: true},
		{Name: domain.ItemRequestFieldItem, Value: fmt.Sprintf("%s x%d", req.ItemName, req.Quantity), Inline: true},
		{Name: domain.ItemRequestFieldHolders, Value: HoldersText(req.MemberQuantities)},
	}
	if req.Note != nil && *req.Note != "" {
		fields = append(fields, &discordgo.MessageEmbedField{Name: domain.ItemRequestFieldNote, Value: *req.Note})
	}

	embed := &discordgo.MessageEmbed{
		Title:  domain.ItemRequestTitle,
		Color:  domain.ItemRequestColor,
		Fields: fields,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: fmt.Sprintf(domain.ItemImageURLTemplate, req.ItemID),
		},
		Timestamp: now.UTC().Format(time.RFC3339),
	}
	return &WebhookPayload{Embeds: []*discordgo.MessageEmbed{embed}}
}

// HoldersText lists members holding a positive quantity, one "name: qty"
// per line sorted by name. The shared member is never listed.
func HoldersText(quantities map[string]int32) string {
	names := make([]string, 0, len(quantities))
	for name, qty := range quantities {
		if qty > 0 && !domain.IsSharedMember(name) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return domain.ItemRequestNoHolders
	}
	sort.Strings(names)

	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = fmt.Sprintf("%s: %d", name, quantities[name])
	}
	return strings.Join(lines, "\n")
}
