package discord

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GroupIronmen_Go/internal/domain"
)

func strPtr(s string) *string { return &s }

func sampleRequest() *domain.ItemRequest {
	return &domain.ItemRequest{
		ItemID:           4151,
		ItemName:         "Abyssal whip",
		Quantity:         1,
		MemberQuantities: map[string]int32{"Alice": 2, "Bob": 0, "@SHARED": 5},
		RequesterName:    "Carol",
	}
}

func TestHoldersText(t *testing.T) {
	tests := []struct {
		name string
		in   map[string]int32
		want string
	}{
		{"filters zero and shared", map[string]int32{"Alice": 2, "Bob": 0, "@SHARED": 5}, "Alice: 2"},
		{"sorted by name", map[string]int32{"Zed": 1, "Amy": 3}, "Amy: 3\nZed: 1"},
		{"negative ignored", map[string]int32{"Alice": -1}, domain.ItemRequestNoHolders},
		{"empty", map[string]int32{}, domain.ItemRequestNoHolders},
		{"nil", nil, domain.ItemRequestNoHolders},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HoldersText(tt.in))
		})
	}
}

func TestBuildItemRequestPayload(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	payload := BuildItemRequestPayload("Carol", sampleRequest(), now)

	require.Len(t, payload.Embeds, 1)
	embed := payload.Embeds[0]
	assert.Equal(t, "Item Request", embed.Title)
	assert.Equal(t, 0xFF7900, embed.Color)
	assert.Equal(t, "2024-05-01T12:30:00Z", embed.Timestamp)
	require.NotNil(t, embed.Thumbnail)
	assert.Equal(t, "https://secure.runescape.com/m=itemdb_oldschool/obj_sprite.gif?id=4151", embed.Thumbnail.URL)

	require.Len(t, embed.Fields, 3, "no note field without a note")
	assert.Equal(t, "Requester", embed.Fields[0].Name)
	assert.Equal(t, "Carol", embed.Fields[0].Value)
	assert.True(t, embed.Fields[0].Inline)
	assert.Equal(t, "Abyssal whip x1", embed.Fields[1].Value)
	assert.True(t, embed.Fields[1].Inline)
	assert.Equal(t, "Current Holders", embed.Fields[2].Name)
	assert.Equal(t, "Alice: 2", embed.Fields[2].Value)
	assert.False(t, embed.Fields[2].Inline)
}

func TestBuildItemRequestPayload_Note(t *testing.T) {
	req := sampleRequest()

	req.Note = strPtr("")
	assert.Len(t, BuildItemRequestPayload("Carol", req, time.Now()).Embeds[0].Fields, 3)

	req.Note = strPtr("for slayer")
	fields := BuildItemRequestPayload("Carol", req, time.Now()).Embeds[0].Fields
	require.Len(t, fields, 4)
	assert.Equal(t, "Note", fields[3].Name)
	assert.Equal(t, "for slayer", fields[3].Value)
}

func TestWebhookPayload_MarshalWritesInline(t *testing.T) {
	req := sampleRequest()
	req.Note = strPtr("for slayer")
	body, err := json.Marshal(BuildItemRequestPayload("Carol", req, time.Now()))
	require.NoError(t, err)

	var wire struct {
		Embeds []struct {
			Title  string                   `json:"title"`
			Fields []map[string]interface{} `json:"fields"`
		} `json:"embeds"`
	}
	require.NoError(t, json.Unmarshal(body, &wire))
	require.Len(t, wire.Embeds, 1)
	assert.Equal(t, "Item Request", wire.Embeds[0].Title)

	fields := wire.Embeds[0].Fields
	require.Len(t, fields, 4)
	wantInline := []bool{true, true, false, false}
	for i, field := range fields {
		inline, ok := field["inline"]
		require.True(t, ok, "field %v has no inline key", field["name"])
		assert.Equal(t, wantInline[i], inline, field["name"])
	}
	assert.Equal(t, "Current Holders", fields[2]["name"])
	assert.Equal(t, "Alice: 2", fields[2]["value"])
}

func TestDispatchItemRequest_Success(t *testing.T) {
	var calls int32
	var got WebhookPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewWebhookClient(time.Second)
	err := client.DispatchItemRequest(context.Background(), server.URL, "Carol", sampleRequest())

	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	require.Len(t, got.Embeds, 1)
	assert.Equal(t, "Item Request", got.Embeds[0].Title)
}

func TestDispatchItemRequest_NonSuccessStatus(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message": "Invalid Webhook Token"}`))
	}))
	defer server.Close()

	err := NewWebhookClient(time.Second).DispatchItemRequest(context.Background(), server.URL, "Carol", sampleRequest())

	var dispatchErr *domain.DispatchError
	require.ErrorAs(t, err, &dispatchErr)
	assert.Equal(t, http.StatusBadRequest, dispatchErr.StatusCode)
	assert.Contains(t, dispatchErr.Reason, "Invalid Webhook Token")
	assert.ErrorIs(t, err, domain.ErrDispatchFailed)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "no retries")
}

func TestDispatchItemRequest_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	err := NewWebhookClient(time.Second).DispatchItemRequest(context.Background(), url, "Carol", sampleRequest())

	var dispatchErr *domain.DispatchError
	require.ErrorAs(t, err, &dispatchErr)
	assert.Equal(t, 0, dispatchErr.StatusCode)
}

func TestDispatchItemRequest_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer server.Close()

	err := NewWebhookClient(50*time.Millisecond).DispatchItemRequest(context.Background(), server.URL, "Carol", sampleRequest())
	assert.ErrorIs(t, err, domain.ErrDispatchFailed)
}
