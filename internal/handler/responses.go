package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/GroupIronmen_Go/internal/domain"
	"github.com/osse101/GroupIronmen_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped response.
// Server-side failures are logged at error level, client mistakes at warn.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName, "error", err, "status", status)
	} else {
		log.Warn(opName, "error", err, "status", status)
	}

	respondError(w, status, msg)
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgAuthFailedError    = "Authentication failed. Please check your group name and token."

	// Membership messages
	ErrMsgNotGroupMemberError = "Player is not a member of this group"
	ErrMsgRequesterNotMember  = "Requester is not a member of this group"

	// Member messages
	ErrMsgReservedNameError  = "Member name is reserved"
	ErrMsgInvalidNameError   = "Provided member name is not valid"
	ErrMsgMemberExistsError  = "Member already exists"
	ErrMsgGroupFullError     = "Group already has the maximum number of members"
	ErrMsgGroupNotFoundError = "Group not found"

	// Notification messages
	ErrMsgInvalidWebhookURLError  = "Invalid Discord webhook URL"
	ErrMsgItemRequestsDisabledErr = "Item requests are not enabled for this group"
	ErrMsgWebhookNotConfiguredErr = "Discord webhook URL is not configured"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
// This function converts internal service errors to appropriate HTTP status codes and messages
// that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	// Validation and dispatch failures carry no storage details
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest, verr.Error()
	}

	var derr *domain.DispatchError
	if errors.As(err, &derr) {
		return http.StatusBadGateway, derr.Error()
	}

	switch {
	case errors.Is(err, domain.ErrNotGroupMember):
		return http.StatusUnauthorized, ErrMsgNotGroupMemberError
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, ErrMsgAuthFailedError
	case errors.Is(err, domain.ErrReservedMemberName):
		return http.StatusBadRequest, ErrMsgReservedNameError
	case errors.Is(err, domain.ErrInvalidMemberName):
		return http.StatusBadRequest, ErrMsgInvalidNameError
	case errors.Is(err, domain.ErrMemberAlreadyExists):
		return http.StatusConflict, ErrMsgMemberExistsError
	case errors.Is(err, domain.ErrGroupFull):
		return http.StatusBadRequest, ErrMsgGroupFullError
	case errors.Is(err, domain.ErrInvalidSkillPeriod):
		return http.StatusBadRequest, ErrMsgInvalidPeriod
	case errors.Is(err, domain.ErrInvalidFromTime):
		return http.StatusBadRequest, ErrMsgInvalidFromTime
	case errors.Is(err, domain.ErrInvalidWebhookURL):
		return http.StatusBadRequest, ErrMsgInvalidWebhookURLError
	case errors.Is(err, domain.ErrItemRequestsDisabled):
		return http.StatusBadRequest, ErrMsgItemRequestsDisabledErr
	case errors.Is(err, domain.ErrWebhookNotConfigured):
		return http.StatusBadRequest, ErrMsgWebhookNotConfiguredErr
	case errors.Is(err, domain.ErrGroupNotFound):
		return http.StatusNotFound, ErrMsgGroupNotFoundError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}

	// Anything unrecognized may carry query details
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
