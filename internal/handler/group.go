package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/osse101/GroupIronmen_Go/internal/auth"
	"github.com/osse101/GroupIronmen_Go/internal/domain"
	"github.com/osse101/GroupIronmen_Go/internal/group"
	"github.com/osse101/GroupIronmen_Go/internal/logger"
)

// GroupHandlers serves the authenticated group routes
type GroupHandlers struct {
	svc group.Service
}

// NewGroupHandlers creates new group handlers
func NewGroupHandlers(svc group.Service) *GroupHandlers {
	return &GroupHandlers{svc: svc}
}

// MemberNameRequest is the request body for adding or deleting a member
type MemberNameRequest struct {
	Name string `json:"name" validate:"required,member_name"`
}

// RenameMemberRequest is the request body for renaming a member
type RenameMemberRequest struct {
	OriginalName string `json:"original_name" validate:"required"`
	NewName      string `json:"new_name" validate:"required,member_name"`
}

// ItemRequestBody is the request body for asking the group for an item
type ItemRequestBody struct {
	ItemID           int32            `json:"item_id" validate:"gt=0"`
	ItemName         string           `json:"item_name" validate:"required,max=200"`
	Quantity         int32            `json:"quantity" validate:"gt=0"`
	Note             *string          `json:"note,omitempty" validate:"omitempty,max=1000"`
	MemberQuantities map[string]int32 `json:"member_quantities"`
	RequesterName    string           `json:"requester_name" validate:"required"`
}

// WebhookSettingsRequest is the request body for updating notification settings
type WebhookSettingsRequest struct {
	DiscordWebhookURL   *string `json:"discord_webhook_url"`
	ItemRequestsEnabled bool    `json:"item_requests_enabled"`
}

// groupFromRequest returns the group resolved by the auth middleware,
// writing a 401 when it is missing.
func groupFromRequest(w http.ResponseWriter, r *http.Request) (*domain.Group, bool) {
	g, ok := auth.GroupFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, ErrMsgAuthFailedError)
		return nil, false
	}
	return g, true
}

// HandleAddMember handles adding a member to the group
// @Summary Add group member
// @Tags group
// @Accept json
// @Produce json
// @Param group_name path string true "Group name"
// @Param request body MemberNameRequest true "Member to add"
// @Success 201 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security GroupToken
// @Router /api/group/{group_name}/add-group-member [post]
func (h *GroupHandlers) HandleAddMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, ok := groupFromRequest(w, r)
		if !ok {
			return
		}

		var req MemberNameRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add member"); err != nil {
			return
		}

		if err := h.svc.AddMember(r.Context(), g.ID, req.Name); err != nil {
			respondServiceError(w, r, ErrMsgAddMemberFailed, err)
			return
		}

		respondJSON(w, http.StatusCreated, SuccessResponse{Message: MsgMemberAddedSuccess})
	}
}

// HandleDeleteMember handles removing a member from the group
// @Summary Delete group member
// @Tags group
// @Accept json
// @Produce json
// @Param group_name path string true "Group name"
// @Param request body MemberNameRequest true "Member to delete"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security GroupToken
// @Router /api/group/{group_name}/delete-group-member [delete]
func (h *GroupHandlers) HandleDeleteMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, ok := groupFromRequest(w, r)
		if !ok {
			return
		}

		var req MemberNameRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Delete member"); err != nil {
			return
		}

		if err := h.svc.DeleteMember(r.Context(), g.ID, req.Name); err != nil {
			respondServiceError(w, r, ErrMsgDeleteMemberFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgMemberDeletedSuccess})
	}
}

// HandleRenameMember handles renaming a member
// @Summary Rename group member
// @Tags group
// @Accept json
// @Produce json
// @Param group_name path string true "Group name"
// @Param request body RenameMemberRequest true "Rename"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security GroupToken
// @Router /api/group/{group_name}/rename-group-member [put]
func (h *GroupHandlers) HandleRenameMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, ok := groupFromRequest(w, r)
		if !ok {
			return
		}

		var req RenameMemberRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Rename member"); err != nil {
			return
		}

		rename := domain.RenameGroupMember{OriginalName: req.OriginalName, NewName: req.NewName}
		if err := h.svc.RenameMember(r.Context(), g.ID, rename); err != nil {
			respondServiceError(w, r, ErrMsgRenameMemberFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgMemberRenamedSuccess})
	}
}

// HandleUpdateMember handles a member state submission
// @Summary Update group member
// @Description Validates and stores every sub-document present in the payload
// @Tags group
// @Accept json
// @Produce json
// @Param group_name path string true "Group name"
// @Param request body domain.GroupMember true "Member state"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security GroupToken
// @Router /api/group/{group_name}/update-group-member [post]
func (h *GroupHandlers) HandleUpdateMember() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, ok := groupFromRequest(w, r)
		if !ok {
			return
		}

		var member domain.GroupMember
		if err := json.NewDecoder(r.Body).Decode(&member); err != nil {
			logger.FromContext(r.Context()).Warn("Failed to decode update member request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := h.svc.UpdateMember(r.Context(), g.ID, &member); err != nil {
			respondServiceError(w, r, ErrMsgUpdateMemberFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgMemberUpdatedSuccess})
	}
}

// HandleGetGroupData returns member state changed since from_time
// @Summary Get group data
// @Tags group
// @Produce json
// @Param group_name path string true "Group name"
// @Param from_time query string true "RFC3339 timestamp"
// @Success 200 {array} domain.GroupMember
// @Failure 400 {object} ErrorResponse
// @Security GroupToken
// @Router /api/group/{group_name}/get-group-data [get]
func (h *GroupHandlers) HandleGetGroupData() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, ok := groupFromRequest(w, r)
		if !ok {
			return
		}

		raw, ok := GetQueryParam(r, w, "from_time")
		if !ok {
			return
		}
		since, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetGroupDataFailed, fmt.Errorf("%w: %s", domain.ErrInvalidFromTime, raw))
			return
		}

		members, err := h.svc.GetGroupData(r.Context(), g.ID, since)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetGroupDataFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, members)
	}
}

// HandleGetSkillData returns aggregated skill history
// @Summary Get skill data
// @Description Week reads the month aggregate
// @Tags group
// @Produce json
// @Param group_name path string true "Group name"
// @Param period query string true "Day, Week, Month or Year"
// @Success 200 {array} domain.MemberSkillData
// @Failure 400 {object} ErrorResponse
// @Security GroupToken
// @Router /api/group/{group_name}/get-skill-data [get]
func (h *GroupHandlers) HandleGetSkillData() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, ok := groupFromRequest(w, r)
		if !ok {
			return
		}

		raw, ok := GetQueryParam(r, w, "period")
		if !ok {
			return
		}
		period, err := domain.ParseSkillDataPeriod(raw)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetSkillDataFailed, err)
			return
		}

		data, err := h.svc.GetSkillData(r.Context(), g.ID, period)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetSkillDataFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, data)
	}
}

// HandleGetCollectionLog returns every member's collection log
// @Summary Get collection log
// @Tags group
// @Produce json
// @Param group_name path string true "Group name"
// @Success 200 {object} map[string][]domain.CollectionLogEntry
// @Security GroupToken
// @Router /api/group/{group_name}/collection-log [get]
func (h *GroupHandlers) HandleGetCollectionLog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, ok := groupFromRequest(w, r)
		if !ok {
			return
		}

		logs, err := h.svc.GetCollectionLog(r.Context(), g.ID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetCollectionLogFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, logs)
	}
}

// HandleAmILoggedIn confirms the group credentials
// @Summary Login check
// @Tags group
// @Produce json
// @Param group_name path string true "Group name"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Security GroupToken
// @Router /api/group/{group_name}/am-i-logged-in [get]
func (h *GroupHandlers) HandleAmILoggedIn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := groupFromRequest(w, r); !ok {
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLoggedIn})
	}
}

// HandleAmIInGroup checks whether member_name belongs to the group
// @Summary Membership check
// @Tags group
// @Produce json
// @Param group_name path string true "Group name"
// @Param member_name query string true "Member name"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} ErrorResponse
// @Security GroupToken
// @Router /api/group/{group_name}/am-i-in-group [get]
func (h *GroupHandlers) HandleAmIInGroup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, ok := groupFromRequest(w, r)
		if !ok {
			return
		}

		name, ok := GetQueryParam(r, w, "member_name")
		if !ok {
			return
		}

		if err := h.svc.AmIInGroup(r.Context(), g.ID, name); err != nil {
			respondServiceError(w, r, ErrMsgMembershipCheckFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgInGroup})
	}
}

// HandleRequestItem posts an item request to the group's Discord channel
// @Summary Request item
// @Tags group
// @Accept json
// @Produce json
// @Param group_name path string true "Group name"
// @Param request body ItemRequestBody true "Item request"
// @Success 200 {object} domain.ItemRequestResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Security GroupToken
// @Router /api/group/{group_name}/request-item [post]
func (h *GroupHandlers) HandleRequestItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, ok := groupFromRequest(w, r)
		if !ok {
			return
		}

		var req ItemRequestBody
		if err := DecodeAndValidateRequest(r, w, &req, "Request item"); err != nil {
			return
		}

		result, err := h.svc.RequestItem(r.Context(), g.ID, &domain.ItemRequest{
			ItemID:           req.ItemID,
			ItemName:         req.ItemName,
			Quantity:         req.Quantity,
			Note:             req.Note,
			MemberQuantities: req.MemberQuantities,
			RequesterName:    req.RequesterName,
		})
		if err != nil {
			if errors.Is(err, domain.ErrNotGroupMember) {
				logger.FromContext(r.Context()).Warn(ErrMsgRequestItemFailed, "error", err)
				respondError(w, http.StatusUnauthorized, ErrMsgRequesterNotMember)
				return
			}
			respondServiceError(w, r, ErrMsgRequestItemFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}

// HandleGetWebhookSettings returns the group's notification settings
// @Summary Get webhook settings
// @Tags group
// @Produce json
// @Param group_name path string true "Group name"
// @Success 200 {object} domain.WebhookSettings
// @Security GroupToken
// @Router /api/group/{group_name}/webhook-settings [get]
func (h *GroupHandlers) HandleGetWebhookSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, ok := groupFromRequest(w, r)
		if !ok {
			return
		}

		settings, err := h.svc.GetWebhookSettings(r.Context(), g.ID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetWebhookSettingsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, settings)
	}
}

// HandleUpdateWebhookSettings replaces the group's notification settings
// @Summary Update webhook settings
// @Description An empty or null url clears the webhook
// @Tags group
// @Accept json
// @Produce json
// @Param group_name path string true "Group name"
// @Param request body WebhookSettingsRequest true "Settings"
// @Success 200 {object} domain.WebhookSettings
// @Failure 400 {object} ErrorResponse
// @Security GroupToken
// @Router /api/group/{group_name}/webhook-settings [put]
func (h *GroupHandlers) HandleUpdateWebhookSettings() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g, ok := groupFromRequest(w, r)
		if !ok {
			return
		}

		var req WebhookSettingsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update webhook settings"); err != nil {
			return
		}

		settings := domain.WebhookSettings{
			DiscordWebhookURL:   req.DiscordWebhookURL,
			ItemRequestsEnabled: req.ItemRequestsEnabled,
		}
		if err := h.svc.UpdateWebhookSettings(r.Context(), g.ID, settings); err != nil {
			respondServiceError(w, r, ErrMsgUpdateWebhookSettingsFailed, err)
			return
		}
		if settings.WebhookURL() == "" {
			settings.DiscordWebhookURL = nil
		}

		respondJSON(w, http.StatusOK, settings)
	}
}
