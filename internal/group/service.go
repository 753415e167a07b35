package group

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/GroupIronmen_Go/internal/discord"
	"github.com/osse101/GroupIronmen_Go/internal/domain"
	"github.com/osse101/GroupIronmen_Go/internal/logger"
	"github.com/osse101/GroupIronmen_Go/internal/membership"
	"github.com/osse101/GroupIronmen_Go/internal/metrics"
	"github.com/osse101/GroupIronmen_Go/internal/repository"
	"github.com/osse101/GroupIronmen_Go/internal/validation"
)

// ItemRequestSentMessage is returned once an item request was delivered.
const ItemRequestSentMessage = "Item request sent successfully"

// Service defines the group member operations exposed to clients.
type Service interface {
	AddMember(ctx context.Context, groupID int64, memberName string) error
	DeleteMember(ctx context.Context, groupID int64, memberName string) error
	RenameMember(ctx context.Context, groupID int64, rename domain.RenameGroupMember) error

	// UpdateMember validates and stores a member's submitted state.
	UpdateMember(ctx context.Context, groupID int64, member *domain.GroupMember) error

	GetGroupData(ctx context.Context, groupID int64, since time.Time) ([]domain.GroupMember, error)
	GetSkillData(ctx context.Context, groupID int64, period domain.SkillDataPeriod) (domain.GroupSkillData, error)
	GetCollectionLog(ctx context.Context, groupID int64) (map[string][]domain.CollectionLogEntry, error)

	// AmIInGroup returns domain.ErrNotGroupMember unless memberName is in the group.
	AmIInGroup(ctx context.Context, groupID int64, memberName string) error

	GetWebhookSettings(ctx context.Context, groupID int64) (*domain.WebhookSettings, error)
	UpdateWebhookSettings(ctx context.Context, groupID int64, settings domain.WebhookSettings) error

	// RequestItem posts an item request to the group's Discord channel.
	RequestItem(ctx context.Context, groupID int64, req *domain.ItemRequest) (*domain.ItemRequestResult, error)
}

type service struct {
	repo          repository.Group
	guard         *membership.Guard
	collectionLog validation.CollectionLogReference
	dispatcher    discord.Dispatcher
	now           func() time.Time
}

// NewService creates the group service.
func NewService(repo repository.Group, collectionLog validation.CollectionLogReference, dispatcher discord.Dispatcher) Service {
	return &service{
		repo:          repo,
		guard:         membership.NewGuard(repo),
		collectionLog: collectionLog,
		dispatcher:    dispatcher,
		now:           time.Now,
	}
}

func (s *service) AddMember(ctx context.Context, groupID int64, memberName string) error {
	log := logger.FromContext(ctx)

	if err := validation.ValidateMutableMemberName(memberName); err != nil {
		recordChange(OpAdd, err)
		return err
	}
	if err := s.repo.AddMember(ctx, groupID, memberName); err != nil {
		recordChange(OpAdd, err)
		return fmt.Errorf("failed to add member: %w", err)
	}

	recordChange(OpAdd, nil)
	log.Info("Member added", "group_id", groupID, "member", memberName)
	return nil
}

func (s *service) DeleteMember(ctx context.Context, groupID int64, memberName string) error {
	if domain.IsSharedMember(memberName) {
		recordChange(OpDelete, domain.ErrReservedMemberName)
		return domain.ErrReservedMemberName
	}
	if err := s.guard.RequireMember(ctx, groupID, memberName); err != nil {
		recordChange(OpDelete, err)
		return err
	}
	if err := s.repo.DeleteMember(ctx, groupID, memberName); err != nil {
		recordChange(OpDelete, err)
		return fmt.Errorf("failed to delete member: %w", err)
	}

	recordChange(OpDelete, nil)
	logger.FromContext(ctx).Info("Member deleted", "group_id", groupID, "member", memberName)
	return nil
}

func (s *service) RenameMember(ctx context.Context, groupID int64, rename domain.RenameGroupMember) error {
	if domain.IsSharedMember(rename.OriginalName) {
		recordChange(OpRename, domain.ErrReservedMemberName)
		return domain.ErrReservedMemberName
	}
	if err := validation.ValidateMutableMemberName(rename.NewName); err != nil {
		recordChange(OpRename, err)
		return err
	}
	if err := s.guard.RequireMember(ctx, groupID, rename.OriginalName); err != nil {
		recordChange(OpRename, err)
		return err
	}
	if err := s.repo.RenameMember(ctx, groupID, rename.OriginalName, rename.NewName); err != nil {
		recordChange(OpRename, err)
		return fmt.Errorf("failed to rename member: %w", err)
	}

	recordChange(OpRename, nil)
	logger.FromContext(ctx).Info("Member renamed",
		"group_id", groupID,
		"from", rename.OriginalName,
		"to", rename.NewName)
	return nil
}

func (s *service) UpdateMember(ctx context.Context, groupID int64, member *domain.GroupMember) error {
	if domain.IsSharedMember(member.Name) {
		metrics.MemberUpdatesTotal.WithLabelValues(metrics.ResultRejected).Inc()
		return domain.ErrReservedMemberName
	}
	if err := s.guard.RequireMember(ctx, groupID, member.Name); err != nil {
		metrics.MemberUpdatesTotal.WithLabelValues(metrics.ResultRejected).Inc()
		return err
	}
	if err := validation.ValidateMember(member, s.collectionLog); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			metrics.ValidationFailuresTotal.WithLabelValues(verr.Field).Inc()
		}
		metrics.MemberUpdatesTotal.WithLabelValues(metrics.ResultRejected).Inc()
		logger.FromContext(ctx).Debug("Rejected member update", "member", member.Name, "error", err)
		return err
	}

	if err := s.repo.UpdateMember(ctx, groupID, member, s.now().UTC()); err != nil {
		metrics.MemberUpdatesTotal.WithLabelValues(metrics.ResultFailure).Inc()
		return fmt.Errorf("failed to update member: %w", err)
	}

	metrics.MemberUpdatesTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	return nil
}

func (s *service) GetGroupData(ctx context.Context, groupID int64, since time.Time) ([]domain.GroupMember, error) {
	members, err := s.repo.GetGroupData(ctx, groupID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get group data: %w", err)
	}
	if members == nil {
		members = []domain.GroupMember{}
	}
	return members, nil
}

func (s *service) GetSkillData(ctx context.Context, groupID int64, period domain.SkillDataPeriod) (domain.GroupSkillData, error) {
	aggregate := period.AggregatePeriod()
	since := s.now().UTC().Add(-aggregate.Window())

	data, err := s.repo.GetSkillData(ctx, groupID, aggregate, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get skill data: %w", err)
	}
	if data == nil {
		data = domain.GroupSkillData{}
	}
	return data, nil
}

func (s *service) GetCollectionLog(ctx context.Context, groupID int64) (map[string][]domain.CollectionLogEntry, error) {
	logs, err := s.repo.GetCollectionLog(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get collection log: %w", err)
	}
	if logs == nil {
		logs = map[string][]domain.CollectionLogEntry{}
	}
	return logs, nil
}

func (s *service) AmIInGroup(ctx context.Context, groupID int64, memberName string) error {
	return s.guard.RequireMember(ctx, groupID, memberName)
}

func (s *service) GetWebhookSettings(ctx context.Context, groupID int64) (*domain.WebhookSettings, error) {
	settings, err := s.repo.GetWebhookSettings(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get webhook settings: %w", err)
	}
	return settings, nil
}

func (s *service) UpdateWebhookSettings(ctx context.Context, groupID int64, settings domain.WebhookSettings) error {
	url := settings.WebhookURL()
	if err := validation.ValidateWebhookURL(url); err != nil {
		return err
	}
	// An empty url clears the webhook
	if url == "" {
		settings.DiscordWebhookURL = nil
	}

	if err := s.repo.UpdateWebhookSettings(ctx, groupID, settings); err != nil {
		return fmt.Errorf("failed to update webhook settings: %w", err)
	}

	logger.FromContext(ctx).Info("Webhook settings updated",
		"group_id", groupID,
		"webhook_configured", url != "",
		"item_requests_enabled", settings.ItemRequestsEnabled)
	return nil
}

func (s *service) RequestItem(ctx context.Context, groupID int64, req *domain.ItemRequest) (*domain.ItemRequestResult, error) {
	result, err := s.requestItem(ctx, groupID, req)
	switch {
	case err == nil:
		metrics.ItemRequestsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	case errors.Is(err, domain.ErrDispatchFailed), errors.Is(err, domain.ErrDatabaseError):
		metrics.ItemRequestsTotal.WithLabelValues(metrics.ResultFailure).Inc()
	default:
		metrics.ItemRequestsTotal.WithLabelValues(metrics.ResultRejected).Inc()
	}
	return result, err
}

func (s *service) requestItem(ctx context.Context, groupID int64, req *domain.ItemRequest) (*domain.ItemRequestResult, error) {
	if domain.IsSharedMember(req.RequesterName) {
		return nil, domain.ErrReservedMemberName
	}
	if err := s.guard.RequireMember(ctx, groupID, req.RequesterName); err != nil {
		return nil, err
	}

	// Settings are read once; a concurrent change is not re-checked before sending
	settings, err := s.repo.GetWebhookSettings(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get webhook settings: %w", err)
	}
	if !settings.ItemRequestsEnabled {
		return nil, domain.ErrItemRequestsDisabled
	}
	url := settings.WebhookURL()
	if url == "" {
		return nil, domain.ErrWebhookNotConfigured
	}

	if err := s.dispatcher.DispatchItemRequest(ctx, url, req.RequesterName, req); err != nil {
		return nil, err
	}
	return &domain.ItemRequestResult{Success: true, Message: ItemRequestSentMessage}, nil
}
