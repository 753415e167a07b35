package repository

import (
	"context"
	"time"

	"github.com/osse101/GroupIronmen_Go/internal/domain"
)

// Group defines the interface for group member state access.
// Every method must be atomic for the affected group.
type Group interface {
	// Member lifecycle
	AddMember(ctx context.Context, groupID int64, memberName string) error
	DeleteMember(ctx context.Context, groupID int64, memberName string) error
	RenameMember(ctx context.Context, groupID int64, originalName, newName string) error

	// UpdateMember replaces every present sub-document of member, stamping
	// each with at. A submitted shared bank is written to the shared member.
	// Absent (nil) sub-documents keep their stored value and timestamp.
	UpdateMember(ctx context.Context, groupID int64, member *domain.GroupMember, at time.Time) error

	// Queries
	GetGroupData(ctx context.Context, groupID int64, since time.Time) ([]domain.GroupMember, error)
	GetSkillData(ctx context.Context, groupID int64, period domain.AggregatePeriod, since time.Time) (domain.GroupSkillData, error)
	GetCollectionLog(ctx context.Context, groupID int64) (map[string][]domain.CollectionLogEntry, error)
	IsMemberInGroup(ctx context.Context, groupID int64, memberName string) (bool, error)

	// Notification settings
	GetWebhookSettings(ctx context.Context, groupID int64) (*domain.WebhookSettings, error)
	UpdateWebhookSettings(ctx context.Context, groupID int64, settings domain.WebhookSettings) error

	SkillHistory
}

// SkillHistory is the maintenance side of stored skill snapshots.
type SkillHistory interface {
	// PruneSkillHistory deletes snapshots of period older than before across
	// all groups and reports how many were removed.
	PruneSkillHistory(ctx context.Context, period domain.AggregatePeriod, before time.Time) (int64, error)
}

// Auth defines the interface for group credential access.
type Auth interface {
	// CreateGroup stores a new group together with its shared member.
	CreateGroup(ctx context.Context, groupName, tokenHash string) (*domain.Group, error)
	// GetGroupByToken returns domain.ErrGroupNotFound when no group matches.
	GetGroupByToken(ctx context.Context, groupName, tokenHash string) (*domain.Group, error)
}
