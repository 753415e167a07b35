package membership

import (
	"context"
	"fmt"

	"github.com/osse101/GroupIronmen_Go/internal/domain"
	"github.com/osse101/GroupIronmen_Go/internal/logger"
)

// Checker answers whether a member row exists in a group.
type Checker interface {
	IsMemberInGroup(ctx context.Context, groupID int64, memberName string) (bool, error)
}

// Guard gates member-scoped operations on group membership.
type Guard struct {
	checker Checker
}

// NewGuard creates a Guard backed by checker.
func NewGuard(checker Checker) *Guard {
	return &Guard{checker: checker}
}

// IsMemberInGroup reports membership without side effects.
func (g *Guard) IsMemberInGroup(ctx context.Context, groupID int64, memberName string) (bool, error) {
	ok, err := g.checker.IsMemberInGroup(ctx, groupID, memberName)
	if err != nil {
		return false, fmt.Errorf("failed to check group membership: %w", err)
	}
	return ok, nil
}

// RequireMember returns domain.ErrNotGroupMember unless memberName belongs
// to the group. The shared pseudo-member never passes.
func (g *Guard) RequireMember(ctx context.Context, groupID int64, memberName string) error {
	if domain.IsSharedMember(memberName) {
		return domain.ErrNotGroupMember
	}
	ok, err := g.IsMemberInGroup(ctx, groupID, memberName)
	if err != nil {
		return err
	}
	if !ok {
		logger.FromContext(ctx).Debug("Membership check failed", "group_id", groupID, "member", memberName)
		return domain.ErrNotGroupMember
	}
	return nil
}
