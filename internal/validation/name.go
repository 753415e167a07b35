package validation

import (
	"regexp"
	"strings"

	"github.com/osse101/GroupIronmen_Go/internal/domain"
)

// MaxMemberNameLength is the longest accepted member name.
const MaxMemberNameLength = 16

var memberNamePattern = regexp.MustCompile(`^[A-Za-z0-9 _-]+$`)

// ValidName reports whether name can be used for a group member.
func ValidName(name string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || trimmed != name {
		return false
	}
	if len(name) > MaxMemberNameLength {
		return false
	}
	return memberNamePattern.MatchString(name)
}

// ValidateMutableMemberName rejects the shared pseudo-member and invalid names.
func ValidateMutableMemberName(name string) error {
	if domain.IsSharedMember(name) {
		return domain.ErrReservedMemberName
	}
	if !ValidName(name) {
		return domain.ErrInvalidMemberName
	}
	return nil
}
