package validation

import (
	"github.com/osse101/GroupIronmen_Go/internal/domain"
)

// PropRule bounds the length of one member sub-document.
type PropRule struct {
	Field string
	Min   int
	Max   int
}

// MemberPropRules is applied in order; the first violation wins.
var MemberPropRules = []PropRule{
	{Field: domain.FieldStats, Min: 7, Max: 7},
	{Field: domain.FieldCoordinates, Min: 3, Max: 3},
	{Field: domain.FieldSkills, Min: 23, Max: 24},
	{Field: domain.FieldQuests, Min: 0, Max: 250},
	{Field: domain.FieldInventory, Min: 56, Max: 56},
	{Field: domain.FieldEquipment, Min: 28, Max: 28},
	{Field: domain.FieldBank, Min: 0, Max: 3000},
	{Field: domain.FieldSharedBank, Min: 0, Max: 1000},
	{Field: domain.FieldRunePouch, Min: 6, Max: 8},
	{Field: domain.FieldSeedVault, Min: 0, Max: 500},
	{Field: domain.FieldDeposited, Min: 0, Max: 200},
	{Field: domain.FieldDiaryVars, Min: 0, Max: 62},
}

// RuleFor returns the rule for a field name.
func RuleFor(field string) (PropRule, bool) {
	for _, rule := range MemberPropRules {
		if rule.Field == field {
			return rule, true
		}
	}
	return PropRule{}, false
}

// ValidateMemberPropLength checks that a submitted collection has between
// min and max entries inclusive. It never truncates or pads.
func ValidateMemberPropLength[T any](field string, collection []T, min, max int) error {
	if n := len(collection); n < min || n > max {
		return &domain.ValidationError{Field: field, Length: n, Min: min, Max: max}
	}
	return nil
}

// ValidateMember applies every length rule to the sub-documents present in
// the payload and then checks the collection log against ref.
func ValidateMember(member *domain.GroupMember, ref CollectionLogReference) error {
	for _, rule := range MemberPropRules {
		value := member.Field(rule.Field)
		if value == nil {
			continue
		}
		if err := ValidateMemberPropLength(rule.Field, value, rule.Min, rule.Max); err != nil {
			return err
		}
	}
	return ValidateCollectionLog(ref, member.CollectionLog)
}
