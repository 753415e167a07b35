package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GroupIronmen_Go/internal/domain"
)

type emptyReference struct{}

func (emptyReference) HasPage(string) bool             { return false }
func (emptyReference) HasItem(string, int32) bool      { return false }
func (emptyReference) CompletionLabelCount(string) int { return 0 }

func setField(t *testing.T, m *domain.GroupMember, field string, values []int32) {
	t.Helper()
	if !m.SetField(field, values) {
		t.Fatalf("unknown field %s", field)
	}
}

func TestValidateMemberPropLength(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		min     int
		max     int
		wantErr bool
	}{
		{"exact", 7, 7, 7, false},
		{"below exact", 6, 7, 7, true},
		{"above exact", 8, 7, 7, true},
		{"range lower bound", 23, 23, 24, false},
		{"range upper bound", 24, 23, 24, false},
		{"empty allowed", 0, 0, 250, false},
		{"over max", 251, 0, 250, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateMemberPropLength("field", make([]int32, tt.length), tt.min, tt.max)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "field", verr.Field)
			assert.Equal(t, tt.length, verr.Length)
			assert.Equal(t, tt.min, verr.Min)
			assert.Equal(t, tt.max, verr.Max)
		})
	}
}

func TestValidateMemberPropLength_Generic(t *testing.T) {
	err := ValidateMemberPropLength("names", []string{"a", "b"}, 1, 1)
	assert.True(t, errors.Is(err, domain.ErrValidation))
	assert.Equal(t, "names length 2 violated range constraint 1..=1", err.Error())
}

func TestMemberPropRules_Bounds(t *testing.T) {
	want := map[string][2]int{
		domain.FieldStats:       {7, 7},
		domain.FieldCoordinates: {3, 3},
		domain.FieldSkills:      {23, 24},
		domain.FieldQuests:      {0, 250},
		domain.FieldInventory:   {56, 56},
		domain.FieldEquipment:   {28, 28},
		domain.FieldBank:        {0, 3000},
		domain.FieldSharedBank:  {0, 1000},
		domain.FieldRunePouch:   {6, 8},
		domain.FieldSeedVault:   {0, 500},
		domain.FieldDeposited:   {0, 200},
		domain.FieldDiaryVars:   {0, 62},
	}

	require.Len(t, MemberPropRules, len(want))
	for field, bounds := range want {
		rule, ok := RuleFor(field)
		require.True(t, ok, field)
		assert.Equal(t, bounds[0], rule.Min, field)
		assert.Equal(t, bounds[1], rule.Max, field)
	}

	_, ok := RuleFor("collection_log")
	assert.False(t, ok)
}

func TestValidateMember_EachRule(t *testing.T) {
	for _, rule := range MemberPropRules {
		rule := rule
		t.Run(rule.Field, func(t *testing.T) {
			for _, n := range []int{rule.Min, rule.Max} {
				m := &domain.GroupMember{Name: "Alice"}
				setField(t, m, rule.Field, make([]int32, n))
				assert.NoError(t, ValidateMember(m, emptyReference{}), "length %d", n)
			}

			m := &domain.GroupMember{Name: "Alice"}
			setField(t, m, rule.Field, make([]int32, rule.Max+1))
			err := ValidateMember(m, emptyReference{})
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, rule.Field, verr.Field)
			assert.Equal(t, rule.Max+1, verr.Length)

			if rule.Min > 0 {
				m := &domain.GroupMember{Name: "Alice"}
				setField(t, m, rule.Field, make([]int32, rule.Min-1))
				err := ValidateMember(m, emptyReference{})
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, rule.Field, verr.Field)
			}
		})
	}
}

func TestValidateMember_AbsentFieldsSkipped(t *testing.T) {
	m := &domain.GroupMember{Name: "Alice"}
	assert.NoError(t, ValidateMember(m, emptyReference{}))
}

func TestValidateMember_FirstFailureWins(t *testing.T) {
	m := &domain.GroupMember{
		Name:      "Alice",
		Stats:     make([]int32, 6),
		Inventory: make([]int32, 10),
	}

	err := ValidateMember(m, emptyReference{})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.FieldStats, verr.Field)
}

func TestValidateMember_SkillsWithTwentyThreeEntries(t *testing.T) {
	m := &domain.GroupMember{Name: "Alice", Skills: make([]int32, 23)}
	assert.NoError(t, ValidateMember(m, emptyReference{}))
}

func TestValidateMember_CollectionLogChecked(t *testing.T) {
	m := &domain.GroupMember{
		Name:          "Alice",
		CollectionLog: []domain.CollectionLogEntry{{PageName: "Nowhere"}},
	}
	err := ValidateMember(m, emptyReference{})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, domain.FieldCollectionLog, verr.Field)
	assert.Equal(t, "Nowhere", verr.Key)
}
