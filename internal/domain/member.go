package domain

import "time"

// GroupMember is the tracked state of one player in a group.
// A nil sub-document means "not present in this payload"; an empty
// slice is a present, empty collection.
type GroupMember struct {
	Name          string               `json:"name"`
	Stats         []int32              `json:"stats"`
	Coordinates   []int32              `json:"coordinates"`
	Skills        []int32              `json:"skills"`
	Quests        []int32              `json:"quests"`
	Inventory     []int32              `json:"inventory"`
	Equipment     []int32              `json:"equipment"`
	Bank          []int32              `json:"bank"`
	SharedBank    []int32              `json:"shared_bank"`
	RunePouch     []int32              `json:"rune_pouch"`
	SeedVault     []int32              `json:"seed_vault"`
	Deposited     []int32              `json:"deposited"`
	DiaryVars     []int32              `json:"diary_vars"`
	CollectionLog []CollectionLogEntry `json:"collection_log,omitempty"`
	LastUpdated   *time.Time           `json:"last_updated,omitempty"`
}

// CollectionLogEntry holds what a member has obtained on one collection log page.
// Items maps item id to obtained quantity.
type CollectionLogEntry struct {
	PageName         string          `json:"page_name"`
	CompletionCounts []int32         `json:"completion_counts"`
	Items            map[int32]int32 `json:"items"`
}

// RenameGroupMember is the input for renaming a member.
type RenameGroupMember struct {
	OriginalName string `json:"original_name"`
	NewName      string `json:"new_name"`
}

// IsSharedMember reports whether name is the reserved shared pseudo-member.
func IsSharedMember(name string) bool {
	return name == SharedMemberName
}

// MemberFields lists the array sub-documents of a member in storage order.
var MemberFields = []string{
	FieldStats,
	FieldCoordinates,
	FieldSkills,
	FieldQuests,
	FieldInventory,
	FieldEquipment,
	FieldBank,
	FieldSharedBank,
	FieldRunePouch,
	FieldSeedVault,
	FieldDeposited,
	FieldDiaryVars,
}

func (m *GroupMember) fieldPtr(name string) *[]int32 {
	switch name {
	case FieldStats:
		return &m.Stats
	case FieldCoordinates:
		return &m.Coordinates
	case FieldSkills:
		return &m.Skills
	case FieldQuests:
		return &m.Quests
	case FieldInventory:
		return &m.Inventory
	case FieldEquipment:
		return &m.Equipment
	case FieldBank:
		return &m.Bank
	case FieldSharedBank:
		return &m.SharedBank
	case FieldRunePouch:
		return &m.RunePouch
	case FieldSeedVault:
		return &m.SeedVault
	case FieldDeposited:
		return &m.Deposited
	case FieldDiaryVars:
		return &m.DiaryVars
	}
	return nil
}

// Field returns the named sub-document, or nil when absent or unknown.
func (m *GroupMember) Field(name string) []int32 {
	if p := m.fieldPtr(name); p != nil {
		return *p
	}
	return nil
}

// SetField assigns the named sub-document. It reports false for unknown names.
func (m *GroupMember) SetField(name string, values []int32) bool {
	p := m.fieldPtr(name)
	if p == nil {
		return false
	}
	*p = values
	return true
}
