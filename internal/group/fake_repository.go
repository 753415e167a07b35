package group

import (
	"context"
	"maps"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/osse101/GroupIronmen_Go/internal/domain"
	"github.com/osse101/GroupIronmen_Go/internal/repository"
)

type storedMember struct {
	state       domain.GroupMember
	lastUpdate  map[string]time.Time
	collections map[string]domain.CollectionLogEntry
	skills      map[domain.AggregatePeriod]map[time.Time][]int32
}

type fakeGroup struct {
	members  map[string]*storedMember
	settings domain.WebhookSettings
}

// FakeRepository is an in-memory repository.Group. Every method holds a
// single lock, so each call is atomic.
type FakeRepository struct {
	mu     sync.Mutex
	groups map[int64]*fakeGroup
}

var _ repository.Group = (*FakeRepository)(nil)

// NewFakeRepository creates an empty FakeRepository.
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{groups: make(map[int64]*fakeGroup)}
}

// AddGroup registers a group with its shared member.
func (f *FakeRepository) AddGroup(groupID int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.groups[groupID] = &fakeGroup{
		members: map[string]*storedMember{domain.SharedMemberName: newStoredMember(domain.SharedMemberName)},
	}
}

// Member returns a copy of the stored state of a member.
func (f *FakeRepository) Member(groupID int64, name string) (domain.GroupMember, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.groups[groupID]
	if !ok {
		return domain.GroupMember{}, false
	}
	m, ok := g.members[name]
	if !ok {
		return domain.GroupMember{}, false
	}
	return cloneMember(m.state), true
}

func newStoredMember(name string) *storedMember {
	return &storedMember{
		state:       domain.GroupMember{Name: name},
		lastUpdate:  make(map[string]time.Time),
		collections: make(map[string]domain.CollectionLogEntry),
		skills:      make(map[domain.AggregatePeriod]map[time.Time][]int32),
	}
}

func cloneMember(m domain.GroupMember) domain.GroupMember {
	out := domain.GroupMember{Name: m.Name, LastUpdated: m.LastUpdated}
	for _, field := range domain.MemberFields {
		out.SetField(field, slices.Clone(m.Field(field)))
	}
	return out
}

func (f *FakeRepository) group(groupID int64) (*fakeGroup, error) {
	g, ok := f.groups[groupID]
	if !ok {
		return nil, domain.ErrGroupNotFound
	}
	return g, nil
}

func (f *FakeRepository) AddMember(_ context.Context, groupID int64, memberName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, err := f.group(groupID)
	if err != nil {
		return err
	}
	if _, exists := g.members[memberName]; exists {
		return domain.ErrMemberAlreadyExists
	}
	// The shared member does not count toward the cap
	if len(g.members)-1 >= domain.MaxGroupMembers {
		return domain.ErrGroupFull
	}
	g.members[memberName] = newStoredMember(memberName)
	return nil
}

func (f *FakeRepository) DeleteMember(_ context.Context, groupID int64, memberName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, err := f.group(groupID)
	if err != nil {
		return err
	}
	if _, exists := g.members[memberName]; !exists {
		return domain.ErrNotGroupMember
	}
	delete(g.members, memberName)
	return nil
}

func (f *FakeRepository) RenameMember(_ context.Context, groupID int64, originalName, newName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, err := f.group(groupID)
	if err != nil {
		return err
	}
	m, exists := g.members[originalName]
	if !exists {
		return domain.ErrNotGroupMember
	}
	if newName == originalName {
		return nil
	}
	if _, taken := g.members[newName]; taken {
		return domain.ErrMemberAlreadyExists
	}
	delete(g.members, originalName)
	m.state.Name = newName
	g.members[newName] = m
	return nil
}

func (f *FakeRepository) UpdateMember(_ context.Context, groupID int64, member *domain.GroupMember, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, err := f.group(groupID)
	if err != nil {
		return err
	}
	m, exists := g.members[member.Name]
	if !exists {
		return domain.ErrNotGroupMember
	}

	for _, field := range domain.MemberFields {
		values := member.Field(field)
		if values == nil || field == domain.FieldSharedBank {
			continue
		}
		m.state.SetField(field, slices.Clone(values))
		m.lastUpdate[field] = at
	}
	if member.SharedBank != nil {
		shared := g.members[domain.SharedMemberName]
		shared.state.Bank = slices.Clone(member.SharedBank)
		shared.lastUpdate[domain.FieldBank] = at
	}
	for _, entry := range member.CollectionLog {
		m.collections[entry.PageName] = domain.CollectionLogEntry{
			PageName:         entry.PageName,
			CompletionCounts: slices.Clone(entry.CompletionCounts),
			Items:            maps.Clone(entry.Items),
		}
	}
	if member.Skills != nil {
		for _, period := range domain.AllAggregatePeriods {
			if m.skills[period] == nil {
				m.skills[period] = make(map[time.Time][]int32)
			}
			m.skills[period][period.Truncate(at)] = slices.Clone(member.Skills)
		}
	}
	return nil
}

func (f *FakeRepository) GetGroupData(_ context.Context, groupID int64, since time.Time) ([]domain.GroupMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, err := f.group(groupID)
	if err != nil {
		return nil, err
	}

	var out []domain.GroupMember
	for _, name := range sortedNames(g.members) {
		m := g.members[name]
		member := domain.GroupMember{Name: name}
		var latest time.Time
		for _, field := range domain.MemberFields {
			at, ok := m.lastUpdate[field]
			if !ok || at.Before(since) {
				continue
			}
			member.SetField(field, slices.Clone(m.state.Field(field)))
			if at.After(latest) {
				latest = at
			}
		}
		if latest.IsZero() {
			continue
		}
		member.LastUpdated = &latest
		out = append(out, member)
	}
	return out, nil
}

func (f *FakeRepository) GetSkillData(_ context.Context, groupID int64, period domain.AggregatePeriod, since time.Time) (domain.GroupSkillData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, err := f.group(groupID)
	if err != nil {
		return nil, err
	}

	from := period.Truncate(since)
	data := domain.GroupSkillData{}
	for _, name := range sortedNames(g.members) {
		buckets := g.members[name].skills[period]
		var snapshots []domain.SkillSnapshot
		for bucket, skills := range buckets {
			if !bucket.Before(from) {
				snapshots = append(snapshots, domain.SkillSnapshot{Time: bucket, Data: slices.Clone(skills)})
			}
		}
		if len(snapshots) == 0 {
			continue
		}
		sort.Slice(snapshots, func(i, j int) bool { return snapshots[i].Time.Before(snapshots[j].Time) })
		data = append(data, domain.MemberSkillData{Name: name, SkillData: snapshots})
	}
	return data, nil
}

func (f *FakeRepository) PruneSkillHistory(_ context.Context, period domain.AggregatePeriod, before time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var removed int64
	for _, g := range f.groups {
		for _, m := range g.members {
			for bucket := range m.skills[period] {
				if bucket.Before(before) {
					delete(m.skills[period], bucket)
					removed++
				}
			}
		}
	}
	return removed, nil
}

func (f *FakeRepository) GetCollectionLog(_ context.Context, groupID int64) (map[string][]domain.CollectionLogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, err := f.group(groupID)
	if err != nil {
		return nil, err
	}

	logs := make(map[string][]domain.CollectionLogEntry)
	for name, m := range g.members {
		pages := make([]string, 0, len(m.collections))
		for page := range m.collections {
			pages = append(pages, page)
		}
		sort.Strings(pages)
		for _, page := range pages {
			logs[name] = append(logs[name], m.collections[page])
		}
	}
	return logs, nil
}

func (f *FakeRepository) IsMemberInGroup(_ context.Context, groupID int64, memberName string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, ok := f.groups[groupID]
	if !ok {
		return false, nil
	}
	_, exists := g.members[memberName]
	return exists, nil
}

func (f *FakeRepository) GetWebhookSettings(_ context.Context, groupID int64) (*domain.WebhookSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, err := f.group(groupID)
	if err != nil {
		return nil, err
	}
	settings := g.settings
	if settings.DiscordWebhookURL != nil {
		url := *settings.DiscordWebhookURL
		settings.DiscordWebhookURL = &url
	}
	return &settings, nil
}

func (f *FakeRepository) UpdateWebhookSettings(_ context.Context, groupID int64, settings domain.WebhookSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	g, err := f.group(groupID)
	if err != nil {
		return err
	}
	if settings.DiscordWebhookURL != nil {
		url := *settings.DiscordWebhookURL
		settings.DiscordWebhookURL = &url
	}
	g.settings = settings
	return nil
}

func sortedNames(members map[string]*storedMember) []string {
	names := make([]string, 0, len(members))
	for name := range members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
