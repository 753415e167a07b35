package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GroupIronmen_Go/internal/domain"
	"github.com/osse101/GroupIronmen_Go/internal/logger"
)

// GroupRepository implements repository.Group for PostgreSQL
type GroupRepository struct {
	db *pgxpool.Pool
}

// NewGroupRepository creates a new GroupRepository
func NewGroupRepository(db *pgxpool.Pool) *GroupRepository {
	return &GroupRepository{db: db}
}

// AddMember inserts an empty member, enforcing the group size cap.
func (r *GroupRepository) AddMember(ctx context.Context, groupID int64, memberName string) error {
	tx, err := beginTx(ctx, r.db)
	if err != nil {
		return err
	}
	defer SafeRollback(ctx, tx)

	// Lock the group row so concurrent adds see each other's count
	var lockedID int64
	err = tx.QueryRow(ctx, `SELECT group_id FROM groups WHERE group_id = $1 FOR UPDATE`, groupID).Scan(&lockedID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrGroupNotFound
	}
	if err != nil {
		return dbError("failed to lock group", err)
	}

	var count int
	query := `SELECT COUNT(*) FROM members WHERE group_id = $1 AND member_name <> $2`
	if err := tx.QueryRow(ctx, query, groupID, domain.SharedMemberName).Scan(&count); err != nil {
		return dbError("failed to count members", err)
	}
	if count >= domain.MaxGroupMembers {
		return domain.ErrGroupFull
	}

	_, err = tx.Exec(ctx, `INSERT INTO members (group_id, member_name) VALUES ($1, $2)`, groupID, memberName)
	if isUniqueViolation(err) {
		return domain.ErrMemberAlreadyExists
	}
	if err != nil {
		return dbError("failed to insert member", err)
	}

	return commitTx(ctx, tx)
}

// DeleteMember removes a member and, by cascade, its history.
func (r *GroupRepository) DeleteMember(ctx context.Context, groupID int64, memberName string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM members WHERE group_id = $1 AND member_name = $2`, groupID, memberName)
	if err != nil {
		return dbError("failed to delete member", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotGroupMember
	}
	return nil
}

// RenameMember changes a member's name, keeping all of its data. Renaming a
// member to its own name succeeds without changes.
func (r *GroupRepository) RenameMember(ctx context.Context, groupID int64, originalName, newName string) error {
	query := `UPDATE members SET member_name = $3 WHERE group_id = $1 AND member_name = $2`
	tag, err := r.db.Exec(ctx, query, groupID, originalName, newName)
	if isUniqueViolation(err) {
		return domain.ErrMemberAlreadyExists
	}
	if err != nil {
		return dbError("failed to rename member", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotGroupMember
	}
	return nil
}

const upsertCollectionLogQuery = `
	INSERT INTO collection_log (member_id, page_name, completion_counts, items, last_update)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (member_id, page_name)
	DO UPDATE SET completion_counts = EXCLUDED.completion_counts,
	              items = EXCLUDED.items,
	              last_update = EXCLUDED.last_update`

const upsertSkillSnapshotQuery = `
	INSERT INTO skill_history (member_id, period, bucket, skills)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (member_id, period, bucket)
	DO UPDATE SET skills = EXCLUDED.skills`

// UpdateMember writes every present sub-document in one transaction with
// the member row locked. Concurrent updates of one member serialize here.
func (r *GroupRepository) UpdateMember(ctx context.Context, groupID int64, member *domain.GroupMember, at time.Time) error {
	tx, err := beginTx(ctx, r.db)
	if err != nil {
		return err
	}
	defer SafeRollback(ctx, tx)

	var memberID int64
	query := `SELECT member_id FROM members WHERE group_id = $1 AND member_name = $2 FOR UPDATE`
	err = tx.QueryRow(ctx, query, groupID, member.Name).Scan(&memberID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotGroupMember
	}
	if err != nil {
		return dbError("failed to lock member", err)
	}

	// $1 is the member, $2 the update time shared by every column
	args := []any{memberID, at}
	var sets []string
	for _, column := range memberColumns {
		values := member.Field(column)
		if values == nil {
			continue
		}
		args = append(args, values)
		sets = append(sets, fmt.Sprintf("%s = $%d, %s_last_update = $2", column, len(args), column))
	}
	if len(sets) > 0 {
		update := "UPDATE members SET " + strings.Join(sets, ", ") + " WHERE member_id = $1"
		if _, err := tx.Exec(ctx, update, args...); err != nil {
			return dbError("failed to update member", err)
		}
	}

	if member.SharedBank != nil {
		query := `UPDATE members SET bank = $3, bank_last_update = $2 WHERE group_id = $1 AND member_name = $4`
		if _, err := tx.Exec(ctx, query, groupID, at, member.SharedBank, domain.SharedMemberName); err != nil {
			return dbError("failed to update shared bank", err)
		}
	}

	batch := &pgx.Batch{}
	for _, entry := range member.CollectionLog {
		counts := entry.CompletionCounts
		if counts == nil {
			counts = []int32{}
		}
		items := entry.Items
		if items == nil {
			items = map[int32]int32{}
		}
		batch.Queue(upsertCollectionLogQuery, memberID, entry.PageName, counts, items, at)
	}
	if member.Skills != nil {
		for _, period := range domain.AllAggregatePeriods {
			batch.Queue(upsertSkillSnapshotQuery, memberID, string(period), period.Truncate(at), member.Skills)
		}
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return dbError("failed to write member history", err)
		}
	}

	if err := commitTx(ctx, tx); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug("Member updated",
		"group_id", groupID,
		"member", member.Name,
		"fields", len(sets),
		"collection_log_pages", len(member.CollectionLog))
	return nil
}

// GetGroupData returns every member with a field updated at or after since.
// Fields older than since are left nil.
func (r *GroupRepository) GetGroupData(ctx context.Context, groupID int64, since time.Time) ([]domain.GroupMember, error) {
	selects := make([]string, 0, len(memberColumns))
	updates := make([]string, 0, len(memberColumns))
	for _, column := range memberColumns {
		selects = append(selects, fmt.Sprintf("CASE WHEN %s_last_update >= $2 THEN %s END", column, column))
		updates = append(updates, column+"_last_update")
	}
	greatest := "GREATEST(" + strings.Join(updates, ", ") + ")"
	query := "SELECT member_name, " + strings.Join(selects, ", ") + ", " + greatest +
		" FROM members WHERE group_id = $1 AND " + greatest + " >= $2 ORDER BY member_name"

	rows, err := r.db.Query(ctx, query, groupID, since)
	if err != nil {
		return nil, dbError("failed to query group data", err)
	}
	defer rows.Close()

	var members []domain.GroupMember
	for rows.Next() {
		var member domain.GroupMember
		values := make([][]int32, len(memberColumns))
		dest := make([]any, 0, len(memberColumns)+2)
		dest = append(dest, &member.Name)
		for i := range values {
			dest = append(dest, &values[i])
		}
		dest = append(dest, &member.LastUpdated)

		if err := rows.Scan(dest...); err != nil {
			return nil, dbError("failed to scan group data", err)
		}
		for i, column := range memberColumns {
			member.SetField(column, values[i])
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("failed to read group data", err)
	}
	return members, nil
}

// GetSkillData returns each member's snapshots of period taken at or after since.
func (r *GroupRepository) GetSkillData(ctx context.Context, groupID int64, period domain.AggregatePeriod, since time.Time) (domain.GroupSkillData, error) {
	query := `
		SELECT m.member_name, h.bucket, h.skills
		FROM skill_history h
		JOIN members m ON m.member_id = h.member_id
		WHERE m.group_id = $1 AND h.period = $2 AND h.bucket >= $3
		ORDER BY m.member_name, h.bucket
	`
	rows, err := r.db.Query(ctx, query, groupID, string(period), period.Truncate(since))
	if err != nil {
		return nil, dbError("failed to query skill data", err)
	}
	defer rows.Close()

	data := domain.GroupSkillData{}
	for rows.Next() {
		var name string
		var snapshot domain.SkillSnapshot
		if err := rows.Scan(&name, &snapshot.Time, &snapshot.Data); err != nil {
			return nil, dbError("failed to scan skill data", err)
		}
		if n := len(data); n == 0 || data[n-1].Name != name {
			data = append(data, domain.MemberSkillData{Name: name})
		}
		last := &data[len(data)-1]
		last.SkillData = append(last.SkillData, snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("failed to read skill data", err)
	}
	return data, nil
}

// PruneSkillHistory deletes snapshots of period with a bucket before the given time.
func (r *GroupRepository) PruneSkillHistory(ctx context.Context, period domain.AggregatePeriod, before time.Time) (int64, error) {
	query := `DELETE FROM skill_history WHERE period = $1 AND bucket < $2`
	tag, err := r.db.Exec(ctx, query, string(period), before)
	if err != nil {
		return 0, dbError("failed to prune skill history", err)
	}
	return tag.RowsAffected(), nil
}

// GetCollectionLog returns the stored collection log pages keyed by member name.
func (r *GroupRepository) GetCollectionLog(ctx context.Context, groupID int64) (map[string][]domain.CollectionLogEntry, error) {
	query := `
		SELECT m.member_name, c.page_name, c.completion_counts, c.items
		FROM collection_log c
		JOIN members m ON m.member_id = c.member_id
		WHERE m.group_id = $1
		ORDER BY m.member_name, c.page_name
	`
	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		return nil, dbError("failed to query collection log", err)
	}
	defer rows.Close()

	logs := make(map[string][]domain.CollectionLogEntry)
	for rows.Next() {
		var name string
		var entry domain.CollectionLogEntry
		if err := rows.Scan(&name, &entry.PageName, &entry.CompletionCounts, &entry.Items); err != nil {
			return nil, dbError("failed to scan collection log", err)
		}
		logs[name] = append(logs[name], entry)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError("failed to read collection log", err)
	}
	return logs, nil
}

// IsMemberInGroup reports whether memberName has a row in the group.
func (r *GroupRepository) IsMemberInGroup(ctx context.Context, groupID int64, memberName string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM members WHERE group_id = $1 AND member_name = $2)`
	if err := r.db.QueryRow(ctx, query, groupID, memberName).Scan(&exists); err != nil {
		return false, dbError("failed to check membership", err)
	}
	return exists, nil
}

// GetWebhookSettings returns the group's notification settings.
func (r *GroupRepository) GetWebhookSettings(ctx context.Context, groupID int64) (*domain.WebhookSettings, error) {
	var settings domain.WebhookSettings
	query := `SELECT discord_webhook_url, item_requests_enabled FROM groups WHERE group_id = $1`
	err := r.db.QueryRow(ctx, query, groupID).Scan(&settings.DiscordWebhookURL, &settings.ItemRequestsEnabled)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrGroupNotFound
	}
	if err != nil {
		return nil, dbError("failed to get webhook settings", err)
	}
	return &settings, nil
}

// UpdateWebhookSettings replaces the group's notification settings.
func (r *GroupRepository) UpdateWebhookSettings(ctx context.Context, groupID int64, settings domain.WebhookSettings) error {
	query := `UPDATE groups SET discord_webhook_url = $2, item_requests_enabled = $3 WHERE group_id = $1`
	tag, err := r.db.Exec(ctx, query, groupID, settings.DiscordWebhookURL, settings.ItemRequestsEnabled)
	if err != nil {
		return dbError("failed to update webhook settings", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrGroupNotFound
	}
	return nil
}
