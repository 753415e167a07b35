package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GroupIronmen_Go/internal/domain"
)

// AuthRepository implements repository.Auth for PostgreSQL
type AuthRepository struct {
	db *pgxpool.Pool
}

// NewAuthRepository creates a new AuthRepository
func NewAuthRepository(db *pgxpool.Pool) *AuthRepository {
	return &AuthRepository{db: db}
}

// CreateGroup inserts a group and its shared member in one transaction.
func (r *AuthRepository) CreateGroup(ctx context.Context, groupName, tokenHash string) (*domain.Group, error) {
	tx, err := beginTx(ctx, r.db)
	if err != nil {
		return nil, err
	}
	defer SafeRollback(ctx, tx)

	group := &domain.Group{Name: groupName}
	query := `INSERT INTO groups (group_name, group_token_hash) VALUES ($1, $2) RETURNING group_id`
	if err := tx.QueryRow(ctx, query, groupName, tokenHash).Scan(&group.ID); err != nil {
		return nil, dbError("failed to insert group", err)
	}

	if _, err := tx.Exec(ctx, `INSERT INTO members (group_id, member_name) VALUES ($1, $2)`, group.ID, domain.SharedMemberName); err != nil {
		return nil, dbError("failed to insert shared member", err)
	}

	if err := commitTx(ctx, tx); err != nil {
		return nil, err
	}
	return group, nil
}

// GetGroupByToken finds the group matching both name and token hash.
func (r *AuthRepository) GetGroupByToken(ctx context.Context, groupName, tokenHash string) (*domain.Group, error) {
	group := &domain.Group{Name: groupName}
	query := `SELECT group_id FROM groups WHERE group_name = $1 AND group_token_hash = $2`
	err := r.db.QueryRow(ctx, query, groupName, tokenHash).Scan(&group.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrGroupNotFound
	}
	if err != nil {
		return nil, dbError("failed to look up group", err)
	}
	return group, nil
}
