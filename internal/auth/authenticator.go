package auth

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/crypto/blake2b"

	"github.com/osse101/GroupIronmen_Go/internal/domain"
	"github.com/osse101/GroupIronmen_Go/internal/logger"
	"github.com/osse101/GroupIronmen_Go/internal/repository"
)

// Authenticator resolves a group name and token to a group.
// Successful lookups are cached so every request does not hit the database.
type Authenticator struct {
	store repository.Auth
	cache *expirable.LRU[string, domain.Group]
}

// NewAuthenticator creates an Authenticator caching up to size groups for ttl.
func NewAuthenticator(store repository.Auth, size int, ttl time.Duration) *Authenticator {
	return &Authenticator{
		store: store,
		cache: expirable.NewLRU[string, domain.Group](size, nil, ttl),
	}
}

// HashToken returns the hex encoded BLAKE2b-256 digest stored for a token.
func HashToken(token string) string {
	sum := blake2b.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// GenerateToken returns a new random group token.
func GenerateToken() string {
	return uuid.NewString()
}

// Authenticate returns the group for groupName when token matches.
// Any mismatch yields domain.ErrUnauthorized.
func (a *Authenticator) Authenticate(ctx context.Context, groupName, token string) (*domain.Group, error) {
	token = strings.TrimSpace(token)
	if groupName == "" || token == "" {
		return nil, domain.ErrUnauthorized
	}

	hash := HashToken(token)
	key := groupName + "\x00" + hash
	if group, ok := a.cache.Get(key); ok {
		return &group, nil
	}

	group, err := a.store.GetGroupByToken(ctx, groupName, hash)
	if errors.Is(err, domain.ErrGroupNotFound) {
		logger.FromContext(ctx).Debug("Rejected group token", "group", groupName)
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("failed to authenticate group: %w", err)
	}

	a.cache.Add(key, *group)
	return group, nil
}

// CreateGroup stores a new group and returns it with its plaintext token.
// The token is not recoverable afterwards.
func (a *Authenticator) CreateGroup(ctx context.Context, groupName string) (*domain.Group, string, error) {
	groupName = strings.TrimSpace(groupName)
	if groupName == "" {
		return nil, "", fmt.Errorf("%w: group name is required", domain.ErrValidation)
	}

	token := GenerateToken()
	group, err := a.store.CreateGroup(ctx, groupName, HashToken(token))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create group: %w", err)
	}
	return group, token, nil
}

type ctxKey struct{}

// WithGroup stores the authenticated group in ctx.
func WithGroup(ctx context.Context, group *domain.Group) context.Context {
	return context.WithValue(ctx, ctxKey{}, group)
}

// GroupFromContext returns the authenticated group, if any.
func GroupFromContext(ctx context.Context) (*domain.Group, bool) {
	group, ok := ctx.Value(ctxKey{}).(*domain.Group)
	return group, ok && group != nil
}
