package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GroupIronmen_Go/internal/domain"
)

type mockAuthStore struct {
	mock.Mock
}

func (m *mockAuthStore) CreateGroup(ctx context.Context, groupName, tokenHash string) (*domain.Group, error) {
	args := m.Called(ctx, groupName, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func (m *mockAuthStore) GetGroupByToken(ctx context.Context, groupName, tokenHash string) (*domain.Group, error) {
	args := m.Called(ctx, groupName, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Group), args.Error(1)
}

func TestHashToken(t *testing.T) {
	hash := HashToken("secret")
	assert.Len(t, hash, 64)
	assert.Equal(t, hash, HashToken("secret"))
	assert.NotEqual(t, hash, HashToken("Secret"))
}

func TestGenerateToken_Unique(t *testing.T) {
	assert.NotEqual(t, GenerateToken(), GenerateToken())
}

func TestAuthenticate_CachesSuccess(t *testing.T) {
	store := new(mockAuthStore)
	group := &domain.Group{ID: 3, Name: "irons"}
	store.On("GetGroupByToken", mock.Anything, "irons", HashToken("tok")).Return(group, nil).Once()

	a := NewAuthenticator(store, 10, time.Minute)

	for i := 0; i < 3; i++ {
		got, err := a.Authenticate(context.Background(), "irons", "tok")
		require.NoError(t, err)
		assert.Equal(t, int64(3), got.ID)
	}
	store.AssertExpectations(t)
}

func TestAuthenticate_Rejections(t *testing.T) {
	store := new(mockAuthStore)
	store.On("GetGroupByToken", mock.Anything, "irons", HashToken("bad")).Return(nil, domain.ErrGroupNotFound)

	a := NewAuthenticator(store, 10, time.Minute)

	_, err := a.Authenticate(context.Background(), "irons", "bad")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = a.Authenticate(context.Background(), "irons", "  ")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = a.Authenticate(context.Background(), "", "tok")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthenticate_StoreFailure(t *testing.T) {
	store := new(mockAuthStore)
	store.On("GetGroupByToken", mock.Anything, "irons", mock.Anything).Return(nil, errors.New("db down"))

	a := NewAuthenticator(store, 10, time.Minute)

	_, err := a.Authenticate(context.Background(), "irons", "tok")
	require.Error(t, err)
	assert.False(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestCreateGroup(t *testing.T) {
	store := new(mockAuthStore)
	store.On("CreateGroup", mock.Anything, "irons", mock.AnythingOfType("string")).
		Return(&domain.Group{ID: 1, Name: "irons"}, nil)

	a := NewAuthenticator(store, 10, time.Minute)

	group, token, err := a.CreateGroup(context.Background(), " irons ")
	require.NoError(t, err)
	assert.Equal(t, int64(1), group.ID)
	assert.NotEmpty(t, token)
	store.AssertCalled(t, "CreateGroup", mock.Anything, "irons", HashToken(token))

	_, _, err = a.CreateGroup(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGroupContext(t *testing.T) {
	_, ok := GroupFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithGroup(context.Background(), &domain.Group{ID: 9})
	group, ok := GroupFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(9), group.ID)
}
