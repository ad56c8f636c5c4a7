package repository

import (
	"context"
	"testing"

	"postboard/internal/cache"
	"postboard/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func newRedisCache(t *testing.T) *cache.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.New(client)
}

func TestCachedUserRepositoryGetByID(t *testing.T) {
	inner := new(MockUserRepository)
	inner.On("GetByID", mock.Anything, "u1").
		Return(&models.User{ID: "u1", Name: "Ann", Password: "digest"}, nil).Once()

	repo := NewCachedUserRepository(inner, newRedisCache(t))
	ctx := context.Background()

	first, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	second, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, "Ann", first.Name)
	assert.Equal(t, "Ann", second.Name)
	assert.Empty(t, second.Password)
	inner.AssertNumberOfCalls(t, "GetByID", 1)
}

func TestCachedUserRepositoryDoesNotCacheMisses(t *testing.T) {
	inner := new(MockUserRepository)
	inner.On("GetByID", mock.Anything, "ghost").Return(nil, models.NewNotFoundError("User", "ghost"))

	repo := NewCachedUserRepository(inner, newRedisCache(t))

	for i := 0; i < 2; i++ {
		_, err := repo.GetByID(context.Background(), "ghost")
		assert.True(t, models.IsCode(err, models.CodeNotFound))
	}
	inner.AssertNumberOfCalls(t, "GetByID", 2)
}

func TestCachedUserRepositoryDelegatesOtherCalls(t *testing.T) {
	inner := new(MockUserRepository)
	inner.On("GetByEmail", mock.Anything, "ann@x.com").Return(&models.User{ID: "u1"}, nil)
	inner.On("Create", mock.Anything, mock.Anything).Return(nil)

	repo := NewCachedUserRepository(inner, newRedisCache(t))

	_, err := repo.GetByEmail(context.Background(), "ann@x.com")
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), &models.User{}))
	inner.AssertExpectations(t)
}

func TestNewCachedUserRepositoryWithoutRedis(t *testing.T) {
	inner := new(MockUserRepository)
	assert.Same(t, UserRepository(inner), NewCachedUserRepository(inner, cache.New(nil)))
}
