package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockVersionRepository is a test implementation of usecase.VersionRepository.
type mockVersionRepository struct {
	activeFn func(ctx context.Context, realm string) (string, error)
	bumpFn   func(ctx context.Context, realm string) (string, error)
}

func (m *mockVersionRepository) ActiveVersion(ctx context.Context, realm string) (string, error) {
	if m.activeFn != nil {
		return m.activeFn(ctx, realm)
	}
	return "", nil
}

func (m *mockVersionRepository) Bump(ctx context.Context, realm string) (string, error) {
	if m.bumpFn != nil {
		return m.bumpFn(ctx, realm)
	}
	return "", nil
}

func TestNewCachingVersionRepository_Defaults(t *testing.T) {
	t.Parallel()

	repo := NewCachingVersionRepository(nil, 0, &mockVersionRepository{}, "")
	assert.Equal(t, 30*time.Second, repo.ttl)
	assert.Equal(t, "codever", repo.namespace)

	repo = NewCachingVersionRepository(nil, time.Minute, &mockVersionRepository{}, "custom")
	assert.Equal(t, time.Minute, repo.ttl)
	assert.Equal(t, "custom", repo.namespace)
}

func TestCachingVersionRepository_ActiveVersion_NilRedis(t *testing.T) {
	t.Parallel()

	called := false
	inner := &mockVersionRepository{
		activeFn: func(ctx context.Context, realm string) (string, error) {
			called = true
			return "v3", nil
		},
	}
	repo := NewCachingVersionRepository(nil, time.Minute, inner, "")

	v, err := repo.ActiveVersion(context.Background(), "client")

	require.NoError(t, err)
	assert.Equal(t, "v3", v)
	assert.True(t, called, "inner repository must be hit when Redis is absent")
}

func TestCachingVersionRepository_ActiveVersion(t *testing.T) {
	t.Parallel()

	t.Run("cache hit skips the database", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("codever:client").SetVal("v9")

		inner := &mockVersionRepository{
			activeFn: func(ctx context.Context, realm string) (string, error) {
				t.Fatal("database must not be consulted on cache hit")
				return "", nil
			},
		}
		repo := NewCachingVersionRepository(rdb, time.Minute, inner, "")

		v, err := repo.ActiveVersion(context.Background(), "client")

		require.NoError(t, err)
		assert.Equal(t, "v9", v)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache miss falls through and populates", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("codever:admin").RedisNil()
		mock.ExpectSet("codever:admin", "v2", time.Minute).SetVal("OK")

		inner := &mockVersionRepository{
			activeFn: func(ctx context.Context, realm string) (string, error) { return "v2", nil },
		}
		repo := NewCachingVersionRepository(rdb, time.Minute, inner, "")

		v, err := repo.ActiveVersion(context.Background(), "admin")

		require.NoError(t, err)
		assert.Equal(t, "v2", v)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty version is not cached", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("codever:client").RedisNil()

		repo := NewCachingVersionRepository(rdb, time.Minute, &mockVersionRepository{}, "")

		v, err := repo.ActiveVersion(context.Background(), "client")

		require.NoError(t, err)
		assert.Empty(t, v)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database error propagates", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectGet("codever:client").RedisNil()

		inner := &mockVersionRepository{
			activeFn: func(ctx context.Context, realm string) (string, error) {
				return "", errors.New("db down")
			},
		}
		repo := NewCachingVersionRepository(rdb, time.Minute, inner, "")

		_, err := repo.ActiveVersion(context.Background(), "client")

		assert.Error(t, err)
	})
}

func TestCachingVersionRepository_Bump(t *testing.T) {
	t.Parallel()

	t.Run("writes the new version through to the cache", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		mock.ExpectSet("codever:admin", "v5", time.Minute).SetVal("OK")

		inner := &mockVersionRepository{
			bumpFn: func(ctx context.Context, realm string) (string, error) { return "v5", nil },
		}
		repo := NewCachingVersionRepository(rdb, time.Minute, inner, "")

		v, err := repo.Bump(context.Background(), "admin")

		require.NoError(t, err)
		assert.Equal(t, "v5", v)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("inner failure skips the cache", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		inner := &mockVersionRepository{
			bumpFn: func(ctx context.Context, realm string) (string, error) {
				return "", errors.New("db down")
			},
		}
		repo := NewCachingVersionRepository(rdb, time.Minute, inner, "")

		_, err := repo.Bump(context.Background(), "admin")

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
