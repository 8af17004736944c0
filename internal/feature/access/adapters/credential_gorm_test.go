package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"dashboard_backend/internal/feature/access/domain/entity"
	"dashboard_backend/internal/feature/access/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(
		&entity.Client{},
		&entity.SharedPassword{},
		&entity.AccessCode{},
		&entity.CredentialVersion{},
	)
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func TestCredentialGorm_ListActiveClients(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCredentialRepository(db)

	require.NoError(t, repo.CreateClient(context.Background(), &entity.Client{Name: "active", Password: "a", IsActive: true}))
	require.NoError(t, repo.CreateClient(context.Background(), &entity.Client{Name: "inactive", Password: "b", IsActive: false}))

	clients, err := repo.ListActiveClients(context.Background())

	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "active", clients[0].Name)
}

func TestCredentialGorm_SharedPasswordRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCredentialRepository(db)

	sp := &entity.SharedPassword{Label: "IR", Password: "shared", IsActive: true, ClientIDs: []uint{2, 5}}
	require.NoError(t, repo.CreateSharedPassword(context.Background(), sp))

	list, err := repo.ListActiveSharedPasswords(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 1)
	// ClientIDs survive the JSON serializer round trip.
	assert.Equal(t, []uint{2, 5}, list[0].ClientIDs)
}

func TestCredentialGorm_UpdateClient(t *testing.T) {
	t.Run("updates existing client", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewCredentialRepository(db)

		c := &entity.Client{Name: "before", Password: "p", IsActive: true}
		require.NoError(t, repo.CreateClient(context.Background(), c))

		c.Name = "after"
		c.IsActive = false
		require.NoError(t, repo.UpdateClient(context.Background(), c))

		all, err := repo.ListClients(context.Background())
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, "after", all[0].Name)
		assert.False(t, all[0].IsActive)
	})

	t.Run("unknown id returns not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewCredentialRepository(db)

		err := repo.UpdateClient(context.Background(), &entity.Client{ID: 99, Name: "x"})

		assert.ErrorIs(t, err, usecase.ErrClientNotFound)
	})
}

func TestCredentialGorm_AccessCodes(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCredentialRepository(db)

	code := &entity.AccessCode{Name: "ops", CodeHash: []byte("$2a$hash"), IsAdmin: true, IsActive: true}
	require.NoError(t, repo.CreateAccessCode(context.Background(), code))

	require.NoError(t, repo.SetAccessCodeActive(context.Background(), code.ID, false))

	active, err := repo.ListActiveAccessCodes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, active, "deactivated code must not be listed as active")

	assert.ErrorIs(t, repo.SetAccessCodeActive(context.Background(), 404, true), usecase.ErrAccessCodeNotFound)
}

func TestVersionGorm(t *testing.T) {
	t.Run("unrotated realm reads as empty", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewVersionRepository(db)

		v, err := repo.ActiveVersion(context.Background(), usecase.RealmClient)

		require.NoError(t, err)
		assert.Empty(t, v)
	})

	t.Run("bump rotates and persists", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewVersionRepository(db)

		v1, err := repo.Bump(context.Background(), usecase.RealmAdmin)
		require.NoError(t, err)
		require.NotEmpty(t, v1)

		got, err := repo.ActiveVersion(context.Background(), usecase.RealmAdmin)
		require.NoError(t, err)
		assert.Equal(t, v1, got)

		v2, err := repo.Bump(context.Background(), usecase.RealmAdmin)
		require.NoError(t, err)
		assert.NotEqual(t, v1, v2, "bump must change the version")

		got, err = repo.ActiveVersion(context.Background(), usecase.RealmAdmin)
		require.NoError(t, err)
		assert.Equal(t, v2, got)
	})

	t.Run("realms are independent", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewVersionRepository(db)

		_, err := repo.Bump(context.Background(), usecase.RealmAdmin)
		require.NoError(t, err)

		v, err := repo.ActiveVersion(context.Background(), usecase.RealmClient)
		require.NoError(t, err)
		assert.Empty(t, v)
	})
}
