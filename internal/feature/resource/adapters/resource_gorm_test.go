package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"dashboard_backend/internal/feature/resource/domain/entity"
	"dashboard_backend/internal/feature/resource/usecase"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.Resource{}, &entity.GlossaryTerm{}))
	return db
}

func uintPtr(v uint) *uint { return &v }

func seedResources(t *testing.T, db *gorm.DB) []entity.Resource {
	t.Helper()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	resources := []entity.Resource{
		{Title: "시장 전망 2025", Category: "report", FileURL: "https://files/market.pdf", UploadedAt: base},
		{Title: "한빛 월간보고서", Category: "report", FileURL: "https://files/hanbit.pdf", ClientID: uintPtr(10), UploadedAt: base.Add(48 * time.Hour)},
		{Title: "서강 월간보고서", Category: "report", FileURL: "https://files/sogang.pdf", ClientID: uintPtr(20), UploadedAt: base.Add(24 * time.Hour)},
	}
	for i := range resources {
		require.NoError(t, db.Create(&resources[i]).Error)
	}
	return resources
}

func TestResourceGorm_ListVisible(t *testing.T) {
	db := setupTestDB(t)
	seedResources(t, db)
	repo := NewResourceRepository(db)

	t.Run("client sees own plus unscoped, newest first", func(t *testing.T) {
		got, err := repo.ListVisible(context.Background(), []uint{10}, false)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "한빛 월간보고서", got[0].Title)
		assert.Equal(t, "시장 전망 2025", got[1].Title)
	})

	t.Run("all sees everything", func(t *testing.T) {
		got, err := repo.ListVisible(context.Background(), nil, true)
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})
}

func TestResourceGorm_LatestUploadedAt(t *testing.T) {
	db := setupTestDB(t)
	resources := seedResources(t, db)
	repo := NewResourceRepository(db)

	t.Run("scoped", func(t *testing.T) {
		got, err := repo.LatestUploadedAt(context.Background(), []uint{20}, false)
		require.NoError(t, err)
		assert.Equal(t, resources[2].UploadedAt.Unix(), got.Unix())
	})

	t.Run("empty table", func(t *testing.T) {
		empty := setupTestDB(t)
		got, err := NewResourceRepository(empty).LatestUploadedAt(context.Background(), nil, true)
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})
}

func TestResourceGorm_UpdateDelete(t *testing.T) {
	db := setupTestDB(t)
	resources := seedResources(t, db)
	repo := NewResourceRepository(db)

	resources[0].Title = "시장 전망 2025 (개정)"
	resources[0].ClientID = uintPtr(10)
	require.NoError(t, repo.Update(context.Background(), &resources[0]))

	got, err := repo.FindByID(context.Background(), resources[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "시장 전망 2025 (개정)", got.Title)
	require.NotNil(t, got.ClientID)

	require.NoError(t, repo.Delete(context.Background(), resources[0].ID))
	_, err = repo.FindByID(context.Background(), resources[0].ID)
	assert.ErrorIs(t, err, usecase.ErrResourceNotFound)

	assert.ErrorIs(t, repo.Update(context.Background(), &entity.Resource{ID: 999, Title: "x"}), usecase.ErrResourceNotFound)
	assert.ErrorIs(t, repo.Delete(context.Background(), 999), usecase.ErrResourceNotFound)
}

func TestGlossaryGorm_CRUD(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGlossaryRepository(db)

	terms := []entity.GlossaryTerm{
		{Term: "ROE", Definition: "자기자본이익률", Category: "재무"},
		{Term: "PER", Definition: "주가수익비율", Category: "밸류에이션"},
	}
	for i := range terms {
		require.NoError(t, repo.Create(context.Background(), &terms[i]))
	}

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "PER", got[0].Term, "alphabetical order")

	terms[0].Definition = "자기자본 대비 순이익 비율"
	require.NoError(t, repo.Update(context.Background(), &terms[0]))

	require.NoError(t, repo.Delete(context.Background(), terms[1].ID))
	got, err = repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "자기자본 대비 순이익 비율", got[0].Definition)

	assert.ErrorIs(t, repo.Delete(context.Background(), 999), usecase.ErrTermNotFound)
}
