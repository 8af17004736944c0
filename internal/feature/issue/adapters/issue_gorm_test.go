package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"dashboard_backend/internal/feature/issue/domain/entity"
	"dashboard_backend/internal/feature/issue/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	require.NoError(t, db.AutoMigrate(&entity.Issue{}), "failed to migrate table")
	return db
}

func sampleIssue(stockID uint, date, title string) *entity.Issue {
	return &entity.Issue{
		StockID:  stockID,
		Date:     date,
		Title:    title,
		Content:  "본문",
		Keywords: []string{"반도체"},
	}
}

func TestIssueGorm_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleIssue(1, "25/01/15", "둘째")))
	require.NoError(t, repo.Create(ctx, sampleIssue(1, "25/02/01", "첫째")))
	require.NoError(t, repo.Create(ctx, sampleIssue(2, "25/01/10", "남의 것")))

	issues, err := repo.ListByStock(ctx, 1)

	require.NoError(t, err)
	require.Len(t, issues, 2)
	// Newest date first.
	assert.Equal(t, "첫째", issues[0].Title)
	assert.Equal(t, "둘째", issues[1].Title)
	// Keywords survive the serializer round trip.
	assert.Equal(t, []string{"반도체"}, issues[1].Keywords)
}

func TestIssueGorm_Exists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, sampleIssue(1, "25/01/15", "중복 후보")))

	exists, err := repo.Exists(ctx, 1, "25/01/15", "중복 후보")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, 1, "25/01/16", "중복 후보")
	require.NoError(t, err)
	assert.False(t, exists, "different date is not a duplicate")

	exists, err = repo.Exists(ctx, 2, "25/01/15", "중복 후보")
	require.NoError(t, err)
	assert.False(t, exists, "different stock is not a duplicate")
}

func TestIssueGorm_UpdateImages(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	issue := sampleIssue(1, "25/01/15", "이미지")
	require.NoError(t, repo.Create(ctx, issue))

	images := []entity.IssueImage{{URL: "https://cdn.example.com/a.png", Caption: "차트"}}
	require.NoError(t, repo.UpdateImages(ctx, issue.ID, images))

	stored, err := repo.FindByID(ctx, issue.ID)
	require.NoError(t, err)
	assert.Equal(t, images, stored.Images)

	assert.ErrorIs(t, repo.UpdateImages(ctx, 999, images), usecase.ErrIssueNotFound)
}

func TestIssueGorm_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIssueRepository(db)
	ctx := context.Background()

	issue := sampleIssue(1, "25/01/15", "지울 것")
	require.NoError(t, repo.Create(ctx, issue))

	require.NoError(t, repo.Delete(ctx, issue.ID))

	_, err := repo.FindByID(ctx, issue.ID)
	assert.ErrorIs(t, err, usecase.ErrIssueNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, issue.ID), usecase.ErrIssueNotFound)
}
