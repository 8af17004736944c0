// Package adapters provides repository implementations for the issue feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dashboard_backend/internal/feature/issue/domain/entity"
	"dashboard_backend/internal/feature/issue/usecase"
)

// issueGorm is a relational implementation of the IssueRepository interface.
type issueGorm struct {
	db *gorm.DB
}

var _ usecase.IssueRepository = (*issueGorm)(nil)

// NewIssueRepository creates a new issueGorm instance.
func NewIssueRepository(db *gorm.DB) *issueGorm {
	return &issueGorm{db: db}
}

func (r *issueGorm) Create(ctx context.Context, issue *entity.Issue) error {
	return r.db.WithContext(ctx).Create(issue).Error
}

func (r *issueGorm) FindByID(ctx context.Context, id uint) (*entity.Issue, error) {
	var issue entity.Issue
	if err := r.db.WithContext(ctx).First(&issue, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrIssueNotFound
		}
		return nil, err
	}
	return &issue, nil
}

// ListByStock returns a stock's issues, newest date first with ties broken
// by recency of entry.
func (r *issueGorm) ListByStock(ctx context.Context, stockID uint) ([]entity.Issue, error) {
	var issues []entity.Issue
	if err := r.db.WithContext(ctx).
		Where("stock_id = ?", stockID).
		Order("date DESC, id DESC").
		Find(&issues).Error; err != nil {
		return nil, err
	}
	return issues, nil
}

func (r *issueGorm) Update(ctx context.Context, issue *entity.Issue) error {
	result := r.db.WithContext(ctx).Model(&entity.Issue{}).
		Where("id = ?", issue.ID).
		Select("Date", "Title", "Content", "Source", "IsCMS", "Keywords").
		Updates(issue)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrIssueNotFound
	}
	return nil
}

func (r *issueGorm) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Issue{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrIssueNotFound
	}
	return nil
}

// Exists is the bulk-import dedup predicate: same stock, date and title.
func (r *issueGorm) Exists(ctx context.Context, stockID uint, date, title string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Issue{}).
		Where("stock_id = ? AND date = ? AND title = ?", stockID, date, title).
		Count(&count).Error
	return count > 0, err
}

func (r *issueGorm) UpdateImages(ctx context.Context, id uint, images []entity.IssueImage) error {
	result := r.db.WithContext(ctx).Model(&entity.Issue{ID: id}).Update("images", images)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrIssueNotFound
	}
	return nil
}
