// Package adapters provides repository implementations for the resource feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"dashboard_backend/internal/feature/resource/domain/entity"
	"dashboard_backend/internal/feature/resource/usecase"
)

// resourceGorm is a relational implementation of the ResourceRepository interface.
type resourceGorm struct {
	db *gorm.DB
}

var _ usecase.ResourceRepository = (*resourceGorm)(nil)

// NewResourceRepository creates a new resourceGorm instance.
func NewResourceRepository(db *gorm.DB) *resourceGorm {
	return &resourceGorm{db: db}
}

func (r *resourceGorm) scopeVisible(ctx context.Context, clientIDs []uint, all bool) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&entity.Resource{})
	if all {
		return q
	}
	if len(clientIDs) == 0 {
		return q.Where("client_id IS NULL")
	}
	return q.Where("client_id IS NULL OR client_id IN ?", clientIDs)
}

func (r *resourceGorm) ListVisible(ctx context.Context, clientIDs []uint, all bool) ([]entity.Resource, error) {
	var resources []entity.Resource
	err := r.scopeVisible(ctx, clientIDs, all).
		Order("uploaded_at DESC, id DESC").
		Find(&resources).Error
	if err != nil {
		return nil, err
	}
	return resources, nil
}

func (r *resourceGorm) LatestUploadedAt(ctx context.Context, clientIDs []uint, all bool) (time.Time, error) {
	var latest *time.Time
	err := r.scopeVisible(ctx, clientIDs, all).
		Select("MAX(uploaded_at)").
		Scan(&latest).Error
	if err != nil {
		return time.Time{}, err
	}
	if latest == nil {
		return time.Time{}, nil
	}
	return *latest, nil
}

func (r *resourceGorm) FindByID(ctx context.Context, id uint) (*entity.Resource, error) {
	var res entity.Resource
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrResourceNotFound
		}
		return nil, err
	}
	return &res, nil
}

func (r *resourceGorm) Create(ctx context.Context, res *entity.Resource) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *resourceGorm) Update(ctx context.Context, res *entity.Resource) error {
	result := r.db.WithContext(ctx).Model(&entity.Resource{}).
		Where("id = ?", res.ID).
		Select("Title", "Category", "FileURL", "ClientID").
		Updates(res)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrResourceNotFound
	}
	return nil
}

func (r *resourceGorm) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Resource{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrResourceNotFound
	}
	return nil
}

// glossaryGorm is a relational implementation of the GlossaryRepository interface.
type glossaryGorm struct {
	db *gorm.DB
}

var _ usecase.GlossaryRepository = (*glossaryGorm)(nil)

// NewGlossaryRepository creates a new glossaryGorm instance.
func NewGlossaryRepository(db *gorm.DB) *glossaryGorm {
	return &glossaryGorm{db: db}
}

func (r *glossaryGorm) List(ctx context.Context) ([]entity.GlossaryTerm, error) {
	var terms []entity.GlossaryTerm
	err := r.db.WithContext(ctx).Order("term ASC").Find(&terms).Error
	return terms, err
}

func (r *glossaryGorm) Create(ctx context.Context, term *entity.GlossaryTerm) error {
	return r.db.WithContext(ctx).Create(term).Error
}

func (r *glossaryGorm) Update(ctx context.Context, term *entity.GlossaryTerm) error {
	result := r.db.WithContext(ctx).Model(&entity.GlossaryTerm{}).
		Where("id = ?", term.ID).
		Select("Term", "Definition", "Category").
		Updates(term)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrTermNotFound
	}
	return nil
}

func (r *glossaryGorm) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.GlossaryTerm{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrTermNotFound
	}
	return nil
}
