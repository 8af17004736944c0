package adapters

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"dashboard_backend/internal/feature/access/domain/entity"
	"dashboard_backend/internal/feature/access/usecase"
)

// versionGorm stores the per-realm credential version markers.
type versionGorm struct {
	db *gorm.DB
}

var _ usecase.VersionRepository = (*versionGorm)(nil)

// NewVersionRepository creates a new versionGorm instance.
func NewVersionRepository(db *gorm.DB) *versionGorm {
	return &versionGorm{db: db}
}

// ActiveVersion returns the realm's current version, or "" for a realm that
// has never been rotated.
func (r *versionGorm) ActiveVersion(ctx context.Context, realm string) (string, error) {
	var row entity.CredentialVersion
	if err := r.db.WithContext(ctx).Where("realm = ?", realm).First(&row).Error; err != nil {
		if errIsNotFound(err) {
			return "", nil
		}
		return "", err
	}
	return row.Version, nil
}

// Bump rotates the realm's version to a fresh opaque value and returns it.
func (r *versionGorm) Bump(ctx context.Context, realm string) (string, error) {
	version := uuid.NewString()
	row := entity.CredentialVersion{Realm: realm, Version: version}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "realm"}},
			DoUpdates: clause.AssignmentColumns([]string{"version", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return "", err
	}
	return version, nil
}
