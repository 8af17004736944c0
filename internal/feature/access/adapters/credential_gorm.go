// Package adapters provides repository implementations for the access feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"dashboard_backend/internal/feature/access/domain/entity"
	"dashboard_backend/internal/feature/access/usecase"
)

// credentialGorm implements both the read-only and admin credential
// repositories on a relational database.
type credentialGorm struct {
	db *gorm.DB
}

// Compile-time checks that credentialGorm satisfies both consumer interfaces.
var (
	_ usecase.CredentialRepository      = (*credentialGorm)(nil)
	_ usecase.CredentialAdminRepository = (*credentialGorm)(nil)
)

// NewCredentialRepository creates a new credentialGorm instance.
func NewCredentialRepository(db *gorm.DB) *credentialGorm {
	return &credentialGorm{db: db}
}

// ListActiveClients returns every client whose password may open a session.
func (r *credentialGorm) ListActiveClients(ctx context.Context) ([]entity.Client, error) {
	var clients []entity.Client
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

// ListActiveSharedPasswords returns all active shared passwords.
func (r *credentialGorm) ListActiveSharedPasswords(ctx context.Context) ([]entity.SharedPassword, error) {
	var shared []entity.SharedPassword
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&shared).Error; err != nil {
		return nil, err
	}
	return shared, nil
}

// ListActiveAccessCodes returns all active admin access codes. Expiry is
// checked by the caller so clock handling stays in one place.
func (r *credentialGorm) ListActiveAccessCodes(ctx context.Context) ([]entity.AccessCode, error) {
	var codes []entity.AccessCode
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}

func (r *credentialGorm) ListClients(ctx context.Context) ([]entity.Client, error) {
	var clients []entity.Client
	err := r.db.WithContext(ctx).Order("id ASC").Find(&clients).Error
	return clients, err
}

func (r *credentialGorm) CreateClient(ctx context.Context, client *entity.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *credentialGorm) UpdateClient(ctx context.Context, client *entity.Client) error {
	result := r.db.WithContext(ctx).Model(&entity.Client{}).
		Where("id = ?", client.ID).
		Select("Name", "Password", "IsActive", "BrandColor", "LogoURL").
		Updates(client)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrClientNotFound
	}
	return nil
}

func (r *credentialGorm) DeleteClient(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.Client{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrClientNotFound
	}
	return nil
}

func (r *credentialGorm) ListSharedPasswords(ctx context.Context) ([]entity.SharedPassword, error) {
	var shared []entity.SharedPassword
	err := r.db.WithContext(ctx).Order("id ASC").Find(&shared).Error
	return shared, err
}

func (r *credentialGorm) CreateSharedPassword(ctx context.Context, sp *entity.SharedPassword) error {
	return r.db.WithContext(ctx).Create(sp).Error
}

func (r *credentialGorm) UpdateSharedPassword(ctx context.Context, sp *entity.SharedPassword) error {
	result := r.db.WithContext(ctx).Model(&entity.SharedPassword{}).
		Where("id = ?", sp.ID).
		Select("Label", "Password", "IsActive", "IsMaster", "ClientIDs").
		Updates(sp)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrSharedPasswordNotFound
	}
	return nil
}

func (r *credentialGorm) DeleteSharedPassword(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.SharedPassword{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrSharedPasswordNotFound
	}
	return nil
}

func (r *credentialGorm) ListAccessCodes(ctx context.Context) ([]entity.AccessCode, error) {
	var codes []entity.AccessCode
	err := r.db.WithContext(ctx).Order("id ASC").Find(&codes).Error
	return codes, err
}

func (r *credentialGorm) CreateAccessCode(ctx context.Context, code *entity.AccessCode) error {
	return r.db.WithContext(ctx).Create(code).Error
}

func (r *credentialGorm) SetAccessCodeActive(ctx context.Context, id uint, active bool) error {
	result := r.db.WithContext(ctx).Model(&entity.AccessCode{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrAccessCodeNotFound
	}
	return nil
}

func (r *credentialGorm) DeleteAccessCode(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&entity.AccessCode{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrAccessCodeNotFound
	}
	return nil
}

// errIsNotFound keeps gorm's sentinel out of the usecase layer.
func errIsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
