package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"dashboard_backend/internal/feature/access/domain/entity"
)

// CredentialAdminRepository is the writable view of the credential tables,
// used only by admin mutation paths.
type CredentialAdminRepository interface {
	ListClients(ctx context.Context) ([]entity.Client, error)
	CreateClient(ctx context.Context, client *entity.Client) error
	UpdateClient(ctx context.Context, client *entity.Client) error
	DeleteClient(ctx context.Context, id uint) error

	ListSharedPasswords(ctx context.Context) ([]entity.SharedPassword, error)
	CreateSharedPassword(ctx context.Context, sp *entity.SharedPassword) error
	UpdateSharedPassword(ctx context.Context, sp *entity.SharedPassword) error
	DeleteSharedPassword(ctx context.Context, id uint) error

	ListAccessCodes(ctx context.Context) ([]entity.AccessCode, error)
	CreateAccessCode(ctx context.Context, code *entity.AccessCode) error
	SetAccessCodeActive(ctx context.Context, id uint, active bool) error
	DeleteAccessCode(ctx context.Context, id uint) error
}

// PortfolioDetacher breaks the portfolio→client association when a client is
// deleted. Deleting a client never cascade-deletes portfolios.
type PortfolioDetacher interface {
	DetachClient(ctx context.Context, clientID uint) error
}

// credentialAdminUsecase implements admin CRUD over credentials. Every
// mutation in a realm bumps that realm's code version so outstanding
// sessions are forced to re-authenticate at their next extension.
type credentialAdminUsecase struct {
	credentials CredentialAdminRepository
	versions    VersionRepository
	portfolios  PortfolioDetacher
}

// NewCredentialAdminUsecase creates a new credentialAdminUsecase instance.
func NewCredentialAdminUsecase(credentials CredentialAdminRepository, versions VersionRepository, portfolios PortfolioDetacher) *credentialAdminUsecase {
	return &credentialAdminUsecase{
		credentials: credentials,
		versions:    versions,
		portfolios:  portfolios,
	}
}

// ListClients returns every client, active or not, for the admin screens.
func (u *credentialAdminUsecase) ListClients(ctx context.Context) ([]entity.Client, error) {
	return u.credentials.ListClients(ctx)
}

func (u *credentialAdminUsecase) CreateClient(ctx context.Context, client *entity.Client) error {
	if err := u.credentials.CreateClient(ctx, client); err != nil {
		return err
	}
	return u.bump(ctx, RealmClient)
}

func (u *credentialAdminUsecase) UpdateClient(ctx context.Context, client *entity.Client) error {
	if err := u.credentials.UpdateClient(ctx, client); err != nil {
		return err
	}
	return u.bump(ctx, RealmClient)
}

// DeleteClient removes the client and detaches its portfolios. Portfolio
// rows survive with no client scope.
func (u *credentialAdminUsecase) DeleteClient(ctx context.Context, id uint) error {
	if err := u.credentials.DeleteClient(ctx, id); err != nil {
		return err
	}
	if err := u.portfolios.DetachClient(ctx, id); err != nil {
		return fmt.Errorf("client deleted but portfolio detach failed: %w", err)
	}
	return u.bump(ctx, RealmClient)
}

func (u *credentialAdminUsecase) ListSharedPasswords(ctx context.Context) ([]entity.SharedPassword, error) {
	return u.credentials.ListSharedPasswords(ctx)
}

func (u *credentialAdminUsecase) CreateSharedPassword(ctx context.Context, sp *entity.SharedPassword) error {
	if err := validateSharedPassword(sp); err != nil {
		return err
	}
	if err := u.credentials.CreateSharedPassword(ctx, sp); err != nil {
		return err
	}
	return u.bump(ctx, RealmClient)
}

func (u *credentialAdminUsecase) UpdateSharedPassword(ctx context.Context, sp *entity.SharedPassword) error {
	if err := validateSharedPassword(sp); err != nil {
		return err
	}
	if err := u.credentials.UpdateSharedPassword(ctx, sp); err != nil {
		return err
	}
	return u.bump(ctx, RealmClient)
}

func (u *credentialAdminUsecase) DeleteSharedPassword(ctx context.Context, id uint) error {
	if err := u.credentials.DeleteSharedPassword(ctx, id); err != nil {
		return err
	}
	return u.bump(ctx, RealmClient)
}

func (u *credentialAdminUsecase) ListAccessCodes(ctx context.Context) ([]entity.AccessCode, error) {
	return u.credentials.ListAccessCodes(ctx)
}

// CreateAccessCode hashes the plaintext code and stores it. The plaintext is
// returned to the caller exactly once, at creation time.
func (u *credentialAdminUsecase) CreateAccessCode(ctx context.Context, name, code string, expiresAt *time.Time) (*entity.AccessCode, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash access code: %w", err)
	}
	ac := &entity.AccessCode{
		Name:      name,
		CodeHash:  hashed,
		IsAdmin:   true,
		IsActive:  true,
		ExpiresAt: expiresAt,
	}
	if err := u.credentials.CreateAccessCode(ctx, ac); err != nil {
		return nil, err
	}
	if err := u.bump(ctx, RealmAdmin); err != nil {
		return nil, err
	}
	return ac, nil
}

func (u *credentialAdminUsecase) SetAccessCodeActive(ctx context.Context, id uint, active bool) error {
	if err := u.credentials.SetAccessCodeActive(ctx, id, active); err != nil {
		return err
	}
	return u.bump(ctx, RealmAdmin)
}

func (u *credentialAdminUsecase) DeleteAccessCode(ctx context.Context, id uint) error {
	if err := u.credentials.DeleteAccessCode(ctx, id); err != nil {
		return err
	}
	return u.bump(ctx, RealmAdmin)
}

func (u *credentialAdminUsecase) bump(ctx context.Context, realm string) error {
	if _, err := u.versions.Bump(ctx, realm); err != nil {
		return fmt.Errorf("credential saved but version bump failed: %w", err)
	}
	return nil
}

func validateSharedPassword(sp *entity.SharedPassword) error {
	if !sp.IsMaster && len(sp.ClientIDs) == 0 {
		return ErrSharedPasswordNoClients
	}
	return nil
}
