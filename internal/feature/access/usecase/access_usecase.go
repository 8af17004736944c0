package usecase

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"dashboard_backend/internal/feature/access/domain/entity"
)

const (
	// ClientSessionTTL is the lifetime granted to viewer sessions on login
	// and on each successful extension.
	ClientSessionTTL = time.Hour

	// AdminSessionTTL is the lifetime granted to administrator sessions.
	AdminSessionTTL = 2 * time.Hour

	// RealmClient and RealmAdmin name the two credential-version realms.
	RealmClient = "client"
	RealmAdmin  = "admin"
)

// CredentialRepository abstracts the credential tables.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CredentialRepository interface {
	// ListActiveClients returns all clients whose password may open a session.
	ListActiveClients(ctx context.Context) ([]entity.Client, error)

	// ListActiveSharedPasswords returns all active shared passwords.
	ListActiveSharedPasswords(ctx context.Context) ([]entity.SharedPassword, error)

	// ListActiveAccessCodes returns all active admin access codes.
	ListActiveAccessCodes(ctx context.Context) ([]entity.AccessCode, error)
}

// VersionRepository abstracts the per-realm credential version markers.
type VersionRepository interface {
	// ActiveVersion returns the realm's current version, or "" when the
	// realm has never been rotated.
	ActiveVersion(ctx context.Context, realm string) (string, error)

	// Bump rotates the realm's version and returns the new value.
	Bump(ctx context.Context, realm string) (string, error)
}

// TokenIssuer signs a session into a portable token string.
type TokenIssuer interface {
	Issue(session *entity.Session) (string, error)
}

// accessUsecase resolves passwords to sessions and manages session lifetime.
type accessUsecase struct {
	credentials CredentialRepository
	versions    VersionRepository
	tokens      TokenIssuer
}

// NewAccessUsecase creates a new accessUsecase instance.
func NewAccessUsecase(credentials CredentialRepository, versions VersionRepository, tokens TokenIssuer) *accessUsecase {
	return &accessUsecase{
		credentials: credentials,
		versions:    versions,
		tokens:      tokens,
	}
}

// Authenticate resolves a submitted plaintext password in strict order:
// client passwords first, then shared passwords, otherwise one generic
// rejection. On success it returns the derived session and its signed token.
//
// The stored secrets are matched verbatim; comparison is constant-time per
// candidate so response timing does not leak how close a guess came.
// Password uniqueness across the client and shared tables is an admin-side
// invariant this method assumes rather than enforces.
func (u *accessUsecase) Authenticate(ctx context.Context, password string) (*entity.Session, string, error) {
	if strings.TrimSpace(password) == "" {
		return nil, "", ErrEmptyPassword
	}

	clients, err := u.credentials.ListActiveClients(ctx)
	if err != nil {
		return nil, "", err
	}
	for i := range clients {
		if secretsEqual(clients[i].Password, password) {
			c := clients[i]
			return u.open(ctx, &entity.Session{
				AccessType: entity.AccessSingle,
				Client: &entity.ClientInfo{
					ID:         c.ID,
					Name:       c.Name,
					LogoURL:    c.LogoURL,
					BrandColor: c.BrandColor,
				},
			}, RealmClient, ClientSessionTTL)
		}
	}

	shared, err := u.credentials.ListActiveSharedPasswords(ctx)
	if err != nil {
		return nil, "", err
	}
	for i := range shared {
		if secretsEqual(shared[i].Password, password) {
			sp := shared[i]
			session := &entity.Session{AccessType: entity.AccessShared, ClientIDs: sp.ClientIDs}
			if sp.IsMaster {
				session = &entity.Session{AccessType: entity.AccessMaster}
			}
			return u.open(ctx, session, RealmClient, ClientSessionTTL)
		}
	}

	return nil, "", ErrInvalidCredentials
}

// AuthenticateAdmin resolves an admin access code against the active,
// unexpired codes. Codes are stored bcrypt-hashed.
func (u *accessUsecase) AuthenticateAdmin(ctx context.Context, code string) (*entity.Session, string, error) {
	if strings.TrimSpace(code) == "" {
		return nil, "", ErrEmptyPassword
	}

	codes, err := u.credentials.ListActiveAccessCodes(ctx)
	if err != nil {
		return nil, "", err
	}
	now := time.Now()
	for i := range codes {
		if !codes[i].IsUsable(now) {
			continue
		}
		if bcrypt.CompareHashAndPassword(codes[i].CodeHash, []byte(code)) == nil {
			return u.open(ctx, &entity.Session{AccessType: entity.AccessAdmin}, RealmAdmin, AdminSessionTTL)
		}
	}
	return nil, "", ErrInvalidCredentials
}

// Extend renews a live session for its full duration, but only after
// re-validating the realm's credential version:
//   - version fetch fails outright → fail-open, extend anyway (a transient
//     backend error must not lock out an otherwise-valid session);
//   - fetched version is non-empty and differs from the session's stored
//     version → the credential was rotated, refuse and force logout.
func (u *accessUsecase) Extend(ctx context.Context, session *entity.Session) (*entity.Session, string, error) {
	if session == nil || !session.IsValid() {
		return nil, "", ErrSessionExpired
	}

	realm, ttl := RealmClient, ClientSessionTTL
	if session.IsAdmin() {
		realm, ttl = RealmAdmin, AdminSessionTTL
	}

	version, err := u.versions.ActiveVersion(ctx, realm)
	switch {
	case err != nil:
		slog.Warn("code version check failed, extending anyway", "realm", realm, "error", err)
		version = session.CodeVersion
	case version != "" && version != session.CodeVersion:
		return nil, "", ErrCodeRevoked
	}

	renewed := *session
	renewed.CodeVersion = version
	renewed.ExpiresAt = time.Now().Add(ttl)
	token, err := u.tokens.Issue(&renewed)
	if err != nil {
		return nil, "", err
	}
	return &renewed, token, nil
}

// open stamps lifetime and code version onto a freshly resolved session
// and signs it. A version fetch failure at login is tolerated the same way
// extension tolerates it.
func (u *accessUsecase) open(ctx context.Context, session *entity.Session, realm string, ttl time.Duration) (*entity.Session, string, error) {
	version, err := u.versions.ActiveVersion(ctx, realm)
	if err != nil {
		slog.Warn("code version fetch failed at login", "realm", realm, "error", err)
		version = ""
	}
	session.CodeVersion = version
	session.ExpiresAt = time.Now().Add(ttl)

	token, err := u.tokens.Issue(session)
	if err != nil {
		return nil, "", err
	}
	return session, token, nil
}

// secretsEqual compares a stored secret with submitted input in constant time.
func secretsEqual(stored, submitted string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(submitted)) == 1
}
