// Package entity defines the domain entities for the access feature.
package entity

import "time"

// Client represents a tenant organization with its own viewer password and
// branding. Visible portfolios and resources are scoped by client.
type Client struct {
	ID uint `gorm:"primaryKey"`

	// Name is the display name shown in the viewer header.
	Name string `gorm:"size:255;not null"`

	// Password is the viewer password, matched verbatim against submitted
	// input. Uniqueness across clients and shared passwords is an admin-side
	// invariant; this table does not enforce it.
	Password string `gorm:"size:255;not null"`

	IsActive   bool   `gorm:"not null;default:true"`
	BrandColor string `gorm:"size:32"`
	LogoURL    string `gorm:"size:512"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SharedPassword grants access to a set of clients' data at once,
// or to everything when flagged master.
type SharedPassword struct {
	ID uint `gorm:"primaryKey"`

	// Label is an admin-facing description of who holds this password.
	Label string `gorm:"size:255;not null"`

	Password string `gorm:"size:255;not null"`
	IsActive bool   `gorm:"not null;default:true"`

	// IsMaster grants full visibility with no client filter.
	IsMaster bool `gorm:"not null;default:false"`

	// ClientIDs lists the tenants this password unlocks. A non-master
	// shared password must reference at least one client.
	ClientIDs []uint `gorm:"serializer:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AccessCode is an administrator secret, separate from client passwords,
// authorizing privileged mutation endpoints.
type AccessCode struct {
	ID uint `gorm:"primaryKey"`

	Name string `gorm:"size:255;not null"`

	// CodeHash is the bcrypt hash of the admin code. The plaintext code is
	// never stored.
	CodeHash []byte `gorm:"size:255;not null"`

	IsAdmin  bool `gorm:"not null;default:true"`
	IsActive bool `gorm:"not null;default:true"`

	// ExpiresAt optionally bounds the code's lifetime; nil means no expiry.
	ExpiresAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsUsable reports whether the code can authenticate an administrator now.
func (a *AccessCode) IsUsable(now time.Time) bool {
	if !a.IsActive || !a.IsAdmin {
		return false
	}
	if a.ExpiresAt != nil && now.After(*a.ExpiresAt) {
		return false
	}
	return true
}

// CredentialVersion is the per-realm opaque marker used to detect server-side
// revocation of the currently active credential during session extension.
// Rotating a credential bumps the realm's version, which forces outstanding
// sessions to re-authenticate at their next extension.
type CredentialVersion struct {
	// Realm is either "client" or "admin".
	Realm     string `gorm:"primaryKey;size:32"`
	Version   string `gorm:"size:64;not null"`
	UpdatedAt time.Time
}
