package entity

import (
	"fmt"
	"time"
)

// AccessType classifies how a session was opened.
type AccessType string

const (
	// AccessSingle is a session for one client, opened with that client's password.
	AccessSingle AccessType = "single"
	// AccessShared is a session for a fixed set of clients.
	AccessShared AccessType = "shared"
	// AccessMaster is a shared-password session with full visibility.
	AccessMaster AccessType = "master"
	// AccessAdmin is an administrator session opened with an access code.
	AccessAdmin AccessType = "admin"
)

// ClientInfo is the identity resolved for a single-client session.
type ClientInfo struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	LogoURL    string `json:"logoUrl"`
	BrandColor string `json:"brandColor"`
}

// Session is the identity and lifetime derived from a successful password
// match. It is never persisted server-side: the full session travels inside
// a signed token, so two tabs can legitimately hold divergent sessions.
type Session struct {
	AccessType AccessType `json:"accessType"`

	// Client is set for single-client sessions, nil otherwise.
	Client *ClientInfo `json:"clientInfo,omitempty"`

	// ClientIDs is the visibility set for shared sessions. Empty for
	// master and admin sessions, which see everything.
	ClientIDs []uint `json:"clientIds,omitempty"`

	// CodeVersion is the realm's credential version at issue time.
	// A mismatch against the server's active version at extension time
	// means the credential was rotated and the session must end.
	CodeVersion string `json:"codeVersion"`

	ExpiresAt time.Time `json:"expiresAt"`
}

// IsValid reports whether the session is still within its lifetime.
// Validity is monotonic: once false for a given ExpiresAt it stays false
// until a login or extension replaces the session.
func (s *Session) IsValid() bool {
	return time.Now().Before(s.ExpiresAt)
}

// Remaining formats the session's remaining lifetime as MM:SS,
// clamped to "00:00" at or past expiry.
func (s *Session) Remaining() string {
	return FormatRemaining(time.Until(s.ExpiresAt))
}

// IsAdmin reports whether the session may reach privileged mutation paths.
func (s *Session) IsAdmin() bool {
	return s.AccessType == AccessAdmin
}

// CanSeeAll reports whether the session has unrestricted client visibility.
func (s *Session) CanSeeAll() bool {
	return s.AccessType == AccessMaster || s.AccessType == AccessAdmin
}

// VisibleClientIDs returns the client identifiers the session may read,
// or (nil, true) when visibility is unrestricted.
func (s *Session) VisibleClientIDs() (ids []uint, all bool) {
	switch s.AccessType {
	case AccessSingle:
		if s.Client != nil {
			return []uint{s.Client.ID}, false
		}
		return nil, false
	case AccessShared:
		return s.ClientIDs, false
	default:
		return nil, true
	}
}

// FormatRemaining renders a duration as MM:SS with negative values
// clamped to zero. Minutes are not wrapped at the hour, so a fresh
// two-hour admin session reads "120:00".
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
