// Package dto defines the HTTP request and response shapes for the access feature.
package dto

import "time"

// LoginRequest carries the single shared password field both client login
// variants use.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// SessionResponse is the token plus the session fields the browser keeps.
type SessionResponse struct {
	Token      string      `json:"token"`
	AccessType string      `json:"accessType"`
	Client     *ClientInfo `json:"clientInfo,omitempty"`
	ClientIDs  []uint      `json:"clientIds,omitempty"`
	ExpiresAt  time.Time   `json:"expiresAt"`
	Remaining  string      `json:"remaining"`
}

// ClientInfo is the branding payload for single-client sessions.
type ClientInfo struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	LogoURL    string `json:"logoUrl,omitempty"`
	BrandColor string `json:"brandColor,omitempty"`
}

// SaveClientRequest carries the admin create/update payload for a client.
type SaveClientRequest struct {
	Name       string `json:"name" binding:"required"`
	Password   string `json:"password" binding:"required"`
	IsActive   *bool  `json:"isActive"`
	BrandColor string `json:"brandColor"`
	LogoURL    string `json:"logoUrl"`
}

// ClientItem is one client row on the admin list.
type ClientItem struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	IsActive   bool   `json:"isActive"`
	BrandColor string `json:"brandColor,omitempty"`
	LogoURL    string `json:"logoUrl,omitempty"`
}

// SaveSharedPasswordRequest carries the admin payload for a shared password.
type SaveSharedPasswordRequest struct {
	Label     string `json:"label" binding:"required"`
	Password  string `json:"password" binding:"required"`
	IsActive  *bool  `json:"isActive"`
	IsMaster  bool   `json:"isMaster"`
	ClientIDs []uint `json:"clientIds"`
}

// SharedPasswordItem is one shared password row on the admin list.
type SharedPasswordItem struct {
	ID        uint   `json:"id"`
	Label     string `json:"label"`
	IsActive  bool   `json:"isActive"`
	IsMaster  bool   `json:"isMaster"`
	ClientIDs []uint `json:"clientIds"`
}

// CreateAccessCodeRequest carries the admin payload for a new access code.
// The plaintext code is accepted once and stored hashed.
type CreateAccessCodeRequest struct {
	Name      string     `json:"name" binding:"required"`
	Code      string     `json:"code" binding:"required"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

// AccessCodeItem is one access code row on the admin list. The hash never
// leaves the server.
type AccessCodeItem struct {
	ID        uint       `json:"id"`
	Name      string     `json:"name"`
	IsAdmin   bool       `json:"isAdmin"`
	IsActive  bool       `json:"isActive"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// SetActiveRequest toggles an access code.
type SetActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}
