// Package dto defines the HTTP request and response shapes for the resource feature.
package dto

import "time"

// ResourceItem is one downloadable document in the resources list.
type ResourceItem struct {
	ID         uint      `json:"id"`
	Title      string    `json:"title"`
	Category   string    `json:"category,omitempty"`
	FileURL    string    `json:"fileUrl"`
	ClientID   *uint     `json:"clientId,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// ResourceList wraps the visible resources with the newest upload time, so
// clients can compute their unseen badge against a locally kept timestamp.
type ResourceList struct {
	Resources        []ResourceItem `json:"resources"`
	LatestUploadedAt *time.Time     `json:"latestUploadedAt,omitempty"`
}

// UpdateResourceRequest carries the admin metadata update for a resource.
type UpdateResourceRequest struct {
	Title    string `json:"title" binding:"required"`
	Category string `json:"category"`
	FileURL  string `json:"fileUrl" binding:"required"`
	ClientID *uint  `json:"clientId"`
}

// GlossaryTermItem is one glossary entry.
type GlossaryTermItem struct {
	ID         uint   `json:"id"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Category   string `json:"category,omitempty"`
}

// SaveTermRequest carries the admin create/update payload for a glossary term.
type SaveTermRequest struct {
	Term       string `json:"term" binding:"required"`
	Definition string `json:"definition" binding:"required"`
	Category   string `json:"category"`
}
