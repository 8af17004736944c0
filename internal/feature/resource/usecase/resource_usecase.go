// Package usecase implements the business logic for the resource feature.
package usecase

import (
	"context"
	"errors"
	"io"
	"time"

	accessentity "dashboard_backend/internal/feature/access/domain/entity"
	"dashboard_backend/internal/feature/resource/domain/entity"
)

var (
	// ErrResourceNotFound is returned when a resource cannot be found by ID.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrTermNotFound is returned when a glossary term cannot be found by ID.
	ErrTermNotFound = errors.New("glossary term not found")
)

// ResourceRepository abstracts the persistence layer for resources.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ResourceRepository interface {
	// ListVisible returns resources whose scope is nil or in clientIDs,
	// newest upload first. With all set, every resource is returned.
	ListVisible(ctx context.Context, clientIDs []uint, all bool) ([]entity.Resource, error)
	// LatestUploadedAt returns the newest visible upload time, or the zero
	// time when nothing is visible.
	LatestUploadedAt(ctx context.Context, clientIDs []uint, all bool) (time.Time, error)
	FindByID(ctx context.Context, id uint) (*entity.Resource, error)
	Create(ctx context.Context, r *entity.Resource) error
	Update(ctx context.Context, r *entity.Resource) error
	Delete(ctx context.Context, id uint) error
}

// GlossaryRepository abstracts the persistence layer for glossary terms.
type GlossaryRepository interface {
	List(ctx context.Context) ([]entity.GlossaryTerm, error)
	Create(ctx context.Context, term *entity.GlossaryTerm) error
	Update(ctx context.Context, term *entity.GlossaryTerm) error
	Delete(ctx context.Context, id uint) error
}

// FileStore persists an uploaded document and returns its public URL.
type FileStore interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
}

// FileUpload is one document handed to Create alongside its metadata.
type FileUpload struct {
	Filename    string
	ContentType string
	Reader      io.Reader
}

type resourceUsecase struct {
	resources ResourceRepository
	glossary  GlossaryRepository
	files     FileStore
	now       func() time.Time
}

// NewResourceUsecase creates a new resourceUsecase instance.
func NewResourceUsecase(resources ResourceRepository, glossary GlossaryRepository, files FileStore) *resourceUsecase {
	return &resourceUsecase{resources: resources, glossary: glossary, files: files, now: time.Now}
}

// List returns the resources visible to the session, newest first.
func (u *resourceUsecase) List(ctx context.Context, session *accessentity.Session) ([]entity.Resource, error) {
	clientIDs, all := session.VisibleClientIDs()
	return u.resources.ListVisible(ctx, clientIDs, all)
}

// LatestUploadedAt returns the newest visible upload time so clients can
// compute their unseen badge locally.
func (u *resourceUsecase) LatestUploadedAt(ctx context.Context, session *accessentity.Session) (time.Time, error) {
	clientIDs, all := session.VisibleClientIDs()
	return u.resources.LatestUploadedAt(ctx, clientIDs, all)
}

// Create uploads the document first, then persists the row pointing at it.
// Without an upload the given FileURL is stored as-is.
func (u *resourceUsecase) Create(ctx context.Context, r *entity.Resource, upload *FileUpload) error {
	if upload != nil {
		url, err := u.files.Upload(ctx, upload.Filename, upload.ContentType, upload.Reader)
		if err != nil {
			return err
		}
		r.FileURL = url
	}
	if r.UploadedAt.IsZero() {
		r.UploadedAt = u.now()
	}
	return u.resources.Create(ctx, r)
}

func (u *resourceUsecase) Update(ctx context.Context, r *entity.Resource) error {
	return u.resources.Update(ctx, r)
}

func (u *resourceUsecase) Delete(ctx context.Context, id uint) error {
	return u.resources.Delete(ctx, id)
}

// Glossary returns every term; the glossary is not client-scoped.
func (u *resourceUsecase) Glossary(ctx context.Context) ([]entity.GlossaryTerm, error) {
	return u.glossary.List(ctx)
}

func (u *resourceUsecase) CreateTerm(ctx context.Context, term *entity.GlossaryTerm) error {
	return u.glossary.Create(ctx, term)
}

func (u *resourceUsecase) UpdateTerm(ctx context.Context, term *entity.GlossaryTerm) error {
	return u.glossary.Update(ctx, term)
}

func (u *resourceUsecase) DeleteTerm(ctx context.Context, id uint) error {
	return u.glossary.Delete(ctx, id)
}
