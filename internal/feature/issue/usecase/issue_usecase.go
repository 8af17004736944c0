package usecase

import (
	"context"
	"io"
	"log/slog"

	"dashboard_backend/internal/feature/issue/domain/entity"
)

// IssueRepository abstracts the persistence layer for issue entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type IssueRepository interface {
	Create(ctx context.Context, issue *entity.Issue) error
	FindByID(ctx context.Context, id uint) (*entity.Issue, error)
	ListByStock(ctx context.Context, stockID uint) ([]entity.Issue, error)
	Update(ctx context.Context, issue *entity.Issue) error
	Delete(ctx context.Context, id uint) error

	// Exists reports whether an issue with the same stock, date and title is
	// already stored. Used as the bulk-import dedup predicate.
	Exists(ctx context.Context, stockID uint, date, title string) (bool, error)

	// UpdateImages persists the image list onto an existing issue.
	UpdateImages(ctx context.Context, id uint, images []entity.IssueImage) error
}

// ImageStore uploads one image blob and returns its public URL.
type ImageStore interface {
	Upload(ctx context.Context, filename string, contentType string, r io.Reader) (string, error)
}

// ImageUpload is one pending image in an issue mutation.
type ImageUpload struct {
	Filename    string
	ContentType string
	Caption     string
	Reader      io.Reader
}

// issueUsecase implements issue CRUD and the best-effort image pipeline.
type issueUsecase struct {
	issues IssueRepository
	images ImageStore
}

// NewIssueUsecase creates a new issueUsecase instance.
func NewIssueUsecase(issues IssueRepository, images ImageStore) *issueUsecase {
	return &issueUsecase{issues: issues, images: images}
}

// ListByStock returns a stock's issues, newest first.
func (u *issueUsecase) ListByStock(ctx context.Context, stockID uint) ([]entity.Issue, error) {
	return u.issues.ListByStock(ctx, stockID)
}

// CreateWithImages creates the issue row first, then uploads images one at a
// time. A failed upload is skipped — its URL omitted — without aborting the
// remaining uploads or the operation; the image list is persisted onto the
// issue only after the whole batch has been attempted. Best-effort, not
// transactional.
func (u *issueUsecase) CreateWithImages(ctx context.Context, issue *entity.Issue, uploads []ImageUpload) (*entity.Issue, error) {
	if err := u.issues.Create(ctx, issue); err != nil {
		return nil, err
	}
	if len(uploads) == 0 {
		return issue, nil
	}

	images := make([]entity.IssueImage, 0, len(uploads))
	for _, up := range uploads {
		url, err := u.images.Upload(ctx, up.Filename, up.ContentType, up.Reader)
		if err != nil {
			slog.Warn("issue image upload failed, skipping", "issue_id", issue.ID, "filename", up.Filename, "error", err)
			continue
		}
		images = append(images, entity.IssueImage{URL: url, Caption: up.Caption})
	}

	if err := u.issues.UpdateImages(ctx, issue.ID, images); err != nil {
		return nil, err
	}
	issue.Images = images
	return issue, nil
}

// Update edits an issue's authored fields. Images are managed separately.
func (u *issueUsecase) Update(ctx context.Context, issue *entity.Issue) error {
	return u.issues.Update(ctx, issue)
}

// Delete removes an issue.
func (u *issueUsecase) Delete(ctx context.Context, id uint) error {
	return u.issues.Delete(ctx, id)
}
