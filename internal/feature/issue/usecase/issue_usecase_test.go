package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard_backend/internal/feature/issue/domain/entity"
)

// mockImageStore is a mock implementation of ImageStore.
type mockImageStore struct {
	UploadFunc func(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
	calls      []string
}

func (m *mockImageStore) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	m.calls = append(m.calls, filename)
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, filename, contentType, r)
	}
	return "https://cdn.example.com/" + filename, nil
}

func TestIssueUsecase_CreateWithImages(t *testing.T) {
	newUpload := func(name, caption string) ImageUpload {
		return ImageUpload{Filename: name, ContentType: "image/png", Caption: caption, Reader: strings.NewReader("png")}
	}

	t.Run("issue row is created before any upload", func(t *testing.T) {
		var order []string
		repo := &mockIssueRepository{
			CreateFunc: func(ctx context.Context, issue *entity.Issue) error {
				order = append(order, "create")
				issue.ID = 11
				return nil
			},
		}
		store := &mockImageStore{
			UploadFunc: func(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
				order = append(order, "upload")
				return "https://cdn.example.com/" + filename, nil
			},
		}
		uc := NewIssueUsecase(repo, store)

		_, err := uc.CreateWithImages(context.Background(), &entity.Issue{StockID: 1, Title: "t", Content: "c", Date: "25/01/15"},
			[]ImageUpload{newUpload("a.png", "차트")})

		require.NoError(t, err)
		assert.Equal(t, []string{"create", "upload"}, order)
	})

	t.Run("failed upload is skipped without aborting the batch", func(t *testing.T) {
		var persisted []entity.IssueImage
		repo := &mockIssueRepository{
			CreateFunc: func(ctx context.Context, issue *entity.Issue) error {
				issue.ID = 12
				return nil
			},
			UpdateImagesFunc: func(ctx context.Context, id uint, images []entity.IssueImage) error {
				persisted = images
				return nil
			},
		}
		store := &mockImageStore{
			UploadFunc: func(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
				if filename == "b.png" {
					return "", errors.New("bucket unavailable")
				}
				return "https://cdn.example.com/" + filename, nil
			},
		}
		uc := NewIssueUsecase(repo, store)

		issue, err := uc.CreateWithImages(context.Background(), &entity.Issue{StockID: 1, Title: "t", Content: "c", Date: "25/01/15"},
			[]ImageUpload{newUpload("a.png", "첫번째"), newUpload("b.png", "두번째"), newUpload("c.png", "세번째")})

		require.NoError(t, err, "a failed upload must not fail the operation")
		// All three uploads were attempted, sequentially.
		assert.Equal(t, []string{"a.png", "b.png", "c.png"}, store.calls)
		// Only the successful URLs are persisted.
		require.Len(t, persisted, 2)
		assert.Equal(t, "https://cdn.example.com/a.png", persisted[0].URL)
		assert.Equal(t, "세번째", persisted[1].Caption)
		assert.Equal(t, persisted, issue.Images)
	})

	t.Run("no uploads skips the image pass entirely", func(t *testing.T) {
		repo := &mockIssueRepository{
			UpdateImagesFunc: func(ctx context.Context, id uint, images []entity.IssueImage) error {
				t.Fatal("image list must not be touched when there are no uploads")
				return nil
			},
		}
		uc := NewIssueUsecase(repo, &mockImageStore{})

		_, err := uc.CreateWithImages(context.Background(), &entity.Issue{StockID: 1, Title: "t", Content: "c", Date: "25/01/15"}, nil)

		require.NoError(t, err)
	})

	t.Run("create failure aborts before uploads", func(t *testing.T) {
		repo := &mockIssueRepository{
			CreateFunc: func(ctx context.Context, issue *entity.Issue) error {
				return errors.New("insert failed")
			},
		}
		store := &mockImageStore{}
		uc := NewIssueUsecase(repo, store)

		_, err := uc.CreateWithImages(context.Background(), &entity.Issue{}, []ImageUpload{newUpload("a.png", "")})

		assert.Error(t, err)
		assert.Empty(t, store.calls)
	})
}
