package usecase

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dashboard_backend/internal/feature/issue/domain/entity"
)

func validRow(rowNum int) entity.ImportRow {
	return entity.ImportRow{
		RowNum:  rowNum,
		Ticker:  entity.StringCell("005930"),
		Date:    entity.StringCell("25/01/15"),
		Title:   entity.StringCell("HBM 수주 확대"),
		Content: entity.StringCell("본문"),
	}
}

func TestParseRows_RequiredFields(t *testing.T) {
	t.Run("row with all four required fields is included", func(t *testing.T) {
		records, rowErrors := ParseRows([]entity.ImportRow{validRow(2)})

		require.Len(t, records, 1)
		assert.Empty(t, rowErrors)
		assert.Equal(t, "005930", records[0].Ticker)
		assert.Equal(t, "25/01/15", records[0].Date)
	})

	t.Run("each missing required field excludes the row", func(t *testing.T) {
		blank := func(mutate func(*entity.ImportRow)) entity.ImportRow {
			row := validRow(3)
			mutate(&row)
			return row
		}
		rows := []entity.ImportRow{
			blank(func(r *entity.ImportRow) { r.Ticker = entity.EmptyCell }),
			blank(func(r *entity.ImportRow) { r.Date = entity.EmptyCell }),
			blank(func(r *entity.ImportRow) { r.Title = entity.StringCell("") }),
			blank(func(r *entity.ImportRow) { r.Content = entity.EmptyCell }),
		}

		records, rowErrors := ParseRows(rows)

		assert.Empty(t, records)
		assert.Len(t, rowErrors, 4)
	})

	t.Run("falsy numeric ticker counts as missing", func(t *testing.T) {
		row := validRow(4)
		row.Ticker = entity.NumberCell(0)

		records, rowErrors := ParseRows([]entity.ImportRow{row})

		assert.Empty(t, records)
		require.Len(t, rowErrors, 1)
		assert.Equal(t, 4, rowErrors[0].RowNum)
		assert.Contains(t, rowErrors[0].Reason, "ticker")
	})

	t.Run("optional fields may be absent", func(t *testing.T) {
		records, rowErrors := ParseRows([]entity.ImportRow{validRow(2)})

		require.Len(t, records, 1)
		assert.Empty(t, rowErrors)
		assert.False(t, records[0].IsCMS)
		assert.NotNil(t, records[0].Keywords)
		assert.Empty(t, records[0].Keywords)
	})
}

func TestNormalizeDate(t *testing.T) {
	t.Run("string passes through verbatim", func(t *testing.T) {
		assert.Equal(t, "25/01/15", NormalizeDate(entity.StringCell("25/01/15")))
		// Even a string that is not in YY/MM/DD form is untouched.
		assert.Equal(t, "2025-01-15", NormalizeDate(entity.StringCell("2025-01-15")))
	})

	t.Run("serial 45672 maps to 2025-01-15 in YY/MM/DD form", func(t *testing.T) {
		got := NormalizeDate(entity.NumberCell(45672))

		assert.Regexp(t, regexp.MustCompile(`^\d{2}/\d{2}/\d{2}$`), got)
		assert.Equal(t, "25/01/15", got)
	})

	t.Run("serial 0 is the 1899-12-30 epoch", func(t *testing.T) {
		assert.Equal(t, "99/12/30", NormalizeDate(entity.NumberCell(0)))
	})

	t.Run("native date formats directly", func(t *testing.T) {
		d := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, "25/01/15", NormalizeDate(entity.TimeCell(d)))
	})

	t.Run("unexpected kind degrades to stringification", func(t *testing.T) {
		assert.Equal(t, "true", NormalizeDate(entity.BoolCell(true)))
	})
}

func TestParseIsCMS(t *testing.T) {
	tests := []struct {
		name     string
		cell     entity.Cell
		expected bool
	}{
		{name: "native true", cell: entity.BoolCell(true), expected: true},
		{name: "uppercase TRUE string", cell: entity.StringCell("TRUE"), expected: true},
		{name: "number one", cell: entity.NumberCell(1), expected: true},
		{name: "lowercase true string", cell: entity.StringCell("true"), expected: false},
		{name: "number zero", cell: entity.NumberCell(0), expected: false},
		{name: "absent", cell: entity.EmptyCell, expected: false},
		{name: "native false", cell: entity.BoolCell(false), expected: false},
		{name: "FALSE string", cell: entity.StringCell("FALSE"), expected: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseIsCMS(tt.cell))
		})
	}
}

func TestParseKeywords(t *testing.T) {
	t.Run("splits, trims and drops empties", func(t *testing.T) {
		got := ParseKeywords(entity.StringCell(" 반도체 , HBM,, AI "))
		assert.Equal(t, []string{"반도체", "HBM", "AI"}, got)
	})

	t.Run("absent yields empty non-nil list", func(t *testing.T) {
		got := ParseKeywords(entity.EmptyCell)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

// mockIssueRepository is a mock implementation of IssueRepository.
type mockIssueRepository struct {
	CreateFunc       func(ctx context.Context, issue *entity.Issue) error
	ExistsFunc       func(ctx context.Context, stockID uint, date, title string) (bool, error)
	UpdateImagesFunc func(ctx context.Context, id uint, images []entity.IssueImage) error
}

func (m *mockIssueRepository) Create(ctx context.Context, issue *entity.Issue) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, issue)
	}
	return nil
}

func (m *mockIssueRepository) FindByID(ctx context.Context, id uint) (*entity.Issue, error) {
	return nil, ErrIssueNotFound
}

func (m *mockIssueRepository) ListByStock(ctx context.Context, stockID uint) ([]entity.Issue, error) {
	return nil, nil
}

func (m *mockIssueRepository) Update(ctx context.Context, issue *entity.Issue) error { return nil }

func (m *mockIssueRepository) Delete(ctx context.Context, id uint) error { return nil }

func (m *mockIssueRepository) Exists(ctx context.Context, stockID uint, date, title string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, stockID, date, title)
	}
	return false, nil
}

func (m *mockIssueRepository) UpdateImages(ctx context.Context, id uint, images []entity.IssueImage) error {
	if m.UpdateImagesFunc != nil {
		return m.UpdateImagesFunc(ctx, id, images)
	}
	return nil
}

// mockTickerResolver is a mock implementation of TickerResolver.
type mockTickerResolver struct {
	ids map[string]uint
}

func (m *mockTickerResolver) TickerIDs(ctx context.Context) (map[string]uint, error) {
	return m.ids, nil
}

func TestImportUsecase_BulkImport(t *testing.T) {
	t.Run("categories are distinct and all reported", func(t *testing.T) {
		repo := &mockIssueRepository{
			ExistsFunc: func(ctx context.Context, stockID uint, date, title string) (bool, error) {
				return title == "이미 있는 이슈", nil
			},
		}
		uc := NewImportUsecase(repo, &mockTickerResolver{ids: map[string]uint{"005930": 1}})

		dupe := validRow(3)
		dupe.Title = entity.StringCell("이미 있는 이슈")
		unknown := validRow(4)
		unknown.Ticker = entity.StringCell("999999")
		invalid := validRow(5)
		invalid.Content = entity.EmptyCell

		report, err := uc.BulkImport(context.Background(), []entity.ImportRow{validRow(2), dupe, unknown, invalid})

		require.NoError(t, err)
		assert.Equal(t, 1, report.Inserted)
		assert.Equal(t, 1, report.Duplicates)
		assert.Equal(t, 1, report.Skipped)
		assert.Equal(t, []string{"999999"}, report.SkippedTickers)
		require.Len(t, report.Errors, 1)
		assert.Equal(t, 5, report.Errors[0].RowNum)
	})

	t.Run("empty input still reports every category", func(t *testing.T) {
		uc := NewImportUsecase(&mockIssueRepository{}, &mockTickerResolver{ids: map[string]uint{}})

		report, err := uc.BulkImport(context.Background(), nil)

		require.NoError(t, err)
		assert.Zero(t, report.Inserted)
		assert.Zero(t, report.Skipped)
		assert.Zero(t, report.Duplicates)
		assert.NotNil(t, report.SkippedTickers)
		assert.NotNil(t, report.Errors)
	})

	t.Run("numeric tickers are normalized before matching", func(t *testing.T) {
		var created *entity.Issue
		repo := &mockIssueRepository{
			CreateFunc: func(ctx context.Context, issue *entity.Issue) error {
				created = issue
				return nil
			},
		}
		uc := NewImportUsecase(repo, &mockTickerResolver{ids: map[string]uint{"373220": 7}})

		row := validRow(2)
		row.Ticker = entity.NumberCell(373220)

		report, err := uc.BulkImport(context.Background(), []entity.ImportRow{row})

		require.NoError(t, err)
		assert.Equal(t, 1, report.Inserted)
		require.NotNil(t, created)
		assert.Equal(t, uint(7), created.StockID)
	})
}
