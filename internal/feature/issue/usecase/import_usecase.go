package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dashboard_backend/internal/feature/issue/domain/entity"
)

// serialEpoch is the day-zero of spreadsheet date serials (1899-12-30).
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// millisPerDay converts a day-count serial to milliseconds.
const millisPerDay = 86_400_000

// ParseRows validates and normalizes loosely-typed spreadsheet rows into
// typed issue-creation records. Rows missing any of ticker, date, title or
// content are dropped from the output and reported as row errors; there is
// no partial-row recovery.
func ParseRows(rows []entity.ImportRow) ([]entity.ImportRecord, []entity.RowError) {
	records := make([]entity.ImportRecord, 0, len(rows))
	rowErrors := make([]entity.RowError, 0)

	for _, row := range rows {
		if missing := missingFields(row); len(missing) > 0 {
			rowErrors = append(rowErrors, entity.RowError{
				RowNum: row.RowNum,
				Reason: fmt.Sprintf("missing required field(s): %s", strings.Join(missing, ", ")),
			})
			continue
		}

		records = append(records, entity.ImportRecord{
			Ticker:   strings.TrimSpace(row.Ticker.AsString()),
			Date:     NormalizeDate(row.Date),
			Title:    row.Title.AsString(),
			Content:  row.Content.AsString(),
			Source:   row.Source.AsString(),
			IsCMS:    ParseIsCMS(row.IsCMS),
			Keywords: ParseKeywords(row.Keywords),
		})
	}

	return records, rowErrors
}

func missingFields(row entity.ImportRow) []string {
	var missing []string
	if row.Ticker.IsFalsy() {
		missing = append(missing, "ticker")
	}
	if row.Date.IsFalsy() {
		missing = append(missing, "date")
	}
	if row.Title.IsFalsy() {
		missing = append(missing, "title")
	}
	if row.Content.IsFalsy() {
		missing = append(missing, "content")
	}
	return missing
}

// NormalizeDate maps a date cell to the YY/MM/DD display string:
//   - strings pass through verbatim;
//   - numbers are day-count serials from the 1899-12-30 epoch, resolved with
//     integer millisecond arithmetic;
//   - native dates format directly;
//   - anything else degrades to plain stringification. That fallback is a
//     known, accepted edge, not something to mask.
func NormalizeDate(c entity.Cell) string {
	switch c.Kind {
	case entity.CellString:
		return c.Str
	case entity.CellNumber:
		ms := int64(c.Num * millisPerDay)
		return serialEpoch.Add(time.Duration(ms) * time.Millisecond).Format("06/01/02")
	case entity.CellTime:
		return c.Time.Format("06/01/02")
	default:
		return c.AsString()
	}
}

// ParseIsCMS normalizes the is_cms column. True only for a native true, the
// exact uppercase string "TRUE", or the number 1; everything else — the
// lowercase "true" included — is false. The asymmetry is deliberate and
// called out in the operator import guide rather than special-cased here.
func ParseIsCMS(c entity.Cell) bool {
	switch c.Kind {
	case entity.CellBool:
		return c.Bool
	case entity.CellString:
		return c.Str == "TRUE"
	case entity.CellNumber:
		return c.Num == 1
	}
	return false
}

// ParseKeywords splits a comma-separated keyword cell, trimming each segment
// and dropping empties. Absent input yields an empty, non-nil list.
func ParseKeywords(c entity.Cell) []string {
	keywords := make([]string, 0)
	if c.Kind != entity.CellString {
		return keywords
	}
	for _, part := range strings.Split(c.Str, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}

// TickerResolver maps stock tickers to stock IDs for import matching.
type TickerResolver interface {
	// TickerIDs returns every known ticker mapped to its stock ID.
	TickerIDs(ctx context.Context) (map[string]uint, error)
}

// importUsecase turns parsed records into stored issues and reports the
// outcome per category.
type importUsecase struct {
	issues  IssueRepository
	tickers TickerResolver
}

// NewImportUsecase creates a new importUsecase instance.
func NewImportUsecase(issues IssueRepository, tickers TickerResolver) *importUsecase {
	return &importUsecase{issues: issues, tickers: tickers}
}

// BulkImport runs the full pipeline: parse, match tickers, dedup, insert.
// Unknown tickers are skipped (distinct from validation errors), and a row
// whose ticker+date+title already exists counts as a duplicate. Inserts are
// issued one row at a time; a storage error aborts the run since it is not
// a data problem the operator can fix by editing the file.
func (u *importUsecase) BulkImport(ctx context.Context, rows []entity.ImportRow) (*entity.ImportReport, error) {
	records, rowErrors := ParseRows(rows)

	report := &entity.ImportReport{
		SkippedTickers: make([]string, 0),
		Errors:         rowErrors,
	}

	tickerIDs, err := u.tickers.TickerIDs(ctx)
	if err != nil {
		return nil, err
	}

	seenSkipped := map[string]struct{}{}
	for _, rec := range records {
		stockID, ok := tickerIDs[rec.Ticker]
		if !ok {
			report.Skipped++
			if _, dup := seenSkipped[rec.Ticker]; !dup {
				seenSkipped[rec.Ticker] = struct{}{}
				report.SkippedTickers = append(report.SkippedTickers, rec.Ticker)
			}
			continue
		}

		exists, err := u.issues.Exists(ctx, stockID, rec.Date, rec.Title)
		if err != nil {
			return nil, err
		}
		if exists {
			report.Duplicates++
			continue
		}

		issue := &entity.Issue{
			StockID:  stockID,
			Date:     rec.Date,
			Title:    rec.Title,
			Content:  rec.Content,
			Source:   rec.Source,
			IsCMS:    rec.IsCMS,
			Keywords: rec.Keywords,
		}
		if err := u.issues.Create(ctx, issue); err != nil {
			return nil, err
		}
		report.Inserted++
	}

	return report, nil
}
