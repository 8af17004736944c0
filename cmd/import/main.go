package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	issueadapters "dashboard_backend/internal/feature/issue/adapters"
	"dashboard_backend/internal/feature/issue/adapters/xlsx"
	issueusecase "dashboard_backend/internal/feature/issue/usecase"
	stockadapters "dashboard_backend/internal/feature/stock/adapters"
	"dashboard_backend/internal/platform/config"
	infradb "dashboard_backend/internal/platform/db"
)

// Imports an issue workbook from disk, same pipeline as the admin upload
// endpoint. Useful for backfilling large histories without the HTTP layer.
func main() {
	path := flag.String("file", "", "path to the .xlsx workbook")
	flag.Parse()
	if *path == "" {
		log.Fatal("usage: import -file issues.xlsx")
	}

	cfg, err := config.Load("configs")
	if err != nil {
		log.Fatal(err)
	}
	gdb := infradb.Open(cfg.DB)

	f, err := os.Open(*path)
	if err != nil {
		log.Fatal("failed to open workbook:", err)
	}
	defer f.Close()

	rows, err := xlsx.ReadRows(f)
	if err != nil {
		log.Fatal("failed to parse workbook:", err)
	}

	issueRepo := issueadapters.NewIssueRepository(gdb)
	stockRepo := stockadapters.NewStockRepository(gdb)
	uc := issueusecase.NewImportUsecase(issueRepo, stockRepo)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	report, err := uc.BulkImport(ctx, rows)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("import ok: inserted=%d skipped=%d duplicates=%d unknown_tickers=%d",
		report.Inserted, report.Skipped, report.Duplicates, len(report.SkippedTickers))
	for _, e := range report.Errors {
		log.Printf("row %d: %s", e.RowNum, e.Reason)
	}
}
