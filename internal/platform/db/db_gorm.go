package db

import (
	"fmt"
	"log"
	"time"

	accessentity "dashboard_backend/internal/feature/access/domain/entity"
	analyticsentity "dashboard_backend/internal/feature/analytics/domain/entity"
	issueentity "dashboard_backend/internal/feature/issue/domain/entity"
	portfolioentity "dashboard_backend/internal/feature/portfolio/domain/entity"
	resourceentity "dashboard_backend/internal/feature/resource/domain/entity"
	stockentity "dashboard_backend/internal/feature/stock/domain/entity"
	"dashboard_backend/internal/platform/config"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Opener opens a gorm connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry keeps calling open until it succeeds or timeout elapses,
// sleeping 3 seconds between attempts.
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %v: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// Open connects to Postgres, retrying for up to 60 seconds so the service
// survives a database that comes up after it does.
func Open(cfg config.DBConfig) *gorm.DB {
	db, err := ConnectWithRetry(cfg.DSN(), 60*time.Second, func(dsn string) (*gorm.DB, error) {
		return gorm.Open(gpostgres.Open(dsn), &gorm.Config{})
	})
	if err != nil {
		log.Fatal(err)
	}

	if cfg.RunMigrations {
		if err := Migrate(db); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

// Migrate creates or updates every table the service owns.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&accessentity.Client{},
		&accessentity.SharedPassword{},
		&accessentity.AccessCode{},
		&accessentity.CredentialVersion{},
		&stockentity.Stock{},
		&stockentity.InvestmentPoint{},
		&stockentity.BusinessSegment{},
		&portfolioentity.Portfolio{},
		&portfolioentity.PortfolioStock{},
		&issueentity.Issue{},
		&issueentity.IssueImage{},
		&resourceentity.Resource{},
		&resourceentity.GlossaryTerm{},
		&analyticsentity.ViewEvent{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
