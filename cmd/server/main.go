package main

import (
	"context"
	"log"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	redisv9 "github.com/redis/go-redis/v9"

	"dashboard_backend/internal/app/di"
	"dashboard_backend/internal/app/router"
	accessadapters "dashboard_backend/internal/feature/access/adapters"
	accesshandler "dashboard_backend/internal/feature/access/transport/handler"
	accessusecase "dashboard_backend/internal/feature/access/usecase"
	analyticsadapters "dashboard_backend/internal/feature/analytics/adapters"
	analyticshandler "dashboard_backend/internal/feature/analytics/transport/handler"
	analyticsusecase "dashboard_backend/internal/feature/analytics/usecase"
	issueadapters "dashboard_backend/internal/feature/issue/adapters"
	issuehandler "dashboard_backend/internal/feature/issue/transport/handler"
	issueusecase "dashboard_backend/internal/feature/issue/usecase"
	portfolioadapters "dashboard_backend/internal/feature/portfolio/adapters"
	portfoliohandler "dashboard_backend/internal/feature/portfolio/transport/handler"
	portfoliousecase "dashboard_backend/internal/feature/portfolio/usecase"
	resourceadapters "dashboard_backend/internal/feature/resource/adapters"
	resourcehandler "dashboard_backend/internal/feature/resource/transport/handler"
	resourceusecase "dashboard_backend/internal/feature/resource/usecase"
	stockadapters "dashboard_backend/internal/feature/stock/adapters"
	stockhandler "dashboard_backend/internal/feature/stock/transport/handler"
	stockusecase "dashboard_backend/internal/feature/stock/usecase"
	"dashboard_backend/internal/feature/summary/adapters/gemini"
	summaryhandler "dashboard_backend/internal/feature/summary/transport/handler"
	summaryusecase "dashboard_backend/internal/feature/summary/usecase"
	"dashboard_backend/internal/platform/config"
	infradb "dashboard_backend/internal/platform/db"
	"dashboard_backend/internal/platform/metrics"
	"dashboard_backend/internal/platform/objectstore"
	infraredis "dashboard_backend/internal/platform/redis"
	"dashboard_backend/internal/platform/token"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load("configs")
	if err != nil {
		log.Fatal(err)
	}

	// db
	gdb := infradb.Open(cfg.DB)

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(cfg.Redis); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
	} else if tmp != nil {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Metrics
	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	// Token issuer
	issuer := token.NewIssuer(cfg.Token.Secret)

	// File storage
	var imageStore issueusecase.ImageStore = objectstore.Disabled{}
	var fileStore resourceusecase.FileStore = objectstore.Disabled{}
	if cfg.Storage.Bucket != "" {
		store, err := objectstore.NewGCSStore(ctx, cfg.Storage)
		if err != nil {
			log.Fatal("failed to init file storage:", err)
		}
		imageStore = store
		fileStore = store
	} else {
		log.Println("[WARN] STORAGE_BUCKET is not set. File uploads disabled.")
	}

	// Summary generator
	var generator summaryusecase.TimelineGenerator
	if g, err := gemini.NewGeminiGenerator(ctx, cfg.Gemini.Model); err != nil {
		log.Println("[WARN] Gemini unavailable. AI summaries disabled:", err)
	} else {
		generator = g
	}

	// Repository
	credentialRepo := accessadapters.NewCredentialRepository(gdb)
	versionRepo := di.NewVersionRepository(rdb, gdb)
	stockRepo := stockadapters.NewStockRepository(gdb)
	portfolioRepo := portfolioadapters.NewPortfolioRepository(gdb)
	issueRepo := issueadapters.NewIssueRepository(gdb)
	resourceRepo := resourceadapters.NewResourceRepository(gdb)
	glossaryRepo := resourceadapters.NewGlossaryRepository(gdb)
	viewRepo := analyticsadapters.NewViewEventRepository(gdb)

	// Usecase
	accessUC := accessusecase.NewAccessUsecase(credentialRepo, versionRepo, issuer)
	adminUC := accessusecase.NewCredentialAdminUsecase(credentialRepo, versionRepo, portfolioRepo)
	stockUC := stockusecase.NewStockUsecase(stockRepo)
	portfolioUC := portfoliousecase.NewPortfolioUsecase(portfolioRepo, stockRepo)
	issueUC := issueusecase.NewIssueUsecase(issueRepo, imageStore)
	importUC := issueusecase.NewImportUsecase(issueRepo, stockRepo)
	resourceUC := resourceusecase.NewResourceUsecase(resourceRepo, glossaryRepo, fileStore)
	analyticsUC := analyticsusecase.NewAnalyticsUsecase(viewRepo, collector)
	summaryUC := summaryusecase.NewSummaryUsecase(generator, issueRepo)

	// Handler
	handlers := router.Handlers{
		Access:    accesshandler.NewAccessHandler(accessUC),
		Admin:     accesshandler.NewCredentialAdminHandler(adminUC),
		Stock:     stockhandler.NewStockHandler(stockUC),
		Portfolio: portfoliohandler.NewPortfolioHandler(portfolioUC, analyticsUC),
		Issue:     issuehandler.NewIssueHandler(issueUC, importUC, stockRepo),
		Resource:  resourcehandler.NewResourceHandler(resourceUC),
		Analytics: analyticshandler.NewAnalyticsHandler(analyticsUC),
		Summary:   summaryhandler.NewSummaryHandler(summaryUC, stockRepo),
	}

	r := router.NewRouter(handlers, issuer, collector, reg, cfg.Server.CORSOrigins)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
