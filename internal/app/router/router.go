// Package router assembles the HTTP route table.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	accesshandler "dashboard_backend/internal/feature/access/transport/handler"
	analyticshandler "dashboard_backend/internal/feature/analytics/transport/handler"
	issuehandler "dashboard_backend/internal/feature/issue/transport/handler"
	portfoliohandler "dashboard_backend/internal/feature/portfolio/transport/handler"
	resourcehandler "dashboard_backend/internal/feature/resource/transport/handler"
	stockhandler "dashboard_backend/internal/feature/stock/transport/handler"
	summaryhandler "dashboard_backend/internal/feature/summary/transport/handler"
	"dashboard_backend/internal/platform/metrics"
	"dashboard_backend/internal/platform/token"
	"dashboard_backend/internal/shared/ratelimiter"
)

// Handlers bundles every transport handler the router mounts.
type Handlers struct {
	Access    *accesshandler.AccessHandler
	Admin     *accesshandler.CredentialAdminHandler
	Stock     *stockhandler.StockHandler
	Portfolio *portfoliohandler.PortfolioHandler
	Issue     *issuehandler.IssueHandler
	Resource  *resourcehandler.ResourceHandler
	Analytics *analyticshandler.AnalyticsHandler
	Summary   *summaryhandler.SummaryHandler
}

// NewRouter builds the gin engine with the full route table. corsOrigins may
// be empty, in which case no CORS headers are emitted.
func NewRouter(h Handlers, issuer *token.Issuer, collector *metrics.Collector, gatherer prometheus.Gatherer, corsOrigins []string) *gin.Engine {
	r := gin.Default()

	if collector != nil {
		r.Use(func(c *gin.Context) {
			c.Next()
			collector.RecordHTTPRequest(c.Request.Method, c.FullPath(), c.Writer.Status())
		})
	}

	if len(corsOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     corsOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// No auth required.
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler(gatherer)))

	// Login endpoints are the only password oracle; throttle per IP.
	limiter := ratelimiter.NewLimiter(10, time.Minute)
	r.POST("/login", limiter.Middleware(), h.Access.Login)
	r.POST("/admin/login", limiter.Middleware(), h.Access.AdminLogin)

	// Any valid session: viewer-facing reads plus session management.
	authed := r.Group("/")
	authed.Use(token.SessionRequired(issuer))
	{
		authed.GET("/session", h.Access.Session)
		authed.POST("/session/extend", h.Access.Extend)
		authed.POST("/logout", h.Access.Logout)

		authed.GET("/dashboard", h.Portfolio.Dashboard)
		authed.GET("/portfolios/:id", h.Portfolio.Detail)
		authed.GET("/stocks", h.Stock.List)
		authed.GET("/stocks/:ticker", h.Stock.Detail)
		authed.GET("/stocks/:ticker/issues", h.Issue.ListByStock)
		authed.GET("/resources", h.Resource.List)
		authed.GET("/glossary", h.Resource.Glossary)
	}

	// Admin sessions only: every mutation endpoint.
	admin := r.Group("/admin")
	admin.Use(token.SessionRequired(issuer), token.AdminRequired())
	{
		admin.GET("/clients", h.Admin.ListClients)
		admin.POST("/clients", h.Admin.CreateClient)
		admin.PUT("/clients/:id", h.Admin.UpdateClient)
		admin.DELETE("/clients/:id", h.Admin.DeleteClient)
		admin.GET("/shared-passwords", h.Admin.ListSharedPasswords)
		admin.POST("/shared-passwords", h.Admin.CreateSharedPassword)
		admin.PUT("/shared-passwords/:id", h.Admin.UpdateSharedPassword)
		admin.DELETE("/shared-passwords/:id", h.Admin.DeleteSharedPassword)
		admin.GET("/access-codes", h.Admin.ListAccessCodes)
		admin.POST("/access-codes", h.Admin.CreateAccessCode)
		admin.PATCH("/access-codes/:id", h.Admin.SetAccessCodeActive)
		admin.DELETE("/access-codes/:id", h.Admin.DeleteAccessCode)

		admin.GET("/stocks", h.Stock.ListAll)
		admin.POST("/stocks", h.Stock.Create)
		admin.PUT("/stocks/:id", h.Stock.Update)
		admin.DELETE("/stocks/:id", h.Stock.Delete)
		admin.POST("/stocks/:id/summary", h.Summary.Summarize)

		admin.GET("/portfolios", h.Portfolio.List)
		admin.POST("/portfolios", h.Portfolio.Create)
		admin.PUT("/portfolios/:id", h.Portfolio.Update)
		admin.DELETE("/portfolios/:id", h.Portfolio.Delete)
		admin.POST("/portfolios/:id/activate", h.Portfolio.Activate)
		admin.PUT("/portfolios/:id/stocks", h.Portfolio.SetStocks)

		admin.POST("/issues", h.Issue.Create)
		admin.PUT("/issues/:id", h.Issue.Update)
		admin.DELETE("/issues/:id", h.Issue.Delete)
		admin.POST("/issues/import", h.Issue.Import)

		admin.POST("/resources", h.Resource.Create)
		admin.PUT("/resources/:id", h.Resource.Update)
		admin.DELETE("/resources/:id", h.Resource.Delete)
		admin.POST("/glossary", h.Resource.CreateTerm)
		admin.PUT("/glossary/:id", h.Resource.UpdateTerm)
		admin.DELETE("/glossary/:id", h.Resource.DeleteTerm)

		admin.GET("/analytics/portfolios", h.Analytics.PortfolioViews)
	}

	return r
}
