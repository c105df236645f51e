package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/mamadbah2/finca/internal/domain/models"
	"github.com/mamadbah2/finca/internal/server/handlers"
	"github.com/mamadbah2/finca/internal/service/farm"
)

// Deps are the services the HTTP adapter exposes.
type Deps struct {
	Farm *farm.Service
	// Digester is optional; without it the digest routes are not mounted.
	Digester handlers.Digester
	// Archive is optional; it backs GET /digest/latest.
	Archive handlers.DigestArchive
	// Gatherer backs /metrics; nil leaves the route out.
	Gatherer prometheus.Gatherer
	Now      func() time.Time
}

// New wires the Gin engine with required routes and middlewares.
func New(deps Deps, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if deps.Gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api/v1")
	f := deps.Farm
	hl := logger.Named("handlers")

	handlers.NewResourceHandler[models.Lote, models.LoteForm](f.Lotes, hl).Register(api.Group("/lotes"))
	handlers.NewResourceHandler[models.Crop, models.CropForm](f.Crops, hl).Register(api.Group("/crops"))
	handlers.NewResourceHandler[models.AgroAction, models.AgroActionForm](f.AgroActions, hl).Register(api.Group("/agro-actions"))
	handlers.NewResourceHandler[models.Harvest, models.HarvestForm](f.Harvests, hl).Register(api.Group("/harvests"))

	handlers.NewResourceHandler[models.Livestock, models.LivestockForm](f.Livestock, hl).Register(api.Group("/livestock"))
	handlers.NewResourceHandler[models.LivestockGroup, models.LivestockGroupForm](f.LivestockGroups, hl).Register(api.Group("/livestock-groups"))
	handlers.NewResourceHandler[models.Potrero, models.PotreroForm](f.Potreros, hl).Register(api.Group("/potreros"))
	handlers.NewResourceHandler[models.HealthRecord, models.HealthRecordForm](f.HealthRecords, hl).Register(api.Group("/health-records"))
	handlers.NewResourceHandler[models.GroupHealthAction, models.GroupHealthActionForm](f.GroupHealthActions, hl).Register(api.Group("/group-health-actions"))
	handlers.NewResourceHandler[models.ReproductionRecord, models.ReproductionForm](f.Reproduction, hl).Register(api.Group("/reproduction"))
	handlers.NewResourceHandler[models.MilkProduction, models.MilkProductionForm](f.MilkProduction, hl).Register(api.Group("/milk-production"))

	handlers.NewResourceHandler[models.SaleRecord, models.SaleForm](f.Sales, hl).Register(api.Group("/sales"))
	handlers.NewResourceHandler[models.PurchaseRecord, models.PurchaseForm](f.Purchases, hl).Register(api.Group("/purchases"))
	handlers.NewResourceHandler[models.Budget, models.BudgetForm](f.Budgets, hl).Register(api.Group("/budgets"))

	handlers.NewDashboardHandler(f, deps.Digester, deps.Archive, deps.Now, hl).Register(api)

	logger.Info("router initialized")
	return r
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
