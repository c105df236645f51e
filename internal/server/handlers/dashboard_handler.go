package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/finca/internal/domain/models"
)

// Dashboard is the aggregate read surface.
type Dashboard interface {
	DashboardStats(module models.Module) (models.DashboardStats, error)
	MonthlySeries(module models.Module) ([]models.MonthlyPoint, error)
	Distribution(kind models.DistributionKind) ([]models.DistributionSlice, error)
	AccountsReceivable() ([]models.AccountEntry, error)
	AccountsPayable() ([]models.AccountEntry, error)
	BudgetComparisons() ([]models.BudgetComparison, error)
}

// Digester builds and publishes the dashboard digest.
type Digester interface {
	BuildDigest(ctx context.Context, now time.Time) (models.DashboardDigest, error)
	Run(ctx context.Context, now time.Time) (models.DashboardDigest, error)
}

// DigestArchive reads back published digests.
type DigestArchive interface {
	LatestDigest(ctx context.Context) (*models.DashboardDigest, error)
}

// DashboardHandler serves aggregate reads.
type DashboardHandler struct {
	dashboard Dashboard
	digester  Digester
	archive   DigestArchive
	now       func() time.Time
	logger    *zap.Logger
}

// NewDashboardHandler constructs the aggregate HTTP adapter. digester and archive may be nil.
func NewDashboardHandler(dashboard Dashboard, digester Digester, archive DigestArchive, now func() time.Time, logger *zap.Logger) *DashboardHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &DashboardHandler{dashboard: dashboard, digester: digester, archive: archive, now: now, logger: logger}
}

// Register mounts the aggregate routes under g.
func (h *DashboardHandler) Register(g *gin.RouterGroup) {
	g.GET("/dashboard/:module", h.Stats)
	g.GET("/series/:module", h.Series)
	g.GET("/distributions/:kind", h.Distribution)
	g.GET("/accounts/receivable", h.Receivable)
	g.GET("/accounts/payable", h.Payable)
	g.GET("/budgets/comparison", h.Budgets)
	if h.digester != nil {
		g.GET("/digest", h.PreviewDigest)
		g.POST("/digest", h.PublishDigest)
	}
	if h.archive != nil {
		g.GET("/digest/latest", h.LatestDigest)
	}
}

// Stats returns a module's dashboard header.
func (h *DashboardHandler) Stats(c *gin.Context) {
	v, err := h.dashboard.DashboardStats(models.Module(c.Param("module")))
	respond(c, h.logger, v, err)
}

// Series returns a module's monthly buckets.
func (h *DashboardHandler) Series(c *gin.Context) {
	v, err := h.dashboard.MonthlySeries(models.Module(c.Param("module")))
	respond(c, h.logger, v, err)
}

// Distribution returns one chart distribution.
func (h *DashboardHandler) Distribution(c *gin.Context) {
	v, err := h.dashboard.Distribution(models.DistributionKind(c.Param("kind")))
	respond(c, h.logger, v, err)
}

// Receivable lists unpaid sales.
func (h *DashboardHandler) Receivable(c *gin.Context) {
	v, err := h.dashboard.AccountsReceivable()
	respond(c, h.logger, v, err)
}

// Payable lists unpaid purchases.
func (h *DashboardHandler) Payable(c *gin.Context) {
	v, err := h.dashboard.AccountsPayable()
	respond(c, h.logger, v, err)
}

// Budgets lists the budget comparisons.
func (h *DashboardHandler) Budgets(c *gin.Context) {
	v, err := h.dashboard.BudgetComparisons()
	respond(c, h.logger, v, err)
}

// PreviewDigest builds today's digest without publishing it.
func (h *DashboardHandler) PreviewDigest(c *gin.Context) {
	v, err := h.digester.BuildDigest(c.Request.Context(), h.now())
	respond(c, h.logger, v, err)
}

// PublishDigest builds today's digest and sends it to every sink.
func (h *DashboardHandler) PublishDigest(c *gin.Context) {
	digest, err := h.digester.Run(c.Request.Context(), h.now())
	if err != nil {
		h.logger.Error("digest publish failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error(), "digest": digest})
		return
	}
	c.JSON(http.StatusAccepted, digest)
}

// LatestDigest returns the newest archived digest.
func (h *DashboardHandler) LatestDigest(c *gin.Context) {
	digest, err := h.archive.LatestDigest(c.Request.Context())
	if err == nil && digest == nil {
		err = fmt.Errorf("archived digest: %w", models.ErrNotFound)
	}
	respond(c, h.logger, digest, err)
}

func respond[V any](c *gin.Context, logger *zap.Logger, v V, err error) {
	if err != nil {
		writeError(c, logger, err)
		return
	}
	c.JSON(http.StatusOK, v)
}
