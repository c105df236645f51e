package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Resource is the CRUD surface of one entity collection.
type Resource[T any, F any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, form F) (T, error)
	Update(ctx context.Context, id string, form F) (T, error)
	Delete(ctx context.Context, id string) error
}

// ResourceHandler exposes a Resource over HTTP; forms are bound from JSON.
type ResourceHandler[T any, F any] struct {
	res    Resource[T, F]
	logger *zap.Logger
}

// NewResourceHandler constructs the HTTP adapter for one collection.
func NewResourceHandler[T any, F any](res Resource[T, F], logger *zap.Logger) *ResourceHandler[T, F] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResourceHandler[T, F]{res: res, logger: logger}
}

// Register mounts list, get, create, update and delete under g.
func (h *ResourceHandler[T, F]) Register(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List returns every record.
func (h *ResourceHandler[T, F]) List(c *gin.Context) {
	items, err := h.res.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "count": len(items)})
}

// Get returns one record.
func (h *ResourceHandler[T, F]) Get(c *gin.Context) {
	item, err := h.res.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create maps the posted form into a new record.
func (h *ResourceHandler[T, F]) Create(c *gin.Context) {
	var form F
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("invalid form payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.res.Create(c.Request.Context(), form)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update replaces the record's editable fields with the posted form.
func (h *ResourceHandler[T, F]) Update(c *gin.Context) {
	var form F
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("invalid form payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	item, err := h.res.Update(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete removes the record.
func (h *ResourceHandler[T, F]) Delete(c *gin.Context) {
	if err := h.res.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
