package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lensmatch/backend/internal/domain"
	"github.com/lensmatch/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	resolver     *usecase.Resolver
	orderService *usecase.OrderService
	catalog      domain.CatalogRepository
	colors       domain.ColorTable
}

// NewHandler creates a new HTTP handler
func NewHandler(
	resolver *usecase.Resolver,
	orderService *usecase.OrderService,
	catalog domain.CatalogRepository,
	colors domain.ColorTable,
) *Handler {
	return &Handler{
		resolver:     resolver,
		orderService: orderService,
		catalog:      catalog,
		colors:       colors,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "lensmatch-backend",
		"version": "1.0.0",
	})
}

// ResolveLens narrows the catalog to a single lens identification for the
// submitted prescription text. An empty lensId with low confidence is a
// valid response meaning "ask the user to choose manually".
func (h *Handler) ResolveLens(c *gin.Context) {
	var input domain.ResolveInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rawText is required"})
		return
	}

	resolution, err := h.resolver.Resolve(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resolution)
}

type addTokensRequest struct {
	RawText string `json:"rawText" binding:"required"`
}

// ClassifyAddTokens inspects raw OCR text for ADD-power tokens so the
// front-end can derive hasAdd before a structured draft exists
func (h *Handler) ClassifyAddTokens(c *gin.Context) {
	var req addTokensRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rawText is required"})
		return
	}

	c.JSON(http.StatusOK, usecase.ClassifyAddTokens(req.RawText))
}

// ListLenses returns the full lens catalog
func (h *Handler) ListLenses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"lenses": h.catalog.Products()})
}

// LensColors returns the selectable colors for one lens (empty for
// non-tinted products)
func (h *Handler) LensColors(c *gin.Context) {
	product, ok := h.catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrLensNotFound.Error()})
		return
	}

	colors := h.colors.ColorsFor(product.Name)
	if colors == nil {
		colors = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"lensId": product.ID, "colors": colors})
}

type quoteRequest struct {
	LensID     string `json:"lensId" binding:"required"`
	SKU        string `json:"sku"`
	ExpiryDate string `json:"expiryDate" binding:"required"`
	Boxes      int    `json:"boxes"`
}

// QuoteOrder runs the prescription-to-order derivation chain: expiry →
// allowed supply → box duration → box count → price
func (h *Handler) QuoteOrder(c *gin.Context) {
	var req quoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lensId and expiryDate are required"})
		return
	}

	quote, err := h.orderService.Quote(req.LensID, req.SKU, req.ExpiryDate, req.Boxes)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidExpiryDate), errors.Is(err, domain.ErrPrescriptionExpired):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrUnconfiguredSKU), errors.Is(err, domain.ErrNoDefaultSKU):
			// Configuration gaps are hard errors: never guess a price or duration
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, quote)
}
