package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	catalogRepo "salonbook/database/repository/catalog"
	"salonbook/services/catalog"
)

// CatalogHandler serves the public, read-only catalog of a salon.
type CatalogHandler struct {
	Catalog catalog.CatalogService
	Logger  *zap.Logger
}

func NewCatalogHandler(cat catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Catalog: cat, Logger: logger}
}

// GetSalon returns a salon's profile by slug.
func (h *CatalogHandler) GetSalon(c *gin.Context) {
	salon, err := h.Catalog.SalonBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "salon not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load salon", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"salon": salon})
}

// GetServices lists a salon's active services in display order.
func (h *CatalogHandler) GetServices(c *gin.Context) {
	salon, err := h.Catalog.SalonBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "salon not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load salon", "details": err.Error()})
		return
	}
	services, err := h.Catalog.ActiveServices(c.Request.Context(), salon.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load services", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// GetStylists lists a salon's active stylists.
func (h *CatalogHandler) GetStylists(c *gin.Context) {
	salon, err := h.Catalog.SalonBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "salon not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load salon", "details": err.Error()})
		return
	}
	stylists, err := h.Catalog.ActiveStylists(c.Request.Context(), salon.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stylists", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stylists": stylists})
}
