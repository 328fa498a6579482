package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salonbook/models"
	"salonbook/services/catalog"
	"salonbook/services/user"
)

// AdminHandler serves catalog management for salon administrators. Salon
// admins only reach the salons assigned to them; superadmins reach all.
type AdminHandler struct {
	Catalog catalog.CatalogService
	Auth    user.AuthService
	Logger  *zap.Logger
}

func NewAdminHandler(cat catalog.CatalogService, auth user.AuthService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Catalog: cat, Auth: auth, Logger: logger}
}

func (h *AdminHandler) canManage(c *gin.Context, salonID string) bool {
	if c.GetString("role") == string(models.RoleSuperAdmin) {
		return true
	}
	u, err := h.Auth.GetUserByID(c.Request.Context(), c.GetString("userID"))
	if err != nil || !u.CanManage(salonID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "not authorized for this salon"})
		return false
	}
	return true
}

// CreateSalon registers a new salon. Superadmin only.
func (h *AdminHandler) CreateSalon(c *gin.Context) {
	if c.GetString("role") != string(models.RoleSuperAdmin) {
		c.JSON(http.StatusForbidden, gin.H{"error": "superadmin access required"})
		return
	}
	var salon models.Salon
	if err := c.ShouldBindJSON(&salon); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Catalog.CreateSalon(c.Request.Context(), &salon); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"salon": salon})
}

// ListServices returns every service of a salon, active or not.
func (h *AdminHandler) ListServices(c *gin.Context) {
	salonID := c.Param("salonID")
	if !h.canManage(c, salonID) {
		return
	}
	services, err := h.Catalog.ListServices(c.Request.Context(), salonID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load services", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": services})
}

// CreateService adds a service to a salon's catalog.
func (h *AdminHandler) CreateService(c *gin.Context) {
	salonID := c.Param("salonID")
	if !h.canManage(c, salonID) {
		return
	}
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	id, err := h.Catalog.CreateService(c.Request.Context(), salonID, svc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateService rewrites a service definition.
func (h *AdminHandler) UpdateService(c *gin.Context) {
	salonID := c.Param("salonID")
	if !h.canManage(c, salonID) {
		return
	}
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	svc.ID = c.Param("serviceID")
	if err := h.Catalog.UpdateService(c.Request.Context(), salonID, svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// SetServiceActive toggles a service's visibility to customers.
func (h *AdminHandler) SetServiceActive(c *gin.Context) {
	salonID := c.Param("salonID")
	if !h.canManage(c, salonID) {
		return
	}
	var input struct {
		Active bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Catalog.SetServiceActive(c.Request.Context(), salonID, c.Param("serviceID"), input.Active); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// ListStylists returns every stylist of a salon, active or not.
func (h *AdminHandler) ListStylists(c *gin.Context) {
	salonID := c.Param("salonID")
	if !h.canManage(c, salonID) {
		return
	}
	stylists, err := h.Catalog.ListStylists(c.Request.Context(), salonID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stylists", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"stylists": stylists})
}

// CreateStylist adds a stylist to a salon's roster.
func (h *AdminHandler) CreateStylist(c *gin.Context) {
	salonID := c.Param("salonID")
	if !h.canManage(c, salonID) {
		return
	}
	var st models.Stylist
	if err := c.ShouldBindJSON(&st); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	id, err := h.Catalog.CreateStylist(c.Request.Context(), salonID, st)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateStylist rewrites a stylist's profile and service qualifications.
func (h *AdminHandler) UpdateStylist(c *gin.Context) {
	salonID := c.Param("salonID")
	if !h.canManage(c, salonID) {
		return
	}
	var st models.Stylist
	if err := c.ShouldBindJSON(&st); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	st.ID = c.Param("stylistID")
	if err := h.Catalog.UpdateStylist(c.Request.Context(), salonID, st); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// SetStylistActive toggles a stylist's availability for new bookings.
func (h *AdminHandler) SetStylistActive(c *gin.Context) {
	salonID := c.Param("salonID")
	if !h.canManage(c, salonID) {
		return
	}
	var input struct {
		Active bool `json:"active"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Catalog.SetStylistActive(c.Request.Context(), salonID, c.Param("stylistID"), input.Active); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
