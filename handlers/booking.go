package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	catalogRepo "salonbook/database/repository/catalog"
	"salonbook/models"
	"salonbook/services/booking"
	"salonbook/services/catalog"
)

// BookingHandler serves the stepwise booking flow. Each request carries the
// flow session in the X-Session-ID header; a missing header starts a fresh
// session whose id is echoed back on the response.
type BookingHandler struct {
	Flow    booking.FlowService
	Store   *booking.BookingStore
	Catalog catalog.CatalogService
	Logger  *zap.Logger
}

func NewBookingHandler(flow booking.FlowService, store *booking.BookingStore, cat catalog.CatalogService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Flow: flow, Store: store, Catalog: cat, Logger: logger}
}

func sessionID(c *gin.Context) string {
	sid := c.GetHeader("X-Session-ID")
	if sid == "" {
		sid = uuid.New().String()
	}
	c.Header("X-Session-ID", sid)
	return sid
}

func (h *BookingHandler) salon(c *gin.Context) (*models.Salon, bool) {
	salon, err := h.Catalog.SalonBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, catalogRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "salon not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load salon", "details": err.Error()})
		}
		return nil, false
	}
	return salon, true
}

func respondFlowError(c *gin.Context, err error) {
	var guard *booking.GuardError
	switch {
	case errors.As(err, &guard):
		c.JSON(http.StatusConflict, gin.H{"error": guard.Message, "redirectTo": guard.RedirectTo})
	case errors.Is(err, booking.ErrUnknownService), errors.Is(err, booking.ErrUnknownStylist):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrPaymentFailed):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error(), "retryable": true})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func respondDraft(c *gin.Context, sid string, draft *models.BookingDraft) {
	c.JSON(http.StatusOK, gin.H{
		"sessionID": sid,
		"draft":     draft,
		"step":      draft.Step(),
	})
}

// GetDraft returns the session's current draft.
func (h *BookingHandler) GetDraft(c *gin.Context) {
	sid := sessionID(c)
	draft, err := h.Flow.Draft(c.Request.Context(), sid)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	respondDraft(c, sid, draft)
}

// AddService adds one service to the draft selection.
func (h *BookingHandler) AddService(c *gin.Context) {
	salon, ok := h.salon(c)
	if !ok {
		return
	}
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sid := sessionID(c)
	draft, err := h.Flow.AddService(c.Request.Context(), sid, salon.ID, input.ServiceID)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	respondDraft(c, sid, draft)
}

// RemoveService drops one service from the draft selection.
func (h *BookingHandler) RemoveService(c *gin.Context) {
	sid := sessionID(c)
	draft, err := h.Flow.RemoveService(c.Request.Context(), sid, c.Param("serviceID"))
	if err != nil {
		respondFlowError(c, err)
		return
	}
	respondDraft(c, sid, draft)
}

// SetServices replaces the whole selection in one shot.
func (h *BookingHandler) SetServices(c *gin.Context) {
	salon, ok := h.salon(c)
	if !ok {
		return
	}
	var input struct {
		ServiceIDs []string `json:"serviceIds" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	sid := sessionID(c)
	draft, err := h.Flow.SetServices(c.Request.Context(), sid, salon.ID, input.ServiceIDs)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	respondDraft(c, sid, draft)
}

// SetStylist picks a named stylist or the first-available mode.
func (h *BookingHandler) SetStylist(c *gin.Context) {
	salon, ok := h.salon(c)
	if !ok {
		return
	}
	var input struct {
		StylistID      string `json:"stylistId"`
		FirstAvailable bool   `json:"firstAvailable"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sid := sessionID(c)
	ctx := c.Request.Context()
	var (
		draft *models.BookingDraft
		err   error
	)
	switch {
	case input.StylistID != "":
		draft, err = h.Flow.SetStylist(ctx, sid, salon.ID, input.StylistID)
	case input.FirstAvailable:
		draft, err = h.Flow.SetFirstAvailable(ctx, sid, true)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "either stylistId or firstAvailable is required"})
		return
	}
	if err != nil {
		respondFlowError(c, err)
		return
	}
	respondDraft(c, sid, draft)
}

// SetDate sets the appointment date.
func (h *BookingHandler) SetDate(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if _, err := time.Parse(models.DateFormat, input.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, want YYYY-MM-DD"})
		return
	}
	sid := sessionID(c)
	draft, err := h.Flow.SetDate(c.Request.Context(), sid, input.Date)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	respondDraft(c, sid, draft)
}

// SetTime sets the appointment time.
func (h *BookingHandler) SetTime(c *gin.Context) {
	var input struct {
		Time string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if _, err := time.Parse(models.TimeFormat, input.Time); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid time, want HH:MM"})
		return
	}
	sid := sessionID(c)
	draft, err := h.Flow.SetTime(c.Request.Context(), sid, input.Time)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	respondDraft(c, sid, draft)
}

// GetSlots lists the day's slots with availability for the current draft.
func (h *BookingHandler) GetSlots(c *gin.Context) {
	salon, ok := h.salon(c)
	if !ok {
		return
	}
	date := c.Query("date")
	if _, err := time.Parse(models.DateFormat, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required as YYYY-MM-DD"})
		return
	}
	sid := sessionID(c)
	slots, err := h.Flow.DaySlots(c.Request.Context(), sid, salon, date)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sessionID": sid,
		"date":      date,
		"slots":     slots,
	})
}

// GetSummary returns the review-screen summary with the price quote.
func (h *BookingHandler) GetSummary(c *gin.Context) {
	salon, ok := h.salon(c)
	if !ok {
		return
	}
	sid := sessionID(c)
	summary, err := h.Flow.Summary(c.Request.Context(), sid, salon)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sessionID": sid,
		"summary":   summary,
	})
}

// Checkout charges the draft and confirms the booking. Requires an
// authenticated user.
func (h *BookingHandler) Checkout(c *gin.Context) {
	salon, ok := h.salon(c)
	if !ok {
		return
	}
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var input struct {
		Method string `json:"method"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.Method == "" {
		input.Method = "card"
	}

	sid := sessionID(c)
	confirmed, invoice, err := h.Flow.Checkout(c.Request.Context(), sid, userID, salon, input.Method)
	if err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sessionID": sid,
		"booking":   confirmed,
		"invoice":   invoice,
	})
}

// ResetDraft clears the session's draft.
func (h *BookingHandler) ResetDraft(c *gin.Context) {
	sid := sessionID(c)
	if err := h.Flow.Reset(c.Request.Context(), sid); err != nil {
		respondFlowError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sid, "status": "reset"})
}

// ListBookings returns the authenticated user's bookings, newest first, with
// status computed against the current time.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID := c.GetString("userID")
	bookings, err := h.Store.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load bookings", "details": err.Error()})
		return
	}
	if status := c.Query("status"); status != "" {
		filtered := bookings[:0:0]
		for _, b := range bookings {
			if string(b.Status) == status {
				filtered = append(filtered, b)
			}
		}
		bookings = filtered
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// Reschedule starts a fresh draft prefilled from one of the user's confirmed
// bookings. Services and stylist carry over; date and time are picked again
// through the regular flow. The original booking is not modified.
func (h *BookingHandler) Reschedule(c *gin.Context) {
	userID := c.GetString("userID")
	sid := sessionID(c)
	draft, err := h.Flow.Reschedule(c.Request.Context(), sid, userID, c.Param("bookingID"))
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		respondFlowError(c, err)
		return
	}
	respondDraft(c, sid, draft)
}

// GetBooking returns one of the user's bookings by id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID := c.GetString("userID")
	b, err := h.Store.Get(c.Request.Context(), userID, c.Param("bookingID"))
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load booking", "details": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": b})
}
