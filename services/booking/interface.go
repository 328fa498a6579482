package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	"salonbook/models"
)

// Catalog is the read-only view of a salon's reference data the booking flow
// needs. The flow never writes to the catalog.
type Catalog interface {
	ActiveServices(ctx context.Context, salonID string) ([]models.Service, error)
	ActiveStylists(ctx context.Context, salonID string) ([]models.Stylist, error)
}

// PaymentProcessor charges a draft at checkout. The production implementation
// is a simulated processor; a gateway integration is explicitly out of scope.
type PaymentProcessor interface {
	ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error)
}

// ReminderScheduler queues an appointment reminder for a confirmed booking.
// Scheduling failures never fail a checkout.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, booking *models.ConfirmedBooking, salonSlug string) error
}

// FlowService drives a customer's booking flow: a server-side draft stepped
// through services → stylist → date/time → review → payment → confirmed.
type FlowService interface {
	Draft(ctx context.Context, sessionID string) (*models.BookingDraft, error)
	AddService(ctx context.Context, sessionID, salonID, serviceID string) (*models.BookingDraft, error)
	RemoveService(ctx context.Context, sessionID, serviceID string) (*models.BookingDraft, error)
	SetServices(ctx context.Context, sessionID, salonID string, serviceIDs []string) (*models.BookingDraft, error)
	SetStylist(ctx context.Context, sessionID, salonID, stylistID string) (*models.BookingDraft, error)
	SetFirstAvailable(ctx context.Context, sessionID string, value bool) (*models.BookingDraft, error)
	SetDate(ctx context.Context, sessionID, date string) (*models.BookingDraft, error)
	SetTime(ctx context.Context, sessionID, t string) (*models.BookingDraft, error)
	Reset(ctx context.Context, sessionID string) error
	Reschedule(ctx context.Context, sessionID, userID, bookingID string) (*models.BookingDraft, error)

	DaySlots(ctx context.Context, sessionID string, salon *models.Salon, date string) ([]models.TimeSlot, error)
	Summary(ctx context.Context, sessionID string, salon *models.Salon) (*FlowSummary, error)
	Checkout(ctx context.Context, sessionID, userID string, salon *models.Salon, method string) (*models.ConfirmedBooking, *models.Invoice, error)
}

// FlowSummary is the review-screen view of a draft.
type FlowSummary struct {
	Draft           *models.BookingDraft `json:"draft"`
	Quote           Quote                `json:"quote"`
	DurationMinutes int                  `json:"durationMinutes"`
}

// DefaultFlowService implements FlowService.
type DefaultFlowService struct {
	Sessions  SessionStore
	Store     *BookingStore
	CatalogSv Catalog
	Payments  PaymentProcessor
	Reminders ReminderScheduler
	Logger    *zap.Logger
}

// DraftTTL is the sliding lifetime of an untouched draft session.
const DraftTTL = 30 * time.Minute
