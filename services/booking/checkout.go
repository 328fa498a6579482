package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"salonbook/models"
)

// Checkout finalizes the session's draft: it charges the (simulated)
// payment, snapshots the draft into an immutable ConfirmedBooking, appends
// it to the booking store, schedules a reminder, and only then resets the
// draft. A payment failure is surfaced as retryable and leaves both the
// draft and the store untouched.
func (s *DefaultFlowService) Checkout(ctx context.Context, sessionID, userID string, salon *models.Salon, method string) (*models.ConfirmedBooking, *models.Invoice, error) {
	draft, err := s.Sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if err := ensureReady(draft, models.StepPaying); err != nil {
		return nil, nil, err
	}

	quote := QuoteFor(salon, draft.SelectedServices)

	invoice, err := s.Payments.ProcessPayment(ctx, models.PaymentRequest{
		UserID:   userID,
		Amount:   quote.Total,
		Currency: "PEN",
		Method:   method,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	booking := models.ConfirmedBooking{
		SalonID:        salon.ID,
		UserID:         userID,
		Services:       append([]models.Service{}, draft.SelectedServices...),
		Stylist:        draft.SelectedStylist,
		FirstAvailable: draft.UseFirstAvailable,
		Date:           draft.SelectedDate,
		Time:           draft.SelectedTime,
		Subtotal:       quote.Subtotal,
		Tax:            quote.Tax,
		Total:          quote.Total,
	}

	stored, err := s.Store.Add(ctx, booking)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to record booking: %w", err)
	}
	invoice.BookingID = stored.ID

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(ctx, stored, salon.Slug); err != nil {
			s.Logger.Warn("failed to schedule booking reminder",
				zap.String("bookingID", stored.ID), zap.Error(err))
		}
	}

	// The booking is durable; clearing the draft last means a failure here
	// can only leave a stale draft behind, never lose a paid booking.
	if err := s.Sessions.Delete(ctx, sessionID); err != nil {
		s.Logger.Warn("failed to clear draft after checkout",
			zap.String("sessionID", sessionID), zap.Error(err))
	}

	s.Logger.Info("booking confirmed",
		zap.String("bookingID", stored.ID),
		zap.String("salon", salon.Slug),
		zap.Float64("total", quote.Total))

	return stored, invoice, nil
}

// SimulatedPaymentProcessor stands in for a payment gateway: it waits a
// fixed processing delay and fabricates a paid invoice. No retries, no
// partial-failure path.
type SimulatedPaymentProcessor struct {
	Logger *zap.Logger
	// Delay defaults to 1.5s when zero.
	Delay time.Duration
}

func (p *SimulatedPaymentProcessor) ProcessPayment(ctx context.Context, req models.PaymentRequest) (*models.Invoice, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("invalid payment amount: %.2f", req.Amount)
	}
	if req.UserID == "" {
		return nil, fmt.Errorf("missing user id")
	}

	delay := p.Delay
	if delay == 0 {
		delay = 1500 * time.Millisecond
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	now := time.Now()
	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		UserID:    req.UserID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Method:    req.Method,
		PaymentID: "pi_" + uuid.New().String(),
		Status:    "paid",
		CreatedAt: now,
		UpdatedAt: now,
	}
	p.Logger.Info("payment processed",
		zap.String("invoice", inv.InvoiceID),
		zap.Float64("amount", inv.Amount))
	return inv, nil
}
