package booking

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"salonbook/models"
)

// Draft returns the session's current draft, fresh and empty when the
// session is new or expired.
func (s *DefaultFlowService) Draft(ctx context.Context, sessionID string) (*models.BookingDraft, error) {
	return s.Sessions.Load(ctx, sessionID)
}

// mutate loads the draft, applies fn, and saves the result. All transition
// operations funnel through here so every mutation refreshes the session TTL.
func (s *DefaultFlowService) mutate(ctx context.Context, sessionID string, fn func(*models.BookingDraft) error) (*models.BookingDraft, error) {
	draft, err := s.Sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(draft); err != nil {
		return nil, err
	}
	if err := s.Sessions.Save(ctx, sessionID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// AddService selects a service from the salon's active catalog. Re-adding an
// already-selected service is a no-op.
func (s *DefaultFlowService) AddService(ctx context.Context, sessionID, salonID, serviceID string) (*models.BookingDraft, error) {
	svc, err := s.activeService(ctx, salonID, serviceID)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, sessionID, func(d *models.BookingDraft) error {
		d.AddService(*svc)
		return nil
	})
}

// RemoveService drops a selected service; absent ids are a no-op.
func (s *DefaultFlowService) RemoveService(ctx context.Context, sessionID, serviceID string) (*models.BookingDraft, error) {
	return s.mutate(ctx, sessionID, func(d *models.BookingDraft) error {
		d.RemoveService(serviceID)
		return nil
	})
}

// SetServices replaces the whole selection, used when booking a single
// service straight from its detail view.
func (s *DefaultFlowService) SetServices(ctx context.Context, sessionID, salonID string, serviceIDs []string) (*models.BookingDraft, error) {
	services := make([]models.Service, 0, len(serviceIDs))
	for _, id := range serviceIDs {
		svc, err := s.activeService(ctx, salonID, id)
		if err != nil {
			return nil, err
		}
		services = append(services, *svc)
	}
	return s.mutate(ctx, sessionID, func(d *models.BookingDraft) error {
		d.SetServices(services)
		return nil
	})
}

// SetStylist picks a named stylist, clearing the first-available flag.
func (s *DefaultFlowService) SetStylist(ctx context.Context, sessionID, salonID, stylistID string) (*models.BookingDraft, error) {
	stylists, err := s.CatalogSv.ActiveStylists(ctx, salonID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stylists: %w", err)
	}
	var picked *models.Stylist
	for i := range stylists {
		if stylists[i].ID == stylistID {
			picked = &stylists[i]
			break
		}
	}
	if picked == nil {
		return nil, ErrUnknownStylist
	}
	return s.mutate(ctx, sessionID, func(d *models.BookingDraft) error {
		d.SetStylist(picked)
		return nil
	})
}

// SetFirstAvailable toggles the "any qualified stylist" mode.
func (s *DefaultFlowService) SetFirstAvailable(ctx context.Context, sessionID string, value bool) (*models.BookingDraft, error) {
	return s.mutate(ctx, sessionID, func(d *models.BookingDraft) error {
		d.SetFirstAvailable(value)
		return nil
	})
}

// SetDate sets the appointment date, clearing any previously selected time.
func (s *DefaultFlowService) SetDate(ctx context.Context, sessionID, date string) (*models.BookingDraft, error) {
	if _, err := time.Parse(models.DateFormat, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return s.mutate(ctx, sessionID, func(d *models.BookingDraft) error {
		d.SetDate(date)
		return nil
	})
}

// SetTime sets the appointment time for the already-selected date.
func (s *DefaultFlowService) SetTime(ctx context.Context, sessionID, t string) (*models.BookingDraft, error) {
	if _, err := parseClock(t); err != nil {
		return nil, err
	}
	return s.mutate(ctx, sessionID, func(d *models.BookingDraft) error {
		d.SetTime(t)
		return nil
	})
}

// Reset clears the draft back to its empty initial state.
func (s *DefaultFlowService) Reset(ctx context.Context, sessionID string) error {
	return s.Sessions.Delete(ctx, sessionID)
}

// Reschedule seeds the session's draft from one of the user's confirmed
// bookings: the snapshot services and stylist choice carry over, date and
// time must be picked again. The confirmed booking itself is left untouched;
// rescheduling produces a replacement draft that re-enters the flow at the
// date/time step.
func (s *DefaultFlowService) Reschedule(ctx context.Context, sessionID, userID, bookingID string) (*models.BookingDraft, error) {
	b, err := s.Store.Get(ctx, userID, bookingID)
	if err != nil {
		return nil, err
	}

	draft := models.NewBookingDraft()
	draft.SetServices(b.Services)
	if b.FirstAvailable {
		draft.SetFirstAvailable(true)
	} else if b.Stylist != nil {
		draft.SetStylist(b.Stylist)
	}

	if err := s.Sessions.Save(ctx, sessionID, draft); err != nil {
		return nil, err
	}
	s.Logger.Info("draft seeded from confirmed booking",
		zap.String("sessionID", sessionID),
		zap.String("bookingID", bookingID))
	return draft, nil
}

// DaySlots returns the bookable slots of one date for the session's draft,
// marked against the salon's confirmed appointments.
func (s *DefaultFlowService) DaySlots(ctx context.Context, sessionID string, salon *models.Salon, date string) ([]models.TimeSlot, error) {
	if _, err := time.Parse(models.DateFormat, date); err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}
	draft, err := s.Sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := ensureReady(draft, models.StepChoosingDateTime); err != nil {
		return nil, err
	}

	entries, err := s.Store.Agenda(ctx, salon.ID, date)
	if err != nil {
		return nil, err
	}

	var stylistID string
	rosterSize := 0
	if draft.SelectedStylist != nil {
		stylistID = draft.SelectedStylist.ID
	} else {
		roster, err := s.qualifiedRoster(ctx, salon.ID, draft)
		if err != nil {
			return nil, err
		}
		rosterSize = len(roster)
	}

	return DaySlots(salon.Hours, entries, stylistID, draft.UseFirstAvailable, rosterSize, draft.TotalDuration())
}

// Summary builds the review-screen view: the draft plus its price quote
// under the salon's pricing convention.
func (s *DefaultFlowService) Summary(ctx context.Context, sessionID string, salon *models.Salon) (*FlowSummary, error) {
	draft, err := s.Sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := ensureReady(draft, models.StepReviewing); err != nil {
		return nil, err
	}
	return &FlowSummary{
		Draft:           draft,
		Quote:           QuoteFor(salon, draft.SelectedServices),
		DurationMinutes: draft.TotalDuration(),
	}, nil
}

// ensureReady re-validates a step's prerequisites on entry and reports where
// to redirect back to when they are unmet.
func ensureReady(draft *models.BookingDraft, step models.BookingStep) error {
	if draft.ReadyFor(step) {
		return nil
	}
	return &GuardError{
		RedirectTo: draft.Step(),
		Message:    fmt.Sprintf("prerequisites for %s not met", step),
	}
}

// qualifiedRoster lists the active stylists able to perform every drafted
// service. Used to size first-available capacity.
func (s *DefaultFlowService) qualifiedRoster(ctx context.Context, salonID string, draft *models.BookingDraft) ([]models.Stylist, error) {
	stylists, err := s.CatalogSv.ActiveStylists(ctx, salonID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stylists: %w", err)
	}
	qualified := stylists[:0:0]
	for _, st := range stylists {
		ok := true
		for _, svc := range draft.SelectedServices {
			if !st.CanPerform(svc.ID) {
				ok = false
				break
			}
		}
		if ok {
			qualified = append(qualified, st)
		}
	}
	return qualified, nil
}

func (s *DefaultFlowService) activeService(ctx context.Context, salonID, serviceID string) (*models.Service, error) {
	services, err := s.CatalogSv.ActiveServices(ctx, salonID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}
	for i := range services {
		if services[i].ID == serviceID {
			return &services[i], nil
		}
	}
	return nil, ErrUnknownService
}
