package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"salonbook/models"
)

const TypeSendReminder = "reminder:send"

// Reminders fire this long before the appointment starts.
const reminderLead = time.Hour

func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues appointment reminders onto the asynq queue.
type AsynqReminderScheduler struct {
	Client *asynq.Client
	Logger *zap.Logger
}

func NewAsynqReminderScheduler(redisOpts asynq.RedisClientOpt, logger *zap.Logger) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		Client: asynq.NewClient(redisOpts),
		Logger: logger,
	}
}

// ScheduleReminder queues a reminder an hour before the booking starts.
// Bookings starting sooner than the lead time get no reminder.
func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, booking *models.ConfirmedBooking, salonSlug string) error {
	startsAt, err := booking.StartsAt()
	if err != nil {
		return fmt.Errorf("cannot schedule reminder: %w", err)
	}

	fireAt := startsAt.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		s.Logger.Info("skipping reminder for near-term booking",
			zap.String("bookingID", booking.ID))
		return nil
	}

	payload := models.ReminderPayload{
		ReminderID: uuid.New().String(),
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		SalonSlug:  salonSlug,
		FireDate:   fireAt.Format(time.RFC3339),
		Title:      "Upcoming appointment",
		Body:       fmt.Sprintf("Your appointment on %s at %s starts in an hour.", booking.Date, booking.Time),
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	info, err := s.Client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		return err
	}

	s.Logger.Info("reminder scheduled",
		zap.String("bookingID", booking.ID),
		zap.String("taskID", info.ID),
		zap.Time("fireAt", fireAt))
	return nil
}

func (s *AsynqReminderScheduler) Close() error {
	return s.Client.Close()
}
