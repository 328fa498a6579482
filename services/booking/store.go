package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"salonbook/models"
)

// ErrBookingNotFound is returned when a booking id is not in the store.
var ErrBookingNotFound = errors.New("booking not found")

const (
	bookingsKeyPrefix = "bookings:"
	agendaKeyPrefix   = "agenda:"
)

// KeyValue is the persistence contract of the booking store: a flat string
// key-value space. Values are whole JSON arrays, read once per access and
// written on every mutation.
type KeyValue interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// RedisKV adapts a Redis client to KeyValue.
type RedisKV struct {
	Client *redis.Client
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	return r.Client.Set(ctx, key, value, 0).Err()
}

// AgendaEntry is one confirmed appointment as seen by the availability
// query: who is occupied, when, and for how long.
type AgendaEntry struct {
	BookingID      string `json:"bookingId"`
	StylistID      string `json:"stylistId,omitempty"`
	FirstAvailable bool   `json:"firstAvailable"`
	Time           string `json:"time"` // "HH:MM"
	Duration       int    `json:"duration"`
}

// BookingStore is the append-only record of finalized bookings. Each user's
// bookings serialize as one JSON array under bookings:<userID>, newest
// first; a per-salon-per-date agenda index under agenda:<salonID>:<date>
// backs the slot availability query. Corrupt persisted data fails soft: it
// is logged and replaced by an empty store, never a crash.
type BookingStore struct {
	kv     KeyValue
	logger *zap.Logger
}

func NewBookingStore(kv KeyValue, logger *zap.Logger) *BookingStore {
	return &BookingStore{kv: kv, logger: logger}
}

func (s *BookingStore) loadBookings(ctx context.Context, userID string) ([]models.ConfirmedBooking, error) {
	data, found, err := s.kv.Get(ctx, bookingsKeyPrefix+userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read booking store: %w", err)
	}
	if !found {
		return []models.ConfirmedBooking{}, nil
	}
	var bookings []models.ConfirmedBooking
	if err := json.Unmarshal([]byte(data), &bookings); err != nil {
		s.logger.Warn("discarding unparsable booking store",
			zap.String("userID", userID), zap.Error(err))
		return []models.ConfirmedBooking{}, nil
	}
	return bookings, nil
}

func (s *BookingStore) saveBookings(ctx context.Context, userID string, bookings []models.ConfirmedBooking) error {
	data, err := json.Marshal(bookings)
	if err != nil {
		return fmt.Errorf("failed to marshal booking store: %w", err)
	}
	if err := s.kv.Set(ctx, bookingsKeyPrefix+userID, string(data)); err != nil {
		return fmt.Errorf("failed to write booking store: %w", err)
	}
	return nil
}

// Add finalizes a booking: assigns an opaque unique id, creation timestamp
// and status, prepends it to the user's store (newest first), records it on
// the salon's agenda for that date, and returns the stored record.
func (s *BookingStore) Add(ctx context.Context, b models.ConfirmedBooking) (*models.ConfirmedBooking, error) {
	b.ID = uuid.New().String()
	b.CreatedAt = time.Now()
	b.Status = b.ComputeStatus(b.CreatedAt)

	bookings, err := s.loadBookings(ctx, b.UserID)
	if err != nil {
		return nil, err
	}
	bookings = append([]models.ConfirmedBooking{b}, bookings...)
	if err := s.saveBookings(ctx, b.UserID, bookings); err != nil {
		return nil, err
	}

	entry := AgendaEntry{
		BookingID:      b.ID,
		FirstAvailable: b.FirstAvailable,
		Time:           b.Time,
		Duration:       b.Duration(),
	}
	if b.Stylist != nil {
		entry.StylistID = b.Stylist.ID
	}
	if err := s.appendAgenda(ctx, b.SalonID, b.Date, entry); err != nil {
		// The user's record is already durable; an agenda write failure
		// only degrades availability accuracy for that date.
		s.logger.Error("failed to index booking on salon agenda",
			zap.String("bookingID", b.ID), zap.Error(err))
	}

	return &b, nil
}

// List returns all of a user's bookings, newest first, with the display
// status recomputed against the wall clock rather than trusted from storage.
func (s *BookingStore) List(ctx context.Context, userID string) ([]models.ConfirmedBooking, error) {
	bookings, err := s.loadBookings(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for i := range bookings {
		bookings[i].Status = bookings[i].ComputeStatus(now)
	}
	return bookings, nil
}

// Get returns one booking by id with its status recomputed.
func (s *BookingStore) Get(ctx context.Context, userID, bookingID string) (*models.ConfirmedBooking, error) {
	bookings, err := s.loadBookings(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == bookingID {
			bookings[i].Status = bookings[i].ComputeStatus(time.Now())
			return &bookings[i], nil
		}
	}
	return nil, ErrBookingNotFound
}

// Agenda returns the confirmed appointments of a salon for one date. This is
// the authoritative existing-bookings view the slot generator marks
// availability from.
func (s *BookingStore) Agenda(ctx context.Context, salonID, date string) ([]AgendaEntry, error) {
	data, found, err := s.kv.Get(ctx, agendaKey(salonID, date))
	if err != nil {
		return nil, fmt.Errorf("failed to read salon agenda: %w", err)
	}
	if !found {
		return []AgendaEntry{}, nil
	}
	var entries []AgendaEntry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		s.logger.Warn("discarding unparsable salon agenda",
			zap.String("salonID", salonID), zap.String("date", date), zap.Error(err))
		return []AgendaEntry{}, nil
	}
	return entries, nil
}

func (s *BookingStore) appendAgenda(ctx context.Context, salonID, date string, entry AgendaEntry) error {
	entries, err := s.Agenda(ctx, salonID, date)
	if err != nil {
		return err
	}
	entries = append(entries, entry)
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to marshal salon agenda: %w", err)
	}
	return s.kv.Set(ctx, agendaKey(salonID, date), string(data))
}

func agendaKey(salonID, date string) string {
	return agendaKeyPrefix + salonID + ":" + date
}
