package models

import (
	"fmt"
	"time"
)

// BookingStatus is the display status of a confirmed booking. It is derived
// from wall-clock time on every read, never trusted from storage.
type BookingStatus string

const (
	StatusUpcoming BookingStatus = "upcoming"
	StatusPast     BookingStatus = "past"
)

// ConfirmedBooking is the immutable record produced at successful checkout.
// Services and stylist are snapshots, decoupled from later catalog edits.
type ConfirmedBooking struct {
	ID             string        `json:"id"`
	SalonID        string        `json:"salonId"`
	UserID         string        `json:"userId"`
	Services       []Service     `json:"services"`
	Stylist        *Stylist      `json:"stylist,omitempty"`
	FirstAvailable bool          `json:"firstAvailable"`
	Date           string        `json:"date"` // "YYYY-MM-DD"
	Time           string        `json:"time"` // "HH:MM"
	Subtotal       float64       `json:"subtotal"`
	Tax            float64       `json:"tax"`
	Total          float64       `json:"total"`
	Status         BookingStatus `json:"status"` // recomputed on read
	CreatedAt      time.Time     `json:"createdAt"`
}

// StartsAt combines the booking's date and time into a wall-clock instant in
// the local timezone.
func (b *ConfirmedBooking) StartsAt() (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat+" "+TimeFormat, b.Date+" "+b.Time, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid booking date/time %q %q: %w", b.Date, b.Time, err)
	}
	return t, nil
}

// ComputeStatus derives the display status against the given instant:
// past iff the appointment start is before now, else upcoming.
func (b *ConfirmedBooking) ComputeStatus(now time.Time) BookingStatus {
	start, err := b.StartsAt()
	if err != nil {
		// Unparsable stored values degrade to upcoming rather than failing a read.
		return StatusUpcoming
	}
	if start.Before(now) {
		return StatusPast
	}
	return StatusUpcoming
}

// Duration sums the snapshot services' durations in minutes.
func (b *ConfirmedBooking) Duration() int {
	var sum int
	for _, s := range b.Services {
		sum += s.Duration
	}
	return sum
}
