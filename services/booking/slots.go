package booking

import (
	"fmt"
	"strconv"
	"strings"

	"salonbook/models"
)

// parseClock converts "HH:MM" to minutes from midnight.
func parseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return h*60 + m, nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// DaySlots produces the ordered bookable slots for one day: one slot per
// cadence step covering [open, close), each marked available against the
// day's confirmed appointments. Availability is deterministic:
//
//   - named stylist: a slot is taken when the candidate appointment
//     [slot, slot+duration) overlaps one of that stylist's appointments;
//   - first available: a slot is taken only when overlapping appointments
//     already occupy the whole qualified roster.
//
// Appointments booked as "first available" are not allocated to a concrete
// stylist, so for a named stylist only their own appointments count. A day
// with zero available slots is a valid result, not an error.
func DaySlots(hours models.OperatingHours, entries []AgendaEntry, stylistID string, firstAvailable bool, rosterSize, appointmentMinutes int) ([]models.TimeSlot, error) {
	open, err := parseClock(hours.Open)
	if err != nil {
		return nil, fmt.Errorf("invalid opening time: %w", err)
	}
	close, err := parseClock(hours.Close)
	if err != nil {
		return nil, fmt.Errorf("invalid closing time: %w", err)
	}
	step := hours.SlotMinutes
	if step <= 0 {
		step = 30
	}
	if appointmentMinutes <= 0 {
		appointmentMinutes = step
	}

	slots := make([]models.TimeSlot, 0, (close-open)/step)
	for start := open; start < close; start += step {
		end := start + appointmentMinutes

		available := true
		if firstAvailable {
			if rosterSize <= 0 {
				available = false
			} else {
				busy := 0
				for _, e := range entries {
					eStart, err := parseClock(e.Time)
					if err != nil {
						continue
					}
					if overlaps(start, end, eStart, eStart+e.Duration) {
						busy++
					}
				}
				available = busy < rosterSize
			}
		} else {
			for _, e := range entries {
				if e.StylistID != stylistID {
					continue
				}
				eStart, err := parseClock(e.Time)
				if err != nil {
					continue
				}
				if overlaps(start, end, eStart, eStart+e.Duration) {
					available = false
					break
				}
			}
		}

		slots = append(slots, models.TimeSlot{Time: formatClock(start), Available: available})
	}
	return slots, nil
}
