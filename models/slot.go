package models

// TimeSlot is one bookable time-of-day unit for a given date. Ephemeral:
// regenerated per date, never persisted.
type TimeSlot struct {
	Time      string `json:"time"` // "HH:MM", 24h
	Available bool   `json:"available"`
}
