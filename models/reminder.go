package models

// ReminderPayload is the asynq task payload for an appointment reminder.
type ReminderPayload struct {
	ReminderID string `json:"reminderId"`
	BookingID  string `json:"bookingId"`
	UserID     string `json:"userId"`
	SalonSlug  string `json:"salonSlug"`
	FireDate   string `json:"fireDate"`
	Title      string `json:"title"`
	Body       string `json:"body"`
}
