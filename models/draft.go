package models

// BookingStep is the explicit position of a draft in the booking flow.
// The step is derived from the draft by fixed rules instead of each screen
// sniffing which optional fields happen to be nil.
type BookingStep string

const (
	StepChoosingServices BookingStep = "choosing_services"
	StepChoosingStylist  BookingStep = "choosing_stylist"
	StepChoosingDateTime BookingStep = "choosing_datetime"
	StepReviewing        BookingStep = "reviewing"
	StepPaying           BookingStep = "paying"
	StepConfirmed        BookingStep = "confirmed"
)

// BookingDraft holds a customer's in-progress, not-yet-paid selections for a
// single session. All mutations go through the methods below; none of them
// error, since invalid combinations are caught by flow-level guards.
type BookingDraft struct {
	SelectedServices  []Service `json:"selectedServices"`
	SelectedStylist   *Stylist  `json:"selectedStylist"`
	UseFirstAvailable bool      `json:"useFirstAvailable"`
	SelectedDate      string    `json:"selectedDate"` // "YYYY-MM-DD", empty when unset
	SelectedTime      string    `json:"selectedTime"` // "HH:MM", empty when unset
}

// NewBookingDraft returns an empty draft.
func NewBookingDraft() *BookingDraft {
	return &BookingDraft{SelectedServices: []Service{}}
}

// AddService inserts a service if not already selected (by id). Re-adding an
// already-selected service is a no-op, so selections stay unique and in
// first-inserted order.
func (d *BookingDraft) AddService(svc Service) {
	for _, s := range d.SelectedServices {
		if s.ID == svc.ID {
			return
		}
	}
	d.SelectedServices = append(d.SelectedServices, svc)
}

// RemoveService removes a selected service by id; absent ids are a no-op.
func (d *BookingDraft) RemoveService(serviceID string) {
	for i, s := range d.SelectedServices {
		if s.ID == serviceID {
			d.SelectedServices = append(d.SelectedServices[:i], d.SelectedServices[i+1:]...)
			return
		}
	}
}

// SetServices replaces the full selection. Used when jumping straight into
// booking a single service from its detail view.
func (d *BookingDraft) SetServices(services []Service) {
	d.SelectedServices = append([]Service{}, services...)
}

// SetStylist picks a named stylist and clears the first-available flag; the
// two selection modes are mutually exclusive.
func (d *BookingDraft) SetStylist(stylist *Stylist) {
	d.SelectedStylist = stylist
	d.UseFirstAvailable = false
}

// SetFirstAvailable toggles the "any qualified stylist" mode. Enabling it
// clears the named stylist; disabling it leaves the stylist untouched.
func (d *BookingDraft) SetFirstAvailable(value bool) {
	d.UseFirstAvailable = value
	if value {
		d.SelectedStylist = nil
	}
}

// SetDate sets the appointment date and unconditionally clears the selected
// time: a time is scoped to its date and cannot be presumed valid across a
// date change.
func (d *BookingDraft) SetDate(date string) {
	d.SelectedDate = date
	d.SelectedTime = ""
}

// SetTime sets the appointment time. Callers are responsible for having set a
// valid date first; the flow guard enforces this on step entry.
func (d *BookingDraft) SetTime(t string) {
	d.SelectedTime = t
}

// Reset returns the draft to its empty initial state.
func (d *BookingDraft) Reset() {
	*d = *NewBookingDraft()
}

// TotalPrice sums the listed price over the selected services.
func (d *BookingDraft) TotalPrice() float64 {
	var sum float64
	for _, s := range d.SelectedServices {
		sum += s.Price
	}
	return sum
}

// TotalDuration sums the duration (minutes) over the selected services.
func (d *BookingDraft) TotalDuration() int {
	var sum int
	for _, s := range d.SelectedServices {
		sum += s.Duration
	}
	return sum
}

// HasStylistChoice reports whether either selection mode has been exercised.
func (d *BookingDraft) HasStylistChoice() bool {
	return d.UseFirstAvailable || d.SelectedStylist != nil
}

// Step derives the draft's current flow position: the first step whose
// prerequisites are not yet satisfied.
func (d *BookingDraft) Step() BookingStep {
	switch {
	case len(d.SelectedServices) == 0:
		return StepChoosingServices
	case !d.HasStylistChoice():
		return StepChoosingStylist
	case d.SelectedDate == "" || d.SelectedTime == "":
		return StepChoosingDateTime
	default:
		return StepReviewing
	}
}

// ReadyFor reports whether the draft satisfies the prerequisites of the given
// step. Screens re-validate this on every entry and redirect back when it
// fails.
func (d *BookingDraft) ReadyFor(step BookingStep) bool {
	switch step {
	case StepChoosingServices:
		return true
	case StepChoosingStylist:
		return len(d.SelectedServices) > 0
	case StepChoosingDateTime:
		return len(d.SelectedServices) > 0 && d.HasStylistChoice()
	case StepReviewing, StepPaying:
		return len(d.SelectedServices) > 0 && d.HasStylistChoice() &&
			d.SelectedDate != "" && d.SelectedTime != ""
	default:
		return false
	}
}
