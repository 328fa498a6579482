package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func svc(id string, price float64, duration int) Service {
	return Service{ID: id, Name: id, Price: price, Duration: duration, Active: true}
}

func TestAddServiceDeduplicates(t *testing.T) {
	d := NewBookingDraft()
	d.AddService(svc("haircut", 30, 45))
	d.AddService(svc("manicure", 25, 30))
	d.AddService(svc("haircut", 30, 45))

	require.Len(t, d.SelectedServices, 2)
	assert.Equal(t, "haircut", d.SelectedServices[0].ID)
	assert.Equal(t, "manicure", d.SelectedServices[1].ID)
}

func TestRemoveServiceAbsentIsNoop(t *testing.T) {
	d := NewBookingDraft()
	d.AddService(svc("haircut", 30, 45))
	d.RemoveService("facial")

	assert.Len(t, d.SelectedServices, 1)

	d.RemoveService("haircut")
	assert.Empty(t, d.SelectedServices)
}

func TestSetServicesReplacesSelection(t *testing.T) {
	d := NewBookingDraft()
	d.AddService(svc("haircut", 30, 45))
	d.SetServices([]Service{svc("facial", 40, 60)})

	require.Len(t, d.SelectedServices, 1)
	assert.Equal(t, "facial", d.SelectedServices[0].ID)
}

func TestStylistModesAreMutuallyExclusive(t *testing.T) {
	d := NewBookingDraft()

	d.SetStylist(&Stylist{ID: "ava-bennett", Name: "Ava Bennett"})
	assert.False(t, d.UseFirstAvailable)
	require.NotNil(t, d.SelectedStylist)

	d.SetFirstAvailable(true)
	assert.True(t, d.UseFirstAvailable)
	assert.Nil(t, d.SelectedStylist)

	d.SetStylist(&Stylist{ID: "chloe-davis", Name: "Chloe Davis"})
	assert.False(t, d.UseFirstAvailable)
	assert.Equal(t, "chloe-davis", d.SelectedStylist.ID)

	// Disabling first-available leaves the named stylist untouched.
	d.SetFirstAvailable(false)
	require.NotNil(t, d.SelectedStylist)
	assert.Equal(t, "chloe-davis", d.SelectedStylist.ID)
}

func TestSetDateClearsTime(t *testing.T) {
	d := NewBookingDraft()
	d.SetDate("2026-09-01")
	d.SetTime("10:30")
	require.Equal(t, "10:30", d.SelectedTime)

	d.SetDate("2026-09-02")
	assert.Empty(t, d.SelectedTime)
	assert.Equal(t, "2026-09-02", d.SelectedDate)
}

func TestResetReturnsToInitialState(t *testing.T) {
	d := NewBookingDraft()
	d.AddService(svc("haircut", 30, 45))
	d.SetFirstAvailable(true)
	d.SetDate("2026-09-01")
	d.SetTime("10:30")

	d.Reset()

	assert.Empty(t, d.SelectedServices)
	assert.Nil(t, d.SelectedStylist)
	assert.False(t, d.UseFirstAvailable)
	assert.Empty(t, d.SelectedDate)
	assert.Empty(t, d.SelectedTime)
}

func TestTotals(t *testing.T) {
	d := NewBookingDraft()
	d.AddService(svc("haircut", 30, 45))
	d.AddService(svc("manicure", 25, 30))

	assert.Equal(t, 55.0, d.TotalPrice())
	assert.Equal(t, 75, d.TotalDuration())
}

func TestStepDerivation(t *testing.T) {
	d := NewBookingDraft()
	assert.Equal(t, StepChoosingServices, d.Step())

	d.AddService(svc("haircut", 30, 45))
	assert.Equal(t, StepChoosingStylist, d.Step())

	d.SetFirstAvailable(true)
	assert.Equal(t, StepChoosingDateTime, d.Step())

	d.SetDate("2026-09-01")
	assert.Equal(t, StepChoosingDateTime, d.Step())

	d.SetTime("10:30")
	assert.Equal(t, StepReviewing, d.Step())
}

func TestReadyForGuards(t *testing.T) {
	d := NewBookingDraft()
	assert.True(t, d.ReadyFor(StepChoosingServices))
	assert.False(t, d.ReadyFor(StepChoosingStylist))
	assert.False(t, d.ReadyFor(StepReviewing))
	assert.False(t, d.ReadyFor(StepPaying))

	d.AddService(svc("haircut", 30, 45))
	assert.True(t, d.ReadyFor(StepChoosingStylist))
	assert.False(t, d.ReadyFor(StepChoosingDateTime))

	d.SetStylist(&Stylist{ID: "ava-bennett"})
	assert.True(t, d.ReadyFor(StepChoosingDateTime))
	assert.False(t, d.ReadyFor(StepPaying))

	d.SetDate("2026-09-01")
	d.SetTime("10:30")
	assert.True(t, d.ReadyFor(StepReviewing))
	assert.True(t, d.ReadyFor(StepPaying))

	// Changing the date invalidates the later steps again.
	d.SetDate("2026-09-02")
	assert.False(t, d.ReadyFor(StepPaying))
}
