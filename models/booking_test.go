package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartsAt(t *testing.T) {
	b := ConfirmedBooking{Date: "2030-06-01", Time: "10:30"}
	start, err := b.StartsAt()
	require.NoError(t, err)
	assert.Equal(t, 2030, start.Year())
	assert.Equal(t, 10, start.Hour())
	assert.Equal(t, 30, start.Minute())

	b = ConfirmedBooking{Date: "someday", Time: "10:30"}
	_, err = b.StartsAt()
	assert.Error(t, err)
}

func TestComputeStatus(t *testing.T) {
	now := time.Date(2030, 6, 1, 12, 0, 0, 0, time.Local)

	past := ConfirmedBooking{Date: "2030-06-01", Time: "10:00"}
	assert.Equal(t, StatusPast, past.ComputeStatus(now))

	upcoming := ConfirmedBooking{Date: "2030-06-01", Time: "14:00"}
	assert.Equal(t, StatusUpcoming, upcoming.ComputeStatus(now))

	// Unparsable records degrade to upcoming instead of breaking the list.
	broken := ConfirmedBooking{Date: "", Time: ""}
	assert.Equal(t, StatusUpcoming, broken.ComputeStatus(now))
}

func TestBookingDuration(t *testing.T) {
	b := ConfirmedBooking{Services: []Service{{Duration: 45}, {Duration: 30}}}
	assert.Equal(t, 75, b.Duration())
}

func TestStylistCanPerform(t *testing.T) {
	st := Stylist{ID: "ava-bennett", ServiceIDs: []string{"haircut", "hair-coloring"}}
	assert.True(t, st.CanPerform("haircut"))
	assert.False(t, st.CanPerform("manicure"))
}

func TestUserCanManage(t *testing.T) {
	admin := User{Role: RoleSalonAdmin, AssignedSalonIDs: []string{"glamour-studio"}}
	assert.True(t, admin.CanManage("glamour-studio"))
	assert.False(t, admin.CanManage("luxe-spa-wellness"))

	super := User{Role: RoleSuperAdmin}
	assert.True(t, super.CanManage("anything"))

	customer := User{Role: RoleCustomer}
	assert.False(t, customer.CanManage("glamour-studio"))
}
