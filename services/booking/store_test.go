package booking

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"salonbook/models"
)

// memKV is an in-memory KeyValue for tests.
type memKV struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string]string)}
}

func (m *memKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func testBooking(userID, date, clock string) models.ConfirmedBooking {
	return models.ConfirmedBooking{
		SalonID: "glamour-studio",
		UserID:  userID,
		Services: []models.Service{
			{ID: "haircut", Name: "Corte de Cabello", Price: 30, Duration: 45},
		},
		FirstAvailable: true,
		Date:           date,
		Time:           clock,
		Subtotal:       30,
		Tax:            5.4,
		Total:          35.4,
	}
}

func TestStoreAddAssignsIDAndPrepends(t *testing.T) {
	store := NewBookingStore(newMemKV(), zap.NewNop())
	ctx := context.Background()

	b1, err := store.Add(ctx, testBooking("u1", "2030-06-01", "10:00"))
	require.NoError(t, err)
	require.NotEmpty(t, b1.ID)

	// The returned record carries everything the store assigned.
	assert.Equal(t, models.StatusUpcoming, b1.Status)
	assert.False(t, b1.CreatedAt.IsZero())

	b2, err := store.Add(ctx, testBooking("u1", "2030-06-02", "11:00"))
	require.NoError(t, err)
	assert.NotEqual(t, b1.ID, b2.ID)

	bookings, err := store.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	// Newest first.
	assert.Equal(t, b2.ID, bookings[0].ID)
	assert.Equal(t, b1.ID, bookings[1].ID)
	assert.False(t, bookings[0].CreatedAt.IsZero())
}

func TestStoreStatusRecomputedOnRead(t *testing.T) {
	store := NewBookingStore(newMemKV(), zap.NewNop())
	ctx := context.Background()

	_, err := store.Add(ctx, testBooking("u1", "2020-01-01", "10:00"))
	require.NoError(t, err)
	_, err = store.Add(ctx, testBooking("u1", "2030-06-01", "10:00"))
	require.NoError(t, err)

	bookings, err := store.List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, models.StatusUpcoming, bookings[0].Status)
	assert.Equal(t, models.StatusPast, bookings[1].Status)
}

func TestStoreListEmptyUser(t *testing.T) {
	store := NewBookingStore(newMemKV(), zap.NewNop())
	bookings, err := store.List(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestStoreCorruptDataFailsSoft(t *testing.T) {
	kv := newMemKV()
	kv.data[bookingsKeyPrefix+"u1"] = "{not json"
	store := NewBookingStore(kv, zap.NewNop())

	bookings, err := store.List(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, bookings)

	// The store stays writable after discarding the corrupt payload.
	_, err = store.Add(context.Background(), testBooking("u1", "2030-06-01", "10:00"))
	require.NoError(t, err)
	bookings, err = store.List(context.Background(), "u1")
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}

func TestStoreGet(t *testing.T) {
	store := NewBookingStore(newMemKV(), zap.NewNop())
	ctx := context.Background()

	added, err := store.Add(ctx, testBooking("u1", "2030-06-01", "10:00"))
	require.NoError(t, err)

	b, err := store.Get(ctx, "u1", added.ID)
	require.NoError(t, err)
	assert.Equal(t, added.ID, b.ID)

	_, err = store.Get(ctx, "u1", "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	// Another user's key does not see it.
	_, err = store.Get(ctx, "u2", added.ID)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestStoreAgendaIndex(t *testing.T) {
	store := NewBookingStore(newMemKV(), zap.NewNop())
	ctx := context.Background()

	b := testBooking("u1", "2030-06-01", "10:00")
	b.FirstAvailable = false
	b.Stylist = &models.Stylist{ID: "ava-bennett", Name: "Ava Bennett"}
	added, err := store.Add(ctx, b)
	require.NoError(t, err)

	entries, err := store.Agenda(ctx, "glamour-studio", "2030-06-01")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, added.ID, entries[0].BookingID)
	assert.Equal(t, "ava-bennett", entries[0].StylistID)
	assert.Equal(t, "10:00", entries[0].Time)
	assert.Equal(t, 45, entries[0].Duration)

	// Other dates stay empty.
	entries, err = store.Agenda(ctx, "glamour-studio", "2030-06-02")
	require.NoError(t, err)
	assert.Empty(t, entries)
}
