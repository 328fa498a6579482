package booking

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"salonbook/models"
)

// memSessions is an in-memory SessionStore. It round-trips drafts through
// JSON the way the Redis store does, so saved and live state never alias.
type memSessions struct {
	mu     sync.Mutex
	drafts map[string]string
}

func newMemSessions() *memSessions {
	return &memSessions{drafts: make(map[string]string)}
}

func (m *memSessions) Load(_ context.Context, sessionID string) (*models.BookingDraft, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.drafts[sessionID]
	if !ok {
		return models.NewBookingDraft(), nil
	}
	var draft models.BookingDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return nil, err
	}
	if draft.SelectedServices == nil {
		draft.SelectedServices = []models.Service{}
	}
	return &draft, nil
}

func (m *memSessions) Save(_ context.Context, sessionID string, draft *models.BookingDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drafts[sessionID] = string(data)
	return nil
}

func (m *memSessions) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.drafts, sessionID)
	return nil
}

type fakeCatalog struct {
	services []models.Service
	stylists []models.Stylist
}

func (f *fakeCatalog) ActiveServices(context.Context, string) ([]models.Service, error) {
	return f.services, nil
}

func (f *fakeCatalog) ActiveStylists(context.Context, string) ([]models.Stylist, error) {
	return f.stylists, nil
}

type failingProcessor struct{}

func (failingProcessor) ProcessPayment(context.Context, models.PaymentRequest) (*models.Invoice, error) {
	return nil, errors.New("card declined")
}

type recordingScheduler struct {
	scheduled []string
	err       error
}

func (r *recordingScheduler) ScheduleReminder(_ context.Context, b *models.ConfirmedBooking, _ string) error {
	if r.err != nil {
		return r.err
	}
	r.scheduled = append(r.scheduled, b.ID)
	return nil
}

func testSalon() *models.Salon {
	return &models.Salon{
		ID:      "glamour-studio",
		Slug:    "glamour-studio",
		Name:    "Glamour Studio",
		TaxRate: 0.18,
		Hours:   models.OperatingHours{Open: "09:00", Close: "18:00", SlotMinutes: 30},
	}
}

func testFlow() (*DefaultFlowService, *recordingScheduler) {
	catalog := &fakeCatalog{
		services: []models.Service{
			{ID: "haircut", Name: "Corte de Cabello", Price: 30, Duration: 45, Active: true},
			{ID: "manicure", Name: "Manicura", Price: 25, Duration: 30, Active: true},
		},
		stylists: []models.Stylist{
			{ID: "ava-bennett", Name: "Ava Bennett", ServiceIDs: []string{"haircut"}, Active: true},
			{ID: "isabella-clark", Name: "Isabella Clark", ServiceIDs: []string{"haircut", "manicure"}, Active: true},
		},
	}
	scheduler := &recordingScheduler{}
	flow := &DefaultFlowService{
		Sessions:  newMemSessions(),
		Store:     NewBookingStore(newMemKV(), zap.NewNop()),
		CatalogSv: catalog,
		Payments:  &SimulatedPaymentProcessor{Logger: zap.NewNop(), Delay: 1},
		Reminders: scheduler,
		Logger:    zap.NewNop(),
	}
	return flow, scheduler
}

func TestFlowNewSessionYieldsEmptyDraft(t *testing.T) {
	flow, _ := testFlow()
	draft, err := flow.Draft(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, draft.SelectedServices)
	assert.Equal(t, models.StepChoosingServices, draft.Step())
}

func TestFlowAddServiceValidatesAgainstCatalog(t *testing.T) {
	flow, _ := testFlow()
	ctx := context.Background()

	draft, err := flow.AddService(ctx, "s1", "glamour-studio", "haircut")
	require.NoError(t, err)
	require.Len(t, draft.SelectedServices, 1)
	assert.Equal(t, 30.0, draft.SelectedServices[0].Price)

	_, err = flow.AddService(ctx, "s1", "glamour-studio", "nonexistent")
	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestFlowMutationsPersistAcrossLoads(t *testing.T) {
	flow, _ := testFlow()
	ctx := context.Background()

	_, err := flow.AddService(ctx, "s1", "glamour-studio", "haircut")
	require.NoError(t, err)
	_, err = flow.SetFirstAvailable(ctx, "s1", true)
	require.NoError(t, err)

	draft, err := flow.Draft(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, draft.SelectedServices, 1)
	assert.True(t, draft.UseFirstAvailable)
}

func TestFlowSetStylistUnknown(t *testing.T) {
	flow, _ := testFlow()
	_, err := flow.SetStylist(context.Background(), "s1", "glamour-studio", "nobody")
	assert.ErrorIs(t, err, ErrUnknownStylist)
}

func TestFlowSetDateRejectsBadFormat(t *testing.T) {
	flow, _ := testFlow()
	_, err := flow.SetDate(context.Background(), "s1", "06/01/2030")
	assert.Error(t, err)
	_, err = flow.SetTime(context.Background(), "s1", "1030")
	assert.Error(t, err)
}

func TestFlowSlotsGuardedByStepPrerequisites(t *testing.T) {
	flow, _ := testFlow()
	ctx := context.Background()

	_, err := flow.DaySlots(ctx, "s1", testSalon(), "2030-06-01")
	var guard *GuardError
	require.ErrorAs(t, err, &guard)
	assert.Equal(t, models.StepChoosingServices, guard.RedirectTo)

	_, err = flow.AddService(ctx, "s1", "glamour-studio", "haircut")
	require.NoError(t, err)

	_, err = flow.DaySlots(ctx, "s1", testSalon(), "2030-06-01")
	require.ErrorAs(t, err, &guard)
	assert.Equal(t, models.StepChoosingStylist, guard.RedirectTo)
}

func TestFlowSlotsFirstAvailableUsesQualifiedRoster(t *testing.T) {
	flow, _ := testFlow()
	ctx := context.Background()

	// Manicure narrows the qualified roster to Isabella alone.
	_, err := flow.SetServices(ctx, "s1", "glamour-studio", []string{"haircut", "manicure"})
	require.NoError(t, err)
	_, err = flow.SetFirstAvailable(ctx, "s1", true)
	require.NoError(t, err)

	booked := testBooking("other-user", "2030-06-01", "10:00")
	_, err = flow.Store.Add(ctx, booked)
	require.NoError(t, err)

	slots, err := flow.DaySlots(ctx, "s1", testSalon(), "2030-06-01")
	require.NoError(t, err)

	// With a one-person roster the 10:00 appointment blocks overlapping slots.
	assert.False(t, slotByTime(t, slots, "10:00").Available)
	assert.True(t, slotByTime(t, slots, "11:00").Available)
}

func TestFlowSummaryRequiresCompleteDraft(t *testing.T) {
	flow, _ := testFlow()
	ctx := context.Background()

	_, err := flow.AddService(ctx, "s1", "glamour-studio", "haircut")
	require.NoError(t, err)
	_, err = flow.SetFirstAvailable(ctx, "s1", true)
	require.NoError(t, err)

	_, err = flow.Summary(ctx, "s1", testSalon())
	var guard *GuardError
	require.ErrorAs(t, err, &guard)
	assert.Equal(t, models.StepChoosingDateTime, guard.RedirectTo)

	_, err = flow.SetDate(ctx, "s1", "2030-06-01")
	require.NoError(t, err)
	_, err = flow.SetTime(ctx, "s1", "10:00")
	require.NoError(t, err)

	summary, err := flow.Summary(ctx, "s1", testSalon())
	require.NoError(t, err)
	assert.Equal(t, 30.0, summary.Quote.Subtotal)
	assert.Equal(t, 5.4, summary.Quote.Tax)
	assert.Equal(t, 35.4, summary.Quote.Total)
	assert.Equal(t, 45, summary.DurationMinutes)
}

func TestFlowRescheduleSeedsDraftFromBooking(t *testing.T) {
	flow, _ := testFlow()
	ctx := context.Background()
	advanceToPaying(t, flow, "s1")

	confirmed, _, err := flow.Checkout(ctx, "s1", "u1", testSalon(), "card")
	require.NoError(t, err)

	draft, err := flow.Reschedule(ctx, "s2", "u1", confirmed.ID)
	require.NoError(t, err)

	// Services and the stylist pick carry over, date and time start over.
	require.Len(t, draft.SelectedServices, 1)
	assert.Equal(t, "haircut", draft.SelectedServices[0].ID)
	require.NotNil(t, draft.SelectedStylist)
	assert.Equal(t, "ava-bennett", draft.SelectedStylist.ID)
	assert.Empty(t, draft.SelectedDate)
	assert.Empty(t, draft.SelectedTime)
	assert.Equal(t, models.StepChoosingDateTime, draft.Step())

	// The seeded draft is persisted and flows on like any other.
	_, err = flow.SetDate(ctx, "s2", "2030-07-01")
	require.NoError(t, err)
	_, err = flow.SetTime(ctx, "s2", "14:00")
	require.NoError(t, err)
	replacement, _, err := flow.Checkout(ctx, "s2", "u1", testSalon(), "card")
	require.NoError(t, err)
	assert.NotEqual(t, confirmed.ID, replacement.ID)

	// The original booking is untouched.
	original, err := flow.Store.Get(ctx, "u1", confirmed.ID)
	require.NoError(t, err)
	assert.Equal(t, "2030-06-01", original.Date)
	assert.Equal(t, "10:00", original.Time)
}

func TestFlowRescheduleCarriesFirstAvailable(t *testing.T) {
	flow, _ := testFlow()
	ctx := context.Background()

	stored, err := flow.Store.Add(ctx, testBooking("u1", "2030-06-01", "10:00"))
	require.NoError(t, err)

	draft, err := flow.Reschedule(ctx, "s1", "u1", stored.ID)
	require.NoError(t, err)
	assert.True(t, draft.UseFirstAvailable)
	assert.Nil(t, draft.SelectedStylist)
}

func TestFlowRescheduleUnknownBooking(t *testing.T) {
	flow, _ := testFlow()
	_, err := flow.Reschedule(context.Background(), "s1", "u1", "missing")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestFlowResetClearsSession(t *testing.T) {
	flow, _ := testFlow()
	ctx := context.Background()

	_, err := flow.AddService(ctx, "s1", "glamour-studio", "haircut")
	require.NoError(t, err)
	require.NoError(t, flow.Reset(ctx, "s1"))

	draft, err := flow.Draft(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, draft.SelectedServices)
}
