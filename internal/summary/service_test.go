package summary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkelley412/youth-group-backend/internal/event"
	"github.com/mkelley412/youth-group-backend/internal/registration"
)

type fakeEvents struct {
	events map[uint]*event.Event
}

func (f *fakeEvents) GetEventByID(_ context.Context, id uint) (*event.Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, event.ErrEventNotFound
	}
	return e, nil
}

type fakeRegistrations struct {
	counts map[uint]*registration.RegistrationCounts
	err    error
}

func (f *fakeRegistrations) CountsByEvent(_ context.Context, eventID uint) (*registration.RegistrationCounts, error) {
	if f.err != nil {
		return nil, f.err
	}
	if c, ok := f.counts[eventID]; ok {
		return c, nil
	}
	return &registration.RegistrationCounts{}, nil
}

type fakeCheckins struct {
	enabled bool
	count   int64
	err     error
	delay   time.Duration
}

func (f *fakeCheckins) Enabled() bool { return f.enabled }

func (f *fakeCheckins) Count(ctx context.Context, _ uint) (int64, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
	return f.count, f.err
}

type fakeNotes struct {
	enabled bool
	count   int64
	err     error
}

func (f *fakeNotes) Enabled() bool { return f.enabled }

func (f *fakeNotes) CountEventNotes(_ context.Context, _ uint) (int64, error) {
	return f.count, f.err
}

func testEvent(id uint) *event.Event {
	return &event.Event{
		ID:       id,
		Name:     "Friday Night Service",
		Type:     "service",
		DateTime: time.Date(2025, 6, 6, 19, 0, 0, 0, time.UTC),
		Location: "Main Hall",
		IsActive: true,
	}
}

func TestSummaryUnknownEvent(t *testing.T) {
	svc := NewService(
		&fakeEvents{events: map[uint]*event.Event{}},
		&fakeRegistrations{},
		&fakeCheckins{},
		&fakeNotes{},
	)

	_, err := svc.GetComprehensiveEventSummary(context.Background(), 42)
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestSummaryAllStoresUp(t *testing.T) {
	svc := NewService(
		&fakeEvents{events: map[uint]*event.Event{1: testEvent(1)}},
		&fakeRegistrations{counts: map[uint]*registration.RegistrationCounts{
			1: {Total: 10, Attendees: 7, Leaders: 2, Volunteers: 1},
		}},
		&fakeCheckins{enabled: true, count: 5},
		&fakeNotes{enabled: true, count: 3},
	)

	got, err := svc.GetComprehensiveEventSummary(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, SourcePostgres, got.Event.Source)
	assert.Equal(t, "Friday Night Service", got.Event.Name)
	assert.Equal(t, int64(10), got.Registrations.Total)
	assert.Equal(t, int64(7), got.Registrations.Attendees)
	assert.Equal(t, SourceRedis, got.LiveCheckIns.Source)
	assert.Equal(t, SourceFirestore, got.Notes.Source)
	assert.Equal(t, int64(10), got.Summary.TotalRegistered)
	assert.Equal(t, int64(5), got.Summary.TotalCheckedIn)
	assert.Equal(t, 50, got.Summary.AttendanceRate)
	assert.Equal(t, int64(3), got.Summary.NotesCount)
	assert.Equal(t, []string{"postgres", "redis", "firestore"}, got.DataSources)
}

// Two attendee registrations plus one leader registration, document
// store down, one student checked in.
func TestSummaryDocumentStoreDown(t *testing.T) {
	svc := NewService(
		&fakeEvents{events: map[uint]*event.Event{1: testEvent(1)}},
		&fakeRegistrations{counts: map[uint]*registration.RegistrationCounts{
			1: {Total: 3, Attendees: 2, Leaders: 1, Volunteers: 0},
		}},
		&fakeCheckins{enabled: true, count: 1},
		&fakeNotes{enabled: true, err: errors.New("firestore unreachable")},
	)

	got, err := svc.GetComprehensiveEventSummary(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(3), got.Summary.TotalRegistered)
	assert.Equal(t, int64(1), got.Summary.TotalCheckedIn)
	assert.Equal(t, 33, got.Summary.AttendanceRate)
	assert.Equal(t, int64(0), got.Summary.NotesCount)
	assert.Equal(t, SourceUnavailable, got.Notes.Source)
	assert.Equal(t, []string{"postgres", "redis", "firestore (unavailable)"}, got.DataSources)
}

func TestSummaryZeroRegistrationsNoDivisionByZero(t *testing.T) {
	svc := NewService(
		&fakeEvents{events: map[uint]*event.Event{1: testEvent(1)}},
		&fakeRegistrations{},
		&fakeCheckins{enabled: true, count: 4},
		&fakeNotes{enabled: false},
	)

	got, err := svc.GetComprehensiveEventSummary(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(0), got.Summary.TotalRegistered)
	assert.Equal(t, 0, got.Summary.AttendanceRate)
	// Check-ins are an independent cardinality, not bounded by
	// registrations.
	assert.Equal(t, int64(4), got.Summary.TotalCheckedIn)
}

func TestSummaryOptionalStoresDisabled(t *testing.T) {
	svc := NewService(
		&fakeEvents{events: map[uint]*event.Event{1: testEvent(1)}},
		&fakeRegistrations{counts: map[uint]*registration.RegistrationCounts{
			1: {Total: 2, Attendees: 2},
		}},
		&fakeCheckins{enabled: false},
		&fakeNotes{enabled: false},
	)

	got, err := svc.GetComprehensiveEventSummary(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, SourceUnavailable, got.LiveCheckIns.Source)
	assert.Equal(t, int64(0), got.LiveCheckIns.Count)
	assert.Equal(t, SourceUnavailable, got.Notes.Source)
	assert.Equal(t, int64(0), got.Notes.Count)
	assert.Equal(t, int64(2), got.Summary.TotalRegistered)
}

func TestSummarySlowOptionalStoreDegrades(t *testing.T) {
	svc := NewService(
		&fakeEvents{events: map[uint]*event.Event{1: testEvent(1)}},
		&fakeRegistrations{counts: map[uint]*registration.RegistrationCounts{
			1: {Total: 5, Attendees: 5},
		}},
		&fakeCheckins{enabled: true, count: 5, delay: optionalStoreTimeout + time.Second},
		&fakeNotes{enabled: true, count: 1},
	)

	start := time.Now()
	got, err := svc.GetComprehensiveEventSummary(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, SourceUnavailable, got.LiveCheckIns.Source)
	assert.Equal(t, int64(0), got.Summary.TotalCheckedIn)
	assert.Equal(t, 0, got.Summary.AttendanceRate)
	assert.Less(t, time.Since(start), optionalStoreTimeout+time.Second)
}

func TestSummaryMandatoryStoreFailurePropagates(t *testing.T) {
	dbErr := errors.New("connection refused")
	svc := NewService(
		&fakeEvents{events: map[uint]*event.Event{1: testEvent(1)}},
		&fakeRegistrations{err: dbErr},
		&fakeCheckins{enabled: true, count: 1},
		&fakeNotes{enabled: true, count: 1},
	)

	_, err := svc.GetComprehensiveEventSummary(context.Background(), 1)
	assert.ErrorIs(t, err, dbErr)
}

func TestAttendanceRateRounding(t *testing.T) {
	cases := []struct {
		checkedIn  int64
		registered int64
		want       int
	}{
		{0, 0, 0},
		{5, 0, 0},
		{1, 3, 33},
		{2, 3, 67},
		{1, 2, 50},
		{3, 3, 100},
		{5, 3, 167},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, attendanceRate(tc.checkedIn, tc.registered),
			"checkedIn=%d registered=%d", tc.checkedIn, tc.registered)
	}
}
