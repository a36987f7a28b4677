package event

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mkelley412/youth-group-backend/internal/auditlog"
)

type nopAudit struct{}

func (nopAudit) LogAction(context.Context, *uint, *uint, string, map[string]interface{}, string, string) error {
	return nil
}
func (nopAudit) GetAuditLogs(context.Context, auditlog.AuditLogFilter) (*auditlog.PaginatedAuditLogs, error) {
	return nil, nil
}
func (nopAudit) GetAuditLogByID(context.Context, uint) (*auditlog.AuditLog, error) { return nil, nil }
func (nopAudit) GetStats(context.Context) (*auditlog.AuditLogStats, error) { return nil, nil }

type fakeRepo struct {
	events map[uint]*Event
	nextID uint

	lastLimit  int
	lastOffset int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{events: map[uint]*Event{}, nextID: 1}
}

func (f *fakeRepo) CreateEvent(_ context.Context, e *Event) error {
	e.ID = f.nextID
	f.nextID++
	stored := *e
	f.events[e.ID] = &stored
	return nil
}

func (f *fakeRepo) GetEventByID(_ context.Context, id uint) (*Event, error) {
	e, ok := f.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *e
	return &out, nil
}

func (f *fakeRepo) ListEvents(_ context.Context, limit, offset int, _ string) ([]Event, error) {
	f.lastLimit = limit
	f.lastOffset = offset
	return nil, nil
}

func (f *fakeRepo) GetUpcomingEvents(context.Context) ([]Event, error) { return nil, nil }

func (f *fakeRepo) UpdateEvent(_ context.Context, e *Event) error {
	stored := *e
	f.events[e.ID] = &stored
	return nil
}

func (f *fakeRepo) CountRegistrations(context.Context, uint) (int, error) { return 0, nil }

func (f *fakeRepo) GetEventStats(context.Context) (*EventStatsResponse, error) {
	return &EventStatsResponse{TotalEvents: len(f.events)}, nil
}

func TestCreateEventParsesDateTime(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopAudit{})

	e, err := svc.CreateEvent(context.Background(), &CreateEventRequest{
		Name:     "Friday Night",
		Type:     "youth_night",
		DateTime: "2026-09-04T19:00:00Z",
		Location: "Main Hall",
	}, "test")
	require.NoError(t, err)

	assert.True(t, e.IsActive, "new events start active")
	assert.Equal(t, time.Date(2026, 9, 4, 19, 0, 0, 0, time.UTC), e.DateTime)
}

func TestCreateEventRejectsBadDateTime(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopAudit{})

	_, err := svc.CreateEvent(context.Background(), &CreateEventRequest{
		Name:     "Friday Night",
		Type:     "youth_night",
		DateTime: "09/04/2026 7pm",
		Location: "Main Hall",
	}, "test")

	assert.ErrorIs(t, err, ErrBadDateTime)
	assert.Empty(t, repo.events)
}

// Events are never deleted; flipping isActive off is the retirement path.
func TestUpdateEventDeactivates(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopAudit{})
	ctx := context.Background()

	e, err := svc.CreateEvent(ctx, &CreateEventRequest{
		Name:     "Summer Camp",
		Type:     "camp",
		DateTime: "2026-07-10T09:00:00Z",
		Location: "Lakeside",
	}, "test")
	require.NoError(t, err)

	inactive := false
	updated, err := svc.UpdateEvent(ctx, e.ID, &UpdateEventRequest{IsActive: &inactive}, "test")
	require.NoError(t, err)

	assert.False(t, updated.IsActive)
	assert.Equal(t, "Summer Camp", updated.Name, "other fields untouched")

	got, err := svc.GetEventByID(ctx, e.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestUpdateEventUnknownID(t *testing.T) {
	svc := NewService(newFakeRepo(), nopAudit{})

	name := "Renamed"
	_, err := svc.UpdateEvent(context.Background(), 404, &UpdateEventRequest{Name: &name}, "test")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestListEventsClampsPagination(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopAudit{})
	ctx := context.Background()

	_, err := svc.ListEvents(ctx, 0, -5, "")
	require.NoError(t, err)
	assert.Equal(t, 20, repo.lastLimit)
	assert.Equal(t, 0, repo.lastOffset)

	_, err = svc.ListEvents(ctx, 500, 40, "")
	require.NoError(t, err)
	assert.Equal(t, 20, repo.lastLimit)
	assert.Equal(t, 40, repo.lastOffset)

	_, err = svc.ListEvents(ctx, 50, 0, "")
	require.NoError(t, err)
	assert.Equal(t, 50, repo.lastLimit)
}
