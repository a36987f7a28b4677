package checkin

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

// memStore mimics the Redis set-plus-hash layout in process memory.
type memStore struct {
	enabled bool
	events  map[uint]map[uint]time.Time
}

func newMemStore() *memStore {
	return &memStore{enabled: true, events: map[uint]map[uint]time.Time{}}
}

func (m *memStore) Enabled() bool { return m.enabled }

func (m *memStore) CheckIn(_ context.Context, eventID, studentID uint, at time.Time) (bool, error) {
	set, ok := m.events[eventID]
	if !ok {
		set = map[uint]time.Time{}
		m.events[eventID] = set
	}
	if _, present := set[studentID]; present {
		return false, nil
	}
	set[studentID] = at
	return true, nil
}

func (m *memStore) CheckOut(_ context.Context, eventID, studentID uint) (bool, error) {
	set := m.events[eventID]
	if _, present := set[studentID]; !present {
		return false, nil
	}
	delete(set, studentID)
	return true, nil
}

func (m *memStore) Count(_ context.Context, eventID uint) (int64, error) {
	return int64(len(m.events[eventID])), nil
}

func (m *memStore) Members(_ context.Context, eventID uint) (map[uint]time.Time, error) {
	out := map[uint]time.Time{}
	for id, at := range m.events[eventID] {
		out[id] = at
	}
	return out, nil
}

func (m *memStore) Reset(_ context.Context, eventID uint) error {
	delete(m.events, eventID)
	return nil
}

type fakeDirectory struct {
	events map[uint]bool
	people map[uint]PersonName
}

func (f *fakeDirectory) EventExists(_ context.Context, eventID uint) (bool, error) {
	return f.events[eventID], nil
}

func (f *fakeDirectory) PersonExists(_ context.Context, personID uint) (bool, error) {
	_, ok := f.people[personID]
	return ok, nil
}

func (f *fakeDirectory) GetNames(_ context.Context, ids []uint) (map[uint]PersonName, error) {
	out := map[uint]PersonName{}
	for _, id := range ids {
		if name, ok := f.people[id]; ok {
			out[id] = name
		}
	}
	return out, nil
}

func newTestService() (*Service, *memStore) {
	store := newMemStore()
	dir := &fakeDirectory{
		events: map[uint]bool{1: true},
		people: map[uint]PersonName{
			10: {FirstName: "Maya", LastName: "Chen"},
			11: {FirstName: "Noah", LastName: "Avery"},
		},
	}
	return NewService(store, dir, nopAudit{}), store
}

func TestCheckInIsIdempotent(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	added, err := svc.CheckIn(ctx, 1, 10, "test")
	require.NoError(t, err)
	assert.True(t, added)

	first := store.events[1][10]

	added, err = svc.CheckIn(ctx, 1, 10, "test")
	require.NoError(t, err)
	assert.False(t, added)

	count, err := store.Count(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Equal(t, first, store.events[1][10], "original timestamp kept")
}

func TestCheckInValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, 99, 10, "test")
	assert.ErrorIs(t, err, ErrEventNotFound)

	_, err = svc.CheckIn(ctx, 1, 99, "test")
	assert.ErrorIs(t, err, ErrPersonNotFound)
}

func TestCheckInStoreDisabled(t *testing.T) {
	svc, store := newTestService()
	store.enabled = false

	_, err := svc.CheckIn(context.Background(), 1, 10, "test")
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	_, err = svc.GetLiveCheckIns(context.Background(), 1)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
}

func TestCheckOutUnknownStudentIsNoOp(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, 1, 10, "test")
	require.NoError(t, err)

	removed, err := svc.CheckOut(ctx, 1, 11, "test")
	require.NoError(t, err)
	assert.False(t, removed)

	removed, err = svc.CheckOut(ctx, 1, 10, "test")
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestLiveCheckInsSortedRoster(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, 1, 10, "test")
	require.NoError(t, err)
	_, err = svc.CheckIn(ctx, 1, 11, "test")
	require.NoError(t, err)

	live, err := svc.GetLiveCheckIns(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, uint(1), live.EventID)
	assert.Equal(t, int64(2), live.CheckedInCount)
	assert.Equal(t, "redis", live.Source)
	require.Len(t, live.Students, 2)
	assert.Equal(t, "Avery", live.Students[0].LastName)
	assert.Equal(t, "Chen", live.Students[1].LastName)
	assert.False(t, live.Students[0].CheckInTime.IsZero())
}

func TestResetClearsEvent(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	_, err := svc.CheckIn(ctx, 1, 10, "test")
	require.NoError(t, err)

	require.NoError(t, svc.Reset(ctx, 1, "test"))

	count, err := store.Count(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
