package attendance

import (
	"context"
	"testing"

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
	records map[uint]*AttendanceRecord
	people  map[uint]bool
	events  map[uint]bool
	nextID  uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		records: map[uint]*AttendanceRecord{},
		people:  map[uint]bool{10: true},
		events:  map[uint]bool{1: true},
		nextID:  1,
	}
}

func (f *fakeRepo) Create(_ context.Context, rec *AttendanceRecord) error {
	rec.ID = f.nextID
	f.nextID++
	stored := *rec
	f.records[rec.ID] = &stored
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uint) (*AttendanceRecord, error) {
	rec, ok := f.records[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *rec
	return &out, nil
}

func (f *fakeRepo) Delete(_ context.Context, id uint) error {
	delete(f.records, id)
	return nil
}

func (f *fakeRepo) Exists(_ context.Context, personID, eventID uint) (bool, error) {
	for _, rec := range f.records {
		if rec.PersonID == personID && rec.EventID == eventID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) ListByEvent(_ context.Context, eventID uint) ([]AttendanceWithName, error) {
	var out []AttendanceWithName
	for _, rec := range f.records {
		if rec.EventID == eventID {
			out = append(out, AttendanceWithName{ID: rec.ID, PersonID: rec.PersonID, EventID: eventID})
		}
	}
	return out, nil
}

func (f *fakeRepo) ListByPerson(_ context.Context, personID uint) ([]AttendanceRecord, error) {
	var out []AttendanceRecord
	for _, rec := range f.records {
		if rec.PersonID == personID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

func (f *fakeRepo) PersonExists(_ context.Context, personID uint) (bool, error) {
	return f.people[personID], nil
}

func (f *fakeRepo) EventExists(_ context.Context, eventID uint) (bool, error) {
	return f.events[eventID], nil
}

// Redelivered check-in events hit the duplicate guard instead of
// producing a second row.
func TestRecordAttendanceDuplicate(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopAudit{})
	ctx := context.Background()

	rec, err := svc.RecordAttendance(ctx, 10, 1, "test")
	require.NoError(t, err)
	assert.NotZero(t, rec.ID)

	_, err = svc.RecordAttendance(ctx, 10, 1, "test")
	assert.ErrorIs(t, err, ErrAlreadyRecorded)
	assert.Len(t, repo.records, 1)
}

func TestRecordAttendanceValidation(t *testing.T) {
	svc := NewService(newFakeRepo(), nopAudit{})
	ctx := context.Background()

	_, err := svc.RecordAttendance(ctx, 99, 1, "test")
	assert.ErrorIs(t, err, ErrPersonNotFound)

	_, err = svc.RecordAttendance(ctx, 10, 99, "test")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestDeleteAttendance(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopAudit{})
	ctx := context.Background()

	rec, err := svc.RecordAttendance(ctx, 10, 1, "test")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, rec.ID, "test"))
	assert.Empty(t, repo.records)

	err = svc.Delete(ctx, rec.ID, "test")
	assert.ErrorIs(t, err, ErrAttendanceNotFound)

	// once deleted, attendance can be recorded again
	_, err = svc.RecordAttendance(ctx, 10, 1, "test")
	require.NoError(t, err)
}
