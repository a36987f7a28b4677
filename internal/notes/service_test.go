package notes

import (
	"context"
	"fmt"
	"testing"

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

type memDocStore struct {
	enabled        bool
	eventTypes     map[string]EventType
	personNotes    map[string]PersonNote
	parentContacts map[string]ParentContact
	eventNotes     map[string]EventNote
	nextID         int
}

func newMemDocStore() *memDocStore {
	return &memDocStore{
		enabled:        true,
		eventTypes:     map[string]EventType{},
		personNotes:    map[string]PersonNote{},
		parentContacts: map[string]ParentContact{},
		eventNotes:     map[string]EventNote{},
	}
}

func (m *memDocStore) id() string {
	m.nextID++
	return fmt.Sprintf("doc-%d", m.nextID)
}

func (m *memDocStore) Enabled() bool { return m.enabled }

func (m *memDocStore) UpsertEventType(_ context.Context, et *EventType) error {
	m.eventTypes[et.EventType] = *et
	return nil
}

func (m *memDocStore) GetEventType(_ context.Context, name string) (*EventType, error) {
	et, ok := m.eventTypes[name]
	if !ok {
		return nil, nil
	}
	return &et, nil
}

func (m *memDocStore) ListEventTypes(context.Context) ([]EventType, error) {
	var out []EventType
	for _, et := range m.eventTypes {
		out = append(out, et)
	}
	return out, nil
}

func (m *memDocStore) DeleteEventType(_ context.Context, name string) error {
	delete(m.eventTypes, name)
	return nil
}

func (m *memDocStore) AddPersonNote(_ context.Context, n *PersonNote) error {
	n.ID = m.id()
	m.personNotes[n.ID] = *n
	return nil
}

func (m *memDocStore) ListPersonNotes(_ context.Context, personID uint) ([]PersonNote, error) {
	var out []PersonNote
	for _, n := range m.personNotes {
		if n.PersonID == personID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memDocStore) DeletePersonNote(_ context.Context, id string) error {
	delete(m.personNotes, id)
	return nil
}

func (m *memDocStore) AddParentContact(_ context.Context, pc *ParentContact) error {
	pc.ID = m.id()
	m.parentContacts[pc.ID] = *pc
	return nil
}

func (m *memDocStore) ListParentContacts(_ context.Context, personID uint) ([]ParentContact, error) {
	var out []ParentContact
	for _, pc := range m.parentContacts {
		if pc.PersonID == personID {
			out = append(out, pc)
		}
	}
	return out, nil
}

func (m *memDocStore) DeleteParentContact(_ context.Context, id string) error {
	delete(m.parentContacts, id)
	return nil
}

func (m *memDocStore) AddEventNote(_ context.Context, n *EventNote) error {
	n.ID = m.id()
	m.eventNotes[n.ID] = *n
	return nil
}

func (m *memDocStore) ListEventNotes(_ context.Context, eventID uint) ([]EventNote, error) {
	var out []EventNote
	for _, n := range m.eventNotes {
		if n.EventID == eventID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memDocStore) CountEventNotes(_ context.Context, eventID uint) (int64, error) {
	var count int64
	for _, n := range m.eventNotes {
		if n.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (m *memDocStore) DeleteEventNote(_ context.Context, id string) error {
	delete(m.eventNotes, id)
	return nil
}

func strPtr(s string) *string { return &s }

func TestNotesUnavailableWhenStoreDisabled(t *testing.T) {
	store := newMemDocStore()
	store.enabled = false
	svc := NewService(store, nopAudit{})
	ctx := context.Background()

	_, err := svc.ListEventTypes(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = svc.AddPersonNote(ctx, 1, &CreatePersonNoteRequest{Text: "x", CreatedBy: "leader"}, "test")
	assert.ErrorIs(t, err, ErrUnavailable)

	err = svc.DeleteEventNote(ctx, "doc-1", "test")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestEventTypeUpsertAndGet(t *testing.T) {
	svc := NewService(newMemDocStore(), nopAudit{})
	ctx := context.Background()

	duration := 90
	_, err := svc.UpsertEventType(ctx, &UpsertEventTypeRequest{
		EventType:       "youth_night",
		Description:     strPtr("Weekly Friday gathering"),
		RequiredItems:   []string{"snacks", "projector"},
		DurationMinutes: &duration,
	}, "test")
	require.NoError(t, err)

	got, err := svc.GetEventType(ctx, "youth_night")
	require.NoError(t, err)
	assert.Equal(t, "youth_night", got.EventType)
	assert.Equal(t, []string{"snacks", "projector"}, got.RequiredItems)

	// upsert replaces the document under the same key
	_, err = svc.UpsertEventType(ctx, &UpsertEventTypeRequest{
		EventType:   "youth_night",
		Description: strPtr("Moved to Saturdays"),
	}, "test")
	require.NoError(t, err)

	got, err = svc.GetEventType(ctx, "youth_night")
	require.NoError(t, err)
	assert.Equal(t, "Moved to Saturdays", *got.Description)
	assert.Empty(t, got.RequiredItems)
}

func TestGetEventTypeNotFound(t *testing.T) {
	svc := NewService(newMemDocStore(), nopAudit{})

	_, err := svc.GetEventType(context.Background(), "lock_in")
	assert.ErrorIs(t, err, ErrEventTypeNotFound)
}

func TestPersonNoteLifecycle(t *testing.T) {
	svc := NewService(newMemDocStore(), nopAudit{})
	ctx := context.Background()

	n, err := svc.AddPersonNote(ctx, 7, &CreatePersonNoteRequest{
		Text:      "Asked about small group signup",
		Category:  strPtr("followup"),
		CreatedBy: "leader@example.org",
	}, "test")
	require.NoError(t, err)
	assert.NotEmpty(t, n.ID)
	assert.False(t, n.Created.IsZero())

	list, err := svc.ListPersonNotes(ctx, 7)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, n.ID, list[0].ID)

	require.NoError(t, svc.DeletePersonNote(ctx, n.ID, "test"))

	list, err = svc.ListPersonNotes(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestEventNotesScopedToEvent(t *testing.T) {
	store := newMemDocStore()
	svc := NewService(store, nopAudit{})
	ctx := context.Background()

	_, err := svc.AddEventNote(ctx, 1, &CreateEventNoteRequest{
		Notes:     strPtr("Great turnout"),
		CreatedBy: "leader@example.org",
	}, "test")
	require.NoError(t, err)
	_, err = svc.AddEventNote(ctx, 2, &CreateEventNoteRequest{
		Concerns:  strPtr("Low volunteer coverage"),
		CreatedBy: "leader@example.org",
	}, "test")
	require.NoError(t, err)

	list, err := svc.ListEventNotes(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	count, err := store.CountEventNotes(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
