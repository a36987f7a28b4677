package graph

import (
	"context"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/mkelley412/youth-group-backend/internal/auditlog"
	"github.com/mkelley412/youth-group-backend/internal/event"
	"github.com/mkelley412/youth-group-backend/internal/smallgroup"
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

// fakeEventRepo keeps events in insertion order so list queries come
// back deterministic.
type fakeEventRepo struct {
	events []event.Event
}

func (f *fakeEventRepo) CreateEvent(_ context.Context, e *event.Event) error {
	e.ID = uint(len(f.events) + 1)
	f.events = append(f.events, *e)
	return nil
}

func (f *fakeEventRepo) GetEventByID(_ context.Context, id uint) (*event.Event, error) {
	for i := range f.events {
		if f.events[i].ID == id {
			out := f.events[i]
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEventRepo) ListEvents(_ context.Context, limit, offset int, _ string) ([]event.Event, error) {
	if offset >= len(f.events) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.events) {
		end = len(f.events)
	}
	return f.events[offset:end], nil
}

func (f *fakeEventRepo) GetUpcomingEvents(context.Context) ([]event.Event, error) { return nil, nil }

func (f *fakeEventRepo) UpdateEvent(_ context.Context, e *event.Event) error {
	for i := range f.events {
		if f.events[i].ID == e.ID {
			f.events[i] = *e
		}
	}
	return nil
}

func (f *fakeEventRepo) CountRegistrations(context.Context, uint) (int, error) { return 0, nil }

func (f *fakeEventRepo) GetEventStats(context.Context) (*event.EventStatsResponse, error) {
	return &event.EventStatsResponse{TotalEvents: len(f.events)}, nil
}

type fakeGroupRepo struct {
	groups []smallgroup.SmallGroup
}

func (f *fakeGroupRepo) ListGroups(context.Context) ([]smallgroup.SmallGroup, error) {
	return f.groups, nil
}

func (f *fakeGroupRepo) GetGroup(_ context.Context, id uint) (*smallgroup.SmallGroup, error) {
	for i := range f.groups {
		if f.groups[i].ID == id {
			out := f.groups[i]
			return &out, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeGroupRepo) CreateGroup(_ context.Context, g *smallgroup.SmallGroup) error {
	g.ID = uint(len(f.groups) + 1)
	f.groups = append(f.groups, *g)
	return nil
}

func (f *fakeGroupRepo) UpdateGroup(context.Context, *smallgroup.SmallGroup) error { return nil }
func (f *fakeGroupRepo) DeleteGroup(context.Context, uint) error { return nil }

func (f *fakeGroupRepo) AddMember(context.Context, *smallgroup.SmallGroupMember) error { return nil }
func (f *fakeGroupRepo) RemoveMember(context.Context, uint) error { return nil }
func (f *fakeGroupRepo) ListMembers(context.Context, uint) ([]smallgroup.GroupPerson, error) {
	return nil, nil
}
func (f *fakeGroupRepo) MemberExists(context.Context, uint, uint) (bool, error) { return false, nil }

func (f *fakeGroupRepo) AddLeader(context.Context, *smallgroup.SmallGroupLeader) error { return nil }
func (f *fakeGroupRepo) RemoveLeader(context.Context, uint) error { return nil }
func (f *fakeGroupRepo) ListLeaders(context.Context, uint) ([]smallgroup.GroupPerson, error) {
	return nil, nil
}
func (f *fakeGroupRepo) LeaderExists(context.Context, uint, uint) (bool, error) { return false, nil }

func (f *fakeGroupRepo) PersonExists(context.Context, uint) (bool, error) { return true, nil }

// newTestSchema wires only the services the exercised operations reach.
// Building the schema never dereferences the resolver, so the untouched
// fields can stay nil.
func newTestSchema(t *testing.T) (graphql.Schema, *fakeEventRepo, *fakeGroupRepo) {
	t.Helper()

	eventRepo := &fakeEventRepo{}
	groupRepo := &fakeGroupRepo{}

	schema, err := NewSchema(&Resolver{
		Events:      event.NewService(eventRepo, nopAudit{}),
		SmallGroups: smallgroup.NewService(groupRepo, nopAudit{}),
	})
	require.NoError(t, err)
	return schema, eventRepo, groupRepo
}

func TestSchemaExposesRoots(t *testing.T) {
	schema, _, _ := newTestSchema(t)

	queries := schema.QueryType().Fields()
	for _, name := range []string{
		"people", "person", "events", "event",
		"smallGroups", "smallGroup", "smallGroupMembers", "smallGroupLeaders",
		"eventRegistrations", "personNotes", "parentContacts", "eventNotes",
		"liveCheckIns", "comprehensiveEventSummary",
	} {
		assert.Contains(t, queries, name)
	}

	mutations := schema.MutationType().Fields()
	for _, name := range []string{
		"createPerson", "updatePerson", "deletePerson", "createEvent",
		"createSmallGroup", "registerForEvent",
		"addMemberToGroup", "addLeaderToGroup", "addPersonNote",
	} {
		assert.Contains(t, mutations, name)
	}
}

func TestQueryEvents(t *testing.T) {
	schema, eventRepo, _ := newTestSchema(t)
	eventRepo.CreateEvent(context.Background(), &event.Event{
		Name: "Friday Night", Type: "youth_night", Location: "Main Hall", IsActive: true,
	})
	eventRepo.CreateEvent(context.Background(), &event.Event{
		Name: "Summer Camp", Type: "camp", Location: "Lakeside", IsActive: true,
	})

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `{ events { id name location isActive } }`,
		Context:       context.Background(),
	})
	require.Empty(t, result.Errors)

	events := result.Data.(map[string]interface{})["events"].([]interface{})
	require.Len(t, events, 2)

	first := events[0].(map[string]interface{})
	assert.Equal(t, 1, first["id"])
	assert.Equal(t, "Friday Night", first["name"])
	assert.Equal(t, "Main Hall", first["location"])
	assert.Equal(t, true, first["isActive"])
}

func TestQueryEventNotFound(t *testing.T) {
	schema, _, _ := newTestSchema(t)

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `{ event(id: 99) { id name } }`,
		Context:       context.Background(),
	})
	require.True(t, result.HasErrors())
	assert.Contains(t, result.Errors[0].Message, "not found")
}

func TestMutationCreateSmallGroup(t *testing.T) {
	schema, _, groupRepo := newTestSchema(t)

	result := graphql.Do(graphql.Params{
		Schema:        schema,
		RequestString: `mutation { createSmallGroup(name: "Juniors") { id name } }`,
		Context:       context.Background(),
	})
	require.Empty(t, result.Errors)

	created := result.Data.(map[string]interface{})["createSmallGroup"].(map[string]interface{})
	assert.Equal(t, 1, created["id"])
	assert.Equal(t, "Juniors", created["name"])

	require.Len(t, groupRepo.groups, 1)
	assert.Equal(t, "Juniors", groupRepo.groups[0].Name)
}
