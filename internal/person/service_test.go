package person

import (
	"context"
	"fmt"
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
	people     map[uint]*Person
	attendees  map[uint]*Attendee
	leaders    map[uint]*Leader
	volunteers map[uint]*Volunteer
	// registration reference counts per role record, keyed "role/id"
	refs   map[string]int64
	nextID uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		people:     map[uint]*Person{},
		attendees:  map[uint]*Attendee{},
		leaders:    map[uint]*Leader{},
		volunteers: map[uint]*Volunteer{},
		refs:       map[string]int64{},
		nextID:     1,
	}
}

func (f *fakeRepo) id() uint {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeRepo) ListPeople(context.Context) ([]Person, error) {
	var out []Person
	for _, p := range f.people {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeRepo) GetPerson(_ context.Context, id uint) (*Person, error) {
	p, ok := f.people[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *p
	return &out, nil
}

func (f *fakeRepo) CreatePerson(_ context.Context, p *Person) error {
	p.ID = f.id()
	stored := *p
	f.people[p.ID] = &stored
	return nil
}

func (f *fakeRepo) UpdatePerson(_ context.Context, p *Person) error {
	stored := *p
	f.people[p.ID] = &stored
	return nil
}

func (f *fakeRepo) DeletePerson(_ context.Context, id uint) error {
	delete(f.people, id)
	return nil
}

func (f *fakeRepo) GetRoles(_ context.Context, personID uint) (*RoleSet, error) {
	set := &RoleSet{PersonID: personID}
	for _, a := range f.attendees {
		if a.PersonID == personID {
			out := *a
			set.Attendee = &out
		}
	}
	for _, l := range f.leaders {
		if l.PersonID == personID {
			out := *l
			set.Leader = &out
		}
	}
	for _, v := range f.volunteers {
		if v.PersonID == personID {
			out := *v
			set.Volunteer = &out
		}
	}
	return set, nil
}

func (f *fakeRepo) CreateAttendee(_ context.Context, a *Attendee) error {
	a.ID = f.id()
	stored := *a
	f.attendees[a.ID] = &stored
	return nil
}

func (f *fakeRepo) GetAttendee(_ context.Context, id uint) (*Attendee, error) {
	a, ok := f.attendees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *a
	return &out, nil
}

func (f *fakeRepo) DeleteAttendee(_ context.Context, id uint) error {
	delete(f.attendees, id)
	return nil
}

func (f *fakeRepo) CreateLeader(_ context.Context, l *Leader) error {
	l.ID = f.id()
	stored := *l
	f.leaders[l.ID] = &stored
	return nil
}

func (f *fakeRepo) GetLeader(_ context.Context, id uint) (*Leader, error) {
	l, ok := f.leaders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *l
	return &out, nil
}

func (f *fakeRepo) DeleteLeader(_ context.Context, id uint) error {
	delete(f.leaders, id)
	return nil
}

func (f *fakeRepo) CreateVolunteer(_ context.Context, v *Volunteer) error {
	v.ID = f.id()
	stored := *v
	f.volunteers[v.ID] = &stored
	return nil
}

func (f *fakeRepo) GetVolunteer(_ context.Context, id uint) (*Volunteer, error) {
	v, ok := f.volunteers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *v
	return &out, nil
}

func (f *fakeRepo) DeleteVolunteer(_ context.Context, id uint) error {
	delete(f.volunteers, id)
	return nil
}

func refKey(role string, roleID uint) string {
	return fmt.Sprintf("%s/%d", role, roleID)
}

func (f *fakeRepo) CountRegistrationsForRole(_ context.Context, role string, roleID uint) (int64, error) {
	return f.refs[refKey(role, roleID)], nil
}

func seedPerson(t *testing.T, svc *Service) *Person {
	t.Helper()
	p, err := svc.CreatePerson(context.Background(), &CreatePersonRequest{
		FirstName: "Jordan",
		LastName:  "Reyes",
	}, "test")
	require.NoError(t, err)
	return p
}

func TestAddRolesAreOrthogonal(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopAudit{})
	ctx := context.Background()
	p := seedPerson(t, svc)

	_, err := svc.AddAttendeeRole(ctx, p.ID, "Pat Reyes", "test")
	require.NoError(t, err)
	_, err = svc.AddLeaderRole(ctx, p.ID, "test")
	require.NoError(t, err)
	_, err = svc.AddVolunteerRole(ctx, p.ID, "test")
	require.NoError(t, err)

	roles, err := svc.GetRoles(ctx, p.ID)
	require.NoError(t, err)
	assert.NotNil(t, roles.Attendee)
	assert.NotNil(t, roles.Leader)
	assert.NotNil(t, roles.Volunteer)
	assert.Equal(t, "Pat Reyes", roles.Attendee.Guardian)
}

func TestAddDuplicateRole(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopAudit{})
	ctx := context.Background()
	p := seedPerson(t, svc)

	_, err := svc.AddLeaderRole(ctx, p.ID, "test")
	require.NoError(t, err)

	_, err = svc.AddLeaderRole(ctx, p.ID, "test")
	assert.ErrorIs(t, err, ErrDuplicateRole)
}

func TestAddRoleUnknownPerson(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopAudit{})

	_, err := svc.AddAttendeeRole(context.Background(), 42, "Pat Reyes", "test")
	assert.ErrorIs(t, err, ErrPersonNotFound)
}

func TestRemoveRoleBlockedByRegistration(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopAudit{})
	ctx := context.Background()
	p := seedPerson(t, svc)

	a, err := svc.AddAttendeeRole(ctx, p.ID, "Pat Reyes", "test")
	require.NoError(t, err)

	repo.refs[refKey("attendee", a.ID)] = 1
	err = svc.RemoveAttendeeRole(ctx, a.ID, "test")
	assert.ErrorIs(t, err, ErrRoleInUse)

	delete(repo.refs, refKey("attendee", a.ID))
	require.NoError(t, svc.RemoveAttendeeRole(ctx, a.ID, "test"))

	err = svc.RemoveAttendeeRole(ctx, a.ID, "test")
	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func TestDeletePersonRequiresDetachedRoles(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopAudit{})
	ctx := context.Background()
	p := seedPerson(t, svc)

	v, err := svc.AddVolunteerRole(ctx, p.ID, "test")
	require.NoError(t, err)

	err = svc.DeletePerson(ctx, p.ID, "test")
	assert.ErrorIs(t, err, ErrPersonHasRoles)

	require.NoError(t, svc.RemoveVolunteerRole(ctx, v.ID, "test"))
	require.NoError(t, svc.DeletePerson(ctx, p.ID, "test"))

	_, err = svc.GetPerson(ctx, p.ID)
	assert.ErrorIs(t, err, ErrPersonNotFound)
}

func TestUpdatePersonPartial(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nopAudit{})
	ctx := context.Background()
	p := seedPerson(t, svc)

	last := "Reyes-Ortiz"
	updated, err := svc.UpdatePerson(ctx, p.ID, &UpdatePersonRequest{LastName: &last}, "test")
	require.NoError(t, err)

	assert.Equal(t, "Jordan", updated.FirstName)
	assert.Equal(t, "Reyes-Ortiz", updated.LastName)
	assert.Nil(t, updated.Age)
}
