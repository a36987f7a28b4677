package smallgroup

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
	groups  map[uint]*SmallGroup
	members map[uint]*SmallGroupMember
	leaders map[uint]*SmallGroupLeader
	people  map[uint]string // person id -> last name
	nextID  uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		groups:  map[uint]*SmallGroup{},
		members: map[uint]*SmallGroupMember{},
		leaders: map[uint]*SmallGroupLeader{},
		people:  map[uint]string{},
		nextID:  1,
	}
}

func (f *fakeRepo) id() uint {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeRepo) ListGroups(context.Context) ([]SmallGroup, error) {
	var out []SmallGroup
	for _, g := range f.groups {
		out = append(out, *g)
	}
	return out, nil
}

func (f *fakeRepo) GetGroup(_ context.Context, id uint) (*SmallGroup, error) {
	g, ok := f.groups[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := *g
	return &out, nil
}

func (f *fakeRepo) CreateGroup(_ context.Context, g *SmallGroup) error {
	g.ID = f.id()
	stored := *g
	f.groups[g.ID] = &stored
	return nil
}

func (f *fakeRepo) UpdateGroup(_ context.Context, g *SmallGroup) error {
	stored := *g
	f.groups[g.ID] = &stored
	return nil
}

func (f *fakeRepo) DeleteGroup(_ context.Context, id uint) error {
	delete(f.groups, id)
	for mid, m := range f.members {
		if m.SmallGroupID == id {
			delete(f.members, mid)
		}
	}
	for lid, l := range f.leaders {
		if l.SmallGroupID == id {
			delete(f.leaders, lid)
		}
	}
	return nil
}

func (f *fakeRepo) AddMember(_ context.Context, m *SmallGroupMember) error {
	m.ID = f.id()
	stored := *m
	f.members[m.ID] = &stored
	return nil
}

func (f *fakeRepo) RemoveMember(_ context.Context, membershipID uint) error {
	delete(f.members, membershipID)
	return nil
}

func (f *fakeRepo) ListMembers(_ context.Context, groupID uint) ([]GroupPerson, error) {
	var out []GroupPerson
	for _, m := range f.members {
		if m.SmallGroupID == groupID {
			out = append(out, GroupPerson{
				MembershipID: m.ID,
				PersonID:     m.AttendeeID,
				LastName:     f.people[m.AttendeeID],
			})
		}
	}
	return out, nil
}

func (f *fakeRepo) MemberExists(_ context.Context, groupID, personID uint) (bool, error) {
	for _, m := range f.members {
		if m.SmallGroupID == groupID && m.AttendeeID == personID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) AddLeader(_ context.Context, l *SmallGroupLeader) error {
	l.ID = f.id()
	stored := *l
	f.leaders[l.ID] = &stored
	return nil
}

func (f *fakeRepo) RemoveLeader(_ context.Context, membershipID uint) error {
	delete(f.leaders, membershipID)
	return nil
}

func (f *fakeRepo) ListLeaders(_ context.Context, groupID uint) ([]GroupPerson, error) {
	var out []GroupPerson
	for _, l := range f.leaders {
		if l.SmallGroupID == groupID {
			out = append(out, GroupPerson{
				MembershipID: l.ID,
				PersonID:     l.LeaderID,
				LastName:     f.people[l.LeaderID],
			})
		}
	}
	return out, nil
}

func (f *fakeRepo) LeaderExists(_ context.Context, groupID, personID uint) (bool, error) {
	for _, l := range f.leaders {
		if l.SmallGroupID == groupID && l.LeaderID == personID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) PersonExists(_ context.Context, personID uint) (bool, error) {
	_, ok := f.people[personID]
	return ok, nil
}

func newTestService() (*Service, *fakeRepo) {
	repo := newFakeRepo()
	repo.people[10] = "Chen"
	repo.people[11] = "Avery"
	return NewService(repo, nopAudit{}), repo
}

func TestAddMemberDuplicate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	g, err := svc.CreateGroup(ctx, &CreateSmallGroupRequest{Name: "Freshmen Guys"}, "test")
	require.NoError(t, err)

	m, err := svc.AddMember(ctx, g.ID, 10, "test")
	require.NoError(t, err)
	assert.Equal(t, uint(10), m.AttendeeID, "membership stores the person id")

	_, err = svc.AddMember(ctx, g.ID, 10, "test")
	assert.ErrorIs(t, err, ErrAlreadyMember)
}

func TestAddMemberValidation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddMember(ctx, 99, 10, "test")
	assert.ErrorIs(t, err, ErrGroupNotFound)

	g, err := svc.CreateGroup(ctx, &CreateSmallGroupRequest{Name: "Sophomore Girls"}, "test")
	require.NoError(t, err)

	_, err = svc.AddMember(ctx, g.ID, 99, "test")
	assert.ErrorIs(t, err, ErrPersonNotFound)
}

// The same person can lead one group and attend another; duplicate
// checks are scoped per group and per role.
func TestMemberAndLeaderAreIndependent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	g, err := svc.CreateGroup(ctx, &CreateSmallGroupRequest{Name: "Juniors"}, "test")
	require.NoError(t, err)

	_, err = svc.AddMember(ctx, g.ID, 10, "test")
	require.NoError(t, err)
	_, err = svc.AddLeader(ctx, g.ID, 10, "test")
	require.NoError(t, err)

	_, err = svc.AddLeader(ctx, g.ID, 10, "test")
	assert.ErrorIs(t, err, ErrAlreadyLeader)
}

func TestRemoveMemberChecksGroupScope(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	g1, err := svc.CreateGroup(ctx, &CreateSmallGroupRequest{Name: "Group A"}, "test")
	require.NoError(t, err)
	g2, err := svc.CreateGroup(ctx, &CreateSmallGroupRequest{Name: "Group B"}, "test")
	require.NoError(t, err)

	m, err := svc.AddMember(ctx, g1.ID, 10, "test")
	require.NoError(t, err)

	// the membership belongs to g1, so removing it through g2 fails
	err = svc.RemoveMember(ctx, g2.ID, m.ID, "test")
	assert.ErrorIs(t, err, ErrMembershipNotFound)

	require.NoError(t, svc.RemoveMember(ctx, g1.ID, m.ID, "test"))

	members, err := svc.ListMembers(ctx, g1.ID)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestDeleteGroupCascadesMemberships(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	g, err := svc.CreateGroup(ctx, &CreateSmallGroupRequest{Name: "Seniors"}, "test")
	require.NoError(t, err)

	_, err = svc.AddMember(ctx, g.ID, 10, "test")
	require.NoError(t, err)
	_, err = svc.AddLeader(ctx, g.ID, 11, "test")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGroup(ctx, g.ID, "test"))

	assert.Empty(t, repo.members)
	assert.Empty(t, repo.leaders)

	_, err = svc.GetGroup(ctx, g.ID)
	assert.ErrorIs(t, err, ErrGroupNotFound)
}
