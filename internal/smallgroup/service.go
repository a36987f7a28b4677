package smallgroup

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mkelley412/youth-group-backend/internal/auditlog"
)

var (
	ErrGroupNotFound      = errors.New("small group not found")
	ErrPersonNotFound     = errors.New("person not found")
	ErrMembershipNotFound = errors.New("group membership not found")
	ErrAlreadyMember      = errors.New("person is already a member of this group")
	ErrAlreadyLeader      = errors.New("person is already a leader of this group")
)

type Service struct {
	Repo     Repository
	AuditSvc auditlog.Service
}

func NewService(r Repository, auditSvc auditlog.Service) *Service {
	return &Service{Repo: r, AuditSvc: auditSvc}
}

// ===========================
// 👥 Groups

func (s *Service) ListGroups(ctx context.Context) ([]SmallGroup, error) {
	return s.Repo.ListGroups(ctx)
}

func (s *Service) GetGroup(ctx context.Context, id uint) (*SmallGroup, error) {
	g, err := s.Repo.GetGroup(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrGroupNotFound
	}
	return g, err
}

func (s *Service) CreateGroup(ctx context.Context, req *CreateSmallGroupRequest, ip string) (*SmallGroup, error) {
	g := &SmallGroup{Name: req.Name}
	if err := s.Repo.CreateGroup(ctx, g); err != nil {
		return nil, err
	}
	s.AuditSvc.LogAction(ctx, nil, nil, "SMALL_GROUP_CREATED",
		map[string]interface{}{"smallGroupId": g.ID, "name": g.Name}, ip, "success")
	return g, nil
}

func (s *Service) UpdateGroup(ctx context.Context, id uint, req *UpdateSmallGroupRequest, ip string) (*SmallGroup, error) {
	g, err := s.GetGroup(ctx, id)
	if err != nil {
		return nil, err
	}
	g.Name = req.Name
	if err := s.Repo.UpdateGroup(ctx, g); err != nil {
		return nil, err
	}
	s.AuditSvc.LogAction(ctx, nil, nil, "SMALL_GROUP_UPDATED",
		map[string]interface{}{"smallGroupId": g.ID, "name": g.Name}, ip, "success")
	return g, nil
}

func (s *Service) DeleteGroup(ctx context.Context, id uint, ip string) error {
	if _, err := s.GetGroup(ctx, id); err != nil {
		return err
	}
	if err := s.Repo.DeleteGroup(ctx, id); err != nil {
		return err
	}
	s.AuditSvc.LogAction(ctx, nil, nil, "SMALL_GROUP_DELETED",
		map[string]interface{}{"smallGroupId": id}, ip, "success")
	return nil
}

// ===========================
// 🧑‍🎓 Members

func (s *Service) ListMembers(ctx context.Context, groupID uint) ([]GroupPerson, error) {
	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.Repo.ListMembers(ctx, groupID)
}

func (s *Service) AddMember(ctx context.Context, groupID, personID uint, ip string) (*SmallGroupMember, error) {
	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	if ok, err := s.Repo.PersonExists(ctx, personID); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrPersonNotFound
	}
	if exists, err := s.Repo.MemberExists(ctx, groupID, personID); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrAlreadyMember
	}

	m := &SmallGroupMember{SmallGroupID: groupID, AttendeeID: personID}
	if err := s.Repo.AddMember(ctx, m); err != nil {
		return nil, err
	}

	s.AuditSvc.LogAction(ctx, &personID, nil, "GROUP_MEMBER_ADDED",
		map[string]interface{}{"smallGroupId": groupID}, ip, "success")
	return m, nil
}

func (s *Service) RemoveMember(ctx context.Context, groupID, membershipID uint, ip string) error {
	members, err := s.ListMembers(ctx, groupID)
	if err != nil {
		return err
	}
	found := false
	for _, m := range members {
		if m.MembershipID == membershipID {
			found = true
			break
		}
	}
	if !found {
		return ErrMembershipNotFound
	}
	if err := s.Repo.RemoveMember(ctx, membershipID); err != nil {
		return err
	}
	s.AuditSvc.LogAction(ctx, nil, nil, "GROUP_MEMBER_REMOVED",
		map[string]interface{}{"smallGroupId": groupID, "membershipId": membershipID}, ip, "success")
	return nil
}

// ===========================
// 🧑‍🏫 Leaders

func (s *Service) ListLeaders(ctx context.Context, groupID uint) ([]GroupPerson, error) {
	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.Repo.ListLeaders(ctx, groupID)
}

func (s *Service) AddLeader(ctx context.Context, groupID, personID uint, ip string) (*SmallGroupLeader, error) {
	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	if ok, err := s.Repo.PersonExists(ctx, personID); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrPersonNotFound
	}
	if exists, err := s.Repo.LeaderExists(ctx, groupID, personID); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrAlreadyLeader
	}

	l := &SmallGroupLeader{SmallGroupID: groupID, LeaderID: personID}
	if err := s.Repo.AddLeader(ctx, l); err != nil {
		return nil, err
	}

	s.AuditSvc.LogAction(ctx, &personID, nil, "GROUP_LEADER_ADDED",
		map[string]interface{}{"smallGroupId": groupID}, ip, "success")
	return l, nil
}

func (s *Service) RemoveLeader(ctx context.Context, groupID, membershipID uint, ip string) error {
	leaders, err := s.ListLeaders(ctx, groupID)
	if err != nil {
		return err
	}
	found := false
	for _, l := range leaders {
		if l.MembershipID == membershipID {
			found = true
			break
		}
	}
	if !found {
		return ErrMembershipNotFound
	}
	if err := s.Repo.RemoveLeader(ctx, membershipID); err != nil {
		return err
	}
	s.AuditSvc.LogAction(ctx, nil, nil, "GROUP_LEADER_REMOVED",
		map[string]interface{}{"smallGroupId": groupID, "membershipId": membershipID}, ip, "success")
	return nil
}
