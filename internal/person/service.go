package person

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mkelley412/youth-group-backend/internal/auditlog"
)

var (
	ErrPersonNotFound = errors.New("person not found")
	ErrRoleNotFound   = errors.New("role record not found")
	// ErrDuplicateRole: the person already holds this role.
	ErrDuplicateRole = errors.New("person already holds this role")
	// ErrRoleInUse: a registration still references the role record.
	ErrRoleInUse = errors.New("role record is referenced by a registration")
	// ErrPersonHasRoles: role records must be detached before deletion.
	ErrPersonHasRoles = errors.New("person still holds role records")
)

type Service struct {
	Repo     Repository
	AuditSvc auditlog.Service
}

func NewService(r Repository, auditSvc auditlog.Service) *Service {
	return &Service{Repo: r, AuditSvc: auditSvc}
}

// ===========================
// 👤 Person CRUD

func (s *Service) ListPeople(ctx context.Context) ([]Person, error) {
	return s.Repo.ListPeople(ctx)
}

func (s *Service) GetPerson(ctx context.Context, id uint) (*Person, error) {
	p, err := s.Repo.GetPerson(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPersonNotFound
	}
	return p, err
}

func (s *Service) CreatePerson(ctx context.Context, req *CreatePersonRequest, ip string) (*Person, error) {
	p := &Person{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
	}

	if err := s.Repo.CreatePerson(ctx, p); err != nil {
		s.AuditSvc.LogAction(ctx, nil, nil, "PERSON_CREATED",
			map[string]interface{}{"firstName": req.FirstName, "lastName": req.LastName, "error": err.Error()},
			ip, "failure")
		return nil, err
	}

	s.AuditSvc.LogAction(ctx, &p.ID, nil, "PERSON_CREATED",
		map[string]interface{}{"firstName": p.FirstName, "lastName": p.LastName},
		ip, "success")
	return p, nil
}

// UpdatePerson applies a partial update; only non-nil fields change.
func (s *Service) UpdatePerson(ctx context.Context, id uint, req *UpdatePersonRequest, ip string) (*Person, error) {
	p, err := s.GetPerson(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		p.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		p.LastName = *req.LastName
	}
	if req.Age != nil {
		p.Age = req.Age
	}

	if err := s.Repo.UpdatePerson(ctx, p); err != nil {
		s.AuditSvc.LogAction(ctx, &id, nil, "PERSON_UPDATED",
			map[string]interface{}{"error": err.Error()}, ip, "failure")
		return nil, err
	}

	s.AuditSvc.LogAction(ctx, &id, nil, "PERSON_UPDATED",
		map[string]interface{}{"firstName": p.FirstName, "lastName": p.LastName},
		ip, "success")
	return p, nil
}

// DeletePerson removes a person. Role records must be detached first so the
// caller has to decide what happens to the person's registrations.
func (s *Service) DeletePerson(ctx context.Context, id uint, ip string) error {
	if _, err := s.GetPerson(ctx, id); err != nil {
		return err
	}

	roles, err := s.Repo.GetRoles(ctx, id)
	if err != nil {
		return err
	}
	if roles.Attendee != nil || roles.Leader != nil || roles.Volunteer != nil {
		s.AuditSvc.LogAction(ctx, &id, nil, "PERSON_DELETED",
			map[string]interface{}{"error": "person still holds role records"},
			ip, "failure")
		return ErrPersonHasRoles
	}

	if err := s.Repo.DeletePerson(ctx, id); err != nil {
		return err
	}

	s.AuditSvc.LogAction(ctx, &id, nil, "PERSON_DELETED", nil, ip, "success")
	return nil
}

// ===========================
// 🎭 Role management
//
// Roles are independent boolean-like memberships backed by the presence of
// a row in the corresponding table. No ordering constraints between them.

func (s *Service) GetRoles(ctx context.Context, personID uint) (*RoleSet, error) {
	if _, err := s.GetPerson(ctx, personID); err != nil {
		return nil, err
	}
	return s.Repo.GetRoles(ctx, personID)
}

func (s *Service) AddAttendeeRole(ctx context.Context, personID uint, guardian string, ip string) (*Attendee, error) {
	roles, err := s.GetRoles(ctx, personID)
	if err != nil {
		return nil, err
	}
	if roles.Attendee != nil {
		return nil, ErrDuplicateRole
	}

	a := &Attendee{PersonID: personID, Guardian: guardian}
	if err := s.Repo.CreateAttendee(ctx, a); err != nil {
		return nil, err
	}

	s.AuditSvc.LogAction(ctx, &personID, nil, "ROLE_ADDED",
		map[string]interface{}{"role": "attendee", "roleId": a.ID}, ip, "success")
	return a, nil
}

func (s *Service) AddLeaderRole(ctx context.Context, personID uint, ip string) (*Leader, error) {
	roles, err := s.GetRoles(ctx, personID)
	if err != nil {
		return nil, err
	}
	if roles.Leader != nil {
		return nil, ErrDuplicateRole
	}

	l := &Leader{PersonID: personID}
	if err := s.Repo.CreateLeader(ctx, l); err != nil {
		return nil, err
	}

	s.AuditSvc.LogAction(ctx, &personID, nil, "ROLE_ADDED",
		map[string]interface{}{"role": "leader", "roleId": l.ID}, ip, "success")
	return l, nil
}

func (s *Service) AddVolunteerRole(ctx context.Context, personID uint, ip string) (*Volunteer, error) {
	roles, err := s.GetRoles(ctx, personID)
	if err != nil {
		return nil, err
	}
	if roles.Volunteer != nil {
		return nil, ErrDuplicateRole
	}

	v := &Volunteer{PersonID: personID}
	if err := s.Repo.CreateVolunteer(ctx, v); err != nil {
		return nil, err
	}

	s.AuditSvc.LogAction(ctx, &personID, nil, "ROLE_ADDED",
		map[string]interface{}{"role": "volunteer", "roleId": v.ID}, ip, "success")
	return v, nil
}

// RemoveAttendeeRole deletes an attendee role record by its own id.
// Removal is blocked while a registration references it.
func (s *Service) RemoveAttendeeRole(ctx context.Context, roleID uint, ip string) error {
	a, err := s.Repo.GetAttendee(ctx, roleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRoleNotFound
	}
	if err != nil {
		return err
	}

	if err := s.checkRoleUnreferenced(ctx, "attendee", roleID); err != nil {
		return err
	}

	if err := s.Repo.DeleteAttendee(ctx, roleID); err != nil {
		return err
	}
	s.AuditSvc.LogAction(ctx, &a.PersonID, nil, "ROLE_REMOVED",
		map[string]interface{}{"role": "attendee", "roleId": roleID}, ip, "success")
	return nil
}

func (s *Service) RemoveLeaderRole(ctx context.Context, roleID uint, ip string) error {
	l, err := s.Repo.GetLeader(ctx, roleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRoleNotFound
	}
	if err != nil {
		return err
	}

	if err := s.checkRoleUnreferenced(ctx, "leader", roleID); err != nil {
		return err
	}

	if err := s.Repo.DeleteLeader(ctx, roleID); err != nil {
		return err
	}
	s.AuditSvc.LogAction(ctx, &l.PersonID, nil, "ROLE_REMOVED",
		map[string]interface{}{"role": "leader", "roleId": roleID}, ip, "success")
	return nil
}

func (s *Service) RemoveVolunteerRole(ctx context.Context, roleID uint, ip string) error {
	v, err := s.Repo.GetVolunteer(ctx, roleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRoleNotFound
	}
	if err != nil {
		return err
	}

	if err := s.checkRoleUnreferenced(ctx, "volunteer", roleID); err != nil {
		return err
	}

	if err := s.Repo.DeleteVolunteer(ctx, roleID); err != nil {
		return err
	}
	s.AuditSvc.LogAction(ctx, &v.PersonID, nil, "ROLE_REMOVED",
		map[string]interface{}{"role": "volunteer", "roleId": roleID}, ip, "success")
	return nil
}

func (s *Service) checkRoleUnreferenced(ctx context.Context, role string, roleID uint) error {
	count, err := s.Repo.CountRegistrationsForRole(ctx, role, roleID)
	if err != nil {
		return fmt.Errorf("checking registrations for %s role: %w", role, err)
	}
	if count > 0 {
		return ErrRoleInUse
	}
	return nil
}
