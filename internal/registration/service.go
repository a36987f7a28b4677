package registration

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mkelley412/youth-group-backend/internal/auditlog"
)

var (
	ErrMissingRole          = errors.New("at least one of attendeeId, leaderId, or volunteerId is required")
	ErrEventNotFound        = errors.New("event not found")
	ErrRoleNotFound         = errors.New("referenced role record not found")
	ErrRegistrationNotFound = errors.New("registration not found")
)

type Service struct {
	Repo     Repository
	AuditSvc auditlog.Service
}

func NewService(r Repository, auditSvc auditlog.Service) *Service {
	return &Service{Repo: r, AuditSvc: auditSvc}
}

// ===========================
// 🎯 Register for an event
//
// A person may register the same event more than once under different
// roles; uniqueness is deliberately not enforced.
func (s *Service) Register(ctx context.Context, req *CreateRegistrationRequest, ip string) (*Registration, error) {
	if req.AttendeeID == nil && req.LeaderID == nil && req.VolunteerID == nil {
		s.AuditSvc.LogAction(ctx, nil, &req.EventID, "EVENT_REGISTRATION",
			map[string]interface{}{"error": "no role supplied"}, ip, "failure")
		return nil, ErrMissingRole
	}

	if ok, err := s.Repo.EventExists(ctx, req.EventID); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrEventNotFound
	}

	for role, roleID := range map[string]*uint{
		"attendee":  req.AttendeeID,
		"leader":    req.LeaderID,
		"volunteer": req.VolunteerID,
	} {
		if roleID == nil {
			continue
		}
		if ok, err := s.Repo.RoleExists(ctx, role, *roleID); err != nil {
			return nil, err
		} else if !ok {
			return nil, ErrRoleNotFound
		}
	}

	reg := &Registration{
		EventID:          req.EventID,
		AttendeeID:       req.AttendeeID,
		LeaderID:         req.LeaderID,
		VolunteerID:      req.VolunteerID,
		EmergencyContact: req.EmergencyContact,
	}
	if err := s.Repo.Create(ctx, reg); err != nil {
		return nil, err
	}

	s.AuditSvc.LogAction(ctx, nil, &req.EventID, "EVENT_REGISTRATION",
		map[string]interface{}{"registrationId": reg.ID}, ip, "success")
	return reg, nil
}

func (s *Service) GetByID(ctx context.Context, id uint) (*Registration, error) {
	reg, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRegistrationNotFound
	}
	return reg, err
}

func (s *Service) Delete(ctx context.Context, id uint, ip string) error {
	reg, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.AuditSvc.LogAction(ctx, nil, &reg.EventID, "REGISTRATION_DELETED",
		map[string]interface{}{"registrationId": id}, ip, "success")
	return nil
}

func (s *Service) ListByEvent(ctx context.Context, eventID uint) ([]RegistrationWithName, error) {
	if ok, err := s.Repo.EventExists(ctx, eventID); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrEventNotFound
	}
	return s.Repo.ListByEvent(ctx, eventID)
}

func (s *Service) CountsByEvent(ctx context.Context, eventID uint) (*RegistrationCounts, error) {
	if ok, err := s.Repo.EventExists(ctx, eventID); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrEventNotFound
	}
	return s.Repo.CountsByEvent(ctx, eventID)
}
