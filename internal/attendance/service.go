package attendance

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/mkelley412/youth-group-backend/internal/auditlog"
)

var (
	ErrPersonNotFound     = errors.New("person not found")
	ErrEventNotFound      = errors.New("event not found")
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrAlreadyRecorded    = errors.New("attendance already recorded for this person and event")
)

type Service struct {
	Repo     Repository
	AuditSvc auditlog.Service
}

func NewService(r Repository, auditSvc auditlog.Service) *Service {
	return &Service{Repo: r, AuditSvc: auditSvc}
}

// RecordAttendance writes one attendance row per person per event.
// The duplicate check makes consumer redelivery harmless.
func (s *Service) RecordAttendance(ctx context.Context, personID, eventID uint, ip string) (*AttendanceRecord, error) {
	if ok, err := s.Repo.PersonExists(ctx, personID); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrPersonNotFound
	}
	if ok, err := s.Repo.EventExists(ctx, eventID); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrEventNotFound
	}
	if exists, err := s.Repo.Exists(ctx, personID, eventID); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrAlreadyRecorded
	}

	rec := &AttendanceRecord{PersonID: personID, EventID: eventID}
	if err := s.Repo.Create(ctx, rec); err != nil {
		return nil, err
	}

	s.AuditSvc.LogAction(ctx, &personID, &eventID, "ATTENDANCE_RECORDED",
		map[string]interface{}{"attendanceId": rec.ID}, ip, "success")
	return rec, nil
}

func (s *Service) Delete(ctx context.Context, id uint, ip string) error {
	rec, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrAttendanceNotFound
	}
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.AuditSvc.LogAction(ctx, &rec.PersonID, &rec.EventID, "ATTENDANCE_DELETED",
		map[string]interface{}{"attendanceId": id}, ip, "success")
	return nil
}

func (s *Service) ListByEvent(ctx context.Context, eventID uint) ([]AttendanceWithName, error) {
	if ok, err := s.Repo.EventExists(ctx, eventID); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrEventNotFound
	}
	return s.Repo.ListByEvent(ctx, eventID)
}

func (s *Service) ListByPerson(ctx context.Context, personID uint) ([]AttendanceRecord, error) {
	if ok, err := s.Repo.PersonExists(ctx, personID); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrPersonNotFound
	}
	return s.Repo.ListByPerson(ctx, personID)
}
