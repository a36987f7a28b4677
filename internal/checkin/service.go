package checkin

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/mkelley412/youth-group-backend/internal/auditlog"
	"github.com/mkelley412/youth-group-backend/middleware"
	"github.com/mkelley412/youth-group-backend/utils"
)

var (
	ErrStoreUnavailable = errors.New("live check-in store is not available")
	ErrEventNotFound    = errors.New("event not found")
	ErrPersonNotFound   = errors.New("person not found")
)

type Service struct {
	Store    Store
	Dir      Directory
	AuditSvc auditlog.Service
}

func NewService(store Store, dir Directory, auditSvc auditlog.Service) *Service {
	return &Service{Store: store, Dir: dir, AuditSvc: auditSvc}
}

func (s *Service) validate(ctx context.Context, eventID uint, studentID *uint) error {
	if !s.Store.Enabled() {
		return ErrStoreUnavailable
	}
	if ok, err := s.Dir.EventExists(ctx, eventID); err != nil {
		return err
	} else if !ok {
		return ErrEventNotFound
	}
	if studentID != nil {
		if ok, err := s.Dir.PersonExists(ctx, *studentID); err != nil {
			return err
		} else if !ok {
			return ErrPersonNotFound
		}
	}
	return nil
}

// ===========================
// ✅ Check In
//
// Idempotent: a second check-in for the same student leaves the set
// and the original timestamp unchanged, and reports added=false.
func (s *Service) CheckIn(ctx context.Context, eventID, studentID uint, ip string) (bool, error) {
	if err := s.validate(ctx, eventID, &studentID); err != nil {
		return false, err
	}

	now := time.Now().UTC()
	added, err := s.Store.CheckIn(ctx, eventID, studentID, now)
	if err != nil {
		return false, err
	}
	if !added {
		return false, nil
	}

	middleware.CheckinsTotal.WithLabelValues("checkin").Inc()
	utils.PublishCheckinEvent(ctx, utils.CheckinEvent{
		EventID:   eventID,
		StudentID: studentID,
		Action:    "checkin",
		Timestamp: now,
	})
	s.AuditSvc.LogAction(ctx, &studentID, &eventID, "STUDENT_CHECKED_IN", nil, ip, "success")
	return true, nil
}

// ===========================
// ↩️ Check Out
func (s *Service) CheckOut(ctx context.Context, eventID, studentID uint, ip string) (bool, error) {
	if err := s.validate(ctx, eventID, &studentID); err != nil {
		return false, err
	}

	removed, err := s.Store.CheckOut(ctx, eventID, studentID)
	if err != nil {
		return false, err
	}
	if !removed {
		return false, nil
	}

	middleware.CheckinsTotal.WithLabelValues("checkout").Inc()
	utils.PublishCheckinEvent(ctx, utils.CheckinEvent{
		EventID:   eventID,
		StudentID: studentID,
		Action:    "checkout",
		Timestamp: time.Now().UTC(),
	})
	s.AuditSvc.LogAction(ctx, &studentID, &eventID, "STUDENT_CHECKED_OUT", nil, ip, "success")
	return true, nil
}

// ===========================
// 📋 Live Roster
func (s *Service) GetLiveCheckIns(ctx context.Context, eventID uint) (*LiveCheckIns, error) {
	if err := s.validate(ctx, eventID, nil); err != nil {
		return nil, err
	}

	members, err := s.Store.Members(ctx, eventID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(members))
	for id := range members {
		ids = append(ids, id)
	}
	names, err := s.Dir.GetNames(ctx, ids)
	if err != nil {
		return nil, err
	}

	students := make([]CheckInEntry, 0, len(members))
	for id, at := range members {
		entry := CheckInEntry{StudentID: id, CheckInTime: at}
		if name, ok := names[id]; ok {
			entry.FirstName = name.FirstName
			entry.LastName = name.LastName
		}
		students = append(students, entry)
	}
	sort.Slice(students, func(i, j int) bool {
		if students[i].LastName != students[j].LastName {
			return students[i].LastName < students[j].LastName
		}
		return students[i].FirstName < students[j].FirstName
	})

	return &LiveCheckIns{
		EventID:        eventID,
		CheckedInCount: int64(len(students)),
		Students:       students,
		Source:         "redis",
	}, nil
}

// ===========================
// 🗑 Reset
//
// Clears an event's check-in set outright, typically after the event
// ends. There is no TTL; reset is the only way entries go away.
func (s *Service) Reset(ctx context.Context, eventID uint, ip string) error {
	if err := s.validate(ctx, eventID, nil); err != nil {
		return err
	}
	if err := s.Store.Reset(ctx, eventID); err != nil {
		return err
	}
	s.AuditSvc.LogAction(ctx, nil, &eventID, "CHECKINS_RESET", nil, ip, "success")
	return nil
}
