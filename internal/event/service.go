package event

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mkelley412/youth-group-backend/internal/auditlog"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrBadDateTime   = errors.New("invalid dateTime format, use RFC 3339")
)

// Service wraps business logic for youth group events
type Service struct {
	Repo     Repository
	AuditSvc auditlog.Service
}

func NewService(r Repository, auditSvc auditlog.Service) *Service {
	return &Service{Repo: r, AuditSvc: auditSvc}
}

// ===========================
// 🎯 Create Event
func (s *Service) CreateEvent(ctx context.Context, req *CreateEventRequest, ip string) (*Event, error) {
	dateTime, err := time.Parse(time.RFC3339, req.DateTime)
	if err != nil {
		s.AuditSvc.LogAction(ctx, nil, nil, "EVENT_CREATED",
			map[string]interface{}{"name": req.Name, "error": "invalid dateTime", "dateTime": req.DateTime},
			ip, "failure")
		return nil, ErrBadDateTime
	}

	e := &Event{
		Name:     req.Name,
		Type:     req.Type,
		DateTime: dateTime,
		Location: req.Location,
		Notes:    req.Notes,
		IsActive: true,
	}

	if err := s.Repo.CreateEvent(ctx, e); err != nil {
		s.AuditSvc.LogAction(ctx, nil, nil, "EVENT_CREATED",
			map[string]interface{}{"name": req.Name, "error": err.Error()}, ip, "failure")
		return nil, err
	}

	s.AuditSvc.LogAction(ctx, nil, &e.ID, "EVENT_CREATED",
		map[string]interface{}{"name": e.Name, "type": e.Type, "dateTime": e.DateTime.Format(time.RFC3339)},
		ip, "success")
	return e, nil
}

// ===========================
// 🔍 Get Event by ID
func (s *Service) GetEventByID(ctx context.Context, id uint) (*Event, error) {
	e, err := s.Repo.GetEventByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEventNotFound
	}
	return e, err
}

// ===========================
// 📄 List Events with pagination & search
func (s *Service) ListEvents(ctx context.Context, limit, offset int, search string) ([]Event, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.Repo.ListEvents(ctx, limit, offset, search)
}

// ===========================
// 📆 Upcoming Events
func (s *Service) GetUpcomingEvents(ctx context.Context) ([]Event, error) {
	return s.Repo.GetUpcomingEvents(ctx)
}

// ===========================
// 🛠 Update Event (partial; IsActive=false deactivates instead of deleting)
func (s *Service) UpdateEvent(ctx context.Context, id uint, req *UpdateEventRequest, ip string) (*Event, error) {
	e, err := s.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DateTime != nil {
		dateTime, err := time.Parse(time.RFC3339, *req.DateTime)
		if err != nil {
			return nil, ErrBadDateTime
		}
		e.DateTime = dateTime
	}
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Type != nil {
		e.Type = *req.Type
	}
	if req.Location != nil {
		e.Location = *req.Location
	}
	if req.Notes != nil {
		e.Notes = req.Notes
	}
	if req.IsActive != nil {
		e.IsActive = *req.IsActive
	}

	if err := s.Repo.UpdateEvent(ctx, e); err != nil {
		s.AuditSvc.LogAction(ctx, nil, &id, "EVENT_UPDATED",
			map[string]interface{}{"error": err.Error()}, ip, "failure")
		return nil, err
	}

	s.AuditSvc.LogAction(ctx, nil, &id, "EVENT_UPDATED",
		map[string]interface{}{"name": e.Name, "isActive": e.IsActive}, ip, "success")
	return e, nil
}

// ===========================
// 📊 Dashboard Stats
func (s *Service) GetEventStats(ctx context.Context) (*EventStatsResponse, error) {
	return s.Repo.GetEventStats(ctx)
}
