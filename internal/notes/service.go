package notes

import (
	"context"
	"errors"
	"time"

	"github.com/mkelley412/youth-group-backend/internal/auditlog"
)

var (
	ErrUnavailable       = errors.New("document store is not available")
	ErrEventTypeNotFound = errors.New("event type not found")
)

type Service struct {
	Store    Store
	AuditSvc auditlog.Service
}

func NewService(store Store, auditSvc auditlog.Service) *Service {
	return &Service{Store: store, AuditSvc: auditSvc}
}

func (s *Service) ensureEnabled() error {
	if !s.Store.Enabled() {
		return ErrUnavailable
	}
	return nil
}

// ===========================
// 🏷 Event Types

func (s *Service) UpsertEventType(ctx context.Context, req *UpsertEventTypeRequest, ip string) (*EventType, error) {
	if err := s.ensureEnabled(); err != nil {
		return nil, err
	}
	et := &EventType{
		EventType:       req.EventType,
		Description:     req.Description,
		RequiredItems:   req.RequiredItems,
		DurationMinutes: req.DurationMinutes,
		ExtraNotes:      req.ExtraNotes,
	}
	if err := s.Store.UpsertEventType(ctx, et); err != nil {
		return nil, err
	}
	s.AuditSvc.LogAction(ctx, nil, nil, "EVENT_TYPE_SAVED",
		map[string]interface{}{"eventType": et.EventType}, ip, "success")
	return et, nil
}

func (s *Service) GetEventType(ctx context.Context, name string) (*EventType, error) {
	if err := s.ensureEnabled(); err != nil {
		return nil, err
	}
	et, err := s.Store.GetEventType(ctx, name)
	if err != nil {
		return nil, err
	}
	if et == nil {
		return nil, ErrEventTypeNotFound
	}
	return et, nil
}

func (s *Service) ListEventTypes(ctx context.Context) ([]EventType, error) {
	if err := s.ensureEnabled(); err != nil {
		return nil, err
	}
	return s.Store.ListEventTypes(ctx)
}

func (s *Service) DeleteEventType(ctx context.Context, name string, ip string) error {
	if err := s.ensureEnabled(); err != nil {
		return err
	}
	if err := s.Store.DeleteEventType(ctx, name); err != nil {
		return err
	}
	s.AuditSvc.LogAction(ctx, nil, nil, "EVENT_TYPE_DELETED",
		map[string]interface{}{"eventType": name}, ip, "success")
	return nil
}

// ===========================
// 📝 Person Notes

func (s *Service) AddPersonNote(ctx context.Context, personID uint, req *CreatePersonNoteRequest, ip string) (*PersonNote, error) {
	if err := s.ensureEnabled(); err != nil {
		return nil, err
	}
	n := &PersonNote{
		PersonID:  personID,
		Text:      req.Text,
		Category:  req.Category,
		CreatedBy: req.CreatedBy,
		Created:   time.Now().UTC(),
	}
	if err := s.Store.AddPersonNote(ctx, n); err != nil {
		return nil, err
	}
	s.AuditSvc.LogAction(ctx, &personID, nil, "PERSON_NOTE_ADDED",
		map[string]interface{}{"noteId": n.ID}, ip, "success")
	return n, nil
}

func (s *Service) ListPersonNotes(ctx context.Context, personID uint) ([]PersonNote, error) {
	if err := s.ensureEnabled(); err != nil {
		return nil, err
	}
	return s.Store.ListPersonNotes(ctx, personID)
}

func (s *Service) DeletePersonNote(ctx context.Context, id string, ip string) error {
	if err := s.ensureEnabled(); err != nil {
		return err
	}
	if err := s.Store.DeletePersonNote(ctx, id); err != nil {
		return err
	}
	s.AuditSvc.LogAction(ctx, nil, nil, "PERSON_NOTE_DELETED",
		map[string]interface{}{"noteId": id}, ip, "success")
	return nil
}

// ===========================
// ☎️ Parent Contacts

func (s *Service) AddParentContact(ctx context.Context, personID uint, req *CreateParentContactRequest, ip string) (*ParentContact, error) {
	if err := s.ensureEnabled(); err != nil {
		return nil, err
	}
	pc := &ParentContact{
		PersonID:  personID,
		Summary:   req.Summary,
		Method:    req.Method,
		Date:      req.Date,
		CreatedBy: req.CreatedBy,
		Created:   time.Now().UTC(),
	}
	if err := s.Store.AddParentContact(ctx, pc); err != nil {
		return nil, err
	}
	s.AuditSvc.LogAction(ctx, &personID, nil, "PARENT_CONTACT_ADDED",
		map[string]interface{}{"contactId": pc.ID}, ip, "success")
	return pc, nil
}

func (s *Service) ListParentContacts(ctx context.Context, personID uint) ([]ParentContact, error) {
	if err := s.ensureEnabled(); err != nil {
		return nil, err
	}
	return s.Store.ListParentContacts(ctx, personID)
}

func (s *Service) DeleteParentContact(ctx context.Context, id string, ip string) error {
	if err := s.ensureEnabled(); err != nil {
		return err
	}
	if err := s.Store.DeleteParentContact(ctx, id); err != nil {
		return err
	}
	s.AuditSvc.LogAction(ctx, nil, nil, "PARENT_CONTACT_DELETED",
		map[string]interface{}{"contactId": id}, ip, "success")
	return nil
}

// ===========================
// 📋 Event Notes

func (s *Service) AddEventNote(ctx context.Context, eventID uint, req *CreateEventNoteRequest, ip string) (*EventNote, error) {
	if err := s.ensureEnabled(); err != nil {
		return nil, err
	}
	n := &EventNote{
		EventID:     eventID,
		Notes:       req.Notes,
		Concerns:    req.Concerns,
		StudentWins: req.StudentWins,
		CreatedBy:   req.CreatedBy,
		Created:     time.Now().UTC(),
	}
	if err := s.Store.AddEventNote(ctx, n); err != nil {
		return nil, err
	}
	s.AuditSvc.LogAction(ctx, nil, &eventID, "EVENT_NOTE_ADDED",
		map[string]interface{}{"noteId": n.ID}, ip, "success")
	return n, nil
}

func (s *Service) ListEventNotes(ctx context.Context, eventID uint) ([]EventNote, error) {
	if err := s.ensureEnabled(); err != nil {
		return nil, err
	}
	return s.Store.ListEventNotes(ctx, eventID)
}

func (s *Service) DeleteEventNote(ctx context.Context, id string, ip string) error {
	if err := s.ensureEnabled(); err != nil {
		return err
	}
	if err := s.Store.DeleteEventNote(ctx, id); err != nil {
		return err
	}
	s.AuditSvc.LogAction(ctx, nil, nil, "EVENT_NOTE_DELETED",
		map[string]interface{}{"noteId": id}, ip, "success")
	return nil
}
