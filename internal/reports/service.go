package reports

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrPersonNotFound = errors.New("person not found")
)

type Service struct {
	db       *gorm.DB
	exporter Exporter
}

func NewService(db *gorm.DB, exporter Exporter) *Service {
	return &Service{db: db, exporter: exporter}
}

// ExportEventRoster renders the registration roster for an event.
func (s *Service) ExportEventRoster(ctx context.Context, eventID uint, format string) ([]byte, string, string, error) {
	var eventName string
	err := s.db.WithContext(ctx).Table("events").
		Select("name").
		Where("id = ?", eventID).
		Scan(&eventName).Error
	if err != nil {
		return nil, "", "", err
	}
	if eventName == "" {
		return nil, "", "", ErrEventNotFound
	}

	var roster []EventRosterRow
	err = s.db.WithContext(ctx).Table("registrations").
		Select(`registrations.id AS registration_id, registrations.emergency_contact,
			people.first_name, people.last_name,
			CASE
				WHEN registrations.attendee_id IS NOT NULL THEN 'attendee'
				WHEN registrations.leader_id IS NOT NULL THEN 'leader'
				ELSE 'volunteer'
			END AS role`).
		Joins("LEFT JOIN attendees ON attendees.id = registrations.attendee_id").
		Joins("LEFT JOIN leaders ON leaders.id = registrations.leader_id").
		Joins("LEFT JOIN volunteers ON volunteers.id = registrations.volunteer_id").
		Joins("JOIN people ON people.id = COALESCE(attendees.person_id, leaders.person_id, volunteers.person_id)").
		Where("registrations.event_id = ?", eventID).
		Order("people.last_name, people.first_name").
		Scan(&roster).Error
	if err != nil {
		return nil, "", "", err
	}

	return s.exporter.Export(ReportTypeEventRoster, format, ReportData{
		EventName: eventName,
		Roster:    roster,
	})
}

// ExportAttendanceHistory renders every event a person attended.
func (s *Service) ExportAttendanceHistory(ctx context.Context, personID uint, format string) ([]byte, string, string, error) {
	var names []struct {
		FirstName string
		LastName  string
	}
	err := s.db.WithContext(ctx).Table("people").
		Select("first_name, last_name").
		Where("id = ?", personID).
		Scan(&names).Error
	if err != nil {
		return nil, "", "", err
	}
	if len(names) == 0 {
		return nil, "", "", ErrPersonNotFound
	}

	var history []AttendanceHistoryRow
	err = s.db.WithContext(ctx).Table("attendance_records").
		Select("events.id AS event_id, events.name AS event_name, events.type AS event_type, events.date_time, events.location").
		Joins("JOIN events ON events.id = attendance_records.event_id").
		Where("attendance_records.person_id = ?", personID).
		Order("events.date_time DESC").
		Scan(&history).Error
	if err != nil {
		return nil, "", "", err
	}

	return s.exporter.Export(ReportTypeAttendanceHistory, format, ReportData{
		PersonName:        names[0].FirstName + " " + names[0].LastName,
		AttendanceHistory: history,
	})
}
