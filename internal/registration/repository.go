package registration

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, reg *Registration) error
	GetByID(ctx context.Context, id uint) (*Registration, error)
	Delete(ctx context.Context, id uint) error
	ListByEvent(ctx context.Context, eventID uint) ([]RegistrationWithName, error)
	CountsByEvent(ctx context.Context, eventID uint) (*RegistrationCounts, error)

	EventExists(ctx context.Context, eventID uint) (bool, error)
	RoleExists(ctx context.Context, role string, roleID uint) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, reg *Registration) error {
	return r.db.WithContext(ctx).Create(reg).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*Registration, error) {
	var reg Registration
	if err := r.db.WithContext(ctx).First(&reg, id).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Registration{}, id).Error
}

// ListByEvent resolves every registration for an event to a name. A
// row carries exactly one role column, so the LEFT JOINs through the
// role tables collapse to a single person per row.
func (r *repository) ListByEvent(ctx context.Context, eventID uint) ([]RegistrationWithName, error) {
	var rows []RegistrationWithName
	err := r.db.WithContext(ctx).Table("registrations").
		Select(`registrations.id, registrations.event_id, registrations.emergency_contact,
			people.id AS person_id, people.first_name, people.last_name,
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
		Scan(&rows).Error
	return rows, err
}

// CountsByEvent returns the total and per-role registration counts in
// one grouped query.
func (r *repository) CountsByEvent(ctx context.Context, eventID uint) (*RegistrationCounts, error) {
	var counts RegistrationCounts
	err := r.db.WithContext(ctx).Table("registrations").
		Select(`COUNT(*) AS total,
			COUNT(attendee_id) AS attendees,
			COUNT(leader_id) AS leaders,
			COUNT(volunteer_id) AS volunteers`).
		Where("event_id = ?", eventID).
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return &counts, nil
}

func (r *repository) EventExists(ctx context.Context, eventID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("events").
		Where("id = ?", eventID).
		Count(&count).Error
	return count > 0, err
}

// RoleExists checks a role record id against its table. Role is one of
// "attendee", "leader", "volunteer".
func (r *repository) RoleExists(ctx context.Context, role string, roleID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table(role+"s").
		Where("id = ?", roleID).
		Count(&count).Error
	return count > 0, err
}
