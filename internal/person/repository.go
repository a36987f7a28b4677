package person

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	ListPeople(ctx context.Context) ([]Person, error)
	GetPerson(ctx context.Context, id uint) (*Person, error)
	CreatePerson(ctx context.Context, p *Person) error
	UpdatePerson(ctx context.Context, p *Person) error
	DeletePerson(ctx context.Context, id uint) error

	GetRoles(ctx context.Context, personID uint) (*RoleSet, error)

	CreateAttendee(ctx context.Context, a *Attendee) error
	GetAttendee(ctx context.Context, id uint) (*Attendee, error)
	DeleteAttendee(ctx context.Context, id uint) error

	CreateLeader(ctx context.Context, l *Leader) error
	GetLeader(ctx context.Context, id uint) (*Leader, error)
	DeleteLeader(ctx context.Context, id uint) error

	CreateVolunteer(ctx context.Context, v *Volunteer) error
	GetVolunteer(ctx context.Context, id uint) (*Volunteer, error)
	DeleteVolunteer(ctx context.Context, id uint) error

	// Registration references keep role removal honest.
	CountRegistrationsForRole(ctx context.Context, role string, roleID uint) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ===========================
// 👤 People

func (r *repository) ListPeople(ctx context.Context) ([]Person, error) {
	var people []Person
	err := r.db.WithContext(ctx).
		Order("last_name, first_name").
		Find(&people).Error
	return people, err
}

func (r *repository) GetPerson(ctx context.Context, id uint) (*Person, error) {
	var p Person
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) CreatePerson(ctx context.Context, p *Person) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) UpdatePerson(ctx context.Context, p *Person) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) DeletePerson(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Person{}, id).Error
}

// ===========================
// 🎭 Roles

// GetRoles collects all role records held by a person.
func (r *repository) GetRoles(ctx context.Context, personID uint) (*RoleSet, error) {
	roles := &RoleSet{PersonID: personID}

	var a Attendee
	err := r.db.WithContext(ctx).Where("person_id = ?", personID).First(&a).Error
	if err == nil {
		roles.Attendee = &a
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var l Leader
	err = r.db.WithContext(ctx).Where("person_id = ?", personID).First(&l).Error
	if err == nil {
		roles.Leader = &l
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var v Volunteer
	err = r.db.WithContext(ctx).Where("person_id = ?", personID).First(&v).Error
	if err == nil {
		roles.Volunteer = &v
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return roles, nil
}

func (r *repository) CreateAttendee(ctx context.Context, a *Attendee) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) GetAttendee(ctx context.Context, id uint) (*Attendee, error) {
	var a Attendee
	if err := r.db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *repository) DeleteAttendee(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Attendee{}, id).Error
}

func (r *repository) CreateLeader(ctx context.Context, l *Leader) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) GetLeader(ctx context.Context, id uint) (*Leader, error) {
	var l Leader
	if err := r.db.WithContext(ctx).First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) DeleteLeader(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Leader{}, id).Error
}

func (r *repository) CreateVolunteer(ctx context.Context, v *Volunteer) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *repository) GetVolunteer(ctx context.Context, id uint) (*Volunteer, error) {
	var v Volunteer
	if err := r.db.WithContext(ctx).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repository) DeleteVolunteer(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Volunteer{}, id).Error
}

// CountRegistrationsForRole counts registration rows still pointing at a
// role record. Role is one of "attendee", "leader", "volunteer".
func (r *repository) CountRegistrationsForRole(ctx context.Context, role string, roleID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("registrations").
		Where(role+"_id = ?", roleID).
		Count(&count).Error
	return count, err
}
