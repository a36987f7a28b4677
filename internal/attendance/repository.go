package attendance

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, rec *AttendanceRecord) error
	GetByID(ctx context.Context, id uint) (*AttendanceRecord, error)
	Delete(ctx context.Context, id uint) error
	Exists(ctx context.Context, personID, eventID uint) (bool, error)
	ListByEvent(ctx context.Context, eventID uint) ([]AttendanceWithName, error)
	ListByPerson(ctx context.Context, personID uint) ([]AttendanceRecord, error)

	PersonExists(ctx context.Context, personID uint) (bool, error)
	EventExists(ctx context.Context, eventID uint) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rec *AttendanceRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) GetByID(ctx context.Context, id uint) (*AttendanceRecord, error) {
	var rec AttendanceRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&AttendanceRecord{}, id).Error
}

func (r *repository) Exists(ctx context.Context, personID, eventID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&AttendanceRecord{}).
		Where("person_id = ? AND event_id = ?", personID, eventID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) ListByEvent(ctx context.Context, eventID uint) ([]AttendanceWithName, error) {
	var rows []AttendanceWithName
	err := r.db.WithContext(ctx).Table("attendance_records").
		Select("attendance_records.id, attendance_records.person_id, attendance_records.event_id, people.first_name, people.last_name").
		Joins("JOIN people ON people.id = attendance_records.person_id").
		Where("attendance_records.event_id = ?", eventID).
		Order("people.last_name, people.first_name").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) ListByPerson(ctx context.Context, personID uint) ([]AttendanceRecord, error) {
	var recs []AttendanceRecord
	err := r.db.WithContext(ctx).
		Where("person_id = ?", personID).
		Order("event_id DESC").
		Find(&recs).Error
	return recs, err
}

func (r *repository) PersonExists(ctx context.Context, personID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("people").Where("id = ?", personID).Count(&count).Error
	return count > 0, err
}

func (r *repository) EventExists(ctx context.Context, eventID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("events").Where("id = ?", eventID).Count(&count).Error
	return count > 0, err
}
