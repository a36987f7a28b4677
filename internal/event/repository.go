package event

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	CreateEvent(ctx context.Context, e *Event) error
	GetEventByID(ctx context.Context, id uint) (*Event, error)
	ListEvents(ctx context.Context, limit, offset int, search string) ([]Event, error)
	GetUpcomingEvents(ctx context.Context) ([]Event, error)
	UpdateEvent(ctx context.Context, e *Event) error
	CountRegistrations(ctx context.Context, eventID uint) (int, error)
	GetEventStats(ctx context.Context) (*EventStatsResponse, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// ===========================
// 🎯 Create Event
func (r *repository) CreateEvent(ctx context.Context, e *Event) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// ===========================
// 🔍 Get Event By ID with registration count
func (r *repository) GetEventByID(ctx context.Context, id uint) (*Event, error) {
	var e Event
	if err := r.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, err
	}

	count, err := r.CountRegistrations(ctx, id)
	if err != nil {
		return nil, err
	}
	e.RegistrationCount = count
	return &e, nil
}

// ===========================
// 📄 List Events With Pagination & Search, newest first
func (r *repository) ListEvents(ctx context.Context, limit, offset int, search string) ([]Event, error) {
	var events []Event

	query := r.db.WithContext(ctx).Model(&Event{})
	if search != "" {
		ilike := "%" + search + "%"
		query = query.Where("name ILIKE ? OR location ILIKE ? OR type ILIKE ?", ilike, ilike, ilike)
	}

	err := query.
		Order("date_time DESC").
		Limit(limit).
		Offset(offset).
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	for i := range events {
		count, err := r.CountRegistrations(ctx, events[i].ID)
		if err != nil {
			return nil, err
		}
		events[i].RegistrationCount = count
	}

	return events, nil
}

// ===========================
// 📆 Get Upcoming Events (active, from one week back so tonight's event
// stays visible while check-ins are still open)
func (r *repository) GetUpcomingEvents(ctx context.Context) ([]Event, error) {
	var events []Event
	err := r.db.WithContext(ctx).
		Where("date_time >= CURRENT_DATE - INTERVAL '7 day' AND is_active = TRUE").
		Order("date_time ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}

	for i := range events {
		count, err := r.CountRegistrations(ctx, events[i].ID)
		if err != nil {
			return nil, err
		}
		events[i].RegistrationCount = count
	}

	return events, nil
}

// ===========================
// 🛠 Update Event
func (r *repository) UpdateEvent(ctx context.Context, e *Event) error {
	return r.db.WithContext(ctx).Save(e).Error
}

// ===========================
// 🔢 Count Registrations for an Event
func (r *repository) CountRegistrations(ctx context.Context, eventID uint) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("registrations").
		Where("event_id = ?", eventID).
		Count(&count).Error
	return int(count), err
}

// ===========================
// 📊 Event Dashboard Stats
func (r *repository) GetEventStats(ctx context.Context) (*EventStatsResponse, error) {
	var stats EventStatsResponse
	var total, thisMonth, upcoming, totalRegs int64

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	if err := r.db.WithContext(ctx).Model(&Event{}).Count(&total).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&Event{}).
		Where("date_time >= ?", startOfMonth).
		Count(&thisMonth).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Model(&Event{}).
		Where("date_time >= CURRENT_DATE").
		Count(&upcoming).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Table("registrations").Count(&totalRegs).Error; err != nil {
		return nil, err
	}

	stats.TotalEvents = int(total)
	stats.ThisMonthEvents = int(thisMonth)
	stats.UpcomingEvents = int(upcoming)
	stats.TotalRegistrations = int(totalRegs)

	return &stats, nil
}
