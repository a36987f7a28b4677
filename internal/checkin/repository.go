package checkin

import (
	"context"

	"gorm.io/gorm"
)

// PersonName pairs the two name columns for roster display.
type PersonName struct {
	FirstName string
	LastName  string
}

// Directory answers the relational lookups a check-in needs: does the
// event exist, does the student exist, and what are people called.
type Directory interface {
	EventExists(ctx context.Context, eventID uint) (bool, error)
	PersonExists(ctx context.Context, personID uint) (bool, error)
	GetNames(ctx context.Context, ids []uint) (map[uint]PersonName, error)
}

type directory struct {
	db *gorm.DB
}

func NewDirectory(db *gorm.DB) Directory {
	return &directory{db: db}
}

func (d *directory) EventExists(ctx context.Context, eventID uint) (bool, error) {
	var count int64
	err := d.db.WithContext(ctx).Table("events").Where("id = ?", eventID).Count(&count).Error
	return count > 0, err
}

func (d *directory) PersonExists(ctx context.Context, personID uint) (bool, error) {
	var count int64
	err := d.db.WithContext(ctx).Table("people").Where("id = ?", personID).Count(&count).Error
	return count > 0, err
}

func (d *directory) GetNames(ctx context.Context, ids []uint) (map[uint]PersonName, error) {
	if len(ids) == 0 {
		return map[uint]PersonName{}, nil
	}

	var rows []struct {
		ID        uint
		FirstName string
		LastName  string
	}
	err := d.db.WithContext(ctx).Table("people").
		Select("id, first_name, last_name").
		Where("id IN ?", ids).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	names := make(map[uint]PersonName, len(rows))
	for _, row := range rows {
		names[row.ID] = PersonName{FirstName: row.FirstName, LastName: row.LastName}
	}
	return names, nil
}
