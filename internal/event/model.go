package event

import (
	"time"
)

// ============================
// 🔷 GORM Event Model
//
// Events are never deleted: attendance history and registrations hang off
// them, so they are deactivated instead.
type Event struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Name     string    `gorm:"type:varchar(255);not null" json:"name"`
	Type     string    `gorm:"type:varchar(100);not null" json:"type"`
	DateTime time.Time `gorm:"not null;index" json:"dateTime"`
	Location string    `gorm:"type:varchar(255);not null" json:"location"`
	Notes    *string   `gorm:"type:text" json:"notes,omitempty"`
	IsActive bool      `gorm:"default:true" json:"isActive"`

	RegistrationCount int `gorm:"-" json:"registrationCount"`
}

// ============================
// 🟡 Create Event Request
type CreateEventRequest struct {
	Name     string  `json:"name" binding:"required"`
	Type     string  `json:"type" binding:"required"`
	DateTime string  `json:"dateTime" binding:"required"` // 🛠 RFC 3339, e.g. "2026-09-04T19:00:00Z"
	Location string  `json:"location" binding:"required"`
	Notes    *string `json:"notes,omitempty"`
}

// ============================
// 🟠 Update Event Request (partial)
type UpdateEventRequest struct {
	Name     *string `json:"name,omitempty"`
	Type     *string `json:"type,omitempty"`
	DateTime *string `json:"dateTime,omitempty"`
	Location *string `json:"location,omitempty"`
	Notes    *string `json:"notes,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// ============================
// 📊 Dashboard Stats
type EventStatsResponse struct {
	TotalEvents        int `json:"totalEvents"`
	ThisMonthEvents    int `json:"thisMonthEvents"`
	UpcomingEvents     int `json:"upcomingEvents"`
	TotalRegistrations int `json:"totalRegistrations"`
}
