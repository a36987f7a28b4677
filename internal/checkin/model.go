package checkin

import "time"

// CheckInEntry is one checked-in student with the time they arrived.
type CheckInEntry struct {
	StudentID   uint      `json:"studentId"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	CheckInTime time.Time `json:"checkInTime"`
}

// LiveCheckIns is the current roster for an event.
type LiveCheckIns struct {
	EventID        uint           `json:"eventId"`
	CheckedInCount int64          `json:"checkedInCount"`
	Students       []CheckInEntry `json:"students"`
	Source         string         `json:"source"`
}

type CheckInRequest struct {
	StudentID uint `json:"studentId" binding:"required"`
}
