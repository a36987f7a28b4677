package attendance

// AttendanceRecord is the durable record that a person was present at
// an event, independent of any registration.
type AttendanceRecord struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	PersonID uint `gorm:"not null;index" json:"personId"`
	EventID  uint `gorm:"not null;index" json:"eventId"`
}

// AttendanceWithName resolves a record to the person's name.
type AttendanceWithName struct {
	ID        uint   `json:"id"`
	PersonID  uint   `json:"personId"`
	EventID   uint   `json:"eventId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type CreateAttendanceRequest struct {
	PersonID uint `json:"personId" binding:"required"`
	EventID  uint `json:"eventId" binding:"required"`
}
