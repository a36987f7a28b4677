package registration

// ============================
// 🔷 GORM Models

// Registration commits a person, in exactly one role, to an event.
// The role columns reference the role tables (attendees.id etc.), and
// at least one must be set.
type Registration struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	EventID          uint   `gorm:"not null;index" json:"eventId"`
	AttendeeID       *uint  `gorm:"index" json:"attendeeId"`
	LeaderID         *uint  `gorm:"index" json:"leaderId"`
	VolunteerID      *uint  `gorm:"index" json:"volunteerId"`
	EmergencyContact string `gorm:"type:varchar(255);not null" json:"emergencyContact"`
}

// RegistrationWithName is a registration row resolved to the
// registrant's name and role for event rosters.
type RegistrationWithName struct {
	ID               uint   `json:"id"`
	EventID          uint   `json:"eventId"`
	PersonID         uint   `json:"personId"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Role             string `json:"role"`
	EmergencyContact string `json:"emergencyContact"`
}

// RegistrationCounts is the per-role breakdown for one event.
type RegistrationCounts struct {
	Total      int64 `json:"total"`
	Attendees  int64 `json:"attendees"`
	Leaders    int64 `json:"leaders"`
	Volunteers int64 `json:"volunteers"`
}

// ============================
// 🟡 Requests

type CreateRegistrationRequest struct {
	EventID          uint   `json:"eventId" binding:"required"`
	AttendeeID       *uint  `json:"attendeeId"`
	LeaderID         *uint  `json:"leaderId"`
	VolunteerID      *uint  `json:"volunteerId"`
	EmergencyContact string `json:"emergencyContact" binding:"required"`
}
