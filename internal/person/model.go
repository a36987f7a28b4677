package person

// ============================
// 🔷 GORM Models

// Person is the root entity; every role record references it.
type Person struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"type:varchar(100);not null" json:"firstName"`
	LastName  string `gorm:"type:varchar(100);not null;index" json:"lastName"`
	Age       *int   `json:"age,omitempty"`
}

// Attendee marks a person as a student attendee. Guardian is the
// responsible adult's name.
type Attendee struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	PersonID uint   `gorm:"not null;index" json:"personId"`
	Guardian string `gorm:"type:varchar(255);not null" json:"guardian"`
}

// Leader marks a person as a youth leader.
type Leader struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	PersonID uint `gorm:"not null;index" json:"personId"`
}

// Volunteer marks a person as an event volunteer.
type Volunteer struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	PersonID uint `gorm:"not null;index" json:"personId"`
}

// RoleSet is the full set of role records a person holds. Roles are
// orthogonal; any combination is valid.
type RoleSet struct {
	PersonID  uint       `json:"personId"`
	Attendee  *Attendee  `json:"attendee,omitempty"`
	Leader    *Leader    `json:"leader,omitempty"`
	Volunteer *Volunteer `json:"volunteer,omitempty"`
}

// ============================
// 🟡 Requests

type CreatePersonRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Age       *int   `json:"age,omitempty"`
}

// UpdatePersonRequest carries partial updates; nil fields are left untouched.
type UpdatePersonRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Age       *int    `json:"age,omitempty"`
}

type AddAttendeeRoleRequest struct {
	Guardian string `json:"guardian" binding:"required"`
}
