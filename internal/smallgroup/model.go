package smallgroup

// ============================
// 🔷 GORM Models

type SmallGroup struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`
}

// SmallGroupMember links a student to a group. AttendeeID holds the
// Person id directly, not the attendee role-record id; listings join
// the people table on this column.
type SmallGroupMember struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	SmallGroupID uint `gorm:"not null;index" json:"smallGroupId"`
	AttendeeID   uint `gorm:"not null;index" json:"attendeeId"`
}

// SmallGroupLeader links a leader to a group. LeaderID holds the
// Person id directly, same addressing as SmallGroupMember.
type SmallGroupLeader struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	SmallGroupID uint `gorm:"not null;index" json:"smallGroupId"`
	LeaderID     uint `gorm:"not null;index" json:"leaderId"`
}

// GroupPerson is a membership row resolved to a person's name.
type GroupPerson struct {
	MembershipID uint   `json:"membershipId"`
	PersonID     uint   `json:"personId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
}

// ============================
// 🟡 Requests

type CreateSmallGroupRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateSmallGroupRequest struct {
	Name string `json:"name" binding:"required"`
}

type AddGroupPersonRequest struct {
	PersonID uint `json:"personId" binding:"required"`
}
