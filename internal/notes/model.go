package notes

import "time"

// ============================
// 🔷 Document Models
//
// These live in the document store, keyed by domain entity id, with no
// referential integrity back to the relational tables.

// EventType describes a kind of event (service, camp, outreach) with
// free-form planning fields. The name doubles as the document key.
type EventType struct {
	EventType       string   `firestore:"event_type" json:"event_type"`
	Description     *string  `firestore:"description,omitempty" json:"description,omitempty"`
	RequiredItems   []string `firestore:"required_items,omitempty" json:"required_items,omitempty"`
	DurationMinutes *int     `firestore:"duration_minutes,omitempty" json:"duration_minutes,omitempty"`
	ExtraNotes      *string  `firestore:"extra_notes,omitempty" json:"extra_notes,omitempty"`
}

// PersonNote is a free-form pastoral note about a person.
type PersonNote struct {
	ID        string    `firestore:"-" json:"id"`
	PersonID  uint      `firestore:"personId" json:"personId"`
	Text      string    `firestore:"text" json:"text"`
	Category  *string   `firestore:"category,omitempty" json:"category,omitempty"`
	CreatedBy string    `firestore:"createdBy" json:"createdBy"`
	Created   time.Time `firestore:"created" json:"created"`
}

// ParentContact records an interaction with a student's parent or
// guardian.
type ParentContact struct {
	ID        string     `firestore:"-" json:"id"`
	PersonID  uint       `firestore:"personId" json:"personId"`
	Summary   string     `firestore:"summary" json:"summary"`
	Method    *string    `firestore:"method,omitempty" json:"method,omitempty"`
	Date      *time.Time `firestore:"date,omitempty" json:"date,omitempty"`
	CreatedBy string     `firestore:"createdBy" json:"createdBy"`
	Created   time.Time  `firestore:"created" json:"created"`
}

// EventNote is a leader's debrief for one event.
type EventNote struct {
	ID          string    `firestore:"-" json:"id"`
	EventID     uint      `firestore:"eventId" json:"eventId"`
	Notes       *string   `firestore:"notes,omitempty" json:"notes,omitempty"`
	Concerns    *string   `firestore:"concerns,omitempty" json:"concerns,omitempty"`
	StudentWins *string   `firestore:"studentWins,omitempty" json:"studentWins,omitempty"`
	CreatedBy   string    `firestore:"createdBy" json:"createdBy"`
	Created     time.Time `firestore:"created" json:"created"`
}

// ============================
// 🟡 Requests

type UpsertEventTypeRequest struct {
	EventType       string   `json:"event_type" binding:"required"`
	Description     *string  `json:"description"`
	RequiredItems   []string `json:"required_items"`
	DurationMinutes *int     `json:"duration_minutes"`
	ExtraNotes      *string  `json:"extra_notes"`
}

type CreatePersonNoteRequest struct {
	Text      string  `json:"text" binding:"required"`
	Category  *string `json:"category"`
	CreatedBy string  `json:"createdBy" binding:"required"`
}

type CreateParentContactRequest struct {
	Summary   string     `json:"summary" binding:"required"`
	Method    *string    `json:"method"`
	Date      *time.Time `json:"date"`
	CreatedBy string     `json:"createdBy" binding:"required"`
}

type CreateEventNoteRequest struct {
	Notes       *string `json:"notes"`
	Concerns    *string `json:"concerns"`
	StudentWins *string `json:"studentWins"`
	CreatedBy   string  `json:"createdBy" binding:"required"`
}
