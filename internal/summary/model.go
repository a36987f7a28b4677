package summary

import "time"

// Source labels carried by each sub-object so callers can tell which
// store answered, or that an optional store was down.
const (
	SourcePostgres    = "postgres"
	SourceRedis       = "redis"
	SourceFirestore   = "firestore"
	SourceUnavailable = "unavailable"
)

type EventSection struct {
	ID       uint      `json:"id"`
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	DateTime time.Time `json:"dateTime"`
	Location string    `json:"location"`
	Source   string    `json:"source"`
}

type RegistrationsSection struct {
	Total      int64  `json:"total"`
	Attendees  int64  `json:"attendees"`
	Leaders    int64  `json:"leaders"`
	Volunteers int64  `json:"volunteers"`
	Source     string `json:"source"`
}

type LiveCheckInsSection struct {
	Count  int64  `json:"count"`
	Source string `json:"source"`
}

type NotesSection struct {
	Count  int64  `json:"count"`
	Source string `json:"source"`
}

// Totals is the derived block computed from the three sections.
type Totals struct {
	TotalRegistered int64 `json:"totalRegistered"`
	TotalCheckedIn  int64 `json:"totalCheckedIn"`
	AttendanceRate  int   `json:"attendanceRate"`
	NotesCount      int64 `json:"notesCount"`
}

// ComprehensiveEventSummary merges the relational, key-value, and
// document stores' view of one event. DataSources lists each backing
// store, marking the optional ones that failed to answer.
type ComprehensiveEventSummary struct {
	Event         EventSection         `json:"event"`
	Registrations RegistrationsSection `json:"registrations"`
	LiveCheckIns  LiveCheckInsSection  `json:"liveCheckIns"`
	Notes         NotesSection         `json:"notes"`
	Summary       Totals               `json:"summary"`
	DataSources   []string             `json:"dataSources"`
}
