package reports

import "time"

const (
	FormatCSV   = "csv"
	FormatExcel = "excel"
	FormatPDF   = "pdf"
)

const (
	ReportTypeEventRoster       = "event_roster"
	ReportTypeAttendanceHistory = "attendance_history"
)

// EventRosterRow is one registration resolved for the printed roster.
type EventRosterRow struct {
	RegistrationID   uint
	FirstName        string
	LastName         string
	Role             string
	EmergencyContact string
}

// AttendanceHistoryRow is one event a person attended.
type AttendanceHistoryRow struct {
	EventID   uint
	EventName string
	EventType string
	DateTime  time.Time
	Location  string
}

// ReportData carries whichever rows the requested report needs.
type ReportData struct {
	EventName         string
	PersonName        string
	Roster            []EventRosterRow
	AttendanceHistory []AttendanceHistoryRow
}
