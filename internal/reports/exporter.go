package reports

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// Exporter renders a report in the requested format, returning the
// file bytes, a filename, and the content type.
type Exporter interface {
	Export(reportType, format string, data ReportData) ([]byte, string, string, error)
}

type exporter struct{}

func NewExporter() Exporter {
	return &exporter{}
}

func (e *exporter) Export(reportType, format string, data ReportData) ([]byte, string, string, error) {
	timestamp := time.Now().Format("20060102_150405")

	switch reportType {
	case ReportTypeEventRoster:
		return e.exportRosterByFormat(format, timestamp, data)
	case ReportTypeAttendanceHistory:
		return e.exportAttendanceByFormat(format, timestamp, data)
	default:
		return nil, "", "", fmt.Errorf("unsupported report type: %s", reportType)
	}
}

//// ============================
/// EVENT ROSTER EXPORTS
//// ============================

func (e *exporter) exportRosterByFormat(format, timestamp string, data ReportData) ([]byte, string, string, error) {
	switch format {
	case FormatExcel:
		out, err := e.exportRosterExcel(data)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("event_roster_%s.xlsx", timestamp)
		return out, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatCSV:
		out, err := e.exportRosterCSV(data)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("event_roster_%s.csv", timestamp)
		return out, filename, "text/csv", nil

	case FormatPDF:
		out, err := e.exportRosterPDF(data)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("event_roster_%s.pdf", timestamp)
		return out, filename, "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format for event roster: %s", format)
	}
}

func (e *exporter) exportRosterCSV(data ReportData) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Registration ID", "First Name", "Last Name", "Role", "Emergency Contact"}
	if err := writer.Write(headers); err != nil {
		return nil, err
	}

	for _, r := range data.Roster {
		record := []string{
			strconv.FormatUint(uint64(r.RegistrationID), 10),
			r.FirstName,
			r.LastName,
			r.Role,
			r.EmergencyContact,
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (e *exporter) exportRosterExcel(data ReportData) ([]byte, error) {
	f := excelize.NewFile()
	sheetName := "Event Roster"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"Registration ID", "First Name", "Last Name", "Role", "Emergency Contact"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, r := range data.Roster {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.RegistrationID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.FirstName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), r.LastName)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.Role)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.EmergencyContact)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) exportRosterPDF(data ReportData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Event Roster: %s", data.EventName))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	widths := []float64{25, 40, 40, 30, 50}
	headers := []string{"Reg ID", "First Name", "Last Name", "Role", "Emergency Contact"}

	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, r := range data.Roster {
		pdf.CellFormat(widths[0], 6, strconv.FormatUint(uint64(r.RegistrationID), 10), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, r.FirstName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, r.LastName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[3], 6, r.Role, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 6, r.EmergencyContact, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

//// ============================
/// ATTENDANCE HISTORY EXPORTS
//// ============================

func (e *exporter) exportAttendanceByFormat(format, timestamp string, data ReportData) ([]byte, string, string, error) {
	switch format {
	case FormatExcel:
		out, err := e.exportAttendanceExcel(data)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("attendance_history_%s.xlsx", timestamp)
		return out, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", nil

	case FormatCSV:
		out, err := e.exportAttendanceCSV(data)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("attendance_history_%s.csv", timestamp)
		return out, filename, "text/csv", nil

	case FormatPDF:
		out, err := e.exportAttendancePDF(data)
		if err != nil {
			return nil, "", "", err
		}
		filename := fmt.Sprintf("attendance_history_%s.pdf", timestamp)
		return out, filename, "application/pdf", nil

	default:
		return nil, "", "", fmt.Errorf("unsupported format for attendance history: %s", format)
	}
}

func (e *exporter) exportAttendanceCSV(data ReportData) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Event ID", "Event Name", "Type", "Date", "Location"}
	if err := writer.Write(headers); err != nil {
		return nil, err
	}

	for _, r := range data.AttendanceHistory {
		record := []string{
			strconv.FormatUint(uint64(r.EventID), 10),
			r.EventName,
			r.EventType,
			r.DateTime.Format("2006-01-02 15:04:05"),
			r.Location,
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (e *exporter) exportAttendanceExcel(data ReportData) ([]byte, error) {
	f := excelize.NewFile()
	sheetName := "Attendance History"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"Event ID", "Event Name", "Type", "Date", "Location"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, r := range data.AttendanceHistory {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), r.EventID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), r.EventName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), r.EventType)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), r.DateTime.Format("2006-01-02 15:04:05"))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), r.Location)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *exporter) exportAttendancePDF(data ReportData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, fmt.Sprintf("Attendance History: %s", data.PersonName))
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	widths := []float64{20, 60, 30, 40, 40}
	headers := []string{"ID", "Event Name", "Type", "Date", "Location"}

	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, r := range data.AttendanceHistory {
		pdf.CellFormat(widths[0], 6, strconv.FormatUint(uint64(r.EventID), 10), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 6, r.EventName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 6, r.EventType, "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[3], 6, r.DateTime.Format("2006-01-02 15:04"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[4], 6, r.Location, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
