package report

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/attendance"
	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/auth"
	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/report"
)

type ReportServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewReportService(attendanceRepo attendance.AttendanceRepository) report.ReportService {
	return &ReportServiceImpl{attendanceRepo: attendanceRepo}
}

// ExportAttendanceCSV implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendanceCSV(ctx context.Context, ident auth.Identity) ([]byte, error) {
	records, err := s.attendanceRepo.List(ctx, attendance.RecordQuery{})
	if err != nil {
		return nil, err
	}

	return buildCSV(records), nil
}

// buildCSV renders records into the fixed export layout. The header row is
// always present; the name column is always double-quoted so embedded commas
// survive. Check times are RFC3339 UTC, empty when unset; zero hours render
// as "0".
func buildCSV(records []attendance.Attendance) []byte {
	var buf bytes.Buffer
	buf.WriteString(report.CSVHeader)
	buf.WriteByte('\n')

	for _, r := range records {
		fields := []string{
			stringOrEmpty(r.EmployeeCode),
			`"` + strings.ReplaceAll(stringOrEmpty(r.EmployeeName), `"`, `""`) + `"`,
			stringOrEmpty(r.EmployeeEmail),
			stringOrEmpty(r.Department),
			r.Date.Format("2006-01-02"),
			timestampOrEmpty(r.CheckIn),
			timestampOrEmpty(r.CheckOut),
			string(r.Status),
			r.TotalHours.String(),
		}
		buf.WriteString(strings.Join(fields, ","))
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func timestampOrEmpty(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
