package report

import (
	"context"

	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/auth"
)

type ReportService interface {
	// ExportAttendanceCSV renders every attendance record, newest first, as a
	// CSV document with employee fields joined.
	ExportAttendanceCSV(ctx context.Context, ident auth.Identity) ([]byte, error)
}
