package attendance

import (
	"context"

	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/auth"
)

// AttendanceService defines the attendance operations. The caller identity is
// always an explicit parameter.
type AttendanceService interface {
	// CheckIn opens today's record for the caller; rejected with
	// ErrAlreadyCheckedIn when today's check-in already happened.
	CheckIn(ctx context.Context, ident auth.Identity) (AttendanceResponse, error)

	// CheckOut closes today's record and computes total hours.
	CheckOut(ctx context.Context, ident auth.Identity) (AttendanceResponse, error)

	// MyHistory returns the caller's records, newest first.
	MyHistory(ctx context.Context, ident auth.Identity) ([]AttendanceResponse, error)

	// MySummary folds one month of the caller's records into counts and hours.
	MySummary(ctx context.Context, ident auth.Identity, req MySummaryRequest) (MySummaryResponse, error)

	// Today returns the caller's record for the current day, or nil.
	Today(ctx context.Context, ident auth.Identity) (*AttendanceResponse, error)

	// ListAll returns filtered records with employee fields joined (manager).
	ListAll(ctx context.Context, ident auth.Identity, filter ListFilter) ([]AttendanceResponse, error)

	// EmployeeHistory returns one employee's records by user ID (manager).
	EmployeeHistory(ctx context.Context, ident auth.Identity, employeeID string) ([]AttendanceResponse, error)

	// TeamSummary returns the today snapshot with headcount-subtraction
	// absence (manager).
	TeamSummary(ctx context.Context, ident auth.Identity) (TeamSummaryResponse, error)

	// TodayStatus returns today's records with employee fields joined (manager).
	TodayStatus(ctx context.Context, ident auth.Identity) ([]AttendanceResponse, error)

	// TeamOverview returns the per-employee historical rollup (manager).
	TeamOverview(ctx context.Context, ident auth.Identity) ([]EmployeeRollup, error)
}
