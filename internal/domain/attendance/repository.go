package attendance

import (
	"context"
	"time"

	"github.com/SakshiM24/Employee-Attendance-System/internal/pkg/daywindow"
	"github.com/shopspring/decimal"
)

// RecordQuery is the resolved, typed form of the manager filters: each
// non-nil field contributes one predicate and predicates are ANDed.
type RecordQuery struct {
	EmployeeID *string
	Status     *Status
	Window     *daywindow.Window
}

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// CheckIn performs the atomic create-or-claim of today's record. It
	// returns ErrAlreadyCheckedIn when a check-in timestamp already exists
	// for (employeeID, date); concurrent callers cannot both succeed.
	CheckIn(ctx context.Context, record Attendance) (Attendance, error)

	// CompleteCheckOut sets the check-out timestamp and computed hours in a
	// single conditional update. Returns ErrAlreadyCheckedOut when the
	// record was already closed (including by a concurrent caller).
	CompleteCheckOut(ctx context.Context, employeeID, date string, checkOut time.Time, hours decimal.Decimal) (Attendance, error)

	// GetByEmployeeAndDate returns today's record or nil when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*Attendance, error)

	// ListByEmployee returns one employee's records newest first, optionally
	// restricted to a day or month window.
	ListByEmployee(ctx context.Context, employeeID string, window *daywindow.Window) ([]Attendance, error)

	// List returns records newest first with employee fields joined,
	// restricted by the query's predicates.
	List(ctx context.Context, q RecordQuery) ([]Attendance, error)
}
