package attendance

import (
	"time"

	"github.com/SakshiM24/Employee-Attendance-System/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// AttendanceResponse is the wire shape of a record. Check times are RFC3339
// in UTC; joined employee fields only appear on manager views.
type AttendanceResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Date       string          `json:"date"`
	CheckIn    *string         `json:"check_in"`
	CheckOut   *string         `json:"check_out"`
	Status     Status          `json:"status"`
	TotalHours decimal.Decimal `json:"total_hours"`

	EmployeeCode  *string `json:"employee_code,omitempty"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	EmployeeEmail *string `json:"employee_email,omitempty"`
	Department    *string `json:"department,omitempty"`
}

// NewAttendanceResponse converts an entity to its wire shape.
func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		Date:          a.Date.Format("2006-01-02"),
		CheckIn:       formatTimePtr(a.CheckIn),
		CheckOut:      formatTimePtr(a.CheckOut),
		Status:        a.Status,
		TotalHours:    a.TotalHours,
		EmployeeCode:  a.EmployeeCode,
		EmployeeName:  a.EmployeeName,
		EmployeeEmail: a.EmployeeEmail,
		Department:    a.Department,
	}
}

// NewAttendanceResponses converts a slice, preserving order. Always returns a
// non-nil slice so empty results encode as [] rather than null.
func NewAttendanceResponses(records []Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		out = append(out, NewAttendanceResponse(a))
	}
	return out
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}

// Summary holds per-status counts and accumulated hours over a record set.
type Summary struct {
	Present    int             `json:"present"`
	Absent     int             `json:"absent"`
	Late       int             `json:"late"`
	HalfDay    int             `json:"half_day"`
	TotalHours decimal.Decimal `json:"total_hours"`
}

// MySummaryResponse is a month-scoped personal summary.
type MySummaryResponse struct {
	Month int `json:"month"`
	Year  int `json:"year"`
	Summary
}

// TeamSummaryResponse is the manager's today snapshot. AbsentToday is derived
// by headcount subtraction: an employee with no presence signal today counts
// as absent whether or not an explicit absent record exists.
type TeamSummaryResponse struct {
	TotalEmployees int `json:"total_employees"`
	PresentToday   int `json:"present_today"`
	LateToday      int `json:"late_today"`
	AbsentToday    int `json:"absent_today"`
}

// EmployeeRollup is one row of the manager team overview: all historical
// records for one employee folded into totals.
type EmployeeRollup struct {
	EmployeeID     string          `json:"employee_id"`
	EmployeeCode   string          `json:"employee_code"`
	EmployeeName   string          `json:"employee_name"`
	Department     *string         `json:"department,omitempty"`
	DaysRecorded   int             `json:"days_recorded"`
	TotalHours     decimal.Decimal `json:"total_hours"`
	LastActiveDate string          `json:"last_active_date"`
}

// ListFilter carries the manager view's optional filters as they arrive from
// the query string. All are conjunctive when present.
type ListFilter struct {
	EmployeeCode *string
	Status       *string
	Date         *string
}

func (f ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !ValidStatus(*f.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of present, absent, late, half-day"})
	}
	if f.Date != nil {
		if _, ok := validator.IsValidDate(*f.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// MySummaryRequest selects the month for a personal summary; zero values
// default to the current month.
type MySummaryRequest struct {
	Month int
	Year  int
}

func (r MySummaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 0 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be between 1 and 12"})
	}
	if r.Year < 0 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
