package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half-day"
)

// ValidStatus reports whether s is a known attendance status.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPresent, StatusAbsent, StatusLate, StatusHalfDay:
		return true
	}
	return false
}

// Attendance is one record per (employee, calendar day). Date is the local
// day truncated to midnight; CheckOut is only ever set after CheckIn, and
// TotalHours is always derived from the two timestamps.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *time.Time
	CheckOut   *time.Time
	Status     Status
	TotalHours decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined employee fields, populated by list queries for manager views.
	EmployeeCode  *string
	EmployeeName  *string
	EmployeeEmail *string
	Department    *string
}
