package dashboard

import (
	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/attendance"
)

// EmployeeDashboardResponse combines everything the employee landing page
// renders: today's record (or null), the current-month summary, and the seven
// most recent records.
type EmployeeDashboardResponse struct {
	TodayStatus *attendance.AttendanceResponse  `json:"today_status"`
	Summary     attendance.Summary              `json:"summary"`
	Recent      []attendance.AttendanceResponse `json:"recent"`
}
