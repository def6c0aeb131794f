package dashboard

import (
	"context"

	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/attendance"
	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/auth"
)

type DashboardService interface {
	// EmployeeDashboard returns today's status, the current-month summary and
	// recent records for the caller.
	EmployeeDashboard(ctx context.Context, ident auth.Identity) (EmployeeDashboardResponse, error)

	// ManagerDashboard returns the team today snapshot.
	ManagerDashboard(ctx context.Context, ident auth.Identity) (attendance.TeamSummaryResponse, error)
}
