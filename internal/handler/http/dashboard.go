package http

import (
	"net/http"

	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/attendance"
	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/dashboard"
	"github.com/SakshiM24/Employee-Attendance-System/internal/handler/http/response"
)

type DashboardHandler interface {
	Employee(w http.ResponseWriter, r *http.Request)
	Manager(w http.ResponseWriter, r *http.Request)
	TeamOverview(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService  dashboard.DashboardService
	attendanceService attendance.AttendanceService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService, attendanceService attendance.AttendanceService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService:  dashboardService,
		attendanceService: attendanceService,
	}
}

// Employee implements DashboardHandler.
func (h *dashboardHandlerImpl) Employee(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.EmployeeDashboard(r.Context(), ident)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Manager implements DashboardHandler.
func (h *dashboardHandlerImpl) Manager(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.dashboardService.ManagerDashboard(r.Context(), ident)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// TeamOverview implements DashboardHandler.
func (h *dashboardHandlerImpl) TeamOverview(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.TeamOverview(r.Context(), ident)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
