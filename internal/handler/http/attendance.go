package http

import (
	"net/http"
	"strconv"

	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/attendance"
	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/report"
	"github.com/SakshiM24/Employee-Attendance-System/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	MyHistory(w http.ResponseWriter, r *http.Request)
	MySummary(w http.ResponseWriter, r *http.Request)
	Today(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	EmployeeHistory(w http.ResponseWriter, r *http.Request)
	TeamSummary(w http.ResponseWriter, r *http.Request)
	TodayStatus(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	reportService     report.ReportService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, reportService report.ReportService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		reportService:     reportService,
	}
}

// CheckIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), ident)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked in successfully", result)
}

// CheckOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.CheckOut(r.Context(), ident)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Checked out successfully", result)
}

// MyHistory implements AttendanceHandler.
func (h *attendanceHandlerImpl) MyHistory(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.attendanceService.MyHistory(r.Context(), ident)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// MySummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) MySummary(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := attendance.MySummaryRequest{}
	if m := r.URL.Query().Get("month"); m != "" {
		if month, err := strconv.Atoi(m); err == nil {
			req.Month = month
		}
	}
	if y := r.URL.Query().Get("year"); y != "" {
		if year, err := strconv.Atoi(y); err == nil {
			req.Year = year
		}
	}

	result, err := h.attendanceService.MySummary(r.Context(), ident, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Today implements AttendanceHandler.
func (h *attendanceHandlerImpl) Today(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.Today(r.Context(), ident)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// result is nil (JSON null) when no record exists yet today
	response.Success(w, result)
}

// ListAll implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := attendance.ListFilter{}
	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeCode = &employeeID
	}
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = &status
	}
	if date := r.URL.Query().Get("date"); date != "" {
		filter.Date = &date
	}

	results, err := h.attendanceService.ListAll(r.Context(), ident, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// EmployeeHistory implements AttendanceHandler.
func (h *attendanceHandlerImpl) EmployeeHistory(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.attendanceService.EmployeeHistory(r.Context(), ident, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// TeamSummary implements AttendanceHandler.
func (h *attendanceHandlerImpl) TeamSummary(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.TeamSummary(r.Context(), ident)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// TodayStatus implements AttendanceHandler.
func (h *attendanceHandlerImpl) TodayStatus(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	results, err := h.attendanceService.TodayStatus(r.Context(), ident)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// Export implements AttendanceHandler. The CSV endpoint is the only one that
// does not wrap its payload in the JSON envelope.
func (h *attendanceHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	ident, err := identityFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	csv, err := h.reportService.ExportAttendanceCSV(r.Context(), ident)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+report.CSVFilename)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(csv)
}
