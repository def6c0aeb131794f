package dashboard

import (
	"context"
	"time"

	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/attendance"
	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/auth"
	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/dashboard"
	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/user"
	"github.com/SakshiM24/Employee-Attendance-System/internal/pkg/daywindow"
	attendanceService "github.com/SakshiM24/Employee-Attendance-System/internal/service/attendance"
	"golang.org/x/sync/errgroup"
)

// recentLimit is how many of the month's records the employee dashboard shows.
const recentLimit = 7

type DashboardServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
	now            func() time.Time
}

func NewDashboardService(attendanceRepo attendance.AttendanceRepository, userRepo user.UserRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		now:            time.Now,
	}
}

// EmployeeDashboard implements dashboard.DashboardService. Today's record and
// the month's records are independent queries, fetched concurrently.
func (s *DashboardServiceImpl) EmployeeDashboard(ctx context.Context, ident auth.Identity) (dashboard.EmployeeDashboardResponse, error) {
	now := s.now()
	today := daywindow.Day(now)
	month := daywindow.Month(now)

	var (
		todayRecord  *attendance.Attendance
		monthRecords []attendance.Attendance
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		todayRecord, err = s.attendanceRepo.GetByEmployeeAndDate(gCtx, ident.UserID, today.DateString())
		return err
	})
	g.Go(func() error {
		var err error
		monthRecords, err = s.attendanceRepo.ListByEmployee(gCtx, ident.UserID, &month)
		return err
	})
	if err := g.Wait(); err != nil {
		return dashboard.EmployeeDashboardResponse{}, err
	}

	resp := dashboard.EmployeeDashboardResponse{
		Summary: attendanceService.Summarize(monthRecords),
	}
	if todayRecord != nil {
		r := attendance.NewAttendanceResponse(*todayRecord)
		resp.TodayStatus = &r
	}

	recent := monthRecords
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	resp.Recent = attendance.NewAttendanceResponses(recent)

	return resp, nil
}

// ManagerDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) ManagerDashboard(ctx context.Context, ident auth.Identity) (attendance.TeamSummaryResponse, error) {
	today := daywindow.Day(s.now())

	var (
		totalEmployees int
		todayRecords   []attendance.Attendance
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totalEmployees, err = s.userRepo.CountEmployees(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		todayRecords, err = s.attendanceRepo.List(gCtx, attendance.RecordQuery{Window: &today})
		return err
	})
	if err := g.Wait(); err != nil {
		return attendance.TeamSummaryResponse{}, err
	}

	return attendanceService.TeamSnapshot(todayRecords, totalEmployees), nil
}
