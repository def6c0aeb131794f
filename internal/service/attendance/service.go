package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/attendance"
	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/auth"
	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/user"
	"github.com/SakshiM24/Employee-Attendance-System/internal/pkg/daywindow"
	"github.com/SakshiM24/Employee-Attendance-System/internal/pkg/validator"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
	now            func() time.Time
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, userRepo user.UserRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		now:            time.Now,
	}
}

// CheckIn implements attendance.AttendanceService. The daily sequence is
// NOT_STARTED -> CHECKED_IN -> CHECKED_OUT; the repository upsert rejects a
// second check-in atomically, so concurrent calls cannot both succeed.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, ident auth.Identity) (attendance.AttendanceResponse, error) {
	now := s.now()
	today := daywindow.Day(now)

	// Status is always present at check-in. The schema also knows late and
	// half-day but no code path assigns them; a lateness threshold is an
	// open policy decision, not something to invent here.
	record, err := s.attendanceRepo.CheckIn(ctx, attendance.Attendance{
		ID:         uuid.NewString(),
		EmployeeID: ident.UserID,
		Date:       today.Start,
		CheckIn:    &now,
		Status:     attendance.StatusPresent,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(record), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, ident auth.Identity) (attendance.AttendanceResponse, error) {
	now := s.now()
	date := daywindow.Day(now).DateString()

	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, ident.UserID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if record == nil || record.CheckIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	updated, err := s.attendanceRepo.CompleteCheckOut(ctx, ident.UserID, date, now, workHours(*record.CheckIn, now))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(updated), nil
}

// MyHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MyHistory(ctx context.Context, ident auth.Identity) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.ListByEmployee(ctx, ident.UserID, nil)
	if err != nil {
		return nil, err
	}
	return attendance.NewAttendanceResponses(records), nil
}

// MySummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MySummary(ctx context.Context, ident auth.Identity, req attendance.MySummaryRequest) (attendance.MySummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MySummaryResponse{}, err
	}

	now := s.now()
	month, year := req.Month, req.Year
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}

	window := daywindow.MonthOf(year, month, now.Location())
	records, err := s.attendanceRepo.ListByEmployee(ctx, ident.UserID, &window)
	if err != nil {
		return attendance.MySummaryResponse{}, err
	}

	return attendance.MySummaryResponse{
		Month:   month,
		Year:    year,
		Summary: Summarize(records),
	}, nil
}

// Today implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Today(ctx context.Context, ident auth.Identity) (*attendance.AttendanceResponse, error) {
	record, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, ident.UserID, daywindow.Day(s.now()).DateString())
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}

	resp := attendance.NewAttendanceResponse(*record)
	return &resp, nil
}

// ListAll implements attendance.AttendanceService. Filters are optional and
// conjunctive; an unknown employee code yields an empty result, not an error.
func (s *AttendanceServiceImpl) ListAll(ctx context.Context, ident auth.Identity, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query := attendance.RecordQuery{}

	if filter.Status != nil {
		status := attendance.Status(*filter.Status)
		query.Status = &status
	}

	if filter.Date != nil {
		day, _ := validator.IsValidDate(*filter.Date)
		window := daywindow.Day(day)
		query.Window = &window
	}

	if filter.EmployeeCode != nil {
		u, err := s.userRepo.GetByEmployeeCode(ctx, *filter.EmployeeCode)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return []attendance.AttendanceResponse{}, nil
			}
			return nil, fmt.Errorf("failed to resolve employee code: %w", err)
		}
		query.EmployeeID = &u.ID
	}

	records, err := s.attendanceRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	return attendance.NewAttendanceResponses(records), nil
}

// EmployeeHistory implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) EmployeeHistory(ctx context.Context, ident auth.Identity, employeeID string) ([]attendance.AttendanceResponse, error) {
	records, err := s.attendanceRepo.ListByEmployee(ctx, employeeID, nil)
	if err != nil {
		return nil, err
	}
	return attendance.NewAttendanceResponses(records), nil
}

// TeamSummary implements attendance.AttendanceService. Headcount and today's
// records are fetched concurrently.
func (s *AttendanceServiceImpl) TeamSummary(ctx context.Context, ident auth.Identity) (attendance.TeamSummaryResponse, error) {
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

	return TeamSnapshot(todayRecords, totalEmployees), nil
}

// TodayStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TodayStatus(ctx context.Context, ident auth.Identity) ([]attendance.AttendanceResponse, error) {
	today := daywindow.Day(s.now())
	records, err := s.attendanceRepo.List(ctx, attendance.RecordQuery{Window: &today})
	if err != nil {
		return nil, err
	}
	return attendance.NewAttendanceResponses(records), nil
}

// TeamOverview implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TeamOverview(ctx context.Context, ident auth.Identity) ([]attendance.EmployeeRollup, error) {
	records, err := s.attendanceRepo.List(ctx, attendance.RecordQuery{})
	if err != nil {
		return nil, err
	}
	return RollupByEmployee(records), nil
}
