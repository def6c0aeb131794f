package dashboard

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/attendance"
	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/auth"
	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/user"
	"github.com/SakshiM24/Employee-Attendance-System/internal/pkg/daywindow"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAttendanceRepo struct {
	records []attendance.Attendance
}

func (s *stubAttendanceRepo) CheckIn(_ context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	return record, nil
}

func (s *stubAttendanceRepo) CompleteCheckOut(_ context.Context, _, _ string, _ time.Time, _ decimal.Decimal) (attendance.Attendance, error) {
	return attendance.Attendance{}, nil
}

func (s *stubAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID, date string) (*attendance.Attendance, error) {
	for _, r := range s.records {
		if r.EmployeeID == employeeID && r.Date.Format("2006-01-02") == date {
			cp := r
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *stubAttendanceRepo) ListByEmployee(_ context.Context, employeeID string, window *daywindow.Window) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range s.records {
		if r.EmployeeID != employeeID {
			continue
		}
		if window != nil && !window.Contains(r.Date) {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (s *stubAttendanceRepo) List(_ context.Context, q attendance.RecordQuery) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range s.records {
		if q.Window != nil && !q.Window.Contains(r.Date) {
			continue
		}
		if q.Status != nil && r.Status != *q.Status {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type stubUserRepo struct {
	employeeCount int
}

func (s *stubUserRepo) Create(_ context.Context, u user.User) (user.User, error) { return u, nil }
func (s *stubUserRepo) GetByID(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (s *stubUserRepo) GetByEmail(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (s *stubUserRepo) GetByEmployeeCode(_ context.Context, _ string) (user.User, error) {
	return user.User{}, user.ErrUserNotFound
}
func (s *stubUserRepo) CountEmployees(_ context.Context) (int, error) {
	return s.employeeCount, nil
}

func TestEmployeeDashboard_CapsRecentAtSeven(t *testing.T) {
	now := time.Date(2025, 11, 20, 12, 0, 0, 0, time.UTC)
	repo := &stubAttendanceRepo{}
	for day := 1; day <= 10; day++ {
		repo.records = append(repo.records, attendance.Attendance{
			ID:         "r" + time.Date(2025, 11, day, 0, 0, 0, 0, time.UTC).Format("02"),
			EmployeeID: "u1",
			Date:       time.Date(2025, 11, day, 0, 0, 0, 0, time.UTC),
			Status:     attendance.StatusPresent,
			TotalHours: decimal.NewFromFloat(8),
		})
	}

	svc := &DashboardServiceImpl{
		attendanceRepo: repo,
		userRepo:       &stubUserRepo{},
		now:            func() time.Time { return now },
	}

	resp, err := svc.EmployeeDashboard(context.Background(), auth.Identity{UserID: "u1"})

	require.NoError(t, err)
	assert.Nil(t, resp.TodayStatus)
	assert.Equal(t, 10, resp.Summary.Present)
	assert.Equal(t, "80", resp.Summary.TotalHours.String())
	require.Len(t, resp.Recent, 7)
	// Newest first, so the window starts at the most recent day.
	assert.Equal(t, "2025-11-10", resp.Recent[0].Date)
}

func TestEmployeeDashboard_TodayStatusSet(t *testing.T) {
	now := time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC)
	checkIn := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)
	repo := &stubAttendanceRepo{records: []attendance.Attendance{{
		ID:         "r1",
		EmployeeID: "u1",
		Date:       time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
		CheckIn:    &checkIn,
		Status:     attendance.StatusPresent,
	}}}

	svc := &DashboardServiceImpl{
		attendanceRepo: repo,
		userRepo:       &stubUserRepo{},
		now:            func() time.Time { return now },
	}

	resp, err := svc.EmployeeDashboard(context.Background(), auth.Identity{UserID: "u1"})

	require.NoError(t, err)
	require.NotNil(t, resp.TodayStatus)
	assert.Equal(t, "r1", resp.TodayStatus.ID)
}

func TestManagerDashboard_Snapshot(t *testing.T) {
	now := time.Date(2025, 11, 3, 12, 0, 0, 0, time.UTC)
	repo := &stubAttendanceRepo{records: []attendance.Attendance{
		{EmployeeID: "u1", Date: time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC), Status: attendance.StatusPresent},
		{EmployeeID: "u2", Date: time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC), Status: attendance.StatusLate},
	}}

	svc := &DashboardServiceImpl{
		attendanceRepo: repo,
		userRepo:       &stubUserRepo{employeeCount: 5},
		now:            func() time.Time { return now },
	}

	resp, err := svc.ManagerDashboard(context.Background(), auth.Identity{UserID: "m1"})

	require.NoError(t, err)
	assert.Equal(t, 5, resp.TotalEmployees)
	assert.Equal(t, 1, resp.PresentToday)
	assert.Equal(t, 1, resp.LateToday)
	assert.Equal(t, 4, resp.AbsentToday)
}
