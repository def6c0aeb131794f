package attendance

import (
	"testing"
	"time"

	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.Present)
	assert.Equal(t, 0, s.Absent)
	assert.Equal(t, 0, s.Late)
	assert.Equal(t, 0, s.HalfDay)
	assert.True(t, s.TotalHours.IsZero())
}

func TestSummarize_CountsAndHours(t *testing.T) {
	records := []attendance.Attendance{
		{Status: attendance.StatusPresent, TotalHours: decimal.NewFromFloat(8)},
		{Status: attendance.StatusLate, TotalHours: decimal.NewFromFloat(7.5)},
		{Status: attendance.StatusPresent, TotalHours: decimal.NewFromFloat(8)},
		{Status: attendance.StatusAbsent},
	}

	s := Summarize(records)

	assert.Equal(t, 2, s.Present)
	assert.Equal(t, 1, s.Late)
	assert.Equal(t, 1, s.Absent)
	assert.Equal(t, 0, s.HalfDay)
	assert.Equal(t, "23.5", s.TotalHours.String())
}

func TestTeamSnapshot_AbsentByHeadcountSubtraction(t *testing.T) {
	records := []attendance.Attendance{
		{Status: attendance.StatusPresent},
		{Status: attendance.StatusPresent},
		{Status: attendance.StatusPresent},
		{Status: attendance.StatusLate},
	}

	snap := TeamSnapshot(records, 5)

	assert.Equal(t, 5, snap.TotalEmployees)
	assert.Equal(t, 3, snap.PresentToday)
	assert.Equal(t, 1, snap.LateToday)
	// Late and recordless employees both land in absent; only explicit
	// present records reduce the count.
	assert.Equal(t, 2, snap.AbsentToday)
}

func TestRollupByEmployee(t *testing.T) {
	codeA, codeB := "EMP001", "EMP002"
	nameA, nameB := "Alice", "Bob"

	records := []attendance.Attendance{
		{
			EmployeeID:   "u2",
			EmployeeCode: &codeB,
			EmployeeName: &nameB,
			Date:         time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
			Status:       attendance.StatusPresent,
			TotalHours:   decimal.NewFromFloat(8),
		},
		{
			EmployeeID:   "u1",
			EmployeeCode: &codeA,
			EmployeeName: &nameA,
			Date:         time.Date(2025, 11, 4, 0, 0, 0, 0, time.UTC),
			Status:       attendance.StatusPresent,
			TotalHours:   decimal.NewFromFloat(8.25),
		},
		{
			EmployeeID:   "u1",
			EmployeeCode: &codeA,
			EmployeeName: &nameA,
			Date:         time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
			Status:       attendance.StatusPresent,
			TotalHours:   decimal.NewFromFloat(7.75),
		},
	}

	rollups := RollupByEmployee(records)

	assert.Len(t, rollups, 2)

	assert.Equal(t, "EMP001", rollups[0].EmployeeCode)
	assert.Equal(t, "Alice", rollups[0].EmployeeName)
	assert.Equal(t, 2, rollups[0].DaysRecorded)
	assert.Equal(t, "16", rollups[0].TotalHours.String())
	assert.Equal(t, "2025-11-04", rollups[0].LastActiveDate)

	assert.Equal(t, "EMP002", rollups[1].EmployeeCode)
	assert.Equal(t, 1, rollups[1].DaysRecorded)
	assert.Equal(t, "2025-11-03", rollups[1].LastActiveDate)
}

func TestWorkHours_RoundsToTwoDecimals(t *testing.T) {
	in := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		out  time.Time
		want string
	}{
		{"half hour", time.Date(2025, 11, 3, 17, 30, 0, 0, time.UTC), "8.5"},
		{"uneven minutes", time.Date(2025, 11, 3, 17, 10, 0, 0, time.UTC), "8.17"},
		{"full day", time.Date(2025, 11, 3, 17, 0, 0, 0, time.UTC), "8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, workHours(in, tt.out).String())
		})
	}
}
