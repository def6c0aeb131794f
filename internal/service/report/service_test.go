package report

import (
	"strings"
	"testing"
	"time"

	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/attendance"
	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCSV_HeaderOnlyWhenEmpty(t *testing.T) {
	out := string(buildCSV(nil))

	assert.Equal(t, report.CSVHeader+"\n", out)
}

func TestBuildCSV_Rows(t *testing.T) {
	code := "EMP001"
	name := "Alice Smith"
	email := "alice@example.com"
	dept := "Engineering"
	checkIn := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 11, 3, 17, 30, 0, 0, time.UTC)

	records := []attendance.Attendance{
		{
			EmployeeCode:  &code,
			EmployeeName:  &name,
			EmployeeEmail: &email,
			Department:    &dept,
			Date:          time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
			CheckIn:       &checkIn,
			CheckOut:      &checkOut,
			Status:        attendance.StatusPresent,
			TotalHours:    decimal.NewFromFloat(8.5),
		},
	}

	lines := strings.Split(strings.TrimRight(string(buildCSV(records)), "\n"), "\n")

	require.Len(t, lines, 2)
	assert.Equal(t, report.CSVHeader, lines[0])
	assert.Equal(t, `EMP001,"Alice Smith",alice@example.com,Engineering,2025-11-03,2025-11-03T09:00:00Z,2025-11-03T17:30:00Z,present,8.5`, lines[1])
}

func TestBuildCSV_MissingFieldsAndOpenRecord(t *testing.T) {
	checkIn := time.Date(2025, 11, 3, 9, 0, 0, 0, time.UTC)

	records := []attendance.Attendance{
		{
			Date:    time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
			CheckIn: &checkIn,
			Status:  attendance.StatusPresent,
		},
	}

	lines := strings.Split(strings.TrimRight(string(buildCSV(records)), "\n"), "\n")

	require.Len(t, lines, 2)
	// No joined employee row, no check-out yet, zero hours render as 0.
	assert.Equal(t, `,"",,,2025-11-03,2025-11-03T09:00:00Z,,present,0`, lines[1])
}

func TestBuildCSV_EscapesQuotesInName(t *testing.T) {
	name := `Bob "Bobby" Jones`

	records := []attendance.Attendance{
		{
			EmployeeName: &name,
			Date:         time.Date(2025, 11, 3, 0, 0, 0, 0, time.UTC),
			Status:       attendance.StatusAbsent,
		},
	}

	lines := strings.Split(strings.TrimRight(string(buildCSV(records)), "\n"), "\n")

	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], `"Bob ""Bobby"" Jones"`)
}
