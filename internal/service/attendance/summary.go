package attendance

import (
	"sort"
	"time"

	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// Summarize folds records into per-status counts and accumulated hours in a
// single pass. The total is rounded to 2 decimals at the end.
func Summarize(records []attendance.Attendance) attendance.Summary {
	total := decimal.Zero
	summary := attendance.Summary{}

	for _, r := range records {
		switch r.Status {
		case attendance.StatusPresent:
			summary.Present++
		case attendance.StatusAbsent:
			summary.Absent++
		case attendance.StatusLate:
			summary.Late++
		case attendance.StatusHalfDay:
			summary.HalfDay++
		}
		total = total.Add(r.TotalHours)
	}

	summary.TotalHours = total.Round(2)
	return summary
}

// TeamSnapshot derives the manager's today counters from today's records and
// the employee headcount. Absence is headcount minus present: an employee
// with no record today is absent without any record saying so.
func TeamSnapshot(todayRecords []attendance.Attendance, totalEmployees int) attendance.TeamSummaryResponse {
	counts := Summarize(todayRecords)
	return attendance.TeamSummaryResponse{
		TotalEmployees: totalEmployees,
		PresentToday:   counts.Present,
		LateToday:      counts.Late,
		AbsentToday:    totalEmployees - counts.Present,
	}
}

// RollupByEmployee groups joined records by employee and accumulates days
// recorded, total hours and the most recent record date. Rows come back
// sorted by employee code.
func RollupByEmployee(records []attendance.Attendance) []attendance.EmployeeRollup {
	type acc struct {
		rollup   attendance.EmployeeRollup
		lastSeen time.Time
	}

	byEmployee := make(map[string]*acc)
	for _, r := range records {
		a, ok := byEmployee[r.EmployeeID]
		if !ok {
			a = &acc{rollup: attendance.EmployeeRollup{
				EmployeeID: r.EmployeeID,
				TotalHours: decimal.Zero,
			}}
			if r.EmployeeCode != nil {
				a.rollup.EmployeeCode = *r.EmployeeCode
			}
			if r.EmployeeName != nil {
				a.rollup.EmployeeName = *r.EmployeeName
			}
			a.rollup.Department = r.Department
			byEmployee[r.EmployeeID] = a
		}

		a.rollup.DaysRecorded++
		a.rollup.TotalHours = a.rollup.TotalHours.Add(r.TotalHours)
		if r.Date.After(a.lastSeen) {
			a.lastSeen = r.Date
		}
	}

	rollups := make([]attendance.EmployeeRollup, 0, len(byEmployee))
	for _, a := range byEmployee {
		a.rollup.TotalHours = a.rollup.TotalHours.Round(2)
		a.rollup.LastActiveDate = a.lastSeen.Format("2006-01-02")
		rollups = append(rollups, a.rollup)
	}

	sort.Slice(rollups, func(i, j int) bool {
		if rollups[i].EmployeeCode != rollups[j].EmployeeCode {
			return rollups[i].EmployeeCode < rollups[j].EmployeeCode
		}
		return rollups[i].EmployeeID < rollups[j].EmployeeID
	})
	return rollups
}

// workHours is the checkout derivation: (out - in) in hours, 2 decimals.
func workHours(checkIn, checkOut time.Time) decimal.Decimal {
	return decimal.NewFromFloat(checkOut.Sub(checkIn).Hours()).Round(2)
}
