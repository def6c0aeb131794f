package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/attendance"
	"github.com/SakshiM24/Employee-Attendance-System/internal/pkg/database"
	"github.com/SakshiM24/Employee-Attendance-System/internal/pkg/daywindow"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, employee_id, date, check_in, check_out, status, total_hours, created_at, updated_at`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var a attendance.Attendance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.Date, &a.CheckIn, &a.CheckOut,
		&a.Status, &a.TotalHours, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// CheckIn implements attendance.AttendanceRepository. The upsert claims the
// (employee, day) slot in one statement: a pre-existing row is only updated
// while its check_in is still NULL, so two concurrent check-ins cannot both
// return a row.
func (r *attendanceRepository) CheckIn(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (id, employee_id, date, check_in, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (employee_id, date) DO UPDATE
		SET check_in = EXCLUDED.check_in,
		    status = EXCLUDED.status,
		    updated_at = NOW()
		WHERE attendances.check_in IS NULL
		RETURNING ` + attendanceColumns

	a, err := scanAttendance(q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Date.Format("2006-01-02"),
		record.CheckIn,
		record.Status,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to check in: %w", err)
	}

	return a, nil
}

// CompleteCheckOut implements attendance.AttendanceRepository. The update is
// conditional on check_out still being NULL; a lost race surfaces as
// ErrAlreadyCheckedOut, never a double write.
func (r *attendanceRepository) CompleteCheckOut(ctx context.Context, employeeID, date string, checkOut time.Time, hours decimal.Decimal) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET check_out = $3,
		    total_hours = $4,
		    updated_at = NOW()
		WHERE employee_id = $1
		  AND date = $2
		  AND check_in IS NOT NULL
		  AND check_out IS NULL
		RETURNING ` + attendanceColumns

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date, checkOut, hours))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
		}
		return attendance.Attendance{}, fmt.Errorf("failed to check out: %w", err)
	}

	return a, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1 AND date = $2
		LIMIT 1
	`

	a, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &a, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByEmployee(ctx context.Context, employeeID string, window *daywindow.Window) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	conds := []cond{
		{expr: "employee_id = $%d", arg: employeeID},
	}
	if window != nil {
		conds = append(conds,
			cond{expr: "date >= $%d", arg: window.Start.Format("2006-01-02")},
			cond{expr: "date <= $%d", arg: window.End.Format("2006-01-02")},
		)
	}
	where, args := buildWhere(conds, 1)

	query := fmt.Sprintf(`
		SELECT `+attendanceColumns+`
		FROM attendances
		WHERE %s
		ORDER BY date DESC
	`, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// List implements attendance.AttendanceRepository. Employee fields come along
// via a join for the manager views and the CSV export.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.RecordQuery) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	var conds []cond
	if filter.EmployeeID != nil {
		conds = append(conds, cond{expr: "a.employee_id = $%d", arg: *filter.EmployeeID})
	}
	if filter.Status != nil {
		conds = append(conds, cond{expr: "a.status = $%d", arg: *filter.Status})
	}
	if filter.Window != nil {
		conds = append(conds,
			cond{expr: "a.date >= $%d", arg: filter.Window.Start.Format("2006-01-02")},
			cond{expr: "a.date <= $%d", arg: filter.Window.End.Format("2006-01-02")},
		)
	}
	where, args := buildWhere(conds, 1)

	query := fmt.Sprintf(`
		SELECT
			a.id, a.employee_id, a.date, a.check_in, a.check_out,
			a.status, a.total_hours, a.created_at, a.updated_at,
			u.employee_code, u.name, u.email, u.department
		FROM attendances a
		LEFT JOIN users u ON u.id = a.employee_id
		WHERE %s
		ORDER BY a.date DESC, u.employee_code ASC
	`, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		err := rows.Scan(
			&a.ID, &a.EmployeeID, &a.Date, &a.CheckIn, &a.CheckOut,
			&a.Status, &a.TotalHours, &a.CreatedAt, &a.UpdatedAt,
			&a.EmployeeCode, &a.EmployeeName, &a.EmployeeEmail, &a.Department,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
