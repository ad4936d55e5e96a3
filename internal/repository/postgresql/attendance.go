package postgresql

import (
	"context"
	"fmt"

	"github.com/gulfhr/payroll-backend-go/internal/domain/attendance"
	"github.com/gulfhr/payroll-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			emp_id, month, department, working_days, present_days, absent_days,
			round_off, ot_hours_normal, ot_hours_friday, ot_hours_holiday,
			dues_earned, comments
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmpID,
		record.Month,
		record.Department,
		record.WorkingDays,
		record.PresentDays,
		record.AbsentDays,
		record.RoundOff,
		record.OTHoursNormal,
		record.OTHoursFriday,
		record.OTHoursHoliday,
		record.DuesEarned,
		record.Comments,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record for %s %s: %w", record.EmpID, record.Month, err)
	}

	return record, nil
}

// ListByMonth implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByMonth(ctx context.Context, month string, department string) ([]attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.emp_id, a.month, a.department, a.working_days, a.present_days,
			a.absent_days, a.round_off, a.ot_hours_normal, a.ot_hours_friday,
			a.ot_hours_holiday, a.dues_earned, a.comments, a.created_at, a.updated_at,
			e.name
		FROM attendance_records a
		LEFT JOIN employees e ON e.emp_id = a.emp_id
		WHERE a.month = $1
	`
	args := []any{month}
	if department != "" {
		query += ` AND LOWER(a.department) = LOWER($2)`
		args = append(args, department)
	}
	query += ` ORDER BY a.emp_id, a.department`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for %s: %w", month, err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var r attendance.Record
		err := rows.Scan(
			&r.ID, &r.EmpID, &r.Month, &r.Department, &r.WorkingDays, &r.PresentDays,
			&r.AbsentDays, &r.RoundOff, &r.OTHoursNormal, &r.OTHoursFriday,
			&r.OTHoursHoliday, &r.DuesEarned, &r.Comments, &r.CreatedAt, &r.UpdatedAt,
			&r.EmployeeName,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
