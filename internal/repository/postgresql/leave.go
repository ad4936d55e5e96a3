package postgresql

import (
	"context"
	"fmt"

	"github.com/gulfhr/payroll-backend-go/internal/domain/leave"
	"github.com/gulfhr/payroll-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

// ListByMonth implements leave.LeaveRepository.
func (l *leaveRepositoryImpl) ListByMonth(ctx context.Context, month string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT lv.id, lv.emp_id, lv.month, lv.leave_type, lv.from_date, lv.to_date,
			lv.days, lv.comments, lv.created_at, e.name
		FROM leaves lv
		LEFT JOIN employees e ON e.emp_id = lv.emp_id
		WHERE lv.month = $1
		ORDER BY lv.emp_id, lv.from_date
	`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves for %s: %w", month, err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		var lv leave.Leave
		err := rows.Scan(
			&lv.ID, &lv.EmpID, &lv.Month, &lv.LeaveType, &lv.FromDate, &lv.ToDate,
			&lv.Days, &lv.Comments, &lv.CreatedAt, &lv.EmployeeName,
		)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, lv)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return leaves, nil
}
