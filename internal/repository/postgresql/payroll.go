package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/gulfhr/payroll-backend-go/internal/domain/payroll"
	"github.com/gulfhr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// DeleteByMonth implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) DeleteByMonth(ctx context.Context, month string, empIDs []string) error {
	q := GetQuerier(ctx, p.db)

	query := `DELETE FROM payroll_records WHERE month = $1`
	args := []any{month}
	if len(empIDs) > 0 {
		query += ` AND emp_id = ANY($2)`
		args = append(args, empIDs)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to delete payroll rows for %s: %w", month, err)
	}

	return nil
}

// BulkInsert implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) BulkInsert(ctx context.Context, records []payroll.Record) ([]payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO payroll_records (
			id, emp_id, month, basic_salary, other_allowance, ot_amount,
			food_allowance, days_worked, gross_salary, deductions, dues_earned,
			net_salary, comments
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING created_at, updated_at
	`

	inserted := make([]payroll.Record, 0, len(records))
	for _, rec := range records {
		if rec.ID == "" {
			rec.ID = uuid.New().String()
		}
		err := q.QueryRow(ctx, query,
			rec.ID,
			rec.EmpID,
			rec.Month,
			rec.BasicSalary,
			rec.OtherAllowance,
			rec.OTAmount,
			rec.FoodAllowance,
			rec.DaysWorked,
			rec.GrossSalary,
			rec.Deductions,
			rec.DuesEarned,
			rec.NetSalary,
			rec.Comments,
		).Scan(&rec.CreatedAt, &rec.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to insert payroll row for %s %s: %w", rec.EmpID, rec.Month, err)
		}
		inserted = append(inserted, rec)
	}

	return inserted, nil
}

const payrollSelect = `
	SELECT p.id, p.emp_id, p.month, p.basic_salary, p.other_allowance, p.ot_amount,
		p.food_allowance, p.days_worked, p.gross_salary, p.deductions, p.dues_earned,
		p.net_salary, p.comments, p.created_at, p.updated_at,
		e.name, e.department
	FROM payroll_records p
	LEFT JOIN employees e ON e.emp_id = p.emp_id
`

func scanPayroll(row pgx.Row) (payroll.Record, error) {
	var rec payroll.Record
	err := row.Scan(
		&rec.ID, &rec.EmpID, &rec.Month, &rec.BasicSalary, &rec.OtherAllowance, &rec.OTAmount,
		&rec.FoodAllowance, &rec.DaysWorked, &rec.GrossSalary, &rec.Deductions, &rec.DuesEarned,
		&rec.NetSalary, &rec.Comments, &rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.Department,
	)
	return rec, err
}

// GetByID implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) GetByID(ctx context.Context, id string) (payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	rec, err := scanPayroll(q.QueryRow(ctx, payrollSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to get payroll row %s: %w", id, err)
	}

	return rec, nil
}

// ListByMonth implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) ListByMonth(ctx context.Context, month string) ([]payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	rows, err := q.Query(ctx, payrollSelect+` WHERE p.month = $1 ORDER BY p.emp_id`, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll for %s: %w", month, err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		rec, err := scanPayroll(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// UpdateEditable implements payroll.PayrollRepository.
func (p *payrollRepositoryImpl) UpdateEditable(ctx context.Context, rec payroll.Record) (payroll.Record, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE payroll_records
		SET food_allowance = $1, deductions = $2, comments = $3,
			gross_salary = $4, net_salary = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rec.FoodAllowance,
		rec.Deductions,
		rec.Comments,
		rec.GrossSalary,
		rec.NetSalary,
		rec.ID,
	).Scan(&rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.Record{}, payroll.ErrPayrollRecordNotFound
		}
		return payroll.Record{}, fmt.Errorf("failed to update payroll row %s: %w", rec.ID, err)
	}

	return rec, nil
}
