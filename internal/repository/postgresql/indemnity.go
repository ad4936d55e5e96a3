package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gulfhr/payroll-backend-go/internal/domain/indemnity"
	"github.com/gulfhr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type indemnityRepositoryImpl struct {
	db *database.DB
}

func NewIndemnityRepository(db *database.DB) indemnity.IndemnityRepository {
	return &indemnityRepositoryImpl{db: db}
}

// UpsertCalculation implements indemnity.IndemnityRepository. The upsert
// only touches years and amount; an existing status (notably Paid) survives
// every recalculation.
func (i *indemnityRepositoryImpl) UpsertCalculation(ctx context.Context, empID string, years, amount decimal.Decimal) (indemnity.Record, error) {
	q := GetQuerier(ctx, i.db)

	query := `
		INSERT INTO indemnity_records (emp_id, years_of_service, indemnity_amount, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (emp_id) DO UPDATE
		SET years_of_service = EXCLUDED.years_of_service,
			indemnity_amount = EXCLUDED.indemnity_amount,
			updated_at = NOW()
		RETURNING id, emp_id, years_of_service, indemnity_amount, status, created_at, updated_at
	`

	var rec indemnity.Record
	err := q.QueryRow(ctx, query, empID, years, amount, indemnity.StatusActive).Scan(
		&rec.ID, &rec.EmpID, &rec.YearsOfService, &rec.IndemnityAmount,
		&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return indemnity.Record{}, fmt.Errorf("failed to upsert indemnity for %s: %w", empID, err)
	}

	return rec, nil
}

// GetByEmpID implements indemnity.IndemnityRepository.
func (i *indemnityRepositoryImpl) GetByEmpID(ctx context.Context, empID string) (indemnity.Record, error) {
	q := GetQuerier(ctx, i.db)

	query := `
		SELECT r.id, r.emp_id, r.years_of_service, r.indemnity_amount, r.status,
			r.created_at, r.updated_at, e.name, e.department
		FROM indemnity_records r
		LEFT JOIN employees e ON e.emp_id = r.emp_id
		WHERE r.emp_id = $1
	`

	var rec indemnity.Record
	err := q.QueryRow(ctx, query, empID).Scan(
		&rec.ID, &rec.EmpID, &rec.YearsOfService, &rec.IndemnityAmount, &rec.Status,
		&rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName, &rec.Department,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return indemnity.Record{}, indemnity.ErrIndemnityNotFound
		}
		return indemnity.Record{}, fmt.Errorf("failed to get indemnity for %s: %w", empID, err)
	}

	return rec, nil
}

// List implements indemnity.IndemnityRepository.
func (i *indemnityRepositoryImpl) List(ctx context.Context) ([]indemnity.Record, error) {
	q := GetQuerier(ctx, i.db)

	query := `
		SELECT r.id, r.emp_id, r.years_of_service, r.indemnity_amount, r.status,
			r.created_at, r.updated_at, e.name, e.department
		FROM indemnity_records r
		LEFT JOIN employees e ON e.emp_id = r.emp_id
		ORDER BY r.emp_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list indemnity records: %w", err)
	}
	defer rows.Close()

	var records []indemnity.Record
	for rows.Next() {
		var rec indemnity.Record
		err := rows.Scan(
			&rec.ID, &rec.EmpID, &rec.YearsOfService, &rec.IndemnityAmount, &rec.Status,
			&rec.CreatedAt, &rec.UpdatedAt, &rec.EmployeeName, &rec.Department,
		)
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

// MarkPaid implements indemnity.IndemnityRepository.
func (i *indemnityRepositoryImpl) MarkPaid(ctx context.Context, empID string) (indemnity.Record, error) {
	q := GetQuerier(ctx, i.db)

	query := `
		UPDATE indemnity_records
		SET status = $1, updated_at = NOW()
		WHERE emp_id = $2
		RETURNING id, emp_id, years_of_service, indemnity_amount, status, created_at, updated_at
	`

	var rec indemnity.Record
	err := q.QueryRow(ctx, query, indemnity.StatusPaid, empID).Scan(
		&rec.ID, &rec.EmpID, &rec.YearsOfService, &rec.IndemnityAmount,
		&rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return indemnity.Record{}, indemnity.ErrIndemnityNotFound
		}
		return indemnity.Record{}, fmt.Errorf("failed to mark indemnity paid for %s: %w", empID, err)
	}

	return rec, nil
}
