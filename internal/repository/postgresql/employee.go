package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gulfhr/payroll-backend-go/internal/domain/employee"
	"github.com/gulfhr/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	id, emp_id, name, department, category, accommodation,
	basic_salary, other_allowance, food_allowance_amount, food_allowance_type,
	working_hours_per_day, ot_rate_normal, ot_rate_friday, ot_rate_holiday,
	date_of_joining, status, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmpID, &emp.Name, &emp.Department, &emp.Category, &emp.Accommodation,
		&emp.BasicSalary, &emp.OtherAllowance, &emp.FoodAllowanceAmount, &emp.FoodAllowanceType,
		&emp.WorkingHoursPerDay, &emp.OTRateNormal, &emp.OTRateFriday, &emp.OTRateHoliday,
		&emp.DateOfJoining, &emp.Status, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			emp_id, name, department, category, accommodation,
			basic_salary, other_allowance, food_allowance_amount, food_allowance_type,
			working_hours_per_day, ot_rate_normal, ot_rate_friday, ot_rate_holiday,
			date_of_joining, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.EmpID,
		emp.Name,
		emp.Department,
		emp.Category,
		emp.Accommodation,
		emp.BasicSalary,
		emp.OtherAllowance,
		emp.FoodAllowanceAmount,
		emp.FoodAllowanceType,
		emp.WorkingHoursPerDay,
		emp.OTRateNormal,
		emp.OTRateFriday,
		emp.OTRateHoliday,
		emp.DateOfJoining,
		emp.Status,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return employee.Employee{}, employee.ErrEmpIDExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee %s: %w", emp.EmpID, err)
	}

	return emp, nil
}

// GetByEmpID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmpID(ctx context.Context, empID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE emp_id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, empID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", empID, err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, department string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees`
	args := []any{}
	if department != "" {
		query += ` WHERE LOWER(department) = LOWER($1)`
		args = append(args, department)
	}
	query += ` ORDER BY emp_id`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// ListActive implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE status = $1 ORDER BY emp_id`

	rows, err := q.Query(ctx, query, employee.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET name = $1, department = $2, category = $3, accommodation = $4,
			basic_salary = $5, other_allowance = $6,
			food_allowance_amount = $7, food_allowance_type = $8,
			working_hours_per_day = $9,
			ot_rate_normal = $10, ot_rate_friday = $11, ot_rate_holiday = $12,
			date_of_joining = $13, status = $14, updated_at = NOW()
		WHERE emp_id = $15
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		emp.Name,
		emp.Department,
		emp.Category,
		emp.Accommodation,
		emp.BasicSalary,
		emp.OtherAllowance,
		emp.FoodAllowanceAmount,
		emp.FoodAllowanceType,
		emp.WorkingHoursPerDay,
		emp.OTRateNormal,
		emp.OTRateFriday,
		emp.OTRateHoliday,
		emp.DateOfJoining,
		emp.Status,
		emp.EmpID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee %s: %w", emp.EmpID, err)
	}

	return nil
}
