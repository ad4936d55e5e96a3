package employee

import "context"

// EmployeeRepository defines data access methods for employee contract data.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByEmpID retrieves an employee by its business key
	GetByEmpID(ctx context.Context, empID string) (Employee, error)

	// List retrieves all employees, optionally filtered by department
	List(ctx context.Context, department string) ([]Employee, error)

	// ListActive retrieves employees with active status only
	ListActive(ctx context.Context) ([]Employee, error)

	Update(ctx context.Context, emp Employee) error
}
