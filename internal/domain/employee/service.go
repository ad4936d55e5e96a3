package employee

import "context"

// EmployeeService defines business logic for employee contract data entry.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByEmpID(ctx context.Context, empID string) (EmployeeResponse, error)
	List(ctx context.Context, department string) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
}
