package indemnity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gulfhr/payroll-backend-go/internal/domain/employee"
	"github.com/gulfhr/payroll-backend-go/internal/domain/indemnity"
)

type IndemnityServiceImpl struct {
	indemnityRepo indemnity.IndemnityRepository
	employeeRepo  employee.EmployeeRepository

	// now is injected so recalculation stays deterministic under test.
	now func() time.Time
}

func NewIndemnityService(
	indemnityRepo indemnity.IndemnityRepository,
	employeeRepo employee.EmployeeRepository,
	now func() time.Time,
) indemnity.IndemnityService {
	if now == nil {
		now = time.Now
	}
	return &IndemnityServiceImpl{
		indemnityRepo: indemnityRepo,
		employeeRepo:  employeeRepo,
		now:           now,
	}
}

func (s *IndemnityServiceImpl) Recalculate(ctx context.Context) ([]indemnity.RecordResponse, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}

	now := s.now()
	result := make([]indemnity.RecordResponse, 0, len(employees))
	for _, emp := range employees {
		years := YearsOfService(emp.DateOfJoining, now)
		amount := Amount(emp.BasicSalary, years)

		record, err := s.indemnityRepo.UpsertCalculation(ctx, emp.EmpID, years, amount)
		if err != nil {
			return nil, fmt.Errorf("failed to upsert indemnity for %s: %w", emp.EmpID, err)
		}
		result = append(result, indemnity.ToResponse(record))
	}

	slog.Info("indemnity recalculated", "employees", len(result))

	return result, nil
}

func (s *IndemnityServiceImpl) List(ctx context.Context) ([]indemnity.RecordResponse, error) {
	records, err := s.indemnityRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return indemnity.ToResponses(records), nil
}

func (s *IndemnityServiceImpl) MarkPaid(ctx context.Context, empID string) (indemnity.RecordResponse, error) {
	record, err := s.indemnityRepo.MarkPaid(ctx, empID)
	if err != nil {
		return indemnity.RecordResponse{}, err
	}
	return indemnity.ToResponse(record), nil
}
