package employee

import (
	"context"
	"fmt"

	"github.com/gulfhr/payroll-backend-go/internal/domain/employee"
	"github.com/gulfhr/payroll-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	joining, _ := validator.IsValidDate(req.DateOfJoining)

	foodType := employee.FoodAllowanceType(req.FoodAllowanceType)
	if req.FoodAllowanceType == "" {
		foodType = employee.FoodAllowanceNone
	}

	emp := employee.Employee{
		EmpID:               req.EmpID,
		Name:                req.Name,
		Department:          req.Department,
		Category:            employee.Category(req.Category),
		Accommodation:       req.Accommodation,
		BasicSalary:         req.BasicSalary,
		OtherAllowance:      req.OtherAllowance,
		FoodAllowanceAmount: req.FoodAllowanceAmount,
		FoodAllowanceType:   foodType,
		WorkingHoursPerDay:  req.WorkingHoursPerDay,
		OTRateNormal:        req.OTRateNormal,
		OTRateFriday:        req.OTRateFriday,
		OTRateHoliday:       req.OTRateHoliday,
		DateOfJoining:       joining,
		Status:              employee.StatusActive,
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

func (s *EmployeeServiceImpl) GetByEmpID(ctx context.Context, empID string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByEmpID(ctx, empID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, department string) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx, department)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, employee.ToResponse(emp))
	}
	return result, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmpID(ctx, req.EmpID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	applyUpdate(&emp, req)

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to update employee %s: %w", req.EmpID, err)
	}

	return employee.ToResponse(emp), nil
}

func applyUpdate(emp *employee.Employee, req employee.UpdateEmployeeRequest) {
	if req.Name != nil {
		emp.Name = *req.Name
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Category != nil {
		emp.Category = employee.Category(*req.Category)
	}
	if req.Accommodation != nil {
		emp.Accommodation = *req.Accommodation
	}
	if req.BasicSalary != nil {
		emp.BasicSalary = *req.BasicSalary
	}
	if req.OtherAllowance != nil {
		emp.OtherAllowance = *req.OtherAllowance
	}
	if req.FoodAllowanceAmount != nil {
		emp.FoodAllowanceAmount = *req.FoodAllowanceAmount
	}
	if req.FoodAllowanceType != nil {
		emp.FoodAllowanceType = employee.FoodAllowanceType(*req.FoodAllowanceType)
	}
	if req.WorkingHoursPerDay != nil {
		emp.WorkingHoursPerDay = *req.WorkingHoursPerDay
	}
	if req.OTRateNormal != nil {
		emp.OTRateNormal = *req.OTRateNormal
	}
	if req.OTRateFriday != nil {
		emp.OTRateFriday = *req.OTRateFriday
	}
	if req.OTRateHoliday != nil {
		emp.OTRateHoliday = *req.OTRateHoliday
	}
	if req.Status != nil {
		emp.Status = employee.Status(*req.Status)
	}
}
