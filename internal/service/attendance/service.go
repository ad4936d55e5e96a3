package attendance

import (
	"context"
	"fmt"

	"github.com/gulfhr/payroll-backend-go/internal/domain/attendance"
	"github.com/gulfhr/payroll-backend-go/internal/domain/employee"
	"github.com/gulfhr/payroll-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *AttendanceServiceImpl) Create(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	// attendance rows must reference a known employee
	if _, err := s.employeeRepo.GetByEmpID(ctx, req.EmpID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	record := attendance.Record{
		EmpID:          req.EmpID,
		Month:          req.Month,
		Department:     req.Department,
		WorkingDays:    req.WorkingDays,
		PresentDays:    req.PresentDays,
		AbsentDays:     req.AbsentDays,
		RoundOff:       req.RoundOff,
		OTHoursNormal:  req.OTHoursNormal,
		OTHoursFriday:  req.OTHoursFriday,
		OTHoursHoliday: req.OTHoursHoliday,
		DuesEarned:     req.DuesEarned,
		Comments:       req.Comments,
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to record attendance: %w", err)
	}

	return attendance.ToResponse(created), nil
}

func (s *AttendanceServiceImpl) ListByMonth(ctx context.Context, month string, department string) ([]attendance.AttendanceResponse, error) {
	if !validator.IsValidMonth(month) {
		return nil, attendance.ErrInvalidMonth
	}

	records, err := s.attendanceRepo.ListByMonth(ctx, month, department)
	if err != nil {
		return nil, err
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, r := range records {
		result = append(result, attendance.ToResponse(r))
	}
	return result, nil
}
