package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gulfhr/payroll-backend-go/internal/domain/attendance"
	"github.com/gulfhr/payroll-backend-go/internal/domain/employee"
	"github.com/gulfhr/payroll-backend-go/internal/domain/payroll"
	"github.com/gulfhr/payroll-backend-go/internal/pkg/database"
	"github.com/gulfhr/payroll-backend-go/internal/pkg/validator"
	"github.com/gulfhr/payroll-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository

	// runInTx wraps the delete-then-insert regeneration in one transaction
	// so readers never observe an empty-then-partial month.
	runInTx func(ctx context.Context, fn func(txCtx context.Context) error) error
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		runInTx: func(ctx context.Context, fn func(txCtx context.Context) error) error {
			return postgresql.WithTransaction(ctx, db, fn)
		},
	}
}

// Generate recomputes payroll for a month as a full replace: every existing
// row for the month (scoped to the department's employees when a filter is
// set) is deleted, then fresh rows are bulk-inserted. Manual edits to the
// month are lost on regeneration.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GenerateRequest) (payroll.GenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GenerateResponse{}, err
	}

	employees, err := s.employeeRepo.List(ctx, "")
	if err != nil {
		return payroll.GenerateResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	records, err := s.attendanceRepo.ListByMonth(ctx, req.Month, req.Department)
	if err != nil {
		return payroll.GenerateResponse{}, fmt.Errorf("failed to list attendance for %s: %w", req.Month, err)
	}
	byEmp := make(map[string][]attendance.Record)
	for _, r := range records {
		byEmp[r.EmpID] = append(byEmp[r.EmpID], r)
	}

	warnings := make([]payroll.Warning, 0)
	var rows []payroll.Record
	var scopeEmpIDs []string

	for _, emp := range employees {
		if emp.Status != employee.StatusActive {
			continue
		}
		if req.Department != "" && !strings.EqualFold(emp.Department, req.Department) {
			continue
		}
		if req.Department != "" {
			// Scoped runs must still clear stale rows for employees that
			// end up skipped this time.
			scopeEmpIDs = append(scopeEmpIDs, emp.EmpID)
		}

		slices := byEmp[emp.EmpID]
		if len(slices) == 0 {
			warnings = append(warnings, payroll.Warning{
				EmpID: emp.EmpID, Name: emp.Name,
				Reason: fmt.Sprintf("no attendance records for %s", req.Month),
			})
			continue
		}

		sum := attendance.Summarize(slices)
		if !sum.EffectivePresentDays().IsPositive() {
			warnings = append(warnings, payroll.Warning{
				EmpID: emp.EmpID, Name: emp.Name,
				Reason: "zero present days",
			})
			continue
		}

		rec, err := buildRecord(emp, sum, req.Month)
		if err != nil {
			warnings = append(warnings, payroll.Warning{
				EmpID: emp.EmpID, Name: emp.Name,
				Reason: err.Error(),
			})
			continue
		}
		rows = append(rows, rec)
	}

	if len(rows) == 0 && len(warnings) == 0 {
		return payroll.GenerateResponse{}, payroll.ErrNothingToGenerate
	}

	var created []payroll.Record
	err = s.runInTx(ctx, func(txCtx context.Context) error {
		if err := s.payrollRepo.DeleteByMonth(txCtx, req.Month, scopeEmpIDs); err != nil {
			return fmt.Errorf("failed to delete payroll for %s: %w", req.Month, err)
		}
		created, err = s.payrollRepo.BulkInsert(txCtx, rows)
		if err != nil {
			return fmt.Errorf("failed to insert payroll for %s: %w", req.Month, err)
		}
		return nil
	})
	if err != nil {
		return payroll.GenerateResponse{}, err
	}

	slog.Info("payroll generated",
		"month", req.Month,
		"department", req.Department,
		"created", len(created),
		"skipped", len(warnings),
	)

	return payroll.GenerateResponse{
		Month:    req.Month,
		Created:  payroll.ToResponses(created),
		Warnings: warnings,
	}, nil
}

// buildRecord turns one employee's contract and attendance summary into a
// payroll row. Errors here fail the single employee, never the batch.
func buildRecord(emp employee.Employee, sum attendance.Summary, month string) (payroll.Record, error) {
	if emp.BasicSalary.IsNegative() {
		return payroll.Record{}, fmt.Errorf("invalid basic salary %s", emp.BasicSalary)
	}

	days := sum.EffectivePresentDays()

	basic := Prorate(emp.BasicSalary, days)
	other := Prorate(emp.OtherAllowance, days)
	food := FoodAllowance(emp, days)
	otPay := OvertimePay(emp, RatesFor(emp), sum)

	gross := basic.Add(other).Add(food).Add(otPay)
	deductions := decimal.Zero // extension point, editable post-generation
	net := RoundNet(gross.Add(sum.DuesEarned).Sub(deductions))

	return payroll.Record{
		EmpID:          emp.EmpID,
		Month:          month,
		BasicSalary:    basic,
		OtherAllowance: other,
		OTAmount:       otPay,
		FoodAllowance:  food,
		DaysWorked:     days,
		GrossSalary:    gross,
		Deductions:     deductions,
		DuesEarned:     sum.DuesEarned,
		NetSalary:      net,
		Comments:       sum.Comments,
	}, nil
}

func (s *PayrollServiceImpl) ListByMonth(ctx context.Context, month string) ([]payroll.RecordResponse, error) {
	if !validator.IsValidMonth(month) {
		return nil, payroll.ErrInvalidMonth
	}

	records, err := s.payrollRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	return payroll.ToResponses(records), nil
}

func (s *PayrollServiceImpl) GetRecord(ctx context.Context, id string) (payroll.RecordResponse, error) {
	record, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	return payroll.ToResponse(record), nil
}

// UpdateRecord edits the post-generation editable fields and recomputes
// gross and net from the stored amounts.
func (s *PayrollServiceImpl) UpdateRecord(ctx context.Context, req payroll.UpdateRecordRequest) (payroll.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.RecordResponse{}, err
	}

	record, err := s.payrollRepo.GetByID(ctx, req.ID)
	if err != nil {
		return payroll.RecordResponse{}, err
	}

	if req.FoodAllowance != nil {
		record.FoodAllowance = *req.FoodAllowance
	}
	if req.Deductions != nil {
		record.Deductions = *req.Deductions
	}
	if req.Comments != nil {
		record.Comments = *req.Comments
	}

	record.GrossSalary = record.BasicSalary.
		Add(record.OtherAllowance).
		Add(record.FoodAllowance).
		Add(record.OTAmount)
	record.NetSalary = RoundNet(record.GrossSalary.Add(record.DuesEarned).Sub(record.Deductions))

	updated, err := s.payrollRepo.UpdateEditable(ctx, record)
	if err != nil {
		return payroll.RecordResponse{}, err
	}
	return payroll.ToResponse(updated), nil
}
