package report

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/gulfhr/payroll-backend-go/internal/domain/attendance"
	"github.com/gulfhr/payroll-backend-go/internal/domain/employee"
	domainpayroll "github.com/gulfhr/payroll-backend-go/internal/domain/payroll"
	"github.com/gulfhr/payroll-backend-go/internal/domain/report"
	payrollsvc "github.com/gulfhr/payroll-backend-go/internal/service/payroll"
	"github.com/shopspring/decimal"
)

type ReportServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	payrollRepo    domainpayroll.PayrollRepository

	// now stamps GeneratedAt; injected for deterministic tests.
	now func() time.Time
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	payrollRepo domainpayroll.PayrollRepository,
	now func() time.Time,
) report.ReportService {
	if now == nil {
		now = time.Now
	}
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		payrollRepo:    payrollRepo,
		now:            now,
	}
}

// MonthlyReport builds one row per employee with attendance in the month.
// Persisted payroll amounts win when a generated row exists (they carry any
// manual edits); otherwise the amounts are recomputed from contract and
// attendance on the fly. Rows with zero worked days and no comments are
// dropped: a slot with nothing to say only pads the sheet.
func (s *ReportServiceImpl) MonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (report.MonthlyReport, error) {
	if err := req.Validate(); err != nil {
		return report.MonthlyReport{}, err
	}

	employees, err := s.employeeRepo.List(ctx, "")
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to list employees: %w", err)
	}
	byEmpID := make(map[string]employee.Employee, len(employees))
	for _, emp := range employees {
		byEmpID[emp.EmpID] = emp
	}

	records, err := s.attendanceRepo.ListByMonth(ctx, req.Month, "")
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to list attendance for %s: %w", req.Month, err)
	}
	byEmp := make(map[string][]attendance.Record)
	for _, r := range records {
		byEmp[r.EmpID] = append(byEmp[r.EmpID], r)
	}

	persisted, err := s.payrollRepo.ListByMonth(ctx, req.Month)
	if err != nil {
		return report.MonthlyReport{}, fmt.Errorf("failed to list payroll for %s: %w", req.Month, err)
	}
	paidByEmp := make(map[string]domainpayroll.Record, len(persisted))
	for _, p := range persisted {
		paidByEmp[p.EmpID] = p
	}

	rows := make([]report.Row, 0, len(byEmp))
	for empID, slices := range byEmp {
		emp, ok := byEmpID[empID]
		if !ok {
			continue
		}
		sum := attendance.Summarize(slices)

		row := report.Row{
			EmpID:        empID,
			EmployeeName: emp.Name,
			Department:   emp.Department,
			WorkingDays:  sum.WorkingDays,
			AbsentDays:   sum.AbsentDays,
			Comments:     sum.Comments,
		}

		if p, ok := paidByEmp[empID]; ok {
			row.DaysWorked = p.DaysWorked
			row.BasicSalary = p.BasicSalary
			row.OTAmount = p.OTAmount
			row.FoodAllowance = p.FoodAllowance
			row.DuesEarned = p.DuesEarned
			row.Deductions = p.Deductions
			row.GrossSalary = p.GrossSalary
			row.NetSalary = p.NetSalary
			if p.Comments != "" {
				row.Comments = p.Comments
			}
		} else {
			days := sum.EffectivePresentDays()
			basic := payrollsvc.Prorate(emp.BasicSalary, days)
			other := payrollsvc.Prorate(emp.OtherAllowance, days)
			ot := payrollsvc.OvertimePay(emp, payrollsvc.RatesFor(emp), sum)
			food := payrollsvc.FoodAllowance(emp, days)
			gross := basic.Add(other).Add(ot).Add(food)

			row.DaysWorked = days
			row.BasicSalary = basic
			row.OTAmount = ot
			row.FoodAllowance = food
			row.DuesEarned = sum.DuesEarned
			row.Deductions = decimal.Zero
			row.GrossSalary = gross
			row.NetSalary = payrollsvc.RoundNet(gross.Add(sum.DuesEarned))
		}

		if row.DaysWorked.IsZero() && row.Comments == "" {
			continue
		}
		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].EmpID < rows[j].EmpID })

	return report.MonthlyReport{
		Month:       req.Month,
		GeneratedAt: s.now().UTC().Format(time.RFC3339),
		Rows:        rows,
	}, nil
}
