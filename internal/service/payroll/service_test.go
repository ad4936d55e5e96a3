package payroll

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/gulfhr/payroll-backend-go/internal/domain/attendance"
	"github.com/gulfhr/payroll-backend-go/internal/domain/employee"
	"github.com/gulfhr/payroll-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ===== in-memory fakes =====

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, emp)
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmpID(_ context.Context, empID string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.EmpID == empID {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context, department string) ([]employee.Employee, error) {
	if department == "" {
		return f.employees, nil
	}
	var out []employee.Employee
	for _, e := range f.employees {
		if strings.EqualFold(e.Department, department) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) ListActive(_ context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range f.employees {
		if e.Status == employee.StatusActive {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) error {
	for i, e := range f.employees {
		if e.EmpID == emp.EmpID {
			f.employees[i] = emp
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

type fakeAttendanceRepo struct {
	records []attendance.Record
}

func (f *fakeAttendanceRepo) Create(_ context.Context, r attendance.Record) (attendance.Record, error) {
	f.records = append(f.records, r)
	return r, nil
}

func (f *fakeAttendanceRepo) ListByMonth(_ context.Context, month string, department string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, r := range f.records {
		if r.Month != month {
			continue
		}
		if department != "" && !strings.EqualFold(r.Department, department) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type fakePayrollRepo struct {
	rows []payroll.Record

	deleteCalls [][]string // empID scopes passed to DeleteByMonth
	failInsert  bool
}

func (f *fakePayrollRepo) DeleteByMonth(_ context.Context, month string, empIDs []string) error {
	f.deleteCalls = append(f.deleteCalls, empIDs)
	var kept []payroll.Record
	for _, r := range f.rows {
		if r.Month != month {
			kept = append(kept, r)
			continue
		}
		if len(empIDs) > 0 && !containsString(empIDs, r.EmpID) {
			kept = append(kept, r)
		}
	}
	f.rows = kept
	return nil
}

func (f *fakePayrollRepo) BulkInsert(_ context.Context, records []payroll.Record) ([]payroll.Record, error) {
	if f.failInsert {
		return nil, fmt.Errorf("insert failed")
	}
	out := make([]payroll.Record, 0, len(records))
	for _, r := range records {
		r.ID = "p-" + r.EmpID + "-" + r.Month
		f.rows = append(f.rows, r)
		out = append(out, r)
	}
	return out, nil
}

func (f *fakePayrollRepo) GetByID(_ context.Context, id string) (payroll.Record, error) {
	for _, r := range f.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return payroll.Record{}, payroll.ErrPayrollRecordNotFound
}

func (f *fakePayrollRepo) ListByMonth(_ context.Context, month string) ([]payroll.Record, error) {
	var out []payroll.Record
	for _, r := range f.rows {
		if r.Month == month {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakePayrollRepo) UpdateEditable(_ context.Context, rec payroll.Record) (payroll.Record, error) {
	for i, r := range f.rows {
		if r.ID == rec.ID {
			r.FoodAllowance = rec.FoodAllowance
			r.Deductions = rec.Deductions
			r.Comments = rec.Comments
			r.GrossSalary = rec.GrossSalary
			r.NetSalary = rec.NetSalary
			r.UpdatedAt = time.Now()
			f.rows[i] = r
			return r, nil
		}
	}
	return payroll.Record{}, payroll.ErrPayrollRecordNotFound
}

func containsString(s []string, v string) bool {
	for _, item := range s {
		if item == v {
			return true
		}
	}
	return false
}

func newTestService(emps []employee.Employee, att []attendance.Record) (*PayrollServiceImpl, *fakePayrollRepo) {
	payrollRepo := &fakePayrollRepo{}
	svc := &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		employeeRepo:   &fakeEmployeeRepo{employees: emps},
		attendanceRepo: &fakeAttendanceRepo{records: att},
		runInTx: func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	}
	return svc, payrollRepo
}

func activeEmployee(empID, name string) employee.Employee {
	return employee.Employee{
		EmpID:              empID,
		Name:               name,
		Department:         "Construction",
		Category:           employee.CategoryDirect,
		BasicSalary:        dec("260"),
		OtherAllowance:     dec("52"),
		WorkingHoursPerDay: 8,
		Status:             employee.StatusActive,
	}
}

func fullMonthAttendance(empID, month string) attendance.Record {
	return attendance.Record{
		EmpID: empID, Month: month, Department: "Construction",
		WorkingDays: 26, PresentDays: 26,
	}
}

// ===== tests =====

func TestGenerate_FullMonthPaysContractedAmounts(t *testing.T) {
	svc, _ := newTestService(
		[]employee.Employee{activeEmployee("E-1", "Anil")},
		[]attendance.Record{fullMonthAttendance("E-1", "03-2025")},
	)

	resp, err := svc.Generate(context.Background(), payroll.GenerateRequest{Month: "03-2025"})
	require.NoError(t, err)
	require.Len(t, resp.Created, 1)
	assert.Empty(t, resp.Warnings)

	rec := resp.Created[0]
	assert.True(t, rec.BasicSalary.Equal(dec("260")))
	assert.True(t, rec.OtherAllowance.Equal(dec("52")))
	assert.True(t, rec.GrossSalary.Equal(dec("312")))
	assert.True(t, rec.NetSalary.Equal(dec("312")))
}

func TestGenerate_InvalidMonthRejected(t *testing.T) {
	svc, _ := newTestService(nil, nil)
	_, err := svc.Generate(context.Background(), payroll.GenerateRequest{Month: "2025-03"})
	require.Error(t, err)
}

func TestGenerate_SkipsInactiveSilently(t *testing.T) {
	inactive := activeEmployee("E-2", "Gone")
	inactive.Status = employee.StatusInactive

	svc, _ := newTestService(
		[]employee.Employee{activeEmployee("E-1", "Anil"), inactive},
		[]attendance.Record{
			fullMonthAttendance("E-1", "03-2025"),
			fullMonthAttendance("E-2", "03-2025"),
		},
	)

	resp, err := svc.Generate(context.Background(), payroll.GenerateRequest{Month: "03-2025"})
	require.NoError(t, err)
	assert.Len(t, resp.Created, 1)
	assert.Empty(t, resp.Warnings, "inactive employees are skipped without a warning")
}

func TestGenerate_NoMatchingEmployees(t *testing.T) {
	svc, _ := newTestService(nil, nil)

	_, err := svc.Generate(context.Background(), payroll.GenerateRequest{Month: "03-2025"})
	assert.ErrorIs(t, err, payroll.ErrNothingToGenerate)
}

func TestGenerate_MissingAttendanceWarns(t *testing.T) {
	svc, _ := newTestService(
		[]employee.Employee{activeEmployee("E-1", "Anil")},
		nil,
	)

	resp, err := svc.Generate(context.Background(), payroll.GenerateRequest{Month: "03-2025"})
	require.NoError(t, err)
	assert.Empty(t, resp.Created)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, "E-1", resp.Warnings[0].EmpID)
	assert.Contains(t, resp.Warnings[0].Reason, "no attendance records")
}

func TestGenerate_ZeroPresentDaysWarns(t *testing.T) {
	att := attendance.Record{
		EmpID: "E-1", Month: "03-2025", Department: "Construction",
		WorkingDays: 26, PresentDays: 0, AbsentDays: 26,
	}
	svc, _ := newTestService(
		[]employee.Employee{activeEmployee("E-1", "Anil")},
		[]attendance.Record{att},
	)

	resp, err := svc.Generate(context.Background(), payroll.GenerateRequest{Month: "03-2025"})
	require.NoError(t, err)
	assert.Empty(t, resp.Created)
	require.Len(t, resp.Warnings, 1)
	assert.Equal(t, "zero present days", resp.Warnings[0].Reason)
}

func TestGenerate_RoundOffDrivesDaysWorked(t *testing.T) {
	ro := dec("22")
	att := attendance.Record{
		EmpID: "E-1", Month: "03-2025", Department: "Construction",
		WorkingDays: 26, PresentDays: 20, RoundOff: &ro,
	}
	svc, _ := newTestService(
		[]employee.Employee{activeEmployee("E-1", "Anil")},
		[]attendance.Record{att},
	)

	resp, err := svc.Generate(context.Background(), payroll.GenerateRequest{Month: "03-2025"})
	require.NoError(t, err)
	require.Len(t, resp.Created, 1)

	rec := resp.Created[0]
	assert.True(t, rec.DaysWorked.Equal(dec("22")))
	// 260/26*22 = 220
	assert.True(t, rec.BasicSalary.Equal(dec("220")))
}

func TestGenerate_MultipleSlicesAggregated(t *testing.T) {
	svc, _ := newTestService(
		[]employee.Employee{activeEmployee("E-1", "Anil")},
		[]attendance.Record{
			{EmpID: "E-1", Month: "03-2025", Department: "Construction", WorkingDays: 13, PresentDays: 12, DuesEarned: dec("5")},
			{EmpID: "E-1", Month: "03-2025", Department: "Construction", WorkingDays: 13, PresentDays: 13, DuesEarned: dec("2.5")},
		},
	)

	resp, err := svc.Generate(context.Background(), payroll.GenerateRequest{Month: "03-2025"})
	require.NoError(t, err)
	require.Len(t, resp.Created, 1)

	rec := resp.Created[0]
	assert.True(t, rec.DaysWorked.Equal(dec("25")))
	assert.True(t, rec.DuesEarned.Equal(dec("7.5")))
	// 260/26*25 + 52/26*25 = 250 + 50 = 300; net = 300 + 7.5 = 307.5 -> 308
	assert.True(t, rec.GrossSalary.Equal(dec("300")))
	assert.True(t, rec.NetSalary.Equal(dec("308")))
}

func TestGenerate_DepartmentFilterScopesDelete(t *testing.T) {
	rehab := activeEmployee("E-2", "Noor")
	rehab.Department = "Rehab"

	rehabAtt := fullMonthAttendance("E-2", "03-2025")
	rehabAtt.Department = "Rehab"

	svc, repo := newTestService(
		[]employee.Employee{activeEmployee("E-1", "Anil"), rehab},
		[]attendance.Record{fullMonthAttendance("E-1", "03-2025"), rehabAtt},
	)

	resp, err := svc.Generate(context.Background(), payroll.GenerateRequest{Month: "03-2025", Department: "rehab"})
	require.NoError(t, err)
	require.Len(t, resp.Created, 1)
	assert.Equal(t, "E-2", resp.Created[0].EmpID)

	require.Len(t, repo.deleteCalls, 1)
	assert.Equal(t, []string{"E-2"}, repo.deleteCalls[0])
}

func TestGenerate_Idempotent(t *testing.T) {
	svc, repo := newTestService(
		[]employee.Employee{activeEmployee("E-1", "Anil"), activeEmployee("E-3", "Ravi")},
		[]attendance.Record{
			fullMonthAttendance("E-1", "03-2025"),
			{EmpID: "E-3", Month: "03-2025", Department: "Construction", WorkingDays: 26, PresentDays: 18, OTHoursNormal: dec("6")},
		},
	)

	first, err := svc.Generate(context.Background(), payroll.GenerateRequest{Month: "03-2025"})
	require.NoError(t, err)
	second, err := svc.Generate(context.Background(), payroll.GenerateRequest{Month: "03-2025"})
	require.NoError(t, err)

	assert.Equal(t, first.Created, second.Created)
	rows, err := repo.ListByMonth(context.Background(), "03-2025")
	require.NoError(t, err)
	assert.Len(t, rows, 2, "regeneration replaces, never duplicates")
}

func TestGenerate_InsertFailureFailsWholeRun(t *testing.T) {
	svc, repo := newTestService(
		[]employee.Employee{activeEmployee("E-1", "Anil")},
		[]attendance.Record{fullMonthAttendance("E-1", "03-2025")},
	)
	repo.failInsert = true

	_, err := svc.Generate(context.Background(), payroll.GenerateRequest{Month: "03-2025"})
	require.Error(t, err)
}

func TestUpdateRecord_RecomputesNet(t *testing.T) {
	svc, repo := newTestService(
		[]employee.Employee{activeEmployee("E-1", "Anil")},
		[]attendance.Record{fullMonthAttendance("E-1", "03-2025")},
	)

	resp, err := svc.Generate(context.Background(), payroll.GenerateRequest{Month: "03-2025"})
	require.NoError(t, err)
	id := resp.Created[0].ID

	deductions := dec("12.5")
	updated, err := svc.UpdateRecord(context.Background(), payroll.UpdateRecordRequest{
		ID:         id,
		Deductions: &deductions,
	})
	require.NoError(t, err)

	// gross 312, net = round(312 - 12.5) = round(299.5) = 300
	assert.True(t, updated.GrossSalary.Equal(dec("312")))
	assert.True(t, updated.NetSalary.Equal(dec("300")))

	stored, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, stored.NetSalary.Equal(dec("300")))
}

func TestUpdateRecord_NegativeNetRoundsHalfUp(t *testing.T) {
	svc, _ := newTestService(
		[]employee.Employee{activeEmployee("E-1", "Anil")},
		[]attendance.Record{fullMonthAttendance("E-1", "03-2025")},
	)

	resp, err := svc.Generate(context.Background(), payroll.GenerateRequest{Month: "03-2025"})
	require.NoError(t, err)
	id := resp.Created[0].ID

	deductions := dec("762.5")
	updated, err := svc.UpdateRecord(context.Background(), payroll.UpdateRecordRequest{
		ID:         id,
		Deductions: &deductions,
	})
	require.NoError(t, err)

	// gross 312, net = round(312 - 762.5) = round(-450.5) = -450
	assert.True(t, updated.NetSalary.Equal(dec("-450")))
}

func TestUpdateRecord_FoodAllowanceEditChangesGross(t *testing.T) {
	svc, _ := newTestService(
		[]employee.Employee{activeEmployee("E-1", "Anil")},
		[]attendance.Record{fullMonthAttendance("E-1", "03-2025")},
	)

	resp, err := svc.Generate(context.Background(), payroll.GenerateRequest{Month: "03-2025"})
	require.NoError(t, err)
	id := resp.Created[0].ID

	food := dec("20")
	updated, err := svc.UpdateRecord(context.Background(), payroll.UpdateRecordRequest{
		ID:            id,
		FoodAllowance: &food,
	})
	require.NoError(t, err)

	assert.True(t, updated.GrossSalary.Equal(dec("332")))
	assert.True(t, updated.NetSalary.Equal(dec("332")))
}
