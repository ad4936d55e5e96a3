package indemnity

import (
	"context"
	"testing"
	"time"

	"github.com/gulfhr/payroll-backend-go/internal/domain/employee"
	"github.com/gulfhr/payroll-backend-go/internal/domain/indemnity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

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

func (f *fakeEmployeeRepo) List(_ context.Context, _ string) ([]employee.Employee, error) {
	return f.employees, nil
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

type fakeIndemnityRepo struct {
	records map[string]indemnity.Record
}

func newFakeIndemnityRepo() *fakeIndemnityRepo {
	return &fakeIndemnityRepo{records: make(map[string]indemnity.Record)}
}

func (f *fakeIndemnityRepo) UpsertCalculation(_ context.Context, empID string, years, amount decimal.Decimal) (indemnity.Record, error) {
	rec, ok := f.records[empID]
	if !ok {
		rec = indemnity.Record{
			ID:     "i-" + empID,
			EmpID:  empID,
			Status: indemnity.StatusActive,
		}
	}
	rec.YearsOfService = years
	rec.IndemnityAmount = amount
	f.records[empID] = rec
	return rec, nil
}

func (f *fakeIndemnityRepo) GetByEmpID(_ context.Context, empID string) (indemnity.Record, error) {
	rec, ok := f.records[empID]
	if !ok {
		return indemnity.Record{}, indemnity.ErrIndemnityNotFound
	}
	return rec, nil
}

func (f *fakeIndemnityRepo) List(_ context.Context) ([]indemnity.Record, error) {
	var out []indemnity.Record
	for _, rec := range f.records {
		out = append(out, rec)
	}
	return out, nil
}

func (f *fakeIndemnityRepo) MarkPaid(_ context.Context, empID string) (indemnity.Record, error) {
	rec, ok := f.records[empID]
	if !ok {
		return indemnity.Record{}, indemnity.ErrIndemnityNotFound
	}
	rec.Status = indemnity.StatusPaid
	f.records[empID] = rec
	return rec, nil
}

func fixedNow() time.Time {
	return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
}

func TestRecalculate_TierOne(t *testing.T) {
	joined := fixedNow().AddDate(0, 0, -365*3)
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{{
		EmpID:         "E-1",
		Name:          "Anil",
		BasicSalary:   decimal.NewFromInt(600),
		DateOfJoining: joined,
		Status:        employee.StatusActive,
	}}}
	svc := NewIndemnityService(newFakeIndemnityRepo(), empRepo, fixedNow)

	result, err := svc.Recalculate(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.True(t, result[0].YearsOfService.Equal(decimal.NewFromInt(3)))
	assert.True(t, result[0].IndemnityAmount.Equal(decimal.NewFromInt(900)))
	assert.Equal(t, string(indemnity.StatusActive), result[0].Status)
}

func TestRecalculate_SkipsInactive(t *testing.T) {
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{{
		EmpID:         "E-1",
		BasicSalary:   decimal.NewFromInt(600),
		DateOfJoining: fixedNow().AddDate(-4, 0, 0),
		Status:        employee.StatusInactive,
	}}}
	svc := NewIndemnityService(newFakeIndemnityRepo(), empRepo, fixedNow)

	result, err := svc.Recalculate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestRecalculate_PreservesPaidStatus(t *testing.T) {
	joined := fixedNow().AddDate(0, 0, -365*8)
	empRepo := &fakeEmployeeRepo{employees: []employee.Employee{{
		EmpID:         "E-1",
		BasicSalary:   decimal.NewFromInt(600),
		DateOfJoining: joined,
		Status:        employee.StatusActive,
	}}}
	repo := newFakeIndemnityRepo()
	svc := NewIndemnityService(repo, empRepo, fixedNow)

	_, err := svc.Recalculate(context.Background())
	require.NoError(t, err)

	paid, err := svc.MarkPaid(context.Background(), "E-1")
	require.NoError(t, err)
	assert.Equal(t, string(indemnity.StatusPaid), paid.Status)

	// second recalculation updates amounts but never reverts Paid
	result, err := svc.Recalculate(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, string(indemnity.StatusPaid), result[0].Status)
	assert.True(t, result[0].IndemnityAmount.Equal(decimal.NewFromInt(3300)))
}

func TestMarkPaid_UnknownEmployee(t *testing.T) {
	svc := NewIndemnityService(newFakeIndemnityRepo(), &fakeEmployeeRepo{}, fixedNow)
	_, err := svc.MarkPaid(context.Background(), "missing")
	assert.ErrorIs(t, err, indemnity.ErrIndemnityNotFound)
}
