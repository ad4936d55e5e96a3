package payroll

import "context"

// PayrollRepository defines data access methods for generated payroll rows.
type PayrollRepository interface {
	// DeleteByMonth removes all payroll rows for a month. When empIDs is
	// non-empty the delete is scoped to those employees (department-scoped
	// regeneration).
	DeleteByMonth(ctx context.Context, month string, empIDs []string) error

	// BulkInsert inserts freshly generated rows. Callers run DeleteByMonth
	// and BulkInsert inside one transaction so readers never observe an
	// empty-then-partial month.
	BulkInsert(ctx context.Context, records []Record) ([]Record, error)

	GetByID(ctx context.Context, id string) (Record, error)
	ListByMonth(ctx context.Context, month string) ([]Record, error)

	// UpdateEditable persists the post-generation editable fields
	// (food allowance, deductions, comments) plus the gross and net the
	// service recomputed from them.
	UpdateEditable(ctx context.Context, rec Record) (Record, error)
}
