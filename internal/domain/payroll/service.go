package payroll

import "context"

// PayrollService defines business logic for payroll generation and editing.
type PayrollService interface {
	// Generate recomputes payroll for a month: the month's existing rows are
	// deleted and replaced wholesale inside one transaction. Employees the
	// engine cannot pay are returned as warnings, never as a batch failure.
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)

	// ListByMonth retrieves persisted payroll rows for a month
	ListByMonth(ctx context.Context, month string) ([]RecordResponse, error)

	GetRecord(ctx context.Context, id string) (RecordResponse, error)

	// UpdateRecord edits food allowance, deductions or comments on a
	// persisted row and recomputes the net from the stored gross and dues.
	UpdateRecord(ctx context.Context, req UpdateRecordRequest) (RecordResponse, error)
}
