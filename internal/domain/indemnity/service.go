package indemnity

import "context"

// IndemnityService defines business logic for end-of-service indemnity.
type IndemnityService interface {
	// Recalculate recomputes years of service and indemnity for every
	// active employee, upserting one record per employee. Paid records keep
	// their status.
	Recalculate(ctx context.Context) ([]RecordResponse, error)

	List(ctx context.Context) ([]RecordResponse, error)

	// MarkPaid flips an employee's indemnity to Paid. The flip is one-way;
	// later recalculations never revert it.
	MarkPaid(ctx context.Context, empID string) (RecordResponse, error)
}
