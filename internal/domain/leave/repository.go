package leave

import "context"

// LeaveRepository defines read access to leave records.
type LeaveRepository interface {
	// ListByMonth retrieves leaves overlapping a pay month
	ListByMonth(ctx context.Context, month string) ([]Leave, error)
}
