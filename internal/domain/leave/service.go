package leave

import "context"

// LeaveService exposes recorded leaves to reporting consumers.
type LeaveService interface {
	ListByMonth(ctx context.Context, month string) ([]LeaveResponse, error)
}
