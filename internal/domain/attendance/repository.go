package attendance

import "context"

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	Create(ctx context.Context, record Record) (Record, error)

	// ListByMonth retrieves all attendance records for a pay month,
	// optionally restricted to one department.
	ListByMonth(ctx context.Context, month string, department string) ([]Record, error)
}
