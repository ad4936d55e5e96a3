package attendance

import "context"

// AttendanceService defines business logic for attendance data entry.
type AttendanceService interface {
	Create(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// ListByMonth retrieves attendance for a pay month, optionally
	// restricted to one department.
	ListByMonth(ctx context.Context, month string, department string) ([]AttendanceResponse, error)
}
