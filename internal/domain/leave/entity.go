package leave

import "time"

// Leave is a recorded absence consumed read-only by reporting.
type Leave struct {
	ID        string
	EmpID     string
	Month     string // MM-YYYY
	LeaveType string
	FromDate  time.Time
	ToDate    time.Time
	Days      int
	Comments  string
	CreatedAt time.Time

	// Joined fields
	EmployeeName *string
}
