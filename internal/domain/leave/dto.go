package leave

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmpID        string  `json:"emp_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	Month        string  `json:"month"`
	LeaveType    string  `json:"leave_type"`
	FromDate     string  `json:"from_date"`
	ToDate       string  `json:"to_date"`
	Days         int     `json:"days"`
	Comments     string  `json:"comments,omitempty"`
}

func ToResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:           l.ID,
		EmpID:        l.EmpID,
		EmployeeName: l.EmployeeName,
		Month:        l.Month,
		LeaveType:    l.LeaveType,
		FromDate:     l.FromDate.Format("2006-01-02"),
		ToDate:       l.ToDate.Format("2006-01-02"),
		Days:         l.Days,
		Comments:     l.Comments,
	}
}
