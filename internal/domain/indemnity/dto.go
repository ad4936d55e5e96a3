package indemnity

import "github.com/shopspring/decimal"

type RecordResponse struct {
	EmpID           string          `json:"emp_id"`
	EmployeeName    string          `json:"employee_name,omitempty"`
	Department      string          `json:"department,omitempty"`
	YearsOfService  decimal.Decimal `json:"years_of_service"`
	IndemnityAmount decimal.Decimal `json:"indemnity_amount"`
	Status          string          `json:"status"`
}

func ToResponse(r Record) RecordResponse {
	resp := RecordResponse{
		EmpID:           r.EmpID,
		YearsOfService:  r.YearsOfService,
		IndemnityAmount: r.IndemnityAmount,
		Status:          string(r.Status),
	}
	if r.EmployeeName != nil {
		resp.EmployeeName = *r.EmployeeName
	}
	if r.Department != nil {
		resp.Department = *r.Department
	}
	return resp
}

func ToResponses(records []Record) []RecordResponse {
	result := make([]RecordResponse, 0, len(records))
	for _, r := range records {
		result = append(result, ToResponse(r))
	}
	return result
}
