package report

import "context"

// ReportService defines read-only monthly reporting.
type ReportService interface {
	// MonthlyReport builds the denormalized monthly sheet: one row per
	// employee with attendance, joining persisted payroll amounts when a
	// row for the month exists and recomputing them otherwise.
	MonthlyReport(ctx context.Context, req MonthlyReportRequest) (MonthlyReport, error)
}
