package http

import (
	"net/http"

	"github.com/gulfhr/payroll-backend-go/internal/domain/report"
	"github.com/gulfhr/payroll-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

func (h *reportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	req := report.MonthlyReportRequest{Month: r.URL.Query().Get("month")}

	result, err := h.reportService.MonthlyReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
