package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/uci-sgcd/panel-api/internal/service"
	appErrors "github.com/uci-sgcd/panel-api/pkg/errors"
	"github.com/uci-sgcd/panel-api/pkg/response"
)

// ReportHandler renders downloadable reports from the session's collections.
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler creates a new handler.
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Roster godoc
// @Summary Download roster report
// @Description Renders the professor roster as CSV or PDF
// @Tags Reports
// @Produce text/csv
// @Security BearerAuth
// @Param format query string false "Report format (csv or pdf)" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /reports/roster [get]
func (h *ReportHandler) Roster(c *gin.Context) {
	st := storeFromContext(c)
	if st == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	format := service.ReportFormat(c.DefaultQuery("format", "csv"))
	result, err := h.reports.RosterReport(st.Professors(), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Blob(c, result.ContentType, result.Filename, result.Content)
}

// Workload godoc
// @Summary Download workload report
// @Description Renders the per-faculty headcount summary as CSV or PDF
// @Tags Reports
// @Produce text/csv
// @Security BearerAuth
// @Param format query string false "Report format (csv or pdf)" default(csv)
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /reports/workload [get]
func (h *ReportHandler) Workload(c *gin.Context) {
	st := storeFromContext(c)
	if st == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	format := service.ReportFormat(c.DefaultQuery("format", "csv"))
	result, err := h.reports.WorkloadReport(st.CountByFaculty(), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Blob(c, result.ContentType, result.Filename, result.Content)
}
