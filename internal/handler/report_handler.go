package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/siamvision/helmet-reports-backend-go/internal/models"
	"github.com/siamvision/helmet-reports-backend-go/internal/report"
	"github.com/siamvision/helmet-reports-backend-go/internal/service"
	"github.com/siamvision/helmet-reports-backend-go/internal/source"
	"github.com/siamvision/helmet-reports-backend-go/pkg/response"
)

// ReportHandler handles HTTP requests for the report views
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// GetDailyReport handles GET /api/v1/reports/daily
func (h *ReportHandler) GetDailyReport(c *gin.Context) {
	var filter models.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	spec, records, err := h.reportService.DailyReport(c.Request.Context(), filter)
	if err != nil {
		writePipelineError(c, err)
		return
	}

	response.Success(c, gin.H{
		"render":  spec,
		"records": records,
		"count":   len(records),
	})
}

// GetAreaReport handles GET /api/v1/reports/by-area
func (h *ReportHandler) GetAreaReport(c *gin.Context) {
	var filter models.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	spec, err := h.reportService.AreaReport(c.Request.Context(), filter)
	if err != nil {
		writePipelineError(c, err)
		return
	}

	response.Success(c, spec)
}

// GetContractorReport handles GET /api/v1/reports/by-contractor
func (h *ReportHandler) GetContractorReport(c *gin.Context) {
	var filter models.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	spec, err := h.reportService.ContractorReport(c.Request.Context(), filter)
	if err != nil {
		writePipelineError(c, err)
		return
	}

	response.Success(c, spec)
}

// GetMonthlyReport handles GET /api/v1/reports/monthly
func (h *ReportHandler) GetMonthlyReport(c *gin.Context) {
	var filter models.MonthlyFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	if filter.Month < 1 || filter.Month > 12 {
		response.BadRequest(c, "month must be between 1 and 12")
		return
	}
	if filter.Year < 1 {
		response.BadRequest(c, "year is required")
		return
	}

	spec, err := h.reportService.MonthlyReport(c.Request.Context(), filter)
	if err != nil {
		writePipelineError(c, err)
		return
	}

	response.Success(c, spec)
}

// GetRecords handles GET /api/v1/reports/records
func (h *ReportHandler) GetRecords(c *gin.Context) {
	var filter models.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	records, err := h.reportService.Records(c.Request.Context(), filter)
	if err != nil {
		writePipelineError(c, err)
		return
	}

	response.Success(c, gin.H{
		"records": records,
		"count":   len(records),
	})
}

// GetFilterOptions handles GET /api/v1/meta/filters
func (h *ReportHandler) GetFilterOptions(c *gin.Context) {
	opts, err := h.reportService.FilterOptions(c.Request.Context())
	if err != nil {
		writePipelineError(c, err)
		return
	}

	response.Success(c, opts)
}

// writePipelineError maps pipeline errors onto HTTP statuses. An empty
// filtered set never reaches here; it renders as a normal response with
// zero counts.
func writePipelineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, source.ErrSourceUnavailable):
		response.ServiceUnavailable(c, "data unavailable")
	case errors.Is(err, source.ErrSchemaMismatch), errors.Is(err, report.ErrMalformedRecord):
		response.BadGateway(c, "source data is malformed")
	case errors.Is(err, report.ErrInsufficientData):
		response.UnprocessableEntity(c, "no observation dates in the selected month")
	case errors.Is(err, service.ErrSuperseded):
		response.Error(c, 409, "request superseded")
	default:
		response.InternalError(c, err.Error())
	}
}
