package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"gstrly/internal/gstr1"
	"gstrly/internal/middleware"
	"gstrly/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReturnHandler handles GSTR-1 return generation endpoints.
type ReturnHandler struct {
	returnService service.ReturnService
}

// NewReturnHandler creates a new ReturnHandler.
func NewReturnHandler(returnService service.ReturnService) *ReturnHandler {
	return &ReturnHandler{returnService: returnService}
}

// ReturnSummary is the bucket-level overview of a generated return.
type ReturnSummary struct {
	GSTIN         string             `json:"gstin"`
	Period        string             `json:"period"`
	GrossTurnover float64            `json:"gross_turnover"`
	Buckets       map[string]int     `json:"buckets"`
	Diagnostics   []gstr1.Diagnostic `json:"diagnostics"`
}

// Summary handles GET /api/v1/returns/gstr1/:period/summary
// @Summary Preview a GSTR-1 return
// @Description Generate the return in memory and report per-bucket document counts plus data-quality diagnostics, without producing artifacts
// @Tags returns
// @Produce json
// @Param period path string true "Filing period (MMYYYY)" example(042025)
// @Success 200 {object} Response{data=ReturnSummary} "Return summary"
// @Failure 400 {object} ErrorResponseBody "Invalid period"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 422 {object} ErrorResponseBody "Business profile incomplete"
// @Security BearerAuth
// @Router /returns/gstr1/{period}/summary [get]
func (h *ReturnHandler) Summary(c *gin.Context) {
	businessID, err := middleware.GetBusinessID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing business context")
		return
	}

	out, err := h.returnService.Generate(c.Request.Context(), businessID, c.Param("period"))
	if err != nil {
		HandleError(c, err)
		return
	}

	ret := out.Return
	diags := ret.Diagnostics
	if diags == nil {
		diags = []gstr1.Diagnostic{}
	}

	RespondOK(c, ReturnSummary{
		GSTIN:         ret.GSTIN,
		Period:        ret.Period,
		GrossTurnover: ret.GrossTurnover,
		Buckets: map[string]int{
			"b2b":   countPartyInvoices(ret.B2B),
			"sez":   countPartyInvoices(ret.SEZ),
			"de":    countPartyInvoices(ret.DE),
			"b2cl":  countB2CLInvoices(ret.B2CL),
			"b2cs":  len(ret.B2CS),
			"cdnr":  countGroupNotes(ret.CDNR),
			"cdnur": len(ret.CDNUR),
			"exp":   countExportInvoices(ret.Exports),
			"hsn":   len(ret.HSN),
			"docs":  len(ret.Docs),
		},
		Diagnostics: diags,
	})
}

// Workbook handles GET /api/v1/returns/gstr1/:period/workbook
// @Summary Download the GSTR-1 workbook
// @Description Generate and stream the offline-tool spreadsheet for the period
// @Tags returns
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param period path string true "Filing period (MMYYYY)" example(042025)
// @Success 200 {file} binary "Workbook file"
// @Failure 400 {object} ErrorResponseBody "Invalid period"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 422 {object} ErrorResponseBody "Business profile incomplete"
// @Security BearerAuth
// @Router /returns/gstr1/{period}/workbook [get]
func (h *ReturnHandler) Workbook(c *gin.Context) {
	businessID, err := middleware.GetBusinessID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing business context")
		return
	}

	out, err := h.returnService.Generate(c.Request.Context(), businessID, c.Param("period"))
	if err != nil {
		HandleError(c, err)
		return
	}

	buf, err := out.Workbook.WriteToBuffer()
	if err != nil {
		HandleError(c, fmt.Errorf("writing workbook: %w", err))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.WorkbookName))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// Payload handles GET /api/v1/returns/gstr1/:period/payload
// @Summary Download the GSTR-1 JSON payload
// @Description Generate and return the regulatory filing JSON for the period
// @Tags returns
// @Produce json
// @Param period path string true "Filing period (MMYYYY)" example(042025)
// @Success 200 {object} gstr1.Payload "Filing payload"
// @Failure 400 {object} ErrorResponseBody "Invalid period"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 422 {object} ErrorResponseBody "Business profile incomplete"
// @Security BearerAuth
// @Router /returns/gstr1/{period}/payload [get]
func (h *ReturnHandler) Payload(c *gin.Context) {
	businessID, err := middleware.GetBusinessID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing business context")
		return
	}

	out, err := h.returnService.Generate(c.Request.Context(), businessID, c.Param("period"))
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", out.PayloadName))
	c.JSON(http.StatusOK, out.Payload)
}

// Archive handles POST /api/v1/returns/gstr1/:period/archive
// @Summary Archive a GSTR-1 return
// @Description Generate both artifacts, upload them to object storage, and return presigned download links
// @Tags returns
// @Produce json
// @Param period path string true "Filing period (MMYYYY)" example(042025)
// @Success 200 {object} Response{data=service.ArchiveResult} "Archive locations and links"
// @Failure 400 {object} ErrorResponseBody "Invalid period"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 422 {object} ErrorResponseBody "Business profile incomplete"
// @Failure 500 {object} ErrorResponseBody "Archive upload failed"
// @Security BearerAuth
// @Router /returns/gstr1/{period}/archive [post]
func (h *ReturnHandler) Archive(c *gin.Context) {
	businessID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	result, err := h.returnService.Archive(c.Request.Context(), businessID, c.Param("period"))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

// Send handles POST /api/v1/returns/gstr1/:period/send
// @Summary Email a GSTR-1 return to a professional
// @Description Archive the return and email presigned download links to the given address
// @Tags returns
// @Accept json
// @Produce json
// @Param period path string true "Filing period (MMYYYY)" example(042025)
// @Param request body SendReturnRequest true "Recipient"
// @Success 200 {object} Response{data=service.ArchiveResult} "Return delivered"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 422 {object} ErrorResponseBody "Business profile incomplete"
// @Security BearerAuth
// @Router /returns/gstr1/{period}/send [post]
func (h *ReturnHandler) Send(c *gin.Context) {
	businessID, _, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var req SendReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	result, err := h.returnService.SendToProfessional(c.Request.Context(), businessID, c.Param("period"), req.Email)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, result)
}

func countPartyInvoices(groups []gstr1.PartyGroup) int {
	n := 0
	for _, g := range groups {
		n += len(g.Invoices)
	}
	return n
}

func countB2CLInvoices(groups []gstr1.B2CLGroup) int {
	n := 0
	for _, g := range groups {
		n += len(g.Invoices)
	}
	return n
}

func countGroupNotes(groups []gstr1.NoteGroup) int {
	n := 0
	for _, g := range groups {
		n += len(g.Notes)
	}
	return n
}

func countExportInvoices(groups []gstr1.ExportGroup) int {
	n := 0
	for _, g := range groups {
		n += len(g.Invoices)
	}
	return n
}
