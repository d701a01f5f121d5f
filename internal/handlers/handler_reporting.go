package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/ports/services"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/dto"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ReportingHandler serves the derived bookkeeping views. Each request
// re-derives its report from the transaction log; there is no report state
// to invalidate.
type ReportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

// NewReportingHandler creates a new ReportingHandler.
func NewReportingHandler(rs portssvc.ReportingSvcFacade) *ReportingHandler {
	return &ReportingHandler{reportingService: rs}
}

// registerReportingRoutes sets up the routes for the report views.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := NewReportingHandler(reportingService)
	reports := rg.Group("/reports")
	{
		reports.GET("/journal", h.GetJournal)
		reports.GET("/ledger", h.GetLedger)
		reports.GET("/trial-balance", h.GetTrialBalance)
		reports.GET("/profit-loss", h.GetProfitLoss)
	}
}

// parseReportPeriod reads the optional fromDate/toDate query parameters.
// Zero times mean an unbounded side.
func parseReportPeriod(c *gin.Context) (from, to time.Time, ok bool) {
	var params dto.ReportPeriodParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return time.Time{}, time.Time{}, false
	}

	var err error
	if params.From != "" {
		if from, err = time.Parse("2006-01-02", params.From); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "fromDate must be YYYY-MM-DD"})
			return time.Time{}, time.Time{}, false
		}
	}
	if params.To != "" {
		if to, err = time.Parse("2006-01-02", params.To); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "toDate must be YYYY-MM-DD"})
			return time.Time{}, time.Time{}, false
		}
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "toDate must not precede fromDate"})
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}

// GetJournal godoc
// @Summary Journal report
// @Description Returns the two-sided journal entries derived from the
// @Description user's transactions, oldest first.
// @Tags reports
// @Produce json
// @Param fromDate query string false "Period start (YYYY-MM-DD)"
// @Param toDate query string false "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.JournalResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/journal [get]
func (h *ReportingHandler) GetJournal(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	from, to, ok := parseReportPeriod(c)
	if !ok {
		return
	}

	entries, err := h.reportingService.Journal(c.Request.Context(), userID, from, to)
	if err != nil {
		respondWithError(c, err, "Failed to derive journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(entries, from, to))
}

// GetLedger godoc
// @Summary Ledger report
// @Description Returns per-account debit/credit totals and balances derived
// @Description from the user's transactions, ordered by account name.
// @Tags reports
// @Produce json
// @Param fromDate query string false "Period start (YYYY-MM-DD)"
// @Param toDate query string false "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.LedgerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/ledger [get]
func (h *ReportingHandler) GetLedger(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	from, to, ok := parseReportPeriod(c)
	if !ok {
		return
	}

	accounts, err := h.reportingService.Ledger(c.Request.Context(), userID, from, to)
	if err != nil {
		respondWithError(c, err, "Failed to derive ledger")
		return
	}
	c.JSON(http.StatusOK, dto.ToLedgerResponse(accounts, from, to))
}

// GetTrialBalance godoc
// @Summary Trial balance report
// @Description Returns the trial balance with debit/credit columns and
// @Description column totals.
// @Tags reports
// @Produce json
// @Param fromDate query string false "Period start (YYYY-MM-DD)"
// @Param toDate query string false "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *ReportingHandler) GetTrialBalance(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	from, to, ok := parseReportPeriod(c)
	if !ok {
		return
	}

	rows, err := h.reportingService.TrialBalance(c.Request.Context(), userID, from, to)
	if err != nil {
		respondWithError(c, err, "Failed to derive trial balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(rows, from, to))
}

// GetProfitLoss godoc
// @Summary Profit and loss report
// @Description Returns revenue and expense lines with net income for the
// @Description period.
// @Tags reports
// @Produce json
// @Param fromDate query string false "Period start (YYYY-MM-DD)"
// @Param toDate query string false "Period end (YYYY-MM-DD)"
// @Success 200 {object} dto.ProfitLossResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/profit-loss [get]
func (h *ReportingHandler) GetProfitLoss(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}
	from, to, ok := parseReportPeriod(c)
	if !ok {
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), userID, from, to)
	if err != nil {
		respondWithError(c, err, "Failed to derive profit and loss")
		return
	}
	c.JSON(http.StatusOK, dto.ToProfitLossResponse(report, from, to))
}
