package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/ports/services"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/dto"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// AdviceHandler serves model-generated budgeting advice.
type AdviceHandler struct {
	adviceService portssvc.AdviceSvcFacade
}

// NewAdviceHandler creates a new AdviceHandler.
func NewAdviceHandler(as portssvc.AdviceSvcFacade) *AdviceHandler {
	return &AdviceHandler{adviceService: as}
}

// registerAdviceRoutes sets up the advice route.
func registerAdviceRoutes(rg *gin.RouterGroup, adviceService portssvc.AdviceSvcFacade) {
	h := NewAdviceHandler(adviceService)
	rg.GET("/advice", h.GetAdvice)
}

// GetAdvice godoc
// @Summary Get budgeting advice
// @Description Generates advisory text from the period's profit and loss
// @Description summary and budget usage. Only aggregates are sent to the
// @Description model, never individual transactions.
// @Tags advice
// @Produce json
// @Param fromDate query string false "Period start (YYYY-MM-DD, defaults to the first of the month)"
// @Param toDate query string false "Period end (YYYY-MM-DD, defaults to today)"
// @Success 200 {object} dto.AdviceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Model backend unavailable"
// @Security BearerAuth
// @Router /advice [get]
func (h *AdviceHandler) GetAdvice(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var params dto.AdviceParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var err error
	if params.From != "" {
		if from, err = time.Parse("2006-01-02", params.From); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "fromDate must be YYYY-MM-DD"})
			return
		}
	}
	if params.To != "" {
		if to, err = time.Parse("2006-01-02", params.To); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "toDate must be YYYY-MM-DD"})
			return
		}
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "toDate must not precede fromDate"})
		return
	}

	advice, err := h.adviceService.GenerateAdvice(c.Request.Context(), userID, from, to)
	if err != nil {
		respondWithError(c, err, "Failed to generate advice")
		return
	}

	c.JSON(http.StatusOK, dto.AdviceResponse{
		FromDate: from.Format("2006-01-02"),
		ToDate:   to.Format("2006-01-02"),
		Advice:   advice,
	})
}
