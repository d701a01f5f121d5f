package handlers

import (
	"net/http"

	portssvc "github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/core/ports/services"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/dto"
	"github.com/ShankarSrivathsa/ophelia-finance-manager-sub000/internal/middleware"
	"github.com/gin-gonic/gin"
)

// BudgetHandler handles monthly budget requests.
type BudgetHandler struct {
	budgetService portssvc.BudgetSvcFacade
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(bs portssvc.BudgetSvcFacade) *BudgetHandler {
	return &BudgetHandler{budgetService: bs}
}

// registerBudgetRoutes sets up the routes for budget management.
func registerBudgetRoutes(rg *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade) {
	h := NewBudgetHandler(budgetService)
	budgets := rg.Group("/budgets")
	{
		budgets.POST("", h.CreateBudget)
		budgets.GET("", h.ListBudgets)
		budgets.GET("/:budgetID", h.GetBudget)
		budgets.PUT("/:budgetID", h.UpdateBudget)
		budgets.DELETE("/:budgetID", h.DeleteBudget)
	}
}

// CreateBudget godoc
// @Summary Create a monthly budget
// @Description Sets a spending cap for an expense account in a month. One
// @Description budget per account and month.
// @Tags budgets
// @Accept json
// @Produce json
// @Param budget body dto.CreateBudgetRequest true "Budget"
// @Success 201 {object} dto.BudgetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Budget already exists for the account and month"
// @Security BearerAuth
// @Router /budgets [post]
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	budget, err := h.budgetService.CreateBudget(c.Request.Context(), userID, req)
	if err != nil {
		respondWithError(c, err, "Failed to create budget")
		return
	}

	usage, err := h.budgetService.GetBudgetUsage(c.Request.Context(), userID, budget.BudgetID)
	if err != nil {
		respondWithError(c, err, "Failed to derive budget usage")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBudgetResponse(*usage))
}

// ListBudgets godoc
// @Summary List budgets for a month
// @Description Returns the user's budgets with derived spend. Month defaults
// @Description to the current month.
// @Tags budgets
// @Produce json
// @Param month query string false "Month (YYYY-MM)"
// @Success 200 {array} dto.BudgetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /budgets [get]
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var params dto.ListBudgetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	usages, err := h.budgetService.ListBudgetUsage(c.Request.Context(), userID, params.Month)
	if err != nil {
		respondWithError(c, err, "Failed to list budgets")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponses(usages))
}

// GetBudget godoc
// @Summary Get a budget
// @Description Returns one budget with its derived spend for the month.
// @Tags budgets
// @Produce json
// @Param budgetID path string true "Budget ID"
// @Success 200 {object} dto.BudgetResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /budgets/{budgetID} [get]
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	usage, err := h.budgetService.GetBudgetUsage(c.Request.Context(), userID, c.Param("budgetID"))
	if err != nil {
		respondWithError(c, err, "Failed to fetch budget")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponse(*usage))
}

// UpdateBudget godoc
// @Summary Update a budget
// @Tags budgets
// @Accept json
// @Produce json
// @Param budgetID path string true "Budget ID"
// @Param update body dto.UpdateBudgetRequest true "Fields to update"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /budgets/{budgetID} [put]
func (h *BudgetHandler) UpdateBudget(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	var req dto.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	budget, err := h.budgetService.UpdateBudget(c.Request.Context(), userID, c.Param("budgetID"), req)
	if err != nil {
		respondWithError(c, err, "Failed to update budget")
		return
	}

	usage, err := h.budgetService.GetBudgetUsage(c.Request.Context(), userID, budget.BudgetID)
	if err != nil {
		respondWithError(c, err, "Failed to derive budget usage")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponse(*usage))
}

// DeleteBudget godoc
// @Summary Delete a budget
// @Tags budgets
// @Param budgetID path string true "Budget ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /budgets/{budgetID} [delete]
func (h *BudgetHandler) DeleteBudget(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	if err := h.budgetService.DeleteBudget(c.Request.Context(), userID, c.Param("budgetID")); err != nil {
		respondWithError(c, err, "Failed to delete budget")
		return
	}
	c.Status(http.StatusNoContent)
}
