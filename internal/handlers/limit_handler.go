package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "cadee/internal/errors"
	"cadee/internal/services"
)

// LimitHandler handles budget limit requests.
type LimitHandler struct {
	limitService services.LimitServicer
	auditService services.AuditServicer
}

// NewLimitHandler creates a new LimitHandler.
func NewLimitHandler(limitService services.LimitServicer, auditService services.AuditServicer) *LimitHandler {
	return &LimitHandler{limitService: limitService, auditService: auditService}
}

// UpdateLimitRequest represents the request payload for updating limits.
// Zero disables a limit.
type UpdateLimitRequest struct {
	WeeklyLimit  string `json:"weekly_limit" binding:"required,money_nonneg"`
	MonthlyLimit string `json:"monthly_limit" binding:"required,money_nonneg"`
}

// GetLimits returns the user's current budget limits, creating the row with
// zero limits on first access.
// @Summary     Get budget limits
// @Description Get the user's weekly and monthly spending limits
// @Tags        limits
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Current limits"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /limits/edit/ [get]
func (h *LimitHandler) GetLimits(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	limit, err := h.limitService.GetOrCreateLimit(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"limits": limit})
}

// UpdateLimits upserts the user's weekly and monthly spending limits.
// @Summary     Update budget limits
// @Description Set the user's weekly and monthly spending limits; zero disables a limit
// @Tags        limits
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateLimitRequest true "New limits"
// @Success     200 {object} map[string]interface{} "Updated limits"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /limits/edit/ [post]
func (h *LimitHandler) UpdateLimits(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	weekly, err := decimal.NewFromString(req.WeeklyLimit)
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidAmount)
		return
	}
	monthly, err := decimal.NewFromString(req.MonthlyLimit)
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidAmount)
		return
	}

	limit, err := h.limitService.UpdateLimit(userID, weekly, monthly)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_LIMITS", "budget_limit", limit.ID, c.ClientIP(),
		map[string]interface{}{"weekly_limit": req.WeeklyLimit, "monthly_limit": req.MonthlyLimit})

	c.JSON(http.StatusOK, gin.H{"limits": limit})
}
