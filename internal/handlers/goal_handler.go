package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "cadee/internal/errors"
	"cadee/internal/models"
	"cadee/internal/services"
)

// GoalHandler handles purchase goal requests.
type GoalHandler struct {
	goalService  services.GoalServicer
	auditService services.AuditServicer
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(goalService services.GoalServicer, auditService services.AuditServicer) *GoalHandler {
	return &GoalHandler{goalService: goalService, auditService: auditService}
}

// CreateGoalRequest represents the request payload for creating a goal.
type CreateGoalRequest struct {
	Description  string `json:"description" binding:"required,max=255"`
	TargetAmount string `json:"target_amount" binding:"required,money_nonneg"`
	CurrentSaved string `json:"current_saved" binding:"omitempty,money_nonneg"`
	Image        string `json:"image" binding:"max=500"`
	Status       string `json:"status" binding:"omitempty,goal_status"`
	Deadline     string `json:"deadline" binding:"required"`
}

// UpdateGoalRequest represents the restricted update payload: only the
// saved amount and status are editable after creation.
type UpdateGoalRequest struct {
	CurrentSaved *string `json:"current_saved" binding:"omitempty,money_nonneg"`
	Status       *string `json:"status" binding:"omitempty,goal_status"`
}

// NewGoalForm returns the data needed to build the goal form.
// @Summary     Goal form data
// @Description Get the allowed status values for a new goal
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Status options"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /goals/new/ [get]
func (h *GoalHandler) NewGoalForm(c *gin.Context) {
	if _, err := getUserID(c); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"statuses": []gin.H{
			{"value": models.GoalStatusPriority, "label": models.GoalStatusPriority.Label()},
			{"value": models.GoalStatusWant, "label": models.GoalStatusWant.Label()},
			{"value": models.GoalStatusImpulse, "label": models.GoalStatusImpulse.Label()},
			{"value": models.GoalStatusAchieved, "label": models.GoalStatusAchieved.Label()},
		},
	})
}

// CreateGoal handles the creation of a new purchase goal.
// @Summary     Create a goal
// @Description Create a new purchase goal with a target amount and deadline
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateGoalRequest true "Goal details"
// @Success     201 {object} map[string]interface{} "Goal created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/new/ [post]
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	targetAmount, err := decimal.NewFromString(req.TargetAmount)
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidAmount)
		return
	}
	currentSaved := decimal.Decimal{}
	if req.CurrentSaved != "" {
		currentSaved, err = decimal.NewFromString(req.CurrentSaved)
		if err != nil {
			respondWithError(c, apperrors.ErrInvalidAmount)
			return
		}
	}

	deadline, err := parseFlexibleTime(req.Deadline)
	if err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	goal, err := h.goalService.CreateGoal(
		userID, req.Description, targetAmount, currentSaved,
		req.Image, models.GoalStatus(req.Status), deadline,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_GOAL", "goal", goal.ID, c.ClientIP(),
		map[string]interface{}{"description": req.Description, "target_amount": req.TargetAmount})

	c.JSON(http.StatusCreated, gin.H{"goal": goal})
}

// UpdateGoal handles the restricted-field goal update.
// @Summary     Update goal progress
// @Description Update a goal's saved amount and status; other fields are immutable
// @Tags        goals
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string            true "Goal ID"
// @Param       request body UpdateGoalRequest true "Fields to update"
// @Success     200 {object} map[string]interface{} "Goal updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Goal not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id}/update/ [post]
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	var currentSaved *decimal.Decimal
	if req.CurrentSaved != nil {
		parsed, parseErr := decimal.NewFromString(*req.CurrentSaved)
		if parseErr != nil {
			respondWithError(c, apperrors.ErrInvalidAmount)
			return
		}
		currentSaved = &parsed
	}
	var status *models.GoalStatus
	if req.Status != nil {
		s := models.GoalStatus(*req.Status)
		status = &s
	}

	goal, err := h.goalService.UpdateGoalProgress(userID, goalID, currentSaved, status)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "UPDATE_GOAL", "goal", goal.ID, c.ClientIP(),
		map[string]interface{}{"current_saved": req.CurrentSaved, "status": req.Status})

	c.JSON(http.StatusOK, gin.H{"goal": goal})
}

// DeleteGoal handles goal deletion. Deletion only happens on this explicit
// POST; a missing or foreign goal is a silent no-op.
// @Summary     Delete a goal
// @Description Delete a goal owned by the authenticated user
// @Tags        goals
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Goal ID"
// @Success     200 {object} map[string]string "Deleted (or no-op)"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /goals/{id}/delete/ [post]
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	goalID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.goalService.DeleteGoal(userID, goalID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_GOAL", "goal", goalID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
