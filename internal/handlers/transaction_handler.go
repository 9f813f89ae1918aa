package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "cadee/internal/errors"
	"cadee/internal/pagination"
	"cadee/internal/services"
	"cadee/internal/summary"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	folderService      services.FolderServicer
	auditService       services.AuditServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(
	transactionService services.TransactionServicer,
	folderService services.FolderServicer,
	auditService services.AuditServicer,
) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
		folderService:      folderService,
		auditService:       auditService,
	}
}

// CreateTransactionRequest represents the request payload for creating a
// transaction. Amount is a signed decimal string: positive for earnings,
// negative for expenses.
type CreateTransactionRequest struct {
	FolderID    string  `json:"folder_id" binding:"required,uuid"`
	Amount      string  `json:"amount" binding:"required,money"`
	Description string  `json:"description" binding:"required,max=255"`
	Date        *string `json:"date"`
}

// NewTransactionForm returns the data needed to build the transaction form:
// the user's folders.
// @Summary     Transaction form data
// @Description Get the folders available for a new transaction
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Folders"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/new/ [get]
func (h *TransactionHandler) NewTransactionForm(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	folders, err := h.folderService.GetUserFolders(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"folders": folders})
}

// CreateTransaction handles the creation of a new transaction. The owner is
// always the authenticated user; the folder must belong to them.
// @Summary     Create a transaction
// @Description Record an income (positive amount) or expense (negative amount)
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} map[string]interface{} "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Folder not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/new/ [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		respondWithError(c, apperrors.ErrInvalidAmount)
		return
	}

	var date time.Time
	if req.Date != nil && *req.Date != "" {
		parsed, parseErr := parseFlexibleTime(*req.Date)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		date = parsed
	}

	txn, err := h.transactionService.CreateTransaction(userID, req.FolderID, amount, req.Description, date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_TRANSACTION", "transaction", txn.ID, c.ClientIP(),
		map[string]interface{}{"amount": req.Amount, "folder_id": req.FolderID})

	c.JSON(http.StatusCreated, gin.H{"transaction": txn})
}

// ListTransactions returns the user's transaction history, newest first.
// @Summary     List transactions
// @Description Get a paginated list of the user's transactions, newest first
// @Tags        transactions
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[summary.TransactionItem] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/ [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.transactionService.GetUserTransactions(userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"transactions":    result,
		"currency_symbol": summary.CurrencySymbol,
	})
}
