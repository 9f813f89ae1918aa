package services

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "cadee/internal/errors"
	"cadee/internal/models"
	"cadee/internal/pagination"
	"cadee/internal/summary"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db            *gorm.DB
	folderService FolderServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, folderService FolderServicer) TransactionServicer {
	return &transactionService{db: db, folderService: folderService}
}

// CreateTransaction persists a new transaction. The folder must belong to
// the requesting user; the owner is always the requester regardless of any
// client-supplied value. A zero date defaults to the current time.
func (s *transactionService) CreateTransaction(
	userID, folderID string,
	amount decimal.Decimal,
	description string,
	date time.Time,
) (*models.Transaction, error) {
	if description == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "description is required")
	}

	folder, err := s.folderService.GetFolderByID(userID, folderID)
	if err != nil {
		return nil, err
	}

	if date.IsZero() {
		date = time.Now()
	}

	txn := &models.Transaction{
		UserID:      userID,
		FolderID:    folder.ID,
		Amount:      amount,
		Description: description,
		Date:        date,
	}

	if err := s.db.Create(txn).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	txn.Folder = *folder
	return txn, nil
}

// GetUserTransactions returns the user's transactions newest first, as
// display items with the absolute amount and sign flag precomputed.
func (s *transactionService) GetUserTransactions(userID string, page pagination.PageRequest) (*pagination.PageResponse[summary.TransactionItem], error) {
	page.Defaults()

	base := s.db.Model(&models.Transaction{}).Where("user_id = ?", userID)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var txns []models.Transaction
	if err := base.Preload("Folder").Order("date DESC").
		Scopes(pagination.Paginate(page)).Find(&txns).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(summary.BuildItems(txns), page.Page, page.PageSize, totalItems)
	return &result, nil
}
