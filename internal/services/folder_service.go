package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "cadee/internal/errors"
	"cadee/internal/models"
)

// folderService handles transaction folder business logic.
type folderService struct {
	db *gorm.DB
}

// NewFolderService creates a new FolderServicer.
func NewFolderService(db *gorm.DB) FolderServicer {
	return &folderService{db: db}
}

// CreateFolder creates a new folder for the user.
func (s *folderService) CreateFolder(userID, name, colorHex, iconName string) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "folder name is required")
	}
	if colorHex == "" {
		colorHex = models.DefaultCategoryColor
	}

	folder := &models.Category{
		UserID:   userID,
		Name:     name,
		ColorHex: colorHex,
		IconName: iconName,
	}

	if err := s.db.Create(folder).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return folder, nil
}

// GetUserFolders retrieves all folders belonging to the user.
func (s *folderService) GetUserFolders(userID string) ([]models.Category, error) {
	var folders []models.Category
	if err := s.db.Where("user_id = ?", userID).Order("name").Find(&folders).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return folders, nil
}

// GetFolderByID retrieves a folder by ID for a specific user. A folder owned
// by another user is indistinguishable from a missing one.
func (s *folderService) GetFolderByID(userID, folderID string) (*models.Category, error) {
	var folder models.Category
	if err := s.db.Where("id = ? AND user_id = ?", folderID, userID).First(&folder).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFolderNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &folder, nil
}

// DeleteFolder deletes a folder and all of its transactions in a single
// database transaction.
func (s *folderService) DeleteFolder(userID, folderID string) error {
	folder, err := s.GetFolderByID(userID, folderID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("folder_id = ? AND user_id = ?", folderID, userID).
			Delete(&models.Transaction{}).Error; err != nil {
			return err
		}
		return tx.Delete(folder).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
