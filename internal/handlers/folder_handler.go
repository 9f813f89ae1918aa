package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "cadee/internal/errors"
	"cadee/internal/services"
)

// FolderHandler handles transaction folder requests.
type FolderHandler struct {
	folderService services.FolderServicer
	auditService  services.AuditServicer
}

// NewFolderHandler creates a new FolderHandler.
func NewFolderHandler(folderService services.FolderServicer, auditService services.AuditServicer) *FolderHandler {
	return &FolderHandler{folderService: folderService, auditService: auditService}
}

// CreateFolderRequest represents the request payload for creating a folder.
type CreateFolderRequest struct {
	Name     string `json:"name" binding:"required,max=50"`
	ColorHex string `json:"color_hex" binding:"omitempty,hex_color"`
	IconName string `json:"icon_name" binding:"max=20"`
}

// ListFolders returns all of the user's folders.
// @Summary     List folders
// @Description Get all transaction folders for the authenticated user
// @Tags        folders
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Folders"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /folders/ [get]
func (h *FolderHandler) ListFolders(c *gin.Context) {
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

// CreateFolder handles the creation of a new folder.
// @Summary     Create a folder
// @Description Create a new transaction folder
// @Tags        folders
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateFolderRequest true "Folder details"
// @Success     201 {object} map[string]interface{} "Folder created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /folders/new/ [post]
func (h *FolderHandler) CreateFolder(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateFolderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	folder, err := h.folderService.CreateFolder(userID, req.Name, req.ColorHex, req.IconName)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "CREATE_FOLDER", "folder", folder.ID, c.ClientIP(),
		map[string]interface{}{"name": req.Name})

	c.JSON(http.StatusCreated, gin.H{"folder": folder})
}

// DeleteFolder deletes a folder and all transactions inside it.
// @Summary     Delete a folder
// @Description Delete a folder; its transactions are deleted with it
// @Tags        folders
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Folder ID"
// @Success     200 {object} map[string]string "Deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Folder not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /folders/{id}/delete/ [post]
func (h *FolderHandler) DeleteFolder(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	folderID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.folderService.DeleteFolder(userID, folderID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(userID, "DELETE_FOLDER", "folder", folderID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
