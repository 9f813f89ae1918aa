package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "cadee/internal/errors"
	"cadee/internal/services"
)

// ProfileHandler handles user profile requests.
type ProfileHandler struct {
	profileService services.ProfileServicer
	userService    services.UserServicer
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(profileService services.ProfileServicer, userService services.UserServicer) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, userService: userService}
}

// UpdateProfileRequest represents the profile update payload. Avatar is a
// stored image reference, not an upload.
type UpdateProfileRequest struct {
	FullName string `json:"full_name" binding:"required,max=255"`
	Avatar   string `json:"avatar" binding:"max=500"`
}

// GetProfile returns the user's profile, creating it on first access.
// @Summary     Get profile
// @Description Get the authenticated user's display profile
// @Tags        profile
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} map[string]interface{} "Profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile/edit/ [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	profile, err := h.profileService.GetOrCreateProfile(userID, user.Email)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// UpdateProfile upserts the user's display name and avatar.
// @Summary     Update profile
// @Description Update the authenticated user's display name and avatar reference
// @Tags        profile
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateProfileRequest true "Profile fields"
// @Success     200 {object} map[string]interface{} "Updated profile"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /profile/edit/ [post]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	profile, err := h.profileService.UpdateProfile(userID, req.FullName, req.Avatar)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}
