package handlers

import (
	"net/http"

	"taskturf/models"
	"taskturf/services/user"
	"taskturf/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler serves account management for the authenticated user.
type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{UserService: svc}
}

// MeHandler returns the authenticated account.
func (h *UserHandler) MeHandler(c *gin.Context) {
	u, err := h.UserService.GetByID(actorID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateProfileHandler patches mutable account fields.
func (h *UserHandler) UpdateProfileHandler(c *gin.Context) {
	var patch models.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	u, err := h.UserService.UpdateProfile(actorID(c), patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// ChangePasswordHandler verifies the old password and sets a new one.
func (h *UserHandler) ChangePasswordHandler(c *gin.Context) {
	var input struct {
		OldPassword string `json:"oldPassword" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.UserService.ChangePassword(actorID(c), input.OldPassword, input.NewPassword); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

// SetAvailabilityHandler toggles whether the worker takes new bookings.
func (h *UserHandler) SetAvailabilityHandler(c *gin.Context) {
	var input struct {
		Available *bool `json:"available" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.UserService.SetAvailability(actorID(c), *input.Available); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": *input.Available})
}

// SignOutHandler revokes the current session token.
func (h *UserHandler) SignOutHandler(c *gin.Context) {
	if err := h.UserService.SignOut(actorID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}
