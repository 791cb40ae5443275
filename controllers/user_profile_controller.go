package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/vaporhouse-br/VaporHouse/config"
	"github.com/vaporhouse-br/VaporHouse/models"
	"github.com/vaporhouse-br/VaporHouse/utils"
)

// GetProfile returns the authenticated user's profile
func GetProfile(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Unauthorized")
		return
	}
	user := userVal.(models.User)

	utils.Success(c, gin.H{
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"email":      user.Email,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"phone":      user.Phone,
			"avatar_url": user.AvatarURL,
			"created_at": user.CreatedAt,
		},
	})
}

// UpdateProfileRequest represents the profile update request body
type UpdateProfileRequest struct {
	FirstName string `json:"first_name" binding:"omitempty,max=50"`
	LastName  string `json:"last_name" binding:"omitempty,max=50"`
	Phone     string `json:"phone" binding:"omitempty,max=20"`
}

// UpdateProfile updates the editable profile fields
func UpdateProfile(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Unauthorized")
		return
	}
	user := userVal.(models.User)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Profile update failed for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request data", utils.BindingErrorDetails(err))
		return
	}

	if req.FirstName != "" {
		user.FirstName = utils.SanitizeString(req.FirstName)
	}
	if req.LastName != "" {
		user.LastName = utils.SanitizeString(req.LastName)
	}
	if req.Phone != "" {
		user.Phone = utils.SanitizeString(req.Phone)
	}

	if err := config.DB.Save(&user).Error; err != nil {
		utils.LogError("Failed to save profile for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	utils.LogInfo("Profile updated for user ID: %d", user.ID)
	utils.Success(c, gin.H{"message": "Profile updated"})
}

// UploadAvatar stores a new profile image for the user
func UploadAvatar(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Unauthorized")
		return
	}
	user := userVal.(models.User)

	file, err := c.FormFile("avatar")
	if err != nil {
		utils.LogError("Avatar upload failed for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Avatar image file is required", nil)
		return
	}

	path, err := utils.SaveUploadedImage(file, "uploads/avatars")
	if err != nil {
		utils.LogError("Avatar upload failed for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	user.AvatarURL = path
	if err := config.DB.Save(&user).Error; err != nil {
		utils.LogError("Failed to save avatar for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	utils.LogInfo("Avatar updated for user ID: %d", user.ID)
	utils.Success(c, gin.H{"avatar_url": path})
}

// ChangePasswordRequest represents the change password request body
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// ChangePassword replaces the password after verifying the current one
func ChangePassword(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Unauthorized")
		return
	}
	user := userVal.(models.User)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request data", utils.BindingErrorDetails(err))
		return
	}

	if !utils.CheckPassword(req.CurrentPassword, user.Password) {
		utils.LogError("Change password failed - wrong current password for user ID: %d", user.ID)
		utils.Unauthorized(c, "Current password is incorrect")
		return
	}
	if valid, msg := utils.ValidatePassword(req.NewPassword); !valid {
		utils.BadRequest(c, msg, nil)
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		utils.BadRequest(c, "Passwords do not match", nil)
		return
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	user.Password = hashed
	if err := config.DB.Save(&user).Error; err != nil {
		utils.LogError("Failed to save new password for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	utils.LogInfo("Password changed for user ID: %d", user.ID)
	utils.Success(c, gin.H{"message": "Password updated"})
}
