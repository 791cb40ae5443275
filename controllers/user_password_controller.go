package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vaporhouse-br/VaporHouse/config"
	"github.com/vaporhouse-br/VaporHouse/models"
	"github.com/vaporhouse-br/VaporHouse/utils"
)

// ForgotPasswordRequest represents the forgot password request body
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword e-mails a reset code to the account holder. The response is
// identical whether or not the address exists.
func ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Forgot password failed - invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request data", utils.BindingErrorDetails(err))
		return
	}
	utils.LogInfo("Password reset requested for: %s", req.Email)

	neutral := gin.H{"message": "If the email exists, a reset code has been sent."}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.LogInfo("Password reset requested for unknown email: %s", req.Email)
		utils.Success(c, neutral)
		return
	}

	otp := utils.GenerateOTP()
	record := models.UserOTP{
		UserID:    user.ID,
		Code:      otp,
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}
	if err := config.DB.Create(&record).Error; err != nil {
		utils.LogError("Failed to store reset code for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	if err := utils.SendPasswordResetOTP(user.Email, otp); err != nil {
		utils.LogError("Failed to send reset code to %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to send reset email", err)
		return
	}

	utils.LogInfo("Password reset code sent to: %s", user.Email)
	utils.Success(c, neutral)
}

// ResetPasswordRequest represents the reset password request body
type ResetPasswordRequest struct {
	Email           string `json:"email" binding:"required,email"`
	OTP             string `json:"otp" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// ResetPassword checks the e-mailed code and replaces the password
func ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Reset password failed - invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request data", utils.BindingErrorDetails(err))
		return
	}

	if valid, msg := utils.ValidatePassword(req.NewPassword); !valid {
		utils.LogError("Reset password failed - weak password for: %s", req.Email)
		utils.BadRequest(c, msg, nil)
		return
	}
	if req.NewPassword != req.ConfirmPassword {
		utils.LogError("Reset password failed - passwords do not match for: %s", req.Email)
		utils.BadRequest(c, "Passwords do not match", nil)
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.LogError("Reset password failed - user not found: %s", req.Email)
		utils.BadRequest(c, "Invalid or expired reset code", nil)
		return
	}

	var record models.UserOTP
	if err := config.DB.Where("user_id = ? AND code = ? AND expires_at > ?",
		user.ID, req.OTP, time.Now()).Order("created_at desc").First(&record).Error; err != nil {
		utils.LogError("Reset password failed - invalid code for user ID: %d", user.ID)
		utils.BadRequest(c, "Invalid or expired reset code", nil)
		return
	}

	hashed, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		utils.LogError("Reset password failed - could not hash password: %v", err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	user.Password = hashed
	if err := config.DB.Save(&user).Error; err != nil {
		utils.LogError("Reset password failed - could not save user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	// Consume every outstanding code for this user
	if err := config.DB.Where("user_id = ?", user.ID).Delete(&models.UserOTP{}).Error; err != nil {
		utils.LogError("Failed to clear reset codes for user ID: %d: %v", user.ID, err)
	}

	utils.LogInfo("Password reset completed for user ID: %d", user.ID)
	utils.Success(c, gin.H{"message": "Password has been reset. Please login."})
}
