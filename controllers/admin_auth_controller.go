package controllers

import (
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vaporhouse-br/VaporHouse/config"
	"github.com/vaporhouse-br/VaporHouse/models"
	"github.com/vaporhouse-br/VaporHouse/utils"
)

// AdminLoginRequest represents the admin login request body
type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AdminLogin handles admin login
func AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Admin login failed - invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request data", utils.BindingErrorDetails(err))
		return
	}

	var admin models.Admin
	if err := config.DB.Where("email = ?", req.Email).First(&admin).Error; err != nil {
		utils.LogError("Admin login failed - not found: %s", req.Email)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	if !utils.CheckPassword(req.Password, admin.Password) {
		utils.LogError("Admin login failed - invalid password: %s", req.Email)
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	if !admin.IsActive {
		utils.LogError("Admin login failed - deactivated account: %s", req.Email)
		utils.Forbidden(c, "Account is deactivated")
		return
	}

	admin.LastLogin = time.Now()
	if err := config.DB.Save(&admin).Error; err != nil {
		utils.LogError("Failed to update admin last login: %v", err)
	}

	token, err := utils.GenerateAdminToken(&admin)
	if err != nil {
		utils.LogError("Failed to generate admin token for %s: %v", req.Email, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	utils.LogInfo("Admin logged in: %s", req.Email)
	utils.Success(c, gin.H{
		"token": token,
		"admin": gin.H{
			"id":    admin.ID,
			"email": admin.Email,
		},
	})
}

// EnsureDefaultAdmin seeds the back-office account on first boot when the
// admins table is empty. Credentials come from the environment.
func EnsureDefaultAdmin() {
	var count int64
	if err := config.DB.Model(&models.Admin{}).Count(&count).Error; err != nil {
		utils.LogError("Failed to count admins: %v", err)
		return
	}
	if count > 0 {
		return
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		utils.LogInfo("No admins exist and ADMIN_EMAIL/ADMIN_PASSWORD not set; skipping seed")
		return
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		utils.LogError("Failed to hash default admin password: %v", err)
		return
	}

	admin := models.Admin{
		Email:    email,
		Password: hashed,
		IsActive: true,
	}
	if err := config.DB.Create(&admin).Error; err != nil {
		utils.LogError("Failed to seed default admin: %v", err)
		return
	}
	utils.LogInfo("Seeded default admin account: %s", email)
}
