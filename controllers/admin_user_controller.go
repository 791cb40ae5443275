package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/vaporhouse-br/VaporHouse/config"
	"github.com/vaporhouse-br/VaporHouse/models"
	"github.com/vaporhouse-br/VaporHouse/utils"
)

// AdminListUsers lists customer accounts with optional search
func AdminListUsers(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.User{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("username ILIKE ? OR email ILIKE ?", like, like)
	}
	if blocked := c.Query("blocked"); blocked == "true" {
		query = query.Where("is_blocked = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count users: %v", err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}
	pagination.SetTotal(total)

	var users []models.User
	if err := query.
		Order("created_at desc").
		Offset(pagination.Offset).
		Limit(pagination.Limit).
		Find(&users).Error; err != nil {
		utils.LogError("Failed to fetch users: %v", err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	utils.SendPaginatedResponse(c, "users", users, pagination)
}

// AdminBlockUser blocks a customer account. Blocked users cannot log in or
// place orders; their existing sessions fail at the auth middleware.
func AdminBlockUser(c *gin.Context) {
	setUserBlocked(c, true, "User blocked")
}

// AdminUnblockUser lifts the block on a customer account
func AdminUnblockUser(c *gin.Context) {
	setUserBlocked(c, false, "User unblocked")
}

func setUserBlocked(c *gin.Context, blocked bool, message string) {
	var user models.User
	if err := config.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		utils.NotFound(c, "User not found")
		return
	}

	if err := config.DB.Model(&user).Update("is_blocked", blocked).Error; err != nil {
		utils.LogError("Failed to update block state for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	utils.LogInfo("%s: ID %d (%s)", message, user.ID, user.Email)
	utils.Success(c, gin.H{"message": message})
}
