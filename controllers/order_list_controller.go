package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vaporhouse-br/VaporHouse/config"
	"github.com/vaporhouse-br/VaporHouse/models"
	"github.com/vaporhouse-br/VaporHouse/utils"
)

// GetUserOrders lists the authenticated user's orders, newest first
func GetUserOrders(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Unauthorized")
		return
	}
	user := userVal.(models.User)

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Order{}).Where("user_id = ?", user.ID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count orders for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}
	pagination.SetTotal(total)

	var orders []models.Order
	if err := query.
		Preload("Items").
		Order("created_at desc").
		Offset(pagination.Offset).
		Limit(pagination.Limit).
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	utils.SendPaginatedResponse(c, "orders", orders, pagination)
}

// GetOrderDetails returns one of the user's orders with its items
func GetOrderDetails(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Unauthorized")
		return
	}
	user := userVal.(models.User)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid order id", nil)
		return
	}

	var order models.Order
	if err := config.DB.
		Preload("Items").
		Where("id = ? AND user_id = ?", id, user.ID).
		First(&order).Error; err != nil {
		utils.LogError("Order not found for user ID: %d: %s", user.ID, id)
		utils.NotFound(c, "Order not found")
		return
	}

	utils.Success(c, gin.H{"order": order})
}
