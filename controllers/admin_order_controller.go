package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vaporhouse-br/VaporHouse/config"
	"github.com/vaporhouse-br/VaporHouse/models"
	"github.com/vaporhouse-br/VaporHouse/utils"
	"gorm.io/gorm"
)

// AdminListOrders lists all orders with optional status and payment filters
func AdminListOrders(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Order{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if payment := c.Query("payment_method"); payment != "" {
		query = query.Where("payment_method = ?", payment)
	}
	if from := c.Query("from"); from != "" {
		query = query.Where("created_at >= ?", from)
	}
	if to := c.Query("to"); to != "" {
		query = query.Where("created_at <= ?", to)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count orders: %v", err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}
	pagination.SetTotal(total)

	var orders []models.Order
	if err := query.
		Preload("Items").
		Preload("User").
		Order("created_at desc").
		Offset(pagination.Offset).
		Limit(pagination.Limit).
		Find(&orders).Error; err != nil {
		utils.LogError("Failed to fetch orders: %v", err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	utils.SendPaginatedResponse(c, "orders", orders, pagination)
}

// AdminGetOrder returns one order with its items and customer
func AdminGetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid order id", nil)
		return
	}

	var order models.Order
	if err := config.DB.
		Preload("Items").
		Preload("User").
		First(&order, "id = ?", id).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}

	utils.Success(c, gin.H{"order": order})
}

// canTransition reports whether an order status change is allowed. Orders
// move pending -> confirmed -> delivered; cancellation is possible until
// the order has been delivered.
func canTransition(from, to string) bool {
	switch from {
	case models.OrderStatusPending:
		return to == models.OrderStatusConfirmed || to == models.OrderStatusCancelled
	case models.OrderStatusConfirmed:
		return to == models.OrderStatusDelivered || to == models.OrderStatusCancelled
	default:
		return false
	}
}

// UpdateOrderStatusRequest represents the status update request body
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed delivered cancelled"`
}

// AdminUpdateOrderStatus moves an order through its lifecycle. Cancelling
// restocks every item in the same transaction as the status change.
func AdminUpdateOrderStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid order id", nil)
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request data", utils.BindingErrorDetails(err))
		return
	}

	var order models.Order
	if err := config.DB.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		utils.NotFound(c, "Order not found")
		return
	}

	if !canTransition(order.Status, req.Status) {
		utils.LogError("Rejected status change %s -> %s for order %s", order.Status, req.Status, order.ID)
		utils.BadRequest(c, fmt.Sprintf("Cannot change order status from %s to %s", order.Status, req.Status), nil)
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
			Update("status", req.Status).Error; err != nil {
			return err
		}
		if req.Status == models.OrderStatusCancelled {
			for _, item := range order.Items {
				if err := tx.Model(&models.Product{}).Where("id = ?", item.ProductID).
					UpdateColumn("stock", gorm.Expr("stock + ?", item.Quantity)).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		utils.LogError("Failed to update status for order %s: %v", order.ID, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	utils.LogInfo("Order %s status changed: %s -> %s", order.ID, order.Status, req.Status)
	utils.Success(c, gin.H{
		"order": gin.H{
			"id":     order.ID,
			"status": req.Status,
		},
	})
}
