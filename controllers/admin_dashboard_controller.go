package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vaporhouse-br/VaporHouse/config"
	"github.com/vaporhouse-br/VaporHouse/models"
	"github.com/vaporhouse-br/VaporHouse/utils"
)

// AdminDashboard returns the summary numbers shown on the back-office home
func AdminDashboard(c *gin.Context) {
	var (
		totalUsers    int64
		totalProducts int64
		totalOrders   int64
		pendingOrders int64
	)

	config.DB.Model(&models.User{}).Count(&totalUsers)
	config.DB.Model(&models.Product{}).Where("is_active = ?", true).Count(&totalProducts)
	config.DB.Model(&models.Order{}).Count(&totalOrders)
	config.DB.Model(&models.Order{}).Where("status = ?", models.OrderStatusPending).Count(&pendingOrders)

	// Revenue counts everything except cancelled orders
	var totalRevenue float64
	config.DB.Model(&models.Order{}).
		Where("status <> ?", models.OrderStatusCancelled).
		Select("COALESCE(SUM(total), 0)").
		Scan(&totalRevenue)

	monthStart := time.Now().AddDate(0, 0, -30)
	var monthRevenue float64
	config.DB.Model(&models.Order{}).
		Where("status <> ? AND created_at >= ?", models.OrderStatusCancelled, monthStart).
		Select("COALESCE(SUM(total), 0)").
		Scan(&monthRevenue)

	var lowStock []models.Product
	if err := config.DB.
		Where("is_active = ? AND stock <= ?", true, 5).
		Order("stock asc").
		Limit(10).
		Find(&lowStock).Error; err != nil {
		utils.LogError("Failed to fetch low stock products: %v", err)
	}

	var recentOrders []models.Order
	if err := config.DB.
		Preload("Items").
		Order("created_at desc").
		Limit(5).
		Find(&recentOrders).Error; err != nil {
		utils.LogError("Failed to fetch recent orders: %v", err)
	}

	utils.Success(c, gin.H{
		"summary": gin.H{
			"total_users":     totalUsers,
			"total_products":  totalProducts,
			"total_orders":    totalOrders,
			"pending_orders":  pendingOrders,
			"total_revenue":   totalRevenue,
			"revenue_30_days": monthRevenue,
		},
		"low_stock":     lowStock,
		"recent_orders": recentOrders,
	})
}
