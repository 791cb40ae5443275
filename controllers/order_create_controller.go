package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vaporhouse-br/VaporHouse/config"
	"github.com/vaporhouse-br/VaporHouse/models"
	"github.com/vaporhouse-br/VaporHouse/utils"
	"gorm.io/gorm"
)

// OrderItemRequest is one cart line in the checkout payload
type OrderItemRequest struct {
	ID       string `json:"id" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"required,min=1,max=100"`
	Flavor   string `json:"flavor" binding:"omitempty,max=50"`
}

// OrderAddressRequest is the delivery address of the checkout payload
type OrderAddressRequest struct {
	Street       string `json:"street" binding:"required,max=120"`
	Number       string `json:"number" binding:"required,max=20"`
	Neighborhood string `json:"neighborhood" binding:"required,max=80"`
	City         string `json:"city" binding:"required,max=80"`
}

// CreateOrderRequest is the checkout payload. Prices and stock are never
// trusted from the client; everything monetary is re-derived server-side.
type CreateOrderRequest struct {
	Items         []OrderItemRequest  `json:"items" binding:"required,min=1,dive"`
	Address       OrderAddressRequest `json:"address" binding:"required"`
	PaymentMethod string              `json:"paymentMethod" binding:"required,oneof=pix dinheiro"`
	ChangeAmount  string              `json:"changeAmount" binding:"omitempty,max=20"`
	DiscountCode  string              `json:"discountCode" binding:"omitempty,max=50"`
}

// buildOrderItems validates the requested lines against the authoritative
// products and freezes unit price and name per line. Returns the pre-discount
// subtotal. Any unresolvable id or shortfall in stock rejects the whole
// request before a single write happens.
func buildOrderItems(reqItems []OrderItemRequest, products map[uuid.UUID]models.Product) ([]models.OrderItem, float64, error) {
	items := make([]models.OrderItem, 0, len(reqItems))
	requested := make(map[uuid.UUID]int)
	var subtotal float64

	for _, line := range reqItems {
		id, err := uuid.Parse(line.ID)
		if err != nil {
			return nil, 0, fmt.Errorf("Product %s not found", line.ID)
		}

		product, ok := products[id]
		if !ok {
			return nil, 0, fmt.Errorf("Product %s not found", line.ID)
		}

		// Lines referencing the same product count against stock together
		requested[id] += line.Quantity
		if requested[id] > product.Stock {
			return nil, 0, fmt.Errorf("Insufficient stock for %s. Available: %d, Requested: %d",
				product.Name, product.Stock, requested[id])
		}

		items = append(items, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			Price:       product.Price,
			Flavor:      line.Flavor,
		})
		subtotal += product.Price * float64(line.Quantity)
	}

	return items, subtotal, nil
}

// evaluateDiscount checks the eligibility conditions in order: expiry, global
// usage cap, then per-user prior usage. The first failing condition wins.
func evaluateDiscount(discount *models.Discount, now time.Time, usageCount int64, usedByUser bool) error {
	if now.After(discount.ValidUntil) {
		return fmt.Errorf("Discount code expired")
	}
	if usageCount >= int64(discount.UsageLimit) {
		return fmt.Errorf("Discount code usage limit reached")
	}
	if usedByUser {
		return fmt.Errorf("You have already used this discount code")
	}
	return nil
}

// discountAmount computes the value a validated discount takes off the
// subtotal. A fixed discount larger than the subtotal is capped so the order
// total never goes negative.
func discountAmount(discount *models.Discount, subtotal float64) float64 {
	var amount float64
	switch discount.Type {
	case models.DiscountTypePercent:
		amount = subtotal * discount.Value / 100
	case models.DiscountTypeFixed:
		amount = discount.Value
	}
	if amount > subtotal {
		amount = subtotal
	}
	return amount
}

// CreateOrder handles checkout. It re-derives prices and stock from the
// product table, optionally validates and applies a discount code, then
// persists the order header, the line items, the stock decrements and the
// discount-usage record in a single transaction.
func CreateOrder(c *gin.Context) {
	utils.LogInfo("CreateOrder called")

	userVal, exists := c.Get("user")
	if !exists {
		utils.LogError("User not found in context")
		utils.Unauthorized(c, "Unauthorized")
		return
	}
	user, ok := userVal.(models.User)
	if !ok {
		utils.LogError("Invalid user type in context")
		utils.Unauthorized(c, "Unauthorized")
		return
	}
	utils.LogInfo("Processing checkout for user ID: %d", user.ID)

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid checkout payload for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request data", utils.BindingErrorDetails(err))
		return
	}

	// Change-due only applies to cash orders and must parse as an amount
	var changeFor *float64
	if req.PaymentMethod == models.PaymentMethodCash && req.ChangeAmount != "" {
		amount, err := utils.ParseNumericString(req.ChangeAmount)
		if err != nil {
			utils.LogError("Invalid changeAmount for user ID: %d: %v", user.ID, err)
			utils.BadRequest(c, "Invalid request data", []string{fmt.Sprintf("changeAmount %v", err)})
			return
		}
		changeFor = &amount
	}

	ids := make([]uuid.UUID, 0, len(req.Items))
	for _, line := range req.Items {
		if id, err := uuid.Parse(line.ID); err == nil {
			ids = append(ids, id)
		}
	}

	// Authoritative read: current price, name and stock. Inactive products
	// are treated as not found.
	var productRows []models.Product
	if err := config.DB.Where("id IN ? AND is_active = ?", ids, true).Find(&productRows).Error; err != nil {
		utils.LogError("Failed to fetch products for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to fetch product information", err)
		return
	}
	products := make(map[uuid.UUID]models.Product, len(productRows))
	for _, p := range productRows {
		products[p.ID] = p
	}

	items, subtotal, err := buildOrderItems(req.Items, products)
	if err != nil {
		utils.LogError("Checkout validation failed for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, err.Error(), nil)
		return
	}
	utils.LogInfo("Validated %d items, subtotal %.2f for user ID: %d", len(items), subtotal, user.ID)

	// Discount evaluation, only when a code was supplied
	var discount *models.Discount
	var discountTotal float64
	if req.DiscountCode != "" {
		var d models.Discount
		if err := config.DB.Where("code = ? AND active = ?", req.DiscountCode, true).First(&d).Error; err != nil {
			utils.LogError("Discount code not found or inactive: %s, user ID: %d", req.DiscountCode, user.ID)
			utils.BadRequest(c, "Invalid or expired discount code", nil)
			return
		}

		var usageCount int64
		if err := config.DB.Model(&models.DiscountUsage{}).Where("discount_id = ?", d.ID).Count(&usageCount).Error; err != nil {
			utils.LogError("Failed to count discount usage for code %s: %v", d.Code, err)
			utils.InternalServerError(c, "Internal server error", err)
			return
		}

		var priorUse models.DiscountUsage
		usedByUser := config.DB.Where("discount_id = ? AND user_id = ?", d.ID, user.ID).
			First(&priorUse).Error == nil

		if err := evaluateDiscount(&d, time.Now(), usageCount, usedByUser); err != nil {
			utils.LogError("Discount rejected for user ID: %d, code %s: %v", user.ID, d.Code, err)
			utils.BadRequest(c, err.Error(), nil)
			return
		}

		discount = &d
		discountTotal = discountAmount(&d, subtotal)
		utils.LogInfo("Applying discount code %s (-%.2f) for user ID: %d", d.Code, discountTotal, user.ID)
	}

	total := subtotal - discountTotal

	// All four writes commit or roll back together: order header, items,
	// stock decrements, discount usage.
	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction for user ID: %d: %v", user.ID, tx.Error)
		utils.InternalServerError(c, "Internal server error", tx.Error)
		return
	}

	order := models.Order{
		UserID:         user.ID,
		Street:         req.Address.Street,
		Number:         req.Address.Number,
		Neighborhood:   req.Address.Neighborhood,
		City:           req.Address.City,
		PaymentMethod:  req.PaymentMethod,
		ChangeFor:      changeFor,
		Subtotal:       subtotal,
		DiscountAmount: discountTotal,
		Total:          total,
		Status:         models.OrderStatusPending,
	}
	if discount != nil {
		order.DiscountID = &discount.ID
		order.DiscountCode = discount.Code
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create order for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Failed to create order", err)
		return
	}

	for i := range items {
		items[i].OrderID = order.ID
	}
	if err := tx.Create(&items).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create order items for order ID: %s: %v", order.ID, err)
		utils.InternalServerError(c, "Failed to create order items", err)
		return
	}

	// Conditional decrement so concurrent checkouts cannot oversell: the
	// guarded UPDATE re-checks stock at write time.
	for _, item := range items {
		res := tx.Model(&models.Product{}).
			Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
			UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity))
		if res.Error != nil {
			tx.Rollback()
			utils.LogError("Failed to decrement stock for product %s: %v", item.ProductID, res.Error)
			utils.InternalServerError(c, "Internal server error", res.Error)
			return
		}
		if res.RowsAffected == 0 {
			tx.Rollback()
			product := products[item.ProductID]
			utils.LogError("Stock raced out for product %s during checkout, user ID: %d", item.ProductID, user.ID)
			utils.BadRequest(c, fmt.Sprintf("Insufficient stock for %s. Available: %d, Requested: %d",
				product.Name, product.Stock, item.Quantity), nil)
			return
		}
	}

	if discount != nil {
		usage := models.DiscountUsage{
			DiscountID: discount.ID,
			UserID:     user.ID,
			OrderID:    order.ID,
			UsedAt:     time.Now(),
		}
		if err := tx.Create(&usage).Error; err != nil {
			tx.Rollback()
			utils.LogError("Failed to record discount usage for order ID: %s: %v", order.ID, err)
			utils.InternalServerError(c, "Internal server error", err)
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit checkout transaction for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}
	order.Items = items
	utils.OrdersCreatedTotal.Inc()
	utils.LogInfo("Created order ID: %s, total %.2f for user ID: %d", order.ID, order.Total, user.ID)

	// Best-effort follow-ups; the order is already committed
	if err := config.DB.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error; err != nil {
		utils.LogError("Failed to clear cart after checkout for user ID: %d: %v", user.ID, err)
	}
	if err := utils.SendOrderConfirmation(user.Email, &order); err != nil {
		utils.LogError("Failed to send order confirmation for order ID: %s: %v", order.ID, err)
	}

	respItems := make([]gin.H, 0, len(items))
	for _, item := range items {
		entry := gin.H{
			"product_id": item.ProductID,
			"quantity":   item.Quantity,
			"price":      item.Price,
			"name":       item.ProductName,
		}
		if item.Flavor != "" {
			entry["flavor"] = item.Flavor
		}
		respItems = append(respItems, entry)
	}

	utils.Success(c, gin.H{
		"order": gin.H{
			"id":    order.ID,
			"total": order.Total,
			"items": respItems,
		},
	})
}
