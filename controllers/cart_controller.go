package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vaporhouse-br/VaporHouse/config"
	"github.com/vaporhouse-br/VaporHouse/models"
	"github.com/vaporhouse-br/VaporHouse/utils"
)

// AddToCartRequest represents the add-to-cart request body
type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,min=1,max=100"`
	Flavor    string `json:"flavor" binding:"omitempty,max=50"`
}

// AddToCart adds a product to the user's cart or bumps the quantity of the
// matching line
func AddToCart(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Unauthorized")
		return
	}
	user := userVal.(models.User)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Add to cart failed for user ID: %d: %v", user.ID, err)
		utils.BadRequest(c, "Invalid request data", utils.BindingErrorDetails(err))
		return
	}
	productID := uuid.MustParse(req.ProductID)

	var product models.Product
	if err := config.DB.Where("id = ? AND is_active = ?", productID, true).First(&product).Error; err != nil {
		utils.LogError("Add to cart failed - product not found: %s", req.ProductID)
		utils.NotFound(c, "Product not found")
		return
	}

	var item models.CartItem
	err := config.DB.Where("user_id = ? AND product_id = ? AND flavor = ?",
		user.ID, productID, req.Flavor).First(&item).Error
	if err == nil {
		item.Quantity += req.Quantity
		if item.Quantity > 100 {
			item.Quantity = 100
		}
		if err := config.DB.Save(&item).Error; err != nil {
			utils.LogError("Failed to update cart item for user ID: %d: %v", user.ID, err)
			utils.InternalServerError(c, "Internal server error", err)
			return
		}
	} else {
		item = models.CartItem{
			UserID:    user.ID,
			ProductID: productID,
			Quantity:  req.Quantity,
			Flavor:    req.Flavor,
		}
		if err := config.DB.Create(&item).Error; err != nil {
			utils.LogError("Failed to create cart item for user ID: %d: %v", user.ID, err)
			utils.InternalServerError(c, "Internal server error", err)
			return
		}
	}

	utils.LogInfo("Cart updated for user ID: %d, product: %s", user.ID, product.Name)
	utils.Success(c, gin.H{"message": "Added to cart"})
}

// GetCart returns the user's cart with current product data and a running
// subtotal priced from the catalog, not from when the item was added
func GetCart(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Unauthorized")
		return
	}
	user := userVal.(models.User)

	var items []models.CartItem
	if err := config.DB.
		Preload("Product").
		Where("user_id = ?", user.ID).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		utils.LogError("Failed to fetch cart for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	var subtotal float64
	for _, item := range items {
		subtotal += item.Product.Price * float64(item.Quantity)
	}

	utils.Success(c, gin.H{
		"items":    items,
		"subtotal": subtotal,
	})
}

// UpdateCartItemRequest represents the cart quantity update request body
type UpdateCartItemRequest struct {
	ItemID   uint `json:"item_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required,min=1,max=100"`
}

// UpdateCartItem changes the quantity of a cart line
func UpdateCartItem(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Unauthorized")
		return
	}
	user := userVal.(models.User)

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request data", utils.BindingErrorDetails(err))
		return
	}

	var item models.CartItem
	if err := config.DB.Where("id = ? AND user_id = ?", req.ItemID, user.ID).First(&item).Error; err != nil {
		utils.NotFound(c, "Cart item not found")
		return
	}

	item.Quantity = req.Quantity
	if err := config.DB.Save(&item).Error; err != nil {
		utils.LogError("Failed to update cart item for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	utils.Success(c, gin.H{"message": "Cart updated"})
}

// RemoveCartItem deletes a single cart line identified by the item_id query
// parameter
func RemoveCartItem(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Unauthorized")
		return
	}
	user := userVal.(models.User)

	itemID := c.Query("item_id")
	if itemID == "" {
		utils.BadRequest(c, "Invalid request data", []string{"item_id is required"})
		return
	}

	result := config.DB.Where("id = ? AND user_id = ?", itemID, user.ID).Delete(&models.CartItem{})
	if result.Error != nil {
		utils.LogError("Failed to remove cart item for user ID: %d: %v", user.ID, result.Error)
		utils.InternalServerError(c, "Internal server error", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Cart item not found")
		return
	}

	utils.Success(c, gin.H{"message": "Removed from cart"})
}

// ClearCart empties the user's cart
func ClearCart(c *gin.Context) {
	userVal, exists := c.Get("user")
	if !exists {
		utils.Unauthorized(c, "Unauthorized")
		return
	}
	user := userVal.(models.User)

	if err := config.DB.Where("user_id = ?", user.ID).Delete(&models.CartItem{}).Error; err != nil {
		utils.LogError("Failed to clear cart for user ID: %d: %v", user.ID, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	utils.Success(c, gin.H{"message": "Cart cleared"})
}
