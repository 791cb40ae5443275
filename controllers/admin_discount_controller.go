package controllers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vaporhouse-br/VaporHouse/config"
	"github.com/vaporhouse-br/VaporHouse/models"
	"github.com/vaporhouse-br/VaporHouse/utils"
)

// AdminDiscountRequest represents the create/update discount request body
type AdminDiscountRequest struct {
	Code       string    `json:"code" binding:"required,max=50"`
	Type       string    `json:"type" binding:"required,oneof=percent fixed"`
	Value      float64   `json:"value" binding:"required,gt=0"`
	ValidUntil time.Time `json:"valid_until" binding:"required"`
	UsageLimit int       `json:"usage_limit" binding:"gte=0"`
	Active     *bool     `json:"active"`
}

// AdminListDiscounts lists all discount codes with their redemption counts
func AdminListDiscounts(c *gin.Context) {
	pagination := utils.NewPagination(c)

	var total int64
	if err := config.DB.Model(&models.Discount{}).Count(&total).Error; err != nil {
		utils.LogError("Failed to count discounts: %v", err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}
	pagination.SetTotal(total)

	var discounts []models.Discount
	if err := config.DB.
		Order("created_at desc").
		Offset(pagination.Offset).
		Limit(pagination.Limit).
		Find(&discounts).Error; err != nil {
		utils.LogError("Failed to fetch discounts: %v", err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	type discountWithUsage struct {
		models.Discount
		TimesUsed int64 `json:"times_used"`
	}
	result := make([]discountWithUsage, 0, len(discounts))
	for _, d := range discounts {
		var used int64
		config.DB.Model(&models.DiscountUsage{}).Where("discount_id = ?", d.ID).Count(&used)
		result = append(result, discountWithUsage{Discount: d, TimesUsed: used})
	}

	utils.SendPaginatedResponse(c, "discounts", result, pagination)
}

// AdminCreateDiscount creates a discount code. Codes are stored uppercase.
func AdminCreateDiscount(c *gin.Context) {
	var req AdminDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Create discount failed - invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request data", utils.BindingErrorDetails(err))
		return
	}

	if err := utils.ValidateDiscountValue(req.Type, req.Value); err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))

	var existing models.Discount
	if err := config.DB.Where("code = ?", code).First(&existing).Error; err == nil {
		utils.Conflict(c, "A discount with this code already exists", nil)
		return
	}

	discount := models.Discount{
		Code:       code,
		Type:       req.Type,
		Value:      req.Value,
		ValidUntil: req.ValidUntil,
		UsageLimit: req.UsageLimit,
		Active:     true,
	}
	if req.Active != nil {
		discount.Active = *req.Active
	}

	if err := config.DB.Create(&discount).Error; err != nil {
		utils.LogError("Failed to create discount %s: %v", code, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	utils.LogInfo("Discount created: %s (%s)", discount.Code, discount.ID)
	utils.Created(c, gin.H{"discount": discount})
}

// AdminUpdateDiscount updates a discount code
func AdminUpdateDiscount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid discount id", nil)
		return
	}

	var discount models.Discount
	if err := config.DB.First(&discount, "id = ?", id).Error; err != nil {
		utils.NotFound(c, "Discount not found")
		return
	}

	var req AdminDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request data", utils.BindingErrorDetails(err))
		return
	}

	if err := utils.ValidateDiscountValue(req.Type, req.Value); err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if code != discount.Code {
		var existing models.Discount
		if err := config.DB.Where("code = ? AND id <> ?", code, id).First(&existing).Error; err == nil {
			utils.Conflict(c, "A discount with this code already exists", nil)
			return
		}
	}

	discount.Code = code
	discount.Type = req.Type
	discount.Value = req.Value
	discount.ValidUntil = req.ValidUntil
	discount.UsageLimit = req.UsageLimit
	if req.Active != nil {
		discount.Active = *req.Active
	}

	if err := config.DB.Save(&discount).Error; err != nil {
		utils.LogError("Failed to update discount %s: %v", id, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	utils.LogInfo("Discount updated: %s (%s)", discount.Code, discount.ID)
	utils.Success(c, gin.H{"discount": discount})
}

// AdminDeleteDiscount soft deletes a discount code. Past redemptions keep
// their usage rows for reporting.
func AdminDeleteDiscount(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid discount id", nil)
		return
	}

	result := config.DB.Delete(&models.Discount{}, "id = ?", id)
	if result.Error != nil {
		utils.LogError("Failed to delete discount %s: %v", id, result.Error)
		utils.InternalServerError(c, "Internal server error", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Discount not found")
		return
	}

	utils.LogInfo("Discount deleted: %s", id)
	utils.Success(c, gin.H{"message": "Discount deleted"})
}
