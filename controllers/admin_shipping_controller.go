package controllers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vaporhouse-br/VaporHouse/config"
	"github.com/vaporhouse-br/VaporHouse/models"
	"github.com/vaporhouse-br/VaporHouse/utils"
)

// AdminShippingRateRequest represents the create/update shipping rate body
type AdminShippingRateRequest struct {
	City         string  `json:"city" binding:"required,max=100"`
	Neighborhood string  `json:"neighborhood" binding:"omitempty,max=100"`
	Fee          float64 `json:"fee" binding:"gte=0"`
	FreeAbove    float64 `json:"free_above" binding:"gte=0"`
	Active       *bool   `json:"active"`
}

// AdminListShippingRates lists all shipping rates
func AdminListShippingRates(c *gin.Context) {
	var rates []models.ShippingRate
	if err := config.DB.Order("city asc, neighborhood asc").Find(&rates).Error; err != nil {
		utils.LogError("Failed to fetch shipping rates: %v", err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}
	utils.Success(c, gin.H{"rates": rates})
}

// AdminCreateShippingRate creates a delivery fee entry
func AdminCreateShippingRate(c *gin.Context) {
	var req AdminShippingRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Create shipping rate failed - invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request data", utils.BindingErrorDetails(err))
		return
	}

	city := strings.TrimSpace(req.City)
	neighborhood := strings.TrimSpace(req.Neighborhood)

	var existing models.ShippingRate
	if err := config.DB.
		Where("LOWER(city) = LOWER(?) AND LOWER(neighborhood) = LOWER(?)", city, neighborhood).
		First(&existing).Error; err == nil {
		utils.Conflict(c, "A rate for this city and neighborhood already exists", nil)
		return
	}

	rate := models.ShippingRate{
		City:         city,
		Neighborhood: neighborhood,
		Fee:          req.Fee,
		FreeAbove:    req.FreeAbove,
		Active:       true,
	}
	if req.Active != nil {
		rate.Active = *req.Active
	}

	if err := config.DB.Create(&rate).Error; err != nil {
		utils.LogError("Failed to create shipping rate for %s: %v", city, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	utils.LogInfo("Shipping rate created: %s / %s (%s)", rate.City, rate.Neighborhood, rate.ID)
	utils.Created(c, gin.H{"rate": rate})
}

// AdminUpdateShippingRate updates a delivery fee entry
func AdminUpdateShippingRate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid shipping rate id", nil)
		return
	}

	var rate models.ShippingRate
	if err := config.DB.First(&rate, "id = ?", id).Error; err != nil {
		utils.NotFound(c, "Shipping rate not found")
		return
	}

	var req AdminShippingRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request data", utils.BindingErrorDetails(err))
		return
	}

	rate.City = strings.TrimSpace(req.City)
	rate.Neighborhood = strings.TrimSpace(req.Neighborhood)
	rate.Fee = req.Fee
	rate.FreeAbove = req.FreeAbove
	if req.Active != nil {
		rate.Active = *req.Active
	}

	if err := config.DB.Save(&rate).Error; err != nil {
		utils.LogError("Failed to update shipping rate %s: %v", id, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	utils.LogInfo("Shipping rate updated: %s / %s (%s)", rate.City, rate.Neighborhood, rate.ID)
	utils.Success(c, gin.H{"rate": rate})
}

// AdminDeleteShippingRate soft deletes a delivery fee entry
func AdminDeleteShippingRate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid shipping rate id", nil)
		return
	}

	result := config.DB.Delete(&models.ShippingRate{}, "id = ?", id)
	if result.Error != nil {
		utils.LogError("Failed to delete shipping rate %s: %v", id, result.Error)
		utils.InternalServerError(c, "Internal server error", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Shipping rate not found")
		return
	}

	utils.LogInfo("Shipping rate deleted: %s", id)
	utils.Success(c, gin.H{"message": "Shipping rate deleted"})
}
