package controllers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vaporhouse-br/VaporHouse/config"
	"github.com/vaporhouse-br/VaporHouse/models"
	"github.com/vaporhouse-br/VaporHouse/utils"
)

// pickShippingRate chooses the best matching rate for an address. A rate
// scoped to the exact neighborhood beats the city-wide fallback.
func pickShippingRate(rates []models.ShippingRate, neighborhood string) *models.ShippingRate {
	var cityWide *models.ShippingRate
	for i := range rates {
		r := &rates[i]
		if r.Neighborhood != "" && strings.EqualFold(r.Neighborhood, neighborhood) {
			return r
		}
		if r.Neighborhood == "" && cityWide == nil {
			cityWide = r
		}
	}
	return cityWide
}

// quoteShippingFee applies the free-shipping threshold to the matched rate
func quoteShippingFee(rate *models.ShippingRate, subtotal float64) float64 {
	if rate.FreeAbove > 0 && subtotal >= rate.FreeAbove {
		return 0
	}
	return rate.Fee
}

// QuoteShipping returns the delivery fee for an address. The fee is
// informational; order totals never include it.
func QuoteShipping(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		utils.BadRequest(c, "Invalid request data", []string{"city is required"})
		return
	}
	neighborhood := strings.TrimSpace(c.Query("neighborhood"))

	var subtotal float64
	if raw := c.Query("subtotal"); raw != "" {
		parsed, err := utils.ParseNumericString(raw)
		if err != nil {
			utils.BadRequest(c, "Invalid request data", []string{fmt.Sprintf("subtotal %v", err)})
			return
		}
		subtotal = parsed
	}

	var rates []models.ShippingRate
	if err := config.DB.
		Where("LOWER(city) = LOWER(?) AND active = ?", city, true).
		Find(&rates).Error; err != nil {
		utils.LogError("Failed to fetch shipping rates for %s: %v", city, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	rate := pickShippingRate(rates, neighborhood)
	if rate == nil {
		utils.LogInfo("No shipping coverage for city: %s", city)
		utils.NotFound(c, "We do not deliver to this address yet")
		return
	}

	fee := quoteShippingFee(rate, subtotal)
	utils.Success(c, gin.H{
		"fee":        fee,
		"free_above": rate.FreeAbove,
	})
}
