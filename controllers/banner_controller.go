package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/vaporhouse-br/VaporHouse/config"
	"github.com/vaporhouse-br/VaporHouse/models"
	"github.com/vaporhouse-br/VaporHouse/utils"
)

// GetBanners lists active banners ordered for the home page carousel
func GetBanners(c *gin.Context) {
	cacheKey := "catalog:banners"
	var cached []models.Banner
	if utils.CacheGetJSON(c.Request.Context(), cacheKey, &cached) {
		utils.Success(c, gin.H{"banners": cached})
		return
	}

	var banners []models.Banner
	if err := config.DB.
		Where("active = ?", true).
		Order("sort_order asc, created_at desc").
		Find(&banners).Error; err != nil {
		utils.LogError("Failed to fetch banners: %v", err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	utils.CacheSetJSON(c.Request.Context(), cacheKey, banners)
	utils.Success(c, gin.H{"banners": banners})
}
