package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vaporhouse-br/VaporHouse/config"
	"github.com/vaporhouse-br/VaporHouse/models"
	"github.com/vaporhouse-br/VaporHouse/utils"
)

// GetCategories lists active categories for the storefront
func GetCategories(c *gin.Context) {
	cacheKey := "catalog:categories"
	var cached []models.Category
	if utils.CacheGetJSON(c.Request.Context(), cacheKey, &cached) {
		utils.Success(c, gin.H{"categories": cached})
		return
	}

	var categories []models.Category
	if err := config.DB.
		Where("active = ?", true).
		Order("name asc").
		Find(&categories).Error; err != nil {
		utils.LogError("Failed to fetch categories: %v", err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	utils.CacheSetJSON(c.Request.Context(), cacheKey, categories)
	utils.Success(c, gin.H{"categories": categories})
}

// GetCategoryProducts lists the active products of one category
func GetCategoryProducts(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid category id", nil)
		return
	}

	var category models.Category
	if err := config.DB.Where("id = ? AND active = ?", id, true).First(&category).Error; err != nil {
		utils.NotFound(c, "Category not found")
		return
	}

	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Product{}).
		Where("category_id = ? AND is_active = ?", id, true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count products in category %s: %v", id, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}
	pagination.SetTotal(total)

	var products []models.Product
	if err := query.
		Preload("Flavors").
		Order("created_at desc").
		Offset(pagination.Offset).
		Limit(pagination.Limit).
		Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products in category %s: %v", id, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	utils.SendPaginatedResponse(c, "products", products, pagination)
}
