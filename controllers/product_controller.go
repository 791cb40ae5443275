package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vaporhouse-br/VaporHouse/config"
	"github.com/vaporhouse-br/VaporHouse/models"
	"github.com/vaporhouse-br/VaporHouse/utils"
)

// productListing is the cached shape for a catalog page
type productListing struct {
	Products   []models.Product  `json:"products"`
	Pagination *utils.Pagination `json:"pagination"`
}

// GetProducts lists active products with pagination, optional search and
// category filter. Pages are cached in redis under catalog:* keys.
func GetProducts(c *gin.Context) {
	pagination := utils.NewPagination(c)
	search := c.Query("search")
	categoryID := c.Query("category_id")
	featured := c.Query("featured")

	cacheKey := fmt.Sprintf("catalog:products:p%d:l%d:s%s:c%s:f%s",
		pagination.Page, pagination.Limit, search, categoryID, featured)

	var cached productListing
	if utils.CacheGetJSON(c.Request.Context(), cacheKey, &cached) {
		utils.SendPaginatedResponse(c, "products", cached.Products, cached.Pagination)
		return
	}

	query := config.DB.Model(&models.Product{}).Where("is_active = ?", true)
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", like, like)
	}
	if categoryID != "" {
		id, err := uuid.Parse(categoryID)
		if err != nil {
			utils.BadRequest(c, "Invalid category id", nil)
			return
		}
		query = query.Where("category_id = ?", id)
	}
	if featured == "true" {
		query = query.Where("is_featured = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count products: %v", err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}
	pagination.SetTotal(total)

	var products []models.Product
	if err := query.
		Preload("Category").
		Preload("Flavors").
		Order("created_at desc").
		Offset(pagination.Offset).
		Limit(pagination.Limit).
		Find(&products).Error; err != nil {
		utils.LogError("Failed to fetch products: %v", err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	utils.CacheSetJSON(c.Request.Context(), cacheKey, productListing{
		Products:   products,
		Pagination: pagination,
	})

	utils.SendPaginatedResponse(c, "products", products, pagination)
}

// GetProductDetails returns a single active product with its images and flavors
func GetProductDetails(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product id", nil)
		return
	}

	cacheKey := "catalog:product:" + id.String()
	var cached models.Product
	if utils.CacheGetJSON(c.Request.Context(), cacheKey, &cached) {
		utils.Success(c, gin.H{"product": cached})
		return
	}

	var product models.Product
	if err := config.DB.
		Preload("Category").
		Preload("Images").
		Preload("Flavors").
		Where("id = ? AND is_active = ?", id, true).
		First(&product).Error; err != nil {
		utils.LogError("Product not found: %s", id)
		utils.NotFound(c, "Product not found")
		return
	}

	utils.CacheSetJSON(c.Request.Context(), cacheKey, product)
	utils.Success(c, gin.H{"product": product})
}
