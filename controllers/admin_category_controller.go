package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vaporhouse-br/VaporHouse/config"
	"github.com/vaporhouse-br/VaporHouse/models"
	"github.com/vaporhouse-br/VaporHouse/utils"
)

// AdminCategoryRequest represents the create/update category request body
type AdminCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
	Active      *bool  `json:"active"`
}

// AdminListCategories lists all categories, including inactive ones
func AdminListCategories(c *gin.Context) {
	var categories []models.Category
	if err := config.DB.Order("name asc").Find(&categories).Error; err != nil {
		utils.LogError("Failed to fetch categories: %v", err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}
	utils.Success(c, gin.H{"categories": categories})
}

// AdminCreateCategory creates a category
func AdminCreateCategory(c *gin.Context) {
	var req AdminCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Create category failed - invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request data", utils.BindingErrorDetails(err))
		return
	}

	var existing models.Category
	if err := config.DB.Where("LOWER(name) = LOWER(?)", req.Name).First(&existing).Error; err == nil {
		utils.Conflict(c, "A category with this name already exists", nil)
		return
	}

	category := models.Category{
		Name:        utils.SanitizeString(req.Name),
		Description: utils.SanitizeString(req.Description),
		Active:      true,
	}
	if req.Active != nil {
		category.Active = *req.Active
	}

	if err := config.DB.Create(&category).Error; err != nil {
		utils.LogError("Failed to create category %s: %v", req.Name, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	utils.InvalidateCatalogCache(c.Request.Context())
	utils.LogInfo("Category created: %s (%s)", category.Name, category.ID)
	utils.Created(c, gin.H{"category": category})
}

// AdminUpdateCategory updates a category
func AdminUpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid category id", nil)
		return
	}

	var category models.Category
	if err := config.DB.First(&category, "id = ?", id).Error; err != nil {
		utils.NotFound(c, "Category not found")
		return
	}

	var req AdminCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request data", utils.BindingErrorDetails(err))
		return
	}

	category.Name = utils.SanitizeString(req.Name)
	category.Description = utils.SanitizeString(req.Description)
	if req.Active != nil {
		category.Active = *req.Active
	}

	if err := config.DB.Save(&category).Error; err != nil {
		utils.LogError("Failed to update category %s: %v", id, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	utils.InvalidateCatalogCache(c.Request.Context())
	utils.LogInfo("Category updated: %s (%s)", category.Name, category.ID)
	utils.Success(c, gin.H{"category": category})
}

// AdminDeleteCategory soft deletes a category with no products attached
func AdminDeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid category id", nil)
		return
	}

	var productCount int64
	if err := config.DB.Model(&models.Product{}).Where("category_id = ?", id).Count(&productCount).Error; err != nil {
		utils.LogError("Failed to count products in category %s: %v", id, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}
	if productCount > 0 {
		utils.Conflict(c, "Category has products. Move or delete them first.", nil)
		return
	}

	result := config.DB.Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		utils.LogError("Failed to delete category %s: %v", id, result.Error)
		utils.InternalServerError(c, "Internal server error", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Category not found")
		return
	}

	utils.InvalidateCatalogCache(c.Request.Context())
	utils.LogInfo("Category deleted: %s", id)
	utils.Success(c, gin.H{"message": "Category deleted"})
}
