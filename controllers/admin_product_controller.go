package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vaporhouse-br/VaporHouse/config"
	"github.com/vaporhouse-br/VaporHouse/models"
	"github.com/vaporhouse-br/VaporHouse/utils"
)

// AdminProductRequest represents the create/update product request body
type AdminProductRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	Description string   `json:"description" binding:"omitempty,max=2000"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Stock       int      `json:"stock" binding:"gte=0"`
	CategoryID  string   `json:"category_id" binding:"required,uuid"`
	ImageURL    string   `json:"image_url" binding:"omitempty,max=500"`
	Flavors     []string `json:"flavors" binding:"omitempty,dive,max=50"`
	IsActive    *bool    `json:"is_active"`
	IsFeatured  *bool    `json:"is_featured"`
}

// AdminListProducts lists all products, including inactive ones
func AdminListProducts(c *gin.Context) {
	pagination := utils.NewPagination(c)

	query := config.DB.Model(&models.Product{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ?", like, like)
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

	utils.SendPaginatedResponse(c, "products", products, pagination)
}

// AdminCreateProduct creates a product with its flavor variants
func AdminCreateProduct(c *gin.Context) {
	var req AdminProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Create product failed - invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request data", utils.BindingErrorDetails(err))
		return
	}

	if err := utils.ValidatePrice(req.Price); err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}
	if err := utils.ValidateStock(req.Stock); err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	categoryID := uuid.MustParse(req.CategoryID)
	var category models.Category
	if err := config.DB.First(&category, "id = ?", categoryID).Error; err != nil {
		utils.BadRequest(c, "Category not found", nil)
		return
	}

	product := models.Product{
		Name:        utils.SanitizeString(req.Name),
		Description: utils.SanitizeString(req.Description),
		Price:       req.Price,
		Stock:       req.Stock,
		CategoryID:  categoryID,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}
	for _, flavor := range req.Flavors {
		product.Flavors = append(product.Flavors, models.ProductFlavor{Name: utils.SanitizeString(flavor)})
	}

	if err := config.DB.Create(&product).Error; err != nil {
		utils.LogError("Failed to create product %s: %v", req.Name, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	utils.InvalidateCatalogCache(c.Request.Context())
	utils.LogInfo("Product created: %s (%s)", product.Name, product.ID)
	utils.Created(c, gin.H{"product": product})
}

// AdminUpdateProduct replaces the editable fields of a product
func AdminUpdateProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product id", nil)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, "id = ?", id).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	var req AdminProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Update product failed - invalid request format: %v", err)
		utils.BadRequest(c, "Invalid request data", utils.BindingErrorDetails(err))
		return
	}

	if err := utils.ValidatePrice(req.Price); err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}
	if err := utils.ValidateStock(req.Stock); err != nil {
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	categoryID := uuid.MustParse(req.CategoryID)
	product.Name = utils.SanitizeString(req.Name)
	product.Description = utils.SanitizeString(req.Description)
	product.Price = req.Price
	product.Stock = req.Stock
	product.CategoryID = categoryID
	if req.ImageURL != "" {
		product.ImageURL = req.ImageURL
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}
	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}

	if err := config.DB.Save(&product).Error; err != nil {
		utils.LogError("Failed to update product %s: %v", id, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	// Flavor list is replaced wholesale on every update
	if req.Flavors != nil {
		if err := config.DB.Where("product_id = ?", product.ID).Delete(&models.ProductFlavor{}).Error; err != nil {
			utils.LogError("Failed to clear flavors for product %s: %v", product.ID, err)
		}
		for _, flavor := range req.Flavors {
			config.DB.Create(&models.ProductFlavor{ProductID: product.ID, Name: utils.SanitizeString(flavor)})
		}
	}

	utils.InvalidateCatalogCache(c.Request.Context())
	utils.LogInfo("Product updated: %s (%s)", product.Name, product.ID)
	utils.Success(c, gin.H{"product": product})
}

// AdminDeleteProduct soft deletes a product
func AdminDeleteProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product id", nil)
		return
	}

	result := config.DB.Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		utils.LogError("Failed to delete product %s: %v", id, result.Error)
		utils.InternalServerError(c, "Internal server error", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Product not found")
		return
	}

	utils.InvalidateCatalogCache(c.Request.Context())
	utils.LogInfo("Product deleted: %s", id)
	utils.Success(c, gin.H{"message": "Product deleted"})
}

// AdminUploadProductImage attaches an uploaded image to a product
func AdminUploadProductImage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid product id", nil)
		return
	}

	var product models.Product
	if err := config.DB.First(&product, "id = ?", id).Error; err != nil {
		utils.NotFound(c, "Product not found")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		utils.BadRequest(c, "Image file is required", nil)
		return
	}

	path, err := utils.SaveUploadedImage(file, "uploads/products")
	if err != nil {
		utils.LogError("Product image upload failed for %s: %v", id, err)
		utils.BadRequest(c, err.Error(), nil)
		return
	}

	image := models.ProductImage{ProductID: product.ID, URL: path}
	if err := config.DB.Create(&image).Error; err != nil {
		utils.LogError("Failed to save product image for %s: %v", id, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	if product.ImageURL == "" {
		product.ImageURL = path
		if err := config.DB.Save(&product).Error; err != nil {
			utils.LogError("Failed to set primary image for %s: %v", id, err)
		}
	}

	utils.InvalidateCatalogCache(c.Request.Context())
	utils.LogInfo("Image uploaded for product: %s", id)
	utils.Created(c, gin.H{"image": image})
}
