package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vaporhouse-br/VaporHouse/config"
	"github.com/vaporhouse-br/VaporHouse/models"
	"github.com/vaporhouse-br/VaporHouse/utils"
)

// AdminBannerRequest represents the create/update banner request body
type AdminBannerRequest struct {
	Title     string `json:"title" binding:"omitempty,max=200"`
	ImageURL  string `json:"image_url" binding:"omitempty,max=500"`
	LinkURL   string `json:"link_url" binding:"omitempty,max=500"`
	SortOrder int    `json:"sort_order" binding:"gte=0"`
	Active    *bool  `json:"active"`
}

// AdminListBanners lists all banners, including inactive ones
func AdminListBanners(c *gin.Context) {
	var banners []models.Banner
	if err := config.DB.Order("sort_order asc, created_at desc").Find(&banners).Error; err != nil {
		utils.LogError("Failed to fetch banners: %v", err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}
	utils.Success(c, gin.H{"banners": banners})
}

// AdminCreateBanner creates a banner. The image can come as a multipart
// upload or a pre-hosted URL in the JSON body.
func AdminCreateBanner(c *gin.Context) {
	banner := models.Banner{Active: true}

	if file, err := c.FormFile("image"); err == nil {
		path, err := utils.SaveUploadedImage(file, "uploads/banners")
		if err != nil {
			utils.LogError("Banner image upload failed: %v", err)
			utils.BadRequest(c, err.Error(), nil)
			return
		}
		banner.Title = utils.SanitizeString(c.PostForm("title"))
		banner.LinkURL = c.PostForm("link_url")
		banner.ImageURL = path
	} else {
		var req AdminBannerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequest(c, "Invalid request data", utils.BindingErrorDetails(err))
			return
		}
		if req.ImageURL == "" {
			utils.BadRequest(c, "Banner image is required", nil)
			return
		}
		banner.Title = utils.SanitizeString(req.Title)
		banner.ImageURL = req.ImageURL
		banner.LinkURL = req.LinkURL
		banner.SortOrder = req.SortOrder
		if req.Active != nil {
			banner.Active = *req.Active
		}
	}

	if err := config.DB.Create(&banner).Error; err != nil {
		utils.LogError("Failed to create banner: %v", err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	utils.InvalidateCatalogCache(c.Request.Context())
	utils.LogInfo("Banner created: %s", banner.ID)
	utils.Created(c, gin.H{"banner": banner})
}

// AdminUpdateBanner updates a banner
func AdminUpdateBanner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid banner id", nil)
		return
	}

	var banner models.Banner
	if err := config.DB.First(&banner, "id = ?", id).Error; err != nil {
		utils.NotFound(c, "Banner not found")
		return
	}

	var req AdminBannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request data", utils.BindingErrorDetails(err))
		return
	}

	if req.Title != "" {
		banner.Title = utils.SanitizeString(req.Title)
	}
	if req.ImageURL != "" {
		banner.ImageURL = req.ImageURL
	}
	if req.LinkURL != "" {
		banner.LinkURL = req.LinkURL
	}
	banner.SortOrder = req.SortOrder
	if req.Active != nil {
		banner.Active = *req.Active
	}

	if err := config.DB.Save(&banner).Error; err != nil {
		utils.LogError("Failed to update banner %s: %v", id, err)
		utils.InternalServerError(c, "Internal server error", err)
		return
	}

	utils.InvalidateCatalogCache(c.Request.Context())
	utils.LogInfo("Banner updated: %s", banner.ID)
	utils.Success(c, gin.H{"banner": banner})
}

// AdminDeleteBanner soft deletes a banner
func AdminDeleteBanner(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid banner id", nil)
		return
	}

	result := config.DB.Delete(&models.Banner{}, "id = ?", id)
	if result.Error != nil {
		utils.LogError("Failed to delete banner %s: %v", id, result.Error)
		utils.InternalServerError(c, "Internal server error", result.Error)
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, "Banner not found")
		return
	}

	utils.InvalidateCatalogCache(c.Request.Context())
	utils.LogInfo("Banner deleted: %s", id)
	utils.Success(c, gin.H{"message": "Banner deleted"})
}
