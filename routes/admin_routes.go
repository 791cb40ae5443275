package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vaporhouse-br/VaporHouse/controllers"
	"github.com/vaporhouse-br/VaporHouse/middleware"
)

// initAdminRoutes initializes all back-office routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	{
		// Public admin routes
		admin.POST("/login", controllers.AdminLogin)

		// Protected admin routes
		admin.Use(middleware.AdminAuthMiddleware())
		{
			admin.GET("/dashboard", controllers.AdminDashboard)

			// User management
			admin.GET("/users", controllers.AdminListUsers)
			admin.PATCH("/users/:id/block", controllers.AdminBlockUser)
			admin.PATCH("/users/:id/unblock", controllers.AdminUnblockUser)

			// Category management
			admin.GET("/categories", controllers.AdminListCategories)
			admin.POST("/categories", controllers.AdminCreateCategory)
			admin.PUT("/categories/:id", controllers.AdminUpdateCategory)
			admin.DELETE("/categories/:id", controllers.AdminDeleteCategory)

			// Product management
			admin.GET("/products", controllers.AdminListProducts)
			admin.POST("/products", controllers.AdminCreateProduct)
			admin.PUT("/products/:id", controllers.AdminUpdateProduct)
			admin.DELETE("/products/:id", controllers.AdminDeleteProduct)
			admin.POST("/products/:id/images", controllers.AdminUploadProductImage)

			// Banner management
			admin.GET("/banners", controllers.AdminListBanners)
			admin.POST("/banners", controllers.AdminCreateBanner)
			admin.PUT("/banners/:id", controllers.AdminUpdateBanner)
			admin.DELETE("/banners/:id", controllers.AdminDeleteBanner)

			// Discount management
			admin.GET("/discounts", controllers.AdminListDiscounts)
			admin.POST("/discounts", controllers.AdminCreateDiscount)
			admin.PUT("/discounts/:id", controllers.AdminUpdateDiscount)
			admin.DELETE("/discounts/:id", controllers.AdminDeleteDiscount)

			// Shipping management
			admin.GET("/shipping", controllers.AdminListShippingRates)
			admin.POST("/shipping", controllers.AdminCreateShippingRate)
			admin.PUT("/shipping/:id", controllers.AdminUpdateShippingRate)
			admin.DELETE("/shipping/:id", controllers.AdminDeleteShippingRate)

			// Order management
			admin.GET("/orders", controllers.AdminListOrders)
			admin.GET("/orders/:id", controllers.AdminGetOrder)
			admin.PATCH("/orders/:id/status", controllers.AdminUpdateOrderStatus)

			// Reporting
			admin.GET("/reports/sales", controllers.ExportSalesReport)
		}
	}
}
