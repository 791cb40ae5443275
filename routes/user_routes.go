package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/vaporhouse-br/VaporHouse/controllers"
	"github.com/vaporhouse-br/VaporHouse/middleware"
)

// initUserRoutes initializes all storefront routes
func initUserRoutes(router *gin.RouterGroup) {
	// Public routes
	router.POST("/register", controllers.RegisterUser)
	router.POST("/verify-otp", controllers.VerifyOTP)
	router.POST("/login", controllers.LoginUser)
	router.POST("/forgot-password", controllers.ForgotPassword)
	router.POST("/reset-password", controllers.ResetPassword)

	router.GET("/products", controllers.GetProducts)
	router.GET("/products/:id", controllers.GetProductDetails)
	router.GET("/categories", controllers.GetCategories)
	router.GET("/categories/:id/products", controllers.GetCategoryProducts)
	router.GET("/banners", controllers.GetBanners)
	router.GET("/shipping/quote", controllers.QuoteShipping)

	// Checkout
	router.POST("/orders", middleware.AuthMiddleware(), controllers.CreateOrder)

	// Authenticated account routes
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/profile/avatar", controllers.UploadAvatar)
		user.PUT("/password", controllers.ChangePassword)

		user.GET("/cart", controllers.GetCart)
		user.POST("/cart/add", controllers.AddToCart)
		user.PUT("/cart/update", controllers.UpdateCartItem)
		user.DELETE("/cart/remove", controllers.RemoveCartItem)
		user.DELETE("/cart/clear", controllers.ClearCart)

		user.GET("/orders", controllers.GetUserOrders)
		user.GET("/orders/:id", controllers.GetOrderDetails)
		user.GET("/orders/:id/invoice", controllers.DownloadInvoice)
	}
}
