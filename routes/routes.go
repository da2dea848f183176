package routes

import (
	"hausly/handlers"
	"hausly/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterStorefrontRoutes registers the public catalog endpoints.
func RegisterStorefrontRoutes(r *gin.Engine, couponH *handlers.CouponHandler, catalogH *handlers.CatalogHandler) {
	api := r.Group("/api")
	{
		api.GET("/coupons", couponH.GetCoupons)
		api.GET("/coupons/all/public", couponH.GetAllPublicCoupons)
		api.GET("/banners", catalogH.GetBanners)
		api.GET("/reviews/stats/:category", catalogH.GetReviewStats)
	}
}

// RegisterCartRoutes registers cart, coupon application and tip endpoints.
func RegisterCartRoutes(r *gin.Engine, cartH *handlers.CartHandler) {
	api := r.Group("/api/cart")
	{
		api.POST("/session", cartH.CreateSession)

		// Everything else operates on an established session.
		api.Use(middleware.SessionMiddleware())
		api.GET("", cartH.GetCart)
		api.DELETE("", cartH.ClearCart)
		api.POST("/items", cartH.AddItem)
		api.DELETE("/items/:key", cartH.RemoveItem)
		api.GET("/summary", cartH.GetSummary)
		api.POST("/coupon", cartH.ApplyCoupon)
		api.DELETE("/coupon", cartH.RemoveCoupon)
		api.PUT("/tip", cartH.SetTip)
	}
}

// RegisterAddressRoutes registers the saved address book endpoints.
func RegisterAddressRoutes(r *gin.Engine, addressH *handlers.AddressHandler) {
	api := r.Group("/api/addresses")
	{
		api.Use(middleware.SessionMiddleware())
		api.GET("", addressH.ListAddresses)
		api.POST("", addressH.SaveAddress)
		api.DELETE("/:id", addressH.DeleteAddress)
		api.PUT("/:id/select", addressH.SelectAddress)
		api.GET("/pincode/:pincode", addressH.LookupPincode)
	}
}

// RegisterHealthRoutes registers the health endpoint.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}
