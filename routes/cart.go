package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/nahidn228/HostelMate-Server/controllers/cart"
	"github.com/nahidn228/HostelMate-Server/middleware"
)

// SetupCartRoutes registers the cart endpoints. Every operation is
// scoped to the verified caller's own cart.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	carts := r.Group("/carts")
	carts.Use(middleware.ValidateToken)
	{
		carts.GET("", cartControllers.GetCartItems(db))
		carts.POST("", cartControllers.AddCartItem(db))
		carts.DELETE("/:id", cartControllers.DeleteCartItem(db))
	}
}
