package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nahidn228/HostelMate-Server/auth"
	paymentControllers "github.com/nahidn228/HostelMate-Server/controllers/payment"
	"github.com/nahidn228/HostelMate-Server/middleware"
)

// SetupRoutes is the single entry-point that wires up every route area.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	cache := middleware.NewRoleCache()
	provider := paymentControllers.NewStripeProvider()

	// Token issuance (public)
	r.POST("/jwt", auth.IssueTokenHandler())

	SetupUserRoutes(r, db, cache)
	SetupMealRoutes(r, db, cache)
	SetupRequestRoutes(r, db, cache)
	SetupReviewRoutes(r, db)
	SetupCartRoutes(r, db)
	SetupPaymentRoutes(r, db, cache, provider)
}
