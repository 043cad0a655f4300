package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	reviewControllers "github.com/nahidn228/HostelMate-Server/controllers/review"
	"github.com/nahidn228/HostelMate-Server/middleware"
)

// SetupReviewRoutes registers the append-only review endpoints.
func SetupReviewRoutes(r *gin.Engine, db *gorm.DB) {
	reviews := r.Group("/reviews")
	reviews.Use(middleware.ValidateToken)
	{
		reviews.GET("", reviewControllers.GetReviews(db))
		reviews.POST("", reviewControllers.AddReview(db))
	}
}
