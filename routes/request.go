package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	requestControllers "github.com/nahidn228/HostelMate-Server/controllers/request"
	"github.com/nahidn228/HostelMate-Server/middleware"
)

// SetupRequestRoutes registers the meal-request endpoints. Members
// submit and list their own requests; only admins see the full queue
// and mark deliveries.
func SetupRequestRoutes(r *gin.Engine, db *gorm.DB, cache *middleware.RoleCache) {
	r.POST("/requestMeal", middleware.ValidateToken, requestControllers.SubmitRequest(db))
	r.GET("/requestMeal", middleware.ValidateToken, requestControllers.GetOwnRequests(db))

	r.GET("/requestMeal/all",
		middleware.ValidateToken,
		middleware.RequireAdmin(db, cache),
		requestControllers.GetAllRequests(db),
	)
	r.PATCH("/requestMeal/:id",
		middleware.ValidateToken,
		middleware.RequireAdmin(db, cache),
		requestControllers.MarkDelivered(db),
	)

	// live feed for the admin dashboard
	r.GET("/requestMeal/ws", requestControllers.RequestFeedHandler)
}
