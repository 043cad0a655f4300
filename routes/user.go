package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	userControllers "github.com/nahidn228/HostelMate-Server/controllers/user"
	"github.com/nahidn228/HostelMate-Server/middleware"
)

// SetupUserRoutes registers the /users endpoints. Registration is
// public; everything else is admin-gated except the self-only admin
// flag check.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, cache *middleware.RoleCache) {
	r.POST("/users", userControllers.CreateUser(db))

	r.GET("/users/admin/:email",
		middleware.ValidateToken,
		userControllers.CheckAdmin(db),
	)

	admin := r.Group("/users")
	admin.Use(middleware.ValidateToken, middleware.RequireAdmin(db, cache))
	{
		admin.GET("", userControllers.GetAllUsers(db))
		admin.DELETE("/:id", userControllers.DeleteUser(db, cache))
		admin.PATCH("/admin/:id", userControllers.PromoteToAdmin(db, cache))
	}
}
