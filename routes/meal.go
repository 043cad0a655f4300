package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	mealControllers "github.com/nahidn228/HostelMate-Server/controllers/meal"
	"github.com/nahidn228/HostelMate-Server/middleware"
)

// SetupMealRoutes registers the catalog endpoints. Browsing is public;
// likes and reviews need a verified identity; creation and deletion are
// admin-only.
func SetupMealRoutes(r *gin.Engine, db *gorm.DB, cache *middleware.RoleCache) {
	r.GET("/meals", mealControllers.GetMeals(db))
	r.GET("/meals/:id", mealControllers.GetMealByID(db))
	r.POST("/meals/:id", middleware.ValidateToken, mealControllers.AddMealReview(db))
	r.PATCH("/meals/:id", middleware.ValidateToken, mealControllers.LikeMeal(db))

	r.POST("/meal",
		middleware.ValidateToken,
		middleware.RequireAdmin(db, cache),
		mealControllers.CreateMeal(db),
	)

	r.GET("/upcomingMeals", mealControllers.GetUpcomingMeals(db))
	r.PATCH("/upcomingMeals/:id", middleware.ValidateToken, mealControllers.LikeUpcomingMeal(db))
	r.POST("/upcomingMeals",
		middleware.ValidateToken,
		middleware.RequireAdmin(db, cache),
		mealControllers.CreateUpcomingMeal(db),
	)
	r.DELETE("/upcomingMeals/:id",
		middleware.ValidateToken,
		middleware.RequireAdmin(db, cache),
		mealControllers.DeleteUpcomingMeal(db),
	)
}
