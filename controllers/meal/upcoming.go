package mealControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/nahidn228/HostelMate-Server/apperrors"
	"github.com/nahidn228/HostelMate-Server/middleware"
	"github.com/nahidn228/HostelMate-Server/models"
)

// GET /upcomingMeals
// Sorted by engagement so the most-wanted upcoming meals surface first.
func GetUpcomingMeals(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var meals []models.UpcomingMeal
		if err := db.Order("likes desc").Find(&meals).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch upcoming meals"})
			return
		}

		c.JSON(http.StatusOK, meals)
	}
}

// POST /upcomingMeals  (admin)
func CreateUpcomingMeal(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateMealInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		meal := models.UpcomingMeal{
			Title:       input.Title,
			Category:    input.Category,
			Image:       input.Image,
			Description: input.Description,
			Price:       input.Price,
			LikedBy:     datatypes.JSON("[]"),
			PostedAt:    time.Now(),
		}
		if err := db.Create(&meal).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upcoming meal"})
			return
		}

		c.JSON(http.StatusCreated, meal)
	}
}

// PATCH /upcomingMeals/:id  (authenticated) — register a like
func LikeUpcomingMeal(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := middleware.CallerEmail(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		id := c.Param("id")
		if err := RegisterLike(db, &models.UpcomingMeal{}, id, email); err != nil {
			apperrors.Respond(c, err)
			return
		}

		var meal models.UpcomingMeal
		if err := db.First(&meal, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch upcoming meal"})
			return
		}

		c.JSON(http.StatusOK, meal)
	}
}

// DELETE /upcomingMeals/:id  (admin)
func DeleteUpcomingMeal(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.Delete(&models.UpcomingMeal{}, "id = ?", c.Param("id"))
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete upcoming meal"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Upcoming meal not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Upcoming meal deleted"})
	}
}
