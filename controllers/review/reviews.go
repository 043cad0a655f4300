package reviewControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nahidn228/HostelMate-Server/middleware"
	"github.com/nahidn228/HostelMate-Server/models"
)

type AddReviewInput struct {
	MealID       uint   `json:"meal_id" binding:"required"`
	ReviewerName string `json:"reviewer_name"`
	Rating       int    `json:"rating" binding:"min=0,max=5"`
	Comment      string `json:"comment"`
}

// GET /reviews  (authenticated) — all reviews, or one reviewer's with
// ?email= (self-match enforced).
func GetReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Review{}).Order("created_at desc")

		if email := c.Query("email"); email != "" {
			if !middleware.RequireSelf(c, email) {
				return
			}
			query = query.Where("reviewer_email = ?", email)
		}

		var reviews []models.Review
		if err := query.Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		c.JSON(http.StatusOK, reviews)
	}
}

// POST /reviews  (authenticated) — append-only; reviews are never
// edited or removed.
func AddReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := middleware.CallerEmail(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddReviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var meal models.Meal
		if err := db.First(&meal, "id = ?", input.MealID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal"})
			return
		}

		review := models.Review{
			MealID:        meal.ID,
			ReviewerEmail: email,
			ReviewerName:  input.ReviewerName,
			Rating:        input.Rating,
			Comment:       input.Comment,
			CreatedAt:     time.Now(),
		}
		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add review"})
			return
		}

		c.JSON(http.StatusCreated, review)
	}
}
