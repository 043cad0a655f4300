package mealControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/nahidn228/HostelMate-Server/apperrors"
	"github.com/nahidn228/HostelMate-Server/middleware"
	"github.com/nahidn228/HostelMate-Server/models"
)

type CreateMealInput struct {
	Title       string  `json:"title" binding:"required"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

type AddReviewInput struct {
	ReviewerName string `json:"reviewer_name"`
	Rating       int    `json:"rating" binding:"min=0,max=5"`
	Comment      string `json:"comment"`
}

// GET /meals
func GetMeals(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := c.Query("filter")
		search := c.Query("search")
		sort := strings.ToLower(c.Query("sort"))

		query := db.Model(&models.Meal{})
		if search != "" {
			query = query.Where("title ILIKE ?", "%"+search+"%")
		}
		if filter != "" {
			query = query.Where("category = ?", filter)
		}
		switch sort {
		case "asc":
			query = query.Order("price asc")
		case "desc":
			query = query.Order("price desc")
		}

		var meals []models.Meal
		if err := query.Find(&meals).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meals"})
			return
		}

		c.JSON(http.StatusOK, meals)
	}
}

// GET /meals/:id
func GetMealByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var meal models.Meal
		if err := db.Preload("Reviews").First(&meal, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Meal not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal"})
			return
		}

		c.JSON(http.StatusOK, meal)
	}
}

// POST /meal  (admin)
func CreateMeal(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateMealInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		meal := models.Meal{
			Title:       input.Title,
			Category:    input.Category,
			Image:       input.Image,
			Description: input.Description,
			Price:       input.Price,
			LikedBy:     datatypes.JSON("[]"),
			PostedAt:    time.Now(),
		}
		if err := db.Create(&meal).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create meal"})
			return
		}

		c.JSON(http.StatusCreated, meal)
	}
}

// POST /meals/:id  (authenticated) — append a review
func AddMealReview(db *gorm.DB) gin.HandlerFunc {
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
		if err := db.First(&meal, "id = ?", c.Param("id")).Error; err != nil {
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

// PATCH /meals/:id  (authenticated) — register a like
func LikeMeal(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := middleware.CallerEmail(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		id := c.Param("id")
		if err := RegisterLike(db, &models.Meal{}, id, email); err != nil {
			apperrors.Respond(c, err)
			return
		}

		var meal models.Meal
		if err := db.First(&meal, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal"})
			return
		}

		c.JSON(http.StatusOK, meal)
	}
}
