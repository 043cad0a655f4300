package requestControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nahidn228/HostelMate-Server/middleware"
	"github.com/nahidn228/HostelMate-Server/models"
)

type SubmitRequestInput struct {
	MealID uint   `json:"meal_id" binding:"required"`
	Name   string `json:"name"`
}

// POST /requestMeal  (authenticated)
// Repeat requests for the same meal by the same member are allowed.
func SubmitRequest(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := middleware.CallerEmail(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input SubmitRequestInput
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

		request := models.MealRequest{
			MealID:         meal.ID,
			MealTitle:      meal.Title,
			RequesterEmail: email,
			RequesterName:  input.Name,
			Status:         models.RequestStatusPending,
			RequestedAt:    time.Now(),
		}
		if err := db.Create(&request).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit meal request"})
			return
		}

		broadcastRequestEvent("requested", request)
		c.JSON(http.StatusCreated, request)
	}
}

// GET /requestMeal?email=  (authenticated, own requests only)
func GetOwnRequests(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}
		if !middleware.RequireSelf(c, email) {
			return
		}

		var requests []models.MealRequest
		if err := db.Where("requester_email = ?", email).
			Order("requested_at desc").
			Find(&requests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal requests"})
			return
		}

		c.JSON(http.StatusOK, requests)
	}
}

// GET /requestMeal/all  (admin) — optional free-text filter over the
// requester's name or email.
func GetAllRequests(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")

		query := db.Model(&models.MealRequest{}).Order("requested_at desc")
		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("requester_name ILIKE ? OR requester_email ILIKE ?", likePattern, likePattern)
		}

		var requests []models.MealRequest
		if err := query.Find(&requests).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meal requests"})
			return
		}

		c.JSON(http.StatusOK, requests)
	}
}

// PATCH /requestMeal/:id  (admin)
// Delivery is the only transition and it is unconditional, so marking an
// already-delivered request again is a harmless no-op. A missing id is
// the only failure.
func MarkDelivered(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		res := db.Model(&models.MealRequest{}).
			Where("id = ?", id).
			Update("status", models.RequestStatusDelivered)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update meal request"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Meal request not found"})
			return
		}

		var request models.MealRequest
		if err := db.First(&request, "id = ?", id).Error; err == nil {
			broadcastRequestEvent("delivered", request)
			go notifyDelivered(request)
		}

		c.JSON(http.StatusOK, gin.H{"message": "Meal request delivered"})
	}
}
