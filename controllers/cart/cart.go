package cartControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/nahidn228/HostelMate-Server/middleware"
	"github.com/nahidn228/HostelMate-Server/models"
)

type AddCartItemInput struct {
	MealID uint `json:"meal_id" binding:"required"`
}

// GET /carts?email=  (authenticated, own cart only)
func GetCartItems(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Query("email")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}
		if !middleware.RequireSelf(c, email) {
			return
		}

		var items []models.CartItem
		if err := db.Where("owner_email = ?", email).
			Order("added_at desc").
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, items)
	}
}

// POST /carts  (authenticated)
// Price and title are snapshotted from the meal at add time.
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := middleware.CallerEmail(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddCartItemInput
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

		item := models.CartItem{
			OwnerEmail: email,
			MealID:     meal.ID,
			MealTitle:  meal.Title,
			Price:      meal.Price,
			AddedAt:    time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusCreated, item)
	}
}

// DELETE /carts/:id  (authenticated)
// Scoped to the caller's own items; deleting someone else's row is
// indistinguishable from a missing one.
func DeleteCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := middleware.CallerEmail(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		res := db.Where("id = ? AND owner_email = ?", c.Param("id"), email).
			Delete(&models.CartItem{})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete cart item"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}
