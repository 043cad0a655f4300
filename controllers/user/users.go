package userControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nahidn228/HostelMate-Server/middleware"
	"github.com/nahidn228/HostelMate-Server/models"
)

type CreateUserInput struct {
	Email string `json:"email" binding:"required,email"`
	Name  string `json:"name"`
}

// POST /users
// Registration is idempotent: a second POST with a known email is a
// no-op, not an error.
func CreateUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateUserInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}

		var existing models.User
		err := db.Where("email = ?", input.Email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusOK, gin.H{"message": "user already exists", "insertedId": nil})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
			return
		}

		user := models.User{
			ID:        uuid.NewString(),
			Email:     input.Email,
			Name:      input.Name,
			Role:      models.RoleMember,
			CreatedAt: time.Now(),
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"insertedId": user.ID})
	}
}

// GET /users  (admin)
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		search := c.Query("search")

		query := db.Model(&models.User{}).Order("created_at desc")
		if search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("name ILIKE ? OR email ILIKE ?", likePattern, likePattern)
		}

		var users []models.User
		if err := query.Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		c.JSON(http.StatusOK, users)
	}
}

// GET /users/admin/:email
// A caller may only ask about their own admin flag; asking about anyone
// else is rejected even with a valid token.
func CheckAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		if !middleware.RequireSelf(c, email) {
			return
		}

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, gin.H{"admin": false})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"admin": user.IsAdmin()})
	}
}

// PATCH /users/admin/:id  (admin)
func PromoteToAdmin(db *gorm.DB, cache *middleware.RoleCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var user models.User
		if err := db.First(&user, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}

		if err := db.Model(&user).Update("role", models.RoleAdmin).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to promote user"})
			return
		}
		cache.Invalidate(c.Request.Context(), user.Email)

		c.JSON(http.StatusOK, gin.H{"message": "User promoted to admin"})
	}
}

// DELETE /users/:id  (admin)
func DeleteUser(db *gorm.DB, cache *middleware.RoleCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var user models.User
		if err := db.First(&user, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
			return
		}

		if err := db.Delete(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
			return
		}
		cache.Invalidate(c.Request.Context(), user.Email)

		c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
	}
}
