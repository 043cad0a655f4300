package middleware

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/nahidn228/HostelMate-Server/models"
)

// ContextEmailKey is where ValidateToken stores the verified caller email.
const ContextEmailKey = "email"

// ValidateToken requires an "Authorization: Bearer <token>" header and
// verifies signature and expiry. Any parse failure rejects the request;
// on success the decoded email is set on the context for downstream
// handlers.
func ValidateToken(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}

	tokenString, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header must be a Bearer token"})
		c.Abort()
		return
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}

	email, _ := claims["email"].(string)
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}

	c.Set(ContextEmailKey, email)
	c.Next()
}

// CallerEmail returns the email ValidateToken attached to the context.
func CallerEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get(ContextEmailKey)
	if !exists {
		return "", false
	}
	email, ok := v.(string)
	return email, ok && email != ""
}

// RequireAdmin resolves the verified caller's role and rejects anyone who
// is not an admin. It must run after ValidateToken: a bad token is 401,
// a good token with the wrong role is 403. The role lookup goes through
// cache (which may be disabled) so repeated admin calls do not pay a DB
// read each time.
func RequireAdmin(db *gorm.DB, cache *RoleCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := CallerEmail(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
			c.Abort()
			return
		}

		role, found := cache.Get(c.Request.Context(), email)
		if !found {
			var user models.User
			if err := db.Select("role").Where("email = ?", email).First(&user).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
				} else {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify role"})
				}
				c.Abort()
				return
			}
			role = user.Role
			cache.Set(c.Request.Context(), email, role)
		}

		if role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireSelf rejects the request when the supplied identity does not
// match the verified caller, even if the token itself is valid.
func RequireSelf(c *gin.Context, email string) bool {
	caller, ok := CallerEmail(c)
	if !ok || caller != email {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
		c.Abort()
		return false
	}
	return true
}
