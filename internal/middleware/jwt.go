package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"moneyflow/internal/auth"   // Token resolution
	"moneyflow/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// CurrentUserKey is the context key under which the authenticated user is stored
const CurrentUserKey = "currentUser"

// BearerAuthMiddleware validates bearer tokens and loads the subject user from
// the database on each request. Tampered or expired tokens and tokens whose
// user no longer exists are all rejected with the same response.
func BearerAuthMiddleware(db *gorm.DB, authn *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		username, err := authn.ResolveToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}
		var user domain.User
		if err := db.Where("username = ?", username).First(&user).Error; err != nil {
			// A valid token for a since-deleted user is still rejected
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Could not validate credentials"})
			return
		}
		c.Set(CurrentUserKey, user) // Store the resolved user in context
		c.Next()
	}
}
