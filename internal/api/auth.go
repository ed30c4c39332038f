package api

import (
	"errors"   // Sentinel error checks
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"moneyflow/internal/auth"   // Password hashing and tokens
	"moneyflow/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// RegisterRequest is the payload for creating a user
type RegisterRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// LoginRequest is the payload for logging in
type LoginRequest struct {
	Username string `json:"username" binding:"required"` // Username must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// TokenResponse carries an issued bearer token
type TokenResponse struct {
	AccessToken string `json:"access_token"` // Signed JWT
	TokenType   string `json:"token_type"`   // Always "bearer"
}

// RegisterHandler creates a new user if the username is free
func RegisterHandler(db *gorm.DB, authn *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		username := strings.TrimSpace(req.Username)
		if username == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Pre-check so the common case gets a clean error before hashing
		var existing domain.User
		if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already registered"})
			return
		}
		hash, err := authn.HashPassword(req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrPasswordTooLong) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Password too long"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user := domain.User{Username: username, PasswordHash: hash}
		if err := db.Create(&user).Error; err != nil {
			// Unique index catches the race the pre-check missed
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already registered"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,
			"username": user.Username,
		}).Info("User registered")
		c.JSON(http.StatusCreated, gin.H{"id": user.ID, "username": user.Username})
	}
}

// LoginHandler authenticates a user and returns a bearer token.
// Unknown usernames and wrong passwords get the same response so the
// endpoint cannot be used to enumerate accounts.
func LoginHandler(db *gorm.DB, authn *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var user domain.User
		if err := db.Where("username = ?", req.Username).First(&user).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
			return
		}
		if !authn.VerifyPassword(req.Password, user.PasswordHash) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect username or password"})
			return
		}
		token, err := authn.IssueToken(user.Username)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
	}
}

// MeHandler returns the current authenticated user
func MeHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		c.JSON(http.StatusOK, gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"created_at": user.CreatedAt,
		})
	}
}

// ChangeUsernameRequest is the payload for renaming an account
type ChangeUsernameRequest struct {
	NewUsername string `json:"new_username" binding:"required"` // Desired username
}

// ChangeUsernameHandler renames the current user and issues a fresh token,
// since the old one is bound to the previous username
func ChangeUsernameHandler(db *gorm.DB, authn *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChangeUsernameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		newUsername := strings.TrimSpace(req.NewUsername)
		if newUsername == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var existing domain.User
		if err := db.Where("username = ?", newUsername).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already in use."})
			return
		}
		user := currentUser(c)
		if err := db.Model(&user).Update("username", newUsername).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update username"})
			return
		}
		token, err := authn.IssueToken(newUsername)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":  user.ID,
			"username": newUsername,
		}).Info("Username changed")
		c.JSON(http.StatusOK, gin.H{
			"message":      "username-updated",
			"access_token": token,
			"token_type":   "bearer",
		})
	}
}

// ChangePasswordRequest is the payload for rotating a password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"` // Must match the stored hash
	NewPassword     string `json:"new_password" binding:"required"`     // Replacement password
}

// ChangePasswordHandler rotates the current user's password
func ChangePasswordHandler(db *gorm.DB, authn *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChangePasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		user := currentUser(c)
		if !authn.VerifyPassword(req.CurrentPassword, user.PasswordHash) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Current password is incorrect."})
			return
		}
		hash, err := authn.HashPassword(req.NewPassword)
		if err != nil {
			if errors.Is(err, auth.ErrPasswordTooLong) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Password too long"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		if err := db.Model(&user).Update("password_hash", hash).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
			return
		}
		logrus.WithFields(logrus.Fields{"user_id": user.ID}).Info("Password changed")
		c.JSON(http.StatusOK, gin.H{"message": "password-updated"})
	}
}
