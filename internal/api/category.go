package api

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"moneyflow/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// CategoryRequest is the payload for creating or renaming a category
type CategoryRequest struct {
	Name string `json:"name" binding:"required"` // Category name, trimmed server-side
}

// validCategoryName trims the name and checks the 1-80 character limit
func validCategoryName(name string) (string, bool) {
	name = strings.TrimSpace(name)
	return name, len(name) >= 1 && len(name) <= domain.CategoryNameMaxLen
}

// ListCategoriesHandler returns all categories ordered by name
func ListCategoriesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories := []domain.Category{}
		if err := db.Order("name").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

// CreateCategoryHandler creates a new category with a unique name
func CreateCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		name, ok := validCategoryName(req.Name)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category name must be 1-80 characters"})
			return
		}
		var existing domain.Category
		if err := db.Where("name = ?", name).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category already exists"})
			return
		}
		category := domain.Category{Name: name}
		if err := db.Create(&category).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category already exists"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"category_id": category.ID,
			"name":        category.Name,
		}).Info("Category created")
		c.JSON(http.StatusCreated, category)
	}
}

// UpdateCategoryHandler renames a category, enforcing name uniqueness.
// Transactions keep referencing the category by id, so a rename never
// orphans or duplicates their links.
func UpdateCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		var category domain.Category
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		var req CategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		name, valid := validCategoryName(req.Name)
		if !valid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category name must be 1-80 characters"})
			return
		}
		var existing domain.Category
		if err := db.Where("name = ? AND id <> ?", name, id).First(&existing).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category with this name already exists"})
			return
		}
		if err := db.Model(&category).Update("name", name).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

// DeleteCategoryHandler deletes a category unless transactions still
// reference it
func DeleteCategoryHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c, "id")
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		var category domain.Category
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		var inUse int64
		if err := db.Model(&domain.Transaction{}).Where("category_id = ?", id).Count(&inUse).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check category usage"})
			return
		}
		if inUse > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Category is in use and cannot be deleted"})
			return
		}
		if err := db.Delete(&category).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"category_id": id,
			"name":        category.Name,
		}).Info("Category deleted")
		c.Status(http.StatusNoContent)
	}
}
