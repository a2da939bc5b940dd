package handlers

import (
	"net/http"

	"restaurant-pos-api/config"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
)

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// ListCategories returns non-deleted categories
func ListCategories(c *gin.Context) {
	var categories []models.Category
	query := config.DB.Where("is_deleted = ?", false)
	if active := c.Query("active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}
	query.Order("name asc").Find(&categories)
	c.JSON(http.StatusOK, gin.H{"count": len(categories), "categories": categories})
}

// GetCategory returns one category
func GetCategory(c *gin.Context) {
	var category models.Category
	if err := config.DB.Where("is_deleted = ?", false).First(&category, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": category})
}

// CreateCategory adds a menu category
func CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    true,
		CreatedBy:   middleware.GetEmail(c),
	}
	if err := config.DB.Create(&category).Error; err != nil {
		logError(c, "create_category", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "category": category})
}

// UpdateCategory updates category details
func UpdateCategory(c *gin.Context) {
	var category models.Category
	if err := config.DB.Where("is_deleted = ?", false).First(&category, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{"name": true, "description": true, "is_active": true}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	config.DB.Model(&category).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Category updated", "category": category})
}

// DeleteCategory soft-deletes a category
func DeleteCategory(c *gin.Context) {
	var category models.Category
	if err := config.DB.Where("is_deleted = ?", false).First(&category, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	config.DB.Model(&category).Updates(map[string]interface{}{"is_deleted": true, "is_active": false})
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
