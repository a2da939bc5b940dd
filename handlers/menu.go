package handlers

import (
	"net/http"

	"restaurant-pos-api/config"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CreateMenuItemRequest struct {
	CategoryID   uint            `json:"category_id" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" binding:"required"`
	CurrentStock decimal.Decimal `json:"current_stock"`
	Unit         string          `json:"unit"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
}

// ListMenuItems returns non-deleted menu items
func ListMenuItems(c *gin.Context) {
	var items []models.MenuItem
	query := config.DB.Preload("Category").Where("is_deleted = ?", false)
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if available := c.Query("available"); available != "" {
		query = query.Where("is_available = ?", available == "true")
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	query.Order("name asc").Find(&items)
	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

// GetMenuItem returns one menu item
func GetMenuItem(c *gin.Context) {
	var item models.MenuItem
	err := config.DB.Preload("Category").Where("is_deleted = ?", false).
		First(&item, "id = ?", c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"item": item})
}

// CreateMenuItem adds a new item to the menu
func CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Price.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price cannot be negative"})
		return
	}

	var category models.Category
	if err := config.DB.Where("is_deleted = ?", false).First(&category, "id = ?", req.CategoryID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}

	item := models.MenuItem{
		CategoryID:   req.CategoryID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		CurrentStock: req.CurrentStock,
		Unit:         req.Unit,
		ReorderLevel: req.ReorderLevel,
		IsAvailable:  true,
		CreatedBy:    middleware.GetEmail(c),
		ModifiedBy:   middleware.GetEmail(c),
	}
	if err := config.DB.Create(&item).Error; err != nil {
		logError(c, "create_menu_item", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// UpdateMenuItem updates a menu item
func UpdateMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.Where("is_deleted = ?", false).First(&item, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req map[string]interface{}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	allowed := map[string]bool{
		"category_id": true, "name": true, "description": true, "price": true,
		"is_available": true, "unit": true, "reorder_level": true,
	}
	update := map[string]interface{}{}
	for k, v := range req {
		if allowed[k] {
			update[k] = v
		}
	}
	update["modified_by"] = middleware.GetEmail(c)
	config.DB.Model(&item).Updates(update)
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// DeleteMenuItem soft-deletes a menu item and takes it off the menu
func DeleteMenuItem(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.Where("is_deleted = ?", false).First(&item, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	config.DB.Model(&item).Updates(map[string]interface{}{
		"is_deleted":   true,
		"is_available": false,
		"modified_by":  middleware.GetEmail(c),
	})
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
