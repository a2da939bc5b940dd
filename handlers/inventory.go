package handlers

import (
	"net/http"

	"restaurant-pos-api/config"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetInventory lists stock levels for every active menu item, lowest first
func GetInventory(c *gin.Context) {
	var items []models.MenuItem
	query := config.DB.Preload("Category").Where("is_deleted = ?", false)
	if categoryID := c.Query("category_id"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	query.Order("current_stock asc, name asc").Find(&items)

	out := make([]gin.H, 0, len(items))
	for i := range items {
		out = append(out, gin.H{
			"menu_id":       items[i].ID,
			"item_name":     items[i].Name,
			"category":      items[i].Category.Name,
			"current_stock": items[i].CurrentStock,
			"unit":          items[i].Unit,
			"reorder_level": items[i].ReorderLevel,
			"price":         items[i].Price,
			"stock_status":  items[i].StockStatus(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"count": len(out), "data": out})
}

// GetInventoryStats summarizes stock health across the catalog
func GetInventoryStats(c *gin.Context) {
	var items []models.MenuItem
	config.DB.Where("is_deleted = ?", false).Find(&items)

	stats := gin.H{}
	var lowStock, outOfStock, reorderRequired int
	for i := range items {
		if items[i].CurrentStock.IsZero() {
			outOfStock++
		} else if items[i].CurrentStock.LessThanOrEqual(items[i].ReorderLevel) {
			lowStock++
		}
		if items[i].CurrentStock.LessThanOrEqual(items[i].ReorderLevel) {
			reorderRequired++
		}
	}
	stats["totalItems"] = len(items)
	stats["lowStockItems"] = lowStock
	stats["outOfStock"] = outOfStock
	stats["reorderRequired"] = reorderRequired

	c.JSON(http.StatusOK, gin.H{"data": stats})
}

type UpdateStockRequest struct {
	Action   string          `json:"action" binding:"required,oneof=add remove set"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
}

// UpdateStock adjusts a menu item's stock. Removal clamps at zero.
func UpdateStock(c *gin.Context) {
	var req UpdateStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity cannot be negative"})
		return
	}

	var item models.MenuItem
	if err := config.DB.Where("is_deleted = ?", false).First(&item, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	previous := item.CurrentStock
	var newStock decimal.Decimal
	switch req.Action {
	case "add":
		newStock = previous.Add(req.Quantity)
	case "remove":
		newStock = previous.Sub(req.Quantity)
		if newStock.IsNegative() {
			newStock = decimal.Zero
		}
	case "set":
		newStock = req.Quantity
	}

	err := config.DB.Model(&item).Updates(map[string]interface{}{
		"current_stock": newStock,
		"modified_by":   middleware.GetEmail(c),
	}).Error
	if err != nil {
		logError(c, "update_stock", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating stock"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stock updated successfully",
		"data": gin.H{
			"previous_stock": previous,
			"new_stock":      newStock,
		},
	})
}
