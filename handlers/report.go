package handlers

import (
	"net/http"

	"restaurant-pos-api/config"

	"github.com/gin-gonic/gin"
)

type dailySalesRow struct {
	TotalOrders   int    `json:"total_orders"`
	TotalSales    string `json:"total_sales"`
	TotalTax      string `json:"total_tax"`
	TotalDiscount string `json:"total_discount"`
	NetSales      string `json:"net_sales"`
}

// DailySales aggregates order totals for one calendar date (YYYY-MM-DD)
func DailySales(c *gin.Context) {
	date := c.Param("date")

	var row dailySalesRow
	err := config.DB.Raw(`
		SELECT
			COUNT(*) AS total_orders,
			COALESCE(SUM(total_amount), 0) AS total_sales,
			COALESCE(SUM(tax_amount), 0) AS total_tax,
			COALESCE(SUM(discount_amount), 0) AS total_discount,
			COALESCE(SUM(final_amount), 0) AS net_sales
		FROM orders
		WHERE DATE(created_at) = ? AND is_deleted = 0
	`, date).Scan(&row).Error
	if err != nil {
		logError(c, "daily_sales", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating daily sales report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"sale_date": date, "data": row})
}

type popularItemRow struct {
	MenuItemID    uint   `json:"menu_item_id"`
	ItemName      string `json:"item_name"`
	CategoryName  string `json:"category_name"`
	TimesOrdered  int    `json:"times_ordered"`
	TotalQuantity int    `json:"total_quantity"`
	TotalRevenue  string `json:"total_revenue"`
}

// PopularItems ranks menu items by how often they have been ordered
func PopularItems(c *gin.Context) {
	var rows []popularItemRow
	err := config.DB.Raw(`
		SELECT
			m.id AS menu_item_id,
			m.name AS item_name,
			COALESCE(c.name, '') AS category_name,
			COUNT(oi.id) AS times_ordered,
			COALESCE(SUM(oi.quantity), 0) AS total_quantity,
			COALESCE(SUM(oi.subtotal), 0) AS total_revenue
		FROM menu_items m
		LEFT JOIN categories c ON m.category_id = c.id
		LEFT JOIN order_items oi ON oi.menu_item_id = m.id AND oi.is_deleted = 0
		WHERE m.is_deleted = 0
		GROUP BY m.id, m.name, c.name
		ORDER BY total_quantity DESC, m.name
	`).Scan(&rows).Error
	if err != nil {
		logError(c, "popular_items", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating popular items report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(rows), "data": rows})
}

type waiterPerformanceRow struct {
	WaiterID    uint   `json:"waiter_id"`
	WaiterName  string `json:"waiter_name"`
	TipsEarned  string `json:"tips_earned"`
	TotalOrders int    `json:"total_orders"`
	TotalSales  string `json:"total_sales"`
}

// WaiterPerformance ranks waiters by sales volume
func WaiterPerformance(c *gin.Context) {
	var rows []waiterPerformanceRow
	err := config.DB.Raw(`
		SELECT
			w.id AS waiter_id,
			s.name AS waiter_name,
			w.tips_earned AS tips_earned,
			COUNT(o.id) AS total_orders,
			COALESCE(SUM(o.final_amount), 0) AS total_sales
		FROM waiters w
		LEFT JOIN staffs s ON w.staff_id = s.id
		LEFT JOIN orders o ON w.id = o.waiter_id AND o.is_deleted = 0
		WHERE w.is_deleted = 0
		GROUP BY w.id, s.name, w.tips_earned
		ORDER BY total_sales DESC
	`).Scan(&rows).Error
	if err != nil {
		logError(c, "waiter_performance", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating waiter performance report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"count": len(rows), "data": rows})
}
