package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"restaurant-pos-api/billing"
	"restaurant-pos-api/config"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"
	"restaurant-pos-api/statemachine"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PlaceOrderItem struct {
	MenuID       uint   `json:"menu_id"`
	Quantity     int    `json:"quantity"`
	SpecialNotes string `json:"special_notes"`
}

type PlaceOrderRequest struct {
	CustomerID          *uint            `json:"customer_id"`
	CustomerName        string           `json:"customer_name"`
	CustomerPhone       string           `json:"customer_phone"`
	CustomerAddress     string           `json:"customer_address"`
	OrderType           models.OrderType `json:"order_type"`
	TableID             *uint            `json:"table_id"`
	WaiterID            uint             `json:"waiter_id"`
	Items               []PlaceOrderItem `json:"items"`
	TaxRate             *decimal.Decimal `json:"tax_rate"`
	DiscountAmount      decimal.Decimal  `json:"discount_amount"`
	SpecialInstructions string           `json:"special_instructions"`
	CreatedBy           string           `json:"created_by"`
}

type menuItemNotFoundError struct{ id uint }

func (e *menuItemNotFoundError) Error() string {
	return fmt.Sprintf("Menu item with ID %d not found", e.id)
}

// PlaceOrder creates an order with its items and decrements stock, all inside
// one transaction. Any failure leaves no partial state behind.
func PlaceOrder(c *gin.Context) {
	success := false
	defer func() { middleware.RecordOrderOperation("place_order", success) }()

	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.CustomerName == "" || req.CustomerPhone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Customer name and phone number are required"})
		return
	}
	if req.OrderType != models.OrderTypeDineIn && req.OrderType != models.OrderTypeTakeaway {
		c.JSON(http.StatusBadRequest, gin.H{"error": `Order type must be either "Dine-in" or "Takeaway"`})
		return
	}
	// Table is required for Dine-in, discarded for Takeaway
	if req.OrderType == models.OrderTypeDineIn && req.TableID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Table number is required for Dine-in orders"})
		return
	}
	if req.WaiterID == 0 || len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Waiter and at least one item are required"})
		return
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("Quantity for menu item %d must be a positive integer", item.MenuID),
			})
			return
		}
	}

	taxRate := config.DefaultTaxRate
	if req.TaxRate != nil {
		taxRate = *req.TaxRate
	}
	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = "System"
	}

	tableID := req.TableID
	if req.OrderType == models.OrderTypeTakeaway {
		tableID = nil
	}

	var order models.Order
	var lines []billing.Line
	var totals billing.Totals

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		// Resolve authoritative prices; abort on the first unknown item
		lines = lines[:0]
		for _, reqItem := range req.Items {
			var menuItem models.MenuItem
			err := tx.Where("id = ? AND is_deleted = ?", reqItem.MenuID, false).First(&menuItem).Error
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return &menuItemNotFoundError{id: reqItem.MenuID}
				}
				return err
			}
			lines = append(lines, billing.Line{
				MenuItemID:   menuItem.ID,
				Name:         menuItem.Name,
				Quantity:     reqItem.Quantity,
				UnitPrice:    menuItem.Price,
				SpecialNotes: reqItem.SpecialNotes,
			})
		}

		var err error
		totals, err = billing.ComputeTotals(lines, taxRate, req.DiscountAmount)
		if err != nil {
			return err
		}

		order = models.Order{
			CustomerID:      req.CustomerID,
			CustomerName:    req.CustomerName,
			CustomerPhone:   req.CustomerPhone,
			CustomerAddress: req.CustomerAddress,
			OrderType:       req.OrderType,
			TableID:         tableID,
			WaiterID:        req.WaiterID,
			TotalAmount:     totals.Subtotal,
			TaxAmount:       totals.Tax,
			DiscountAmount:  totals.Discount,
			FinalAmount:     totals.Final,
			OrderStatus:     models.StatusIncoming,
			PaymentStatus:   models.PaymentUnpaid,
			SpecialInstr:    req.SpecialInstructions,
			CreatedBy:       createdBy,
			ModifiedBy:      createdBy,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, line := range lines {
			orderItem := models.OrderItem{
				OrderID:      order.ID,
				MenuItemID:   line.MenuItemID,
				Name:         line.Name,
				Quantity:     line.Quantity,
				ItemPrice:    line.UnitPrice,
				Subtotal:     line.Subtotal(),
				SpecialNotes: line.SpecialNotes,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}
		}

		// Decrement stock atomically, never below zero
		for _, line := range lines {
			err := tx.Model(&models.MenuItem{}).
				Where("id = ?", line.MenuItemID).
				Updates(map[string]interface{}{
					"current_stock": gorm.Expr("MAX(0, current_stock - ?)", line.Quantity),
					"modified_by":   createdBy,
				}).Error
			if err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		var notFound *menuItemNotFoundError
		switch {
		case errors.As(err, &notFound):
			c.JSON(http.StatusNotFound, gin.H{"error": notFound.Error()})
		case errors.Is(err, billing.ErrDiscountExceedsTotal),
			errors.Is(err, billing.ErrNegativeDiscount),
			errors.Is(err, billing.ErrNegativeTaxRate):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logError(c, "place_order", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating order"})
		}
		return
	}

	itemsOut := make([]gin.H, 0, len(lines))
	for _, line := range lines {
		itemsOut = append(itemsOut, gin.H{
			"menu_id":       line.MenuItemID,
			"name":          line.Name,
			"quantity":      line.Quantity,
			"item_price":    line.UnitPrice.StringFixed(2),
			"subtotal":      line.Subtotal().StringFixed(2),
			"special_notes": line.SpecialNotes,
		})
	}

	success = true
	c.JSON(http.StatusCreated, gin.H{
		"message": fmt.Sprintf("%s order created successfully", req.OrderType),
		"data": gin.H{
			"order_id":        order.ID,
			"customer_name":   order.CustomerName,
			"customer_phone":  order.CustomerPhone,
			"order_type":      order.OrderType,
			"table_id":        order.TableID,
			"total_amount":    totals.Subtotal.StringFixed(2),
			"tax_amount":      totals.Tax.StringFixed(2),
			"discount_amount": totals.Discount.StringFixed(2),
			"final_amount":    totals.Final.StringFixed(2),
			"items":           itemsOut,
		},
	})
}

// ListOrders returns non-deleted orders with optional filters
func ListOrders(c *gin.Context) {
	var orders []models.Order
	query := config.DB.Preload("Items", "is_deleted = ?", false).
		Where("orders.is_deleted = ?", false)

	if status := c.Query("status"); status != "" {
		query = query.Where("order_status = ?", status)
	}
	if payment := c.Query("payment_status"); payment != "" {
		query = query.Where("payment_status = ?", payment)
	}
	if customerID := c.Query("customer_id"); customerID != "" {
		query = query.Where("customer_id = ?", customerID)
	}
	if waiterID := c.Query("waiter_id"); waiterID != "" {
		query = query.Where("waiter_id = ?", waiterID)
	}
	if date := c.Query("date"); date != "" {
		query = query.Where("DATE(created_at) = ?", date)
	}

	query.Order("created_at desc").Find(&orders)

	// Dashboard summary: order counts grouped by status
	summary := map[string]int{}
	for _, o := range orders {
		summary[string(o.OrderStatus)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"count":         len(orders),
		"order_summary": summary,
		"orders":        orders,
	})
}

// GetOrderDetail returns a single order with its items
func GetOrderDetail(c *gin.Context) {
	var order models.Order
	err := config.DB.
		Preload("Items", "is_deleted = ?", false).
		Preload("Waiter.Staff").
		Where("is_deleted = ?", false).
		First(&order, "id = ?", c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order through the kitchen workflow. Completion
// is reserved for receipt generation.
func UpdateOrderStatus(c *gin.Context) {
	var order models.Order
	if err := config.DB.Where("is_deleted = ?", false).First(&order, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := statemachine.CanTransition(order.OrderStatus, req.Status, "staff"); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    order.OrderStatus,
			"requested":         req.Status,
			"reason":            err.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(order.OrderStatus),
		})
		return
	}

	prevStatus := order.OrderStatus
	config.DB.Model(&order).Updates(map[string]interface{}{
		"order_status": req.Status,
		"modified_by":  middleware.GetEmail(c),
	})

	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        order.ID,
		"previous_status": string(prevStatus),
		"current_status":  string(req.Status),
	})
}

// DeleteOrder soft-deletes an order
func DeleteOrder(c *gin.Context) {
	var order models.Order
	if err := config.DB.Where("is_deleted = ?", false).First(&order, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	config.DB.Model(&order).Updates(map[string]interface{}{
		"is_deleted":  true,
		"modified_by": middleware.GetEmail(c),
	})
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully", "order_id": order.ID})
}

// GetStateMachineInfo documents the order status workflow
func GetStateMachineInfo(c *gin.Context) {
	transitions := statemachine.GetAllTransitions()
	out := make([]gin.H, 0, len(transitions))
	for _, t := range transitions {
		out = append(out, gin.H{"from": t.From, "to": t.To, "actor": t.Actor})
	}
	c.JSON(http.StatusOK, gin.H{
		"statuses": []models.OrderStatus{
			models.StatusIncoming,
			models.StatusPreparing,
			models.StatusServed,
			models.StatusCompleted,
			models.StatusCancelled,
		},
		"transitions": out,
	})
}
