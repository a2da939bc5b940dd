package handlers

import (
	"errors"
	"net/http"

	"restaurant-pos-api/config"
	"restaurant-pos-api/middleware"
	"restaurant-pos-api/models"
	"restaurant-pos-api/statemachine"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type GenerateReceiptRequest struct {
	OrderID       uint                 `json:"order_id"`
	PaymentMethod string               `json:"payment_method"`
	PaymentStatus models.PaymentStatus `json:"payment_status"`
	CreatedBy     string               `json:"created_by"`
}

var (
	errOrderNotFound = errors.New("order not found")
)

type receiptExistsError struct{ receiptID uint }

func (e *receiptExistsError) Error() string { return "receipt already exists for this order" }

type invalidOrderStateError struct {
	status models.OrderStatus
	reason error
}

func (e *invalidOrderStateError) Error() string { return e.reason.Error() }

// GenerateReceipt mints exactly one receipt per order and completes the order.
// The receipt insert and the order update commit together or not at all. A
// partial unique index on receipts(order_id) backs up the in-transaction
// existence check, so two concurrent calls cannot both succeed.
func GenerateReceipt(c *gin.Context) {
	success := false
	defer func() { middleware.RecordOrderOperation("generate_receipt", success) }()

	var req GenerateReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.OrderID == 0 || req.PaymentMethod == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Order ID and payment method are required"})
		return
	}

	paymentStatus := req.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = models.PaymentPaid
	}
	createdBy := req.CreatedBy
	if createdBy == "" {
		createdBy = "Manager"
	}

	var receipt models.Receipt

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		err := tx.Where("id = ? AND is_deleted = ?", req.OrderID, false).First(&order).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errOrderNotFound
			}
			return err
		}

		// A receipt may only complete an active order; Cancelled and
		// Completed have no transition for the receipt actor
		if err := statemachine.CanTransition(order.OrderStatus, models.StatusCompleted, "receipt"); err != nil {
			return &invalidOrderStateError{status: order.OrderStatus, reason: err}
		}

		var existing models.Receipt
		err = tx.Where("order_id = ? AND is_deleted = ?", req.OrderID, false).First(&existing).Error
		if err == nil {
			return &receiptExistsError{receiptID: existing.ID}
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		receipt = models.Receipt{
			OrderID:       order.ID,
			ReceiptNumber: models.ReceiptNumber(order.ID),
			PaymentMethod: req.PaymentMethod,
			PaymentStatus: paymentStatus,
			CreatedBy:     createdBy,
		}
		if err := tx.Create(&receipt).Error; err != nil {
			return err
		}

		return tx.Model(&order).Updates(map[string]interface{}{
			"order_status":   models.StatusCompleted,
			"payment_status": paymentStatus,
			"payment_method": req.PaymentMethod,
			"modified_by":    createdBy,
		}).Error
	})

	if err != nil {
		var exists *receiptExistsError
		var badState *invalidOrderStateError
		switch {
		case errors.Is(err, errOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		case errors.As(err, &badState):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":          "Invalid state transition",
				"current_status": badState.status,
				"requested":      models.StatusCompleted,
				"reason":         badState.reason.Error(),
			})
		case errors.As(err, &exists):
			c.JSON(http.StatusConflict, gin.H{
				"error":      "Receipt already exists for this order",
				"receipt_id": exists.receiptID,
			})
		case isUniqueViolation(err):
			// Lost the race to a concurrent caller: report the same conflict
			var existing models.Receipt
			body := gin.H{"error": "Receipt already exists for this order"}
			if config.DB.Where("order_id = ? AND is_deleted = ?", req.OrderID, false).
				First(&existing).Error == nil {
				body["receipt_id"] = existing.ID
			}
			c.JSON(http.StatusConflict, body)
		default:
			logError(c, "generate_receipt", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error generating receipt"})
		}
		return
	}

	success = true
	c.JSON(http.StatusCreated, gin.H{
		"message": "Receipt generated successfully",
		"data": gin.H{
			"receipt_id":     receipt.ID,
			"receipt_number": receipt.ReceiptNumber,
			"order_id":       receipt.OrderID,
			"payment_status": receipt.PaymentStatus,
		},
	})
}

// ListReceipts returns all non-deleted receipts, newest first
func ListReceipts(c *gin.Context) {
	var receipts []models.Receipt
	config.DB.Preload("Order", "is_deleted = ?", false).
		Where("receipts.is_deleted = ?", false).
		Order("generated_at desc").
		Find(&receipts)
	c.JSON(http.StatusOK, gin.H{"count": len(receipts), "receipts": receipts})
}

// GetReceipt returns a single receipt with its order and items
func GetReceipt(c *gin.Context) {
	var receipt models.Receipt
	err := config.DB.
		Preload("Order.Items", "is_deleted = ?", false).
		Where("is_deleted = ?", false).
		First(&receipt, "id = ?", c.Param("id")).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"receipt": receipt})
}

// GetReceiptByOrder returns the receipt generated for a given order
func GetReceiptByOrder(c *gin.Context) {
	var receipt models.Receipt
	err := config.DB.
		Preload("Order.Items", "is_deleted = ?", false).
		Where("order_id = ? AND is_deleted = ?", c.Param("orderId"), false).
		First(&receipt).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No receipt found for this order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"receipt": receipt})
}

// DeleteReceipt soft-deletes a receipt
func DeleteReceipt(c *gin.Context) {
	var receipt models.Receipt
	if err := config.DB.Where("is_deleted = ?", false).First(&receipt, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
		return
	}
	config.DB.Model(&receipt).Update("is_deleted", true)
	c.JSON(http.StatusOK, gin.H{"message": "Receipt deleted successfully", "receipt_id": receipt.ID})
}
