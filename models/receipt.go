package models

import (
	"fmt"
	"time"
)

// Receipt is minted at most once per order and is immutable afterwards
// except for the soft-delete flag.
type Receipt struct {
	ID            uint          `json:"id" gorm:"primaryKey"`
	OrderID       uint          `json:"order_id" gorm:"not null;index"`
	Order         Order         `json:"order,omitempty" gorm:"foreignKey:OrderID"`
	ReceiptNumber string        `json:"receipt_number" gorm:"not null"`
	PaymentMethod string        `json:"payment_method" gorm:"not null"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"not null;default:'Paid'"`
	GeneratedAt   time.Time     `json:"generated_at" gorm:"autoCreateTime"`
	IsDeleted     bool          `json:"is_deleted" gorm:"default:false"`
	CreatedBy     string        `json:"created_by"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// ReceiptNumber derives the receipt number from the order id. Order ids are
// unique, so receipt numbers are collision-free by construction.
func ReceiptNumber(orderID uint) string {
	return fmt.Sprintf("RCP-%06d", orderID)
}
