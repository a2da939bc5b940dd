package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents all possible states of a POS order
type OrderStatus string

const (
	StatusIncoming  OrderStatus = "Incoming"
	StatusPreparing OrderStatus = "Preparing"
	StatusServed    OrderStatus = "Served"
	StatusCompleted OrderStatus = "Completed"
	StatusCancelled OrderStatus = "Cancelled"
)

type OrderType string

const (
	OrderTypeDineIn   OrderType = "Dine-in"
	OrderTypeTakeaway OrderType = "Takeaway"
)

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "Unpaid"
	PaymentPaid   PaymentStatus = "Paid"
)

type Order struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	CustomerID      *uint           `json:"customer_id"`
	Customer        *Customer       `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	CustomerName    string          `json:"customer_name" gorm:"not null"`
	CustomerPhone   string          `json:"customer_phone" gorm:"not null"`
	CustomerAddress string          `json:"customer_address"`
	OrderType       OrderType       `json:"order_type" gorm:"not null"`
	TableID         *uint           `json:"table_id"` // nil for Takeaway
	WaiterID        uint            `json:"waiter_id" gorm:"not null"`
	Waiter          Waiter          `json:"waiter,omitempty" gorm:"foreignKey:WaiterID"`
	TotalAmount     decimal.Decimal `json:"total_amount" gorm:"type:decimal(10,2)"`
	TaxAmount       decimal.Decimal `json:"tax_amount" gorm:"type:decimal(10,2)"`
	DiscountAmount  decimal.Decimal `json:"discount_amount" gorm:"type:decimal(10,2)"`
	FinalAmount     decimal.Decimal `json:"final_amount" gorm:"type:decimal(10,2)"`
	OrderStatus     OrderStatus     `json:"order_status" gorm:"not null;default:'Incoming'"`
	PaymentStatus   PaymentStatus   `json:"payment_status" gorm:"not null;default:'Unpaid'"`
	PaymentMethod   *string         `json:"payment_method"` // nil until a receipt is generated
	SpecialInstr    string          `json:"special_instructions" gorm:"column:special_instructions"`
	Items           []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	IsDeleted       bool            `json:"is_deleted" gorm:"default:false"`
	CreatedBy       string          `json:"created_by"`
	ModifiedBy      string          `json:"modified_by"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	OrderID      uint            `json:"order_id" gorm:"not null"`
	MenuItemID   uint            `json:"menu_id" gorm:"not null"`
	MenuItem     MenuItem        `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Name         string          `json:"name"` // snapshot name
	Quantity     int             `json:"quantity" gorm:"not null"`
	ItemPrice    decimal.Decimal `json:"item_price" gorm:"type:decimal(10,2);not null"` // snapshot price at order time
	Subtotal     decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2)"`
	SpecialNotes string          `json:"special_notes"`
	IsDeleted    bool            `json:"is_deleted" gorm:"default:false"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}
