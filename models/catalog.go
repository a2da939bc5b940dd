package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	IsDeleted   bool      `json:"is_deleted" gorm:"default:false"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type MenuItem struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	CategoryID   uint            `json:"category_id" gorm:"not null"`
	Category     Category        `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Name         string          `json:"name" gorm:"not null"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	IsAvailable  bool            `json:"is_available" gorm:"default:true"`
	CurrentStock decimal.Decimal `json:"current_stock" gorm:"type:decimal(10,2)"`
	Unit         string          `json:"unit"`
	ReorderLevel decimal.Decimal `json:"reorder_level" gorm:"type:decimal(10,2)"`
	IsDeleted    bool            `json:"is_deleted" gorm:"default:false"`
	CreatedBy    string          `json:"created_by"`
	ModifiedBy   string          `json:"modified_by"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// StockStatus classifies current stock against the reorder level.
func (m *MenuItem) StockStatus() string {
	switch {
	case m.CurrentStock.IsZero():
		return "Out of Stock"
	case m.CurrentStock.LessThanOrEqual(m.ReorderLevel):
		return "Low Stock"
	case m.CurrentStock.LessThanOrEqual(m.ReorderLevel.Mul(decimal.NewFromInt(2))):
		return "Medium Stock"
	default:
		return "High Stock"
	}
}
