package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Staff struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Name      string          `json:"name" gorm:"not null"`
	Position  string          `json:"position" gorm:"not null"`
	Phone     string          `json:"phone"`
	Email     string          `json:"email"`
	Salary    decimal.Decimal `json:"salary" gorm:"type:decimal(10,2)"`
	HireDate  *time.Time      `json:"hire_date"`
	IsActive  bool            `json:"is_active" gorm:"default:true"`
	IsDeleted bool            `json:"is_deleted" gorm:"default:false"`
	CreatedBy string          `json:"created_by"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Waiter links a staff member to the floor; orders reference waiters, not staff.
type Waiter struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	StaffID    uint            `json:"staff_id" gorm:"not null"`
	Staff      Staff           `json:"staff,omitempty" gorm:"foreignKey:StaffID"`
	Section    string          `json:"section"`
	TipsEarned decimal.Decimal `json:"tips_earned" gorm:"type:decimal(10,2)"`
	IsActive   bool            `json:"is_active" gorm:"default:true"`
	IsDeleted  bool            `json:"is_deleted" gorm:"default:false"`
	CreatedBy  string          `json:"created_by"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
