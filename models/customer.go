package models

import "time"

// Customer is an optional registered customer. Walk-in orders carry
// denormalized name/phone on the order itself and leave CustomerID nil.
type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Phone     string    `json:"phone" gorm:"not null"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	IsDeleted bool      `json:"is_deleted" gorm:"default:false"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
