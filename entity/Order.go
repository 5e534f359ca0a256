package entity

import (
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	gorm.Model
	Code     string `gorm:"uniqueIndex;not null" json:"code"`
	Subtotal int64  `json:"subtotal"`
	Tax      int64  `json:"tax"`
	Total    int64  `json:"total"`
	Status   string `gorm:"not null;default:pending" json:"status"`

	// snapshot of the order context at submission time
	TableNumber     string `json:"tableNumber"`
	CustomerName    string `json:"customerName"`
	CustomerAddress string `json:"customerAddress"`
	CustomerContact string `json:"customerContact"`

	CustomerID *uint     `json:"customerId"`
	Customer   *Customer `json:"-"`

	UserID uint `json:"userId"` // cashier
	User   User `json:"-"`

	// preload only on detail
	OrderItems []OrderItem `json:"-"`
}
