package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	ItemName  string `json:"itemName"` // display snapshot
	Qty       int    `json:"qty"`
	UnitPrice int64  `json:"unitPrice"` // snapshot, survives catalog price changes
	Total     int64  `json:"total"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	ItemID uint `json:"itemId"`
	Item   Item `json:"-"`
}
