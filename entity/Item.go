package entity

import (
	"gorm.io/gorm"
)

type Item struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Detail  string `json:"detail"`
	Price   int64  `json:"price"` // minor currency units
	Picture string `json:"picture"`

	Available bool `gorm:"not null;default:true" json:"available"`

	ItemCategoryID uint         `json:"itemCategoryId"`
	ItemCategory   ItemCategory `json:"-"` // preload only on detail

	OrderItems    []OrderItem    `json:"-"`
	PurchaseItems []PurchaseItem `json:"-"`
}
