package entity

import (
	"gorm.io/gorm"
)

type PurchaseItem struct {
	gorm.Model
	Qty      int   `json:"qty"`
	UnitCost int64 `json:"unitCost"`
	Total    int64 `json:"total"`

	PurchaseID uint     `json:"purchaseId"`
	Purchase   Purchase `json:"-"`

	ItemID uint `json:"itemId"`
	Item   Item `json:"-"`
}
