package entity

import (
	"time"

	"gorm.io/gorm"
)

type Purchase struct {
	gorm.Model
	Reference string     `json:"reference"`
	Total     int64      `json:"total"`
	DateAt    *time.Time `json:"dateAt"`

	SupplierID uint     `json:"supplierId"`
	Supplier   Supplier `json:"-"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	Items []PurchaseItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
