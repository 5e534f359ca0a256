package entity

import (
	"gorm.io/gorm"
)

type Supplier struct {
	gorm.Model
	Name    string `gorm:"uniqueIndex;not null" json:"name"`
	Contact string `json:"contact"`
	Address string `json:"address"`

	Purchases []Purchase `json:"-"`
}
