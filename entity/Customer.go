package entity

import (
	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`
	Contact string `json:"contact"`

	Orders []Order `json:"-"`
}
