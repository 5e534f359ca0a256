package entity

import (
	"gorm.io/gorm"
)

type ItemCategory struct {
	gorm.Model
	Name   string `gorm:"uniqueIndex;not null" json:"name"`
	Active bool   `gorm:"not null;default:true" json:"active"`

	Items []Item `json:"-"`
}
