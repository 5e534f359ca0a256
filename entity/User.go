package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username    string `gorm:"uniqueIndex;not null" json:"username"`
	Password    string `json:"-"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `gorm:"not null;default:cashier" json:"role"`
	Active      bool   `gorm:"not null;default:true" json:"active"`

	// preload only when a detail endpoint needs the cashier
	Orders    []Order    `json:"-"`
	Purchases []Purchase `json:"-"`
}
