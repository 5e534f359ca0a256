package entity

import (
	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	Number   string `gorm:"uniqueIndex;not null" json:"number"`
	Seats    int    `json:"seats"`
	Occupied bool   `gorm:"not null;default:false" json:"occupied"`
}
