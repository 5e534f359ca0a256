package configs

import (
	"fmt"

	"backend/entity"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account so a fresh install can be
// administered at all.
func SeedAdmin() error {
	db := DB()
	username := getEnv("ADMIN_USERNAME", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if username == "" || pass == "" {
		log.Warn("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", username).Count(&count)
	if count > 0 {
		log.WithField("username", username).Info("admin already exists")
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Username:  username,
		Password:  string(hash),
		FirstName: "Admin",
		LastName:  "Seed",
		Role:      "admin",
		Active:    true,
	}
	return db.Create(&admin).Error
}

// SeedDefaults fills empty lookup-ish tables for a fresh install.
func SeedDefaults() error {
	db := DB()

	for _, name := range []string{"Main Dishes", "Drinks", "Sides", "Desserts"} {
		db.FirstOrCreate(&entity.ItemCategory{}, entity.ItemCategory{Name: name, Active: true})
	}

	var tables int64
	db.Model(&entity.Table{}).Count(&tables)
	if tables == 0 {
		for i := 1; i <= 8; i++ {
			db.Create(&entity.Table{Number: fmt.Sprintf("T%d", i), Seats: 4})
		}
	}

	db.FirstOrCreate(&entity.Supplier{}, entity.Supplier{Name: "General Supplies"})

	return nil
}
