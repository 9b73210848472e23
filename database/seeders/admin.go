package seeders

import (
	"errors"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/pizzeria/app/models"
	"github.com/shashiranjanraj/pizzeria/config"
	"github.com/shashiranjanraj/pizzeria/pkg/auth"
	"github.com/shashiranjanraj/pizzeria/pkg/rbac"
)

func init() {
	Register("admin", SeedAdmin)
}

// SeedAdmin creates the bootstrap administrator from ADMIN_NAME, ADMIN_EMAIL
// and ADMIN_PASSWORD. Running it twice is a no-op.
func SeedAdmin(db *gorm.DB) error {
	var existing models.User
	err := db.Where("email = ?", config.AdminEmail()).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(config.AdminPassword())
	if err != nil {
		return err
	}

	admin := models.User{
		Name:     config.AdminName(),
		Email:    config.AdminEmail(),
		Password: hash,
		Roles:    []models.UserRole{{Role: rbac.Admin}},
	}
	return db.Create(&admin).Error
}
