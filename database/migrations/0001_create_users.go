package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/pizzeria/app/models"
	"github.com/shashiranjanraj/pizzeria/pkg/migration"
)

func init() {
	migration.Register("0001_create_users", steps{
		up: func(db *gorm.DB) error {
			return db.AutoMigrate(&models.User{}, &models.UserRole{})
		},
		down: func(db *gorm.DB) error {
			return db.Migrator().DropTable(&models.UserRole{}, &models.User{})
		},
	})
}
