package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/pizzeria/app/models"
	"github.com/shashiranjanraj/pizzeria/pkg/migration"
)

func init() {
	migration.Register("0002_create_franchises", steps{
		up: func(db *gorm.DB) error {
			return db.AutoMigrate(&models.Franchise{}, &models.Store{})
		},
		down: func(db *gorm.DB) error {
			return db.Migrator().DropTable(&models.Store{}, &models.Franchise{})
		},
	})
}
