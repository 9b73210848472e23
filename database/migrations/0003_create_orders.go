package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/pizzeria/app/models"
	"github.com/shashiranjanraj/pizzeria/pkg/migration"
)

func init() {
	migration.Register("0003_create_orders", steps{
		up: func(db *gorm.DB) error {
			return db.AutoMigrate(&models.MenuItem{}, &models.Order{}, &models.OrderItem{})
		},
		down: func(db *gorm.DB) error {
			return db.Migrator().DropTable(&models.OrderItem{}, &models.Order{}, &models.MenuItem{})
		},
	})
}
