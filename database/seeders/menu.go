package seeders

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/pizzeria/app/models"
)

func init() {
	Register("menu", SeedMenu)
}

// SeedMenu inserts the starter menu. Skips entirely when the table already
// has rows so reseeding never duplicates items.
func SeedMenu(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []models.MenuItem{
		{Title: "Veggie", Description: "A garden of delight", Image: "pizza1.png", Price: 0.0038},
		{Title: "Pepperoni", Description: "Spicy treat", Image: "pizza2.png", Price: 0.0042},
		{Title: "Margarita", Description: "Essential classic", Image: "pizza3.png", Price: 0.0014},
		{Title: "Crusty", Description: "A dry mouthed favorite", Image: "pizza4.png", Price: 0.0024},
	}
	return db.Create(&items).Error
}
