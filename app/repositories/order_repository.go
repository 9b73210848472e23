package repositories

import (
	"github.com/shashiranjanraj/pizzeria/app/models"
	"github.com/shashiranjanraj/pizzeria/pkg/database"
)

// OrderRepository handles database operations for the menu and orders.
type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Menu returns the full menu.
func (r *OrderRepository) Menu() ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	err := database.DB.Find(&items).Error
	return items, err
}

// MenuItemByID returns one menu item.
func (r *OrderRepository) MenuItemByID(id uint) (models.MenuItem, error) {
	var item models.MenuItem
	err := database.DB.First(&item, id).Error
	return item, err
}

// AddMenuItem appends a new item to the menu.
func (r *OrderRepository) AddMenuItem(item *models.MenuItem) error {
	return database.DB.Create(item).Error
}

// Create persists an order with its items.
func (r *OrderRepository) Create(order *models.Order) error {
	return database.DB.Create(order).Error
}

// ByDiner returns one page of the diner's orders, oldest first.
func (r *OrderRepository) ByDiner(dinerID uint, page, perPage int) ([]models.Order, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	orders := []models.Order{}
	err := database.DB.Preload("Items").
		Where("diner_id = ?", dinerID).
		Order("id").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&orders).Error
	return orders, err
}
