package models

import "time"

// MenuItem is one entry of the global pizza menu. The menu is append-only
// through the API.
type MenuItem struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Title       string  `json:"title" gorm:"size:255;not null"`
	Description string  `json:"description" gorm:"type:text"`
	Image       string  `json:"image" gorm:"size:255"`
	Price       float64 `json:"price" gorm:"not null;default:0"`
}

// Order is a diner's purchase at one store. Immutable once created.
type Order struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	DinerID     uint        `json:"dinerId,omitempty" gorm:"index;not null"`
	FranchiseID uint        `json:"franchiseId" gorm:"not null"`
	StoreID     uint        `json:"storeId" gorm:"not null"`
	Date        time.Time   `json:"date" gorm:"autoCreateTime"`
	Items       []OrderItem `json:"items"`
}

// OrderItem is one line of an order, priced at order time from the menu.
type OrderItem struct {
	ID          uint    `json:"id,omitempty" gorm:"primaryKey"`
	OrderID     uint    `json:"-" gorm:"index;not null"`
	MenuID      uint    `json:"menuId" gorm:"not null"`
	Description string  `json:"description" gorm:"type:text"`
	Price       float64 `json:"price"`
}
