package models

// Franchise groups stores under a name. Its admins are the users holding a
// franchisee role scoped to this franchise; the list is resolved at read
// time from the user_roles table, not stored on the franchise row.
type Franchise struct {
	ID     uint      `json:"id" gorm:"primaryKey"`
	Name   string    `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Stores []Store   `json:"stores"`
	Admins []UserRef `json:"admins" gorm:"-"`
}

// Store is a single outlet belonging to exactly one franchise.
type Store struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	FranchiseID uint   `json:"franchiseId,omitempty" gorm:"index;not null"`
	Name        string `json:"name" gorm:"size:255;not null"`
}
