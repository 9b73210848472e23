// Package migrations registers every schema migration. Import it for side
// effects:
//
//	import _ "github.com/shashiranjanraj/pizzeria/database/migrations"
//
// Migrations run in registration (name) order, so keep the numeric prefixes
// sequential.
package migrations

import "gorm.io/gorm"

// steps adapts a pair of functions to the migration interface.
type steps struct {
	up   func(db *gorm.DB) error
	down func(db *gorm.DB) error
}

func (s steps) Up(db *gorm.DB) error   { return s.up(db) }
func (s steps) Down(db *gorm.DB) error { return s.down(db) }
