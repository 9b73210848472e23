// Package migration provides the database migration runner.
//
// Define migrations in database/migrations and register each from init():
//
//	func init() {
//	    migration.Register("20260301000000_create_users_table", &CreateUsersTable{})
//	}
//
// Run via the CLI: `pizzeria migrate`, `pizzeria migrate:rollback`,
// `pizzeria migrate:status`.
package migration

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shashiranjanraj/pizzeria/pkg/logger"
	"gorm.io/gorm"
)

// Migration is the interface every migration must implement.
type Migration interface {
	// Up applies the migration.
	Up(db *gorm.DB) error
	// Down reverses the migration.
	Down(db *gorm.DB) error
}

// migrationRecord is the GORM model stored in the tracking table.
type migrationRecord struct {
	ID    uint      `gorm:"primaryKey;autoIncrement"`
	Name  string    `gorm:"uniqueIndex;size:255;not null"`
	Batch int       `gorm:"not null"`
	RunAt time.Time `gorm:"autoCreateTime"`
}

func (migrationRecord) TableName() string { return "pizzeria_migrations" }

type registeredMigration struct {
	name string
	m    Migration
}

var (
	registryMu sync.Mutex
	registry   []registeredMigration
)

// Register adds a migration to the global registry. Call from init() in the
// database/migrations package.
func Register(name string, m Migration) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = append(registry, registeredMigration{name: name, m: m})
}

// Runner applies and rolls back registered migrations against one database.
type Runner struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Runner {
	return &Runner{db: db}
}

// Run applies all pending migrations in name order as one batch.
func (r *Runner) Run() error {
	if err := r.db.AutoMigrate(&migrationRecord{}); err != nil {
		return fmt.Errorf("migration: create tracking table: %w", err)
	}

	applied, err := r.appliedNames()
	if err != nil {
		return err
	}

	pending := r.pending(applied)
	if len(pending) == 0 {
		logger.Info("migrations up to date")
		return nil
	}

	batch, err := r.nextBatch()
	if err != nil {
		return err
	}

	for _, reg := range pending {
		logger.Info("applying migration", "name", reg.name)
		if err := reg.m.Up(r.db); err != nil {
			return fmt.Errorf("migration %q: %w", reg.name, err)
		}
		rec := migrationRecord{Name: reg.name, Batch: batch}
		if err := r.db.Create(&rec).Error; err != nil {
			return fmt.Errorf("migration %q: record: %w", reg.name, err)
		}
	}

	return nil
}

// Rollback reverses the most recent batch in reverse name order.
func (r *Runner) Rollback() error {
	var last migrationRecord
	err := r.db.Order("batch desc").First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Info("nothing to roll back")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration: last batch: %w", err)
	}

	var records []migrationRecord
	if err := r.db.Where("batch = ?", last.Batch).Order("name desc").Find(&records).Error; err != nil {
		return fmt.Errorf("migration: list batch %d: %w", last.Batch, err)
	}

	byName := registryByName()
	for _, rec := range records {
		reg, ok := byName[rec.Name]
		if !ok {
			return fmt.Errorf("migration %q recorded but not registered", rec.Name)
		}
		logger.Info("rolling back migration", "name", rec.Name)
		if err := reg.Down(r.db); err != nil {
			return fmt.Errorf("migration %q: down: %w", rec.Name, err)
		}
		if err := r.db.Delete(&migrationRecord{}, rec.ID).Error; err != nil {
			return fmt.Errorf("migration %q: unrecord: %w", rec.Name, err)
		}
	}

	return nil
}

// Status returns each registered migration name with its applied state.
func (r *Runner) Status() (map[string]bool, error) {
	if err := r.db.AutoMigrate(&migrationRecord{}); err != nil {
		return nil, fmt.Errorf("migration: create tracking table: %w", err)
	}

	applied, err := r.appliedNames()
	if err != nil {
		return nil, err
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	status := make(map[string]bool, len(registry))
	for _, reg := range registry {
		status[reg.name] = applied[reg.name]
	}
	return status, nil
}

func (r *Runner) appliedNames() (map[string]bool, error) {
	var records []migrationRecord
	if err := r.db.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("migration: read tracking table: %w", err)
	}

	applied := make(map[string]bool, len(records))
	for _, rec := range records {
		applied[rec.Name] = true
	}
	return applied, nil
}

func (r *Runner) pending(applied map[string]bool) []registeredMigration {
	registryMu.Lock()
	defer registryMu.Unlock()

	var pending []registeredMigration
	for _, reg := range registry {
		if !applied[reg.name] {
			pending = append(pending, reg)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i].name < pending[j].name })
	return pending
}

func (r *Runner) nextBatch() (int, error) {
	var max int
	row := r.db.Model(&migrationRecord{}).Select("COALESCE(MAX(batch), 0)").Row()
	if err := row.Scan(&max); err != nil {
		return 0, fmt.Errorf("migration: next batch: %w", err)
	}
	return max + 1, nil
}

func registryByName() map[string]Migration {
	registryMu.Lock()
	defer registryMu.Unlock()

	byName := make(map[string]Migration, len(registry))
	for _, reg := range registry {
		byName[reg.name] = reg.m
	}
	return byName
}
