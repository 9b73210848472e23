package repositories

import (
	"github.com/shashiranjanraj/pizzeria/app/models"
	"github.com/shashiranjanraj/pizzeria/pkg/database"
	"github.com/shashiranjanraj/pizzeria/pkg/rbac"
	"gorm.io/gorm"
)

// FranchiseRepository handles database operations for franchises and their
// stores.
type FranchiseRepository struct {
	users *UserRepository
}

func NewFranchiseRepository() *FranchiseRepository {
	return &FranchiseRepository{users: NewUserRepository()}
}

// All returns every franchise with its stores and admin references.
func (r *FranchiseRepository) All() ([]models.Franchise, error) {
	franchises := []models.Franchise{}
	if err := database.DB.Preload("Stores").Find(&franchises).Error; err != nil {
		return nil, err
	}
	return r.attachAdmins(franchises)
}

// ByAdmin returns the franchises the user holds a franchisee role for.
func (r *FranchiseRepository) ByAdmin(userID uint) ([]models.Franchise, error) {
	franchises := []models.Franchise{}
	err := database.DB.Preload("Stores").
		Joins("JOIN user_roles ON user_roles.object_id = franchises.id").
		Where("user_roles.role = ? AND user_roles.user_id = ?", rbac.Franchisee, userID).
		Find(&franchises).Error
	if err != nil {
		return nil, err
	}
	return r.attachAdmins(franchises)
}

// FindByID returns one franchise with stores and admins.
func (r *FranchiseRepository) FindByID(id uint) (models.Franchise, error) {
	var franchise models.Franchise
	if err := database.DB.Preload("Stores").First(&franchise, id).Error; err != nil {
		return franchise, err
	}

	admins, err := r.users.RefsByRole(rbac.Franchisee, franchise.ID)
	if err != nil {
		return franchise, err
	}
	franchise.Admins = admins
	return franchise, nil
}

// Create persists a new franchise and grants each listed admin the
// franchise-scoped role, atomically.
func (r *FranchiseRepository) Create(franchise *models.Franchise, adminIDs []uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(franchise).Error; err != nil {
			return err
		}
		for _, id := range adminIDs {
			role := models.UserRole{UserID: id, Role: rbac.Franchisee, ObjectID: franchise.ID}
			if err := tx.Create(&role).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the franchise, its stores, and every franchisee grant
// scoped to it.
func (r *FranchiseRepository) Delete(id uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("franchise_id = ?", id).Delete(&models.Store{}).Error; err != nil {
			return err
		}
		if err := tx.Where("role = ? AND object_id = ?", rbac.Franchisee, id).
			Delete(&models.UserRole{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Franchise{}, id).Error
	})
}

// CreateStore persists a new store under its franchise.
func (r *FranchiseRepository) CreateStore(store *models.Store) error {
	return database.DB.Create(store).Error
}

// DeleteStore removes one store. The franchise id is part of the predicate
// so a store cannot be deleted through another franchise's URL.
func (r *FranchiseRepository) DeleteStore(franchiseID, storeID uint) error {
	return database.DB.
		Where("franchise_id = ?", franchiseID).
		Delete(&models.Store{}, storeID).Error
}

func (r *FranchiseRepository) attachAdmins(franchises []models.Franchise) ([]models.Franchise, error) {
	for i := range franchises {
		admins, err := r.users.RefsByRole(rbac.Franchisee, franchises[i].ID)
		if err != nil {
			return nil, err
		}
		franchises[i].Admins = admins
	}
	return franchises, nil
}
