package repositories

import (
	"errors"

	"github.com/shashiranjanraj/pizzeria/app/models"
	"github.com/shashiranjanraj/pizzeria/pkg/database"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users and their roles.
// It is the sole authority on role membership.
type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// Create persists a new user together with its role rows.
func (r *UserRepository) Create(user *models.User) error {
	return database.DB.Create(user).Error
}

// FindByEmail looks up a user by email, roles included.
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := database.DB.Preload("Roles").Where("email = ?", email).First(&user).Error
	return user, err
}

// FindByID looks up a user by primary key, roles included.
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	err := database.DB.Preload("Roles").First(&user, id).Error
	return user, err
}

// Update persists changed columns on an existing user row. Role rows are
// managed through AddRole/DeleteRolesForObject, not here.
func (r *UserRepository) Update(user *models.User) error {
	return database.DB.Model(user).Updates(map[string]interface{}{
		"name":     user.Name,
		"email":    user.Email,
		"password": user.Password,
	}).Error
}

// AddRole grants a role to a user. objectID scopes the role to a resource;
// zero grants it globally.
func (r *UserRepository) AddRole(userID uint, role string, objectID uint) error {
	return database.DB.Create(&models.UserRole{
		UserID:   userID,
		Role:     role,
		ObjectID: objectID,
	}).Error
}

// DeleteRolesForObject removes every grant of a scoped role for one
// resource, e.g. all franchisee rows of a deleted franchise.
func (r *UserRepository) DeleteRolesForObject(role string, objectID uint) error {
	return database.DB.
		Where("role = ? AND object_id = ?", role, objectID).
		Delete(&models.UserRole{}).Error
}

// RefsByRole returns lightweight references to every user holding the scoped
// role, for embedding in resource responses.
func (r *UserRepository) RefsByRole(role string, objectID uint) ([]models.UserRef, error) {
	refs := []models.UserRef{}
	err := database.DB.Model(&models.User{}).
		Select("users.id, users.name, users.email").
		Joins("JOIN user_roles ON user_roles.user_id = users.id").
		Where("user_roles.role = ? AND user_roles.object_id = ?", role, objectID).
		Scan(&refs).Error
	return refs, err
}

// IsNotFound reports whether err is the store's record-missing error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
