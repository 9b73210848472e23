package services

import (
	"github.com/shashiranjanraj/pizzeria/app/models"
	"github.com/shashiranjanraj/pizzeria/app/repositories"
	"github.com/shashiranjanraj/pizzeria/pkg/apperr"
	"github.com/shashiranjanraj/pizzeria/pkg/auth"
	"github.com/shashiranjanraj/pizzeria/pkg/rbac"
)

// FranchiseService implements franchise and store management. Creation and
// deletion are admin-gated; listings are public.
type FranchiseService struct {
	franchises *repositories.FranchiseRepository
	users      *repositories.UserRepository
}

func NewFranchiseService() *FranchiseService {
	return &FranchiseService{
		franchises: repositories.NewFranchiseRepository(),
		users:      repositories.NewUserRepository(),
	}
}

// List returns every franchise. Public read.
func (s *FranchiseService) List() ([]models.Franchise, error) {
	return s.franchises.All()
}

// ForUser returns the franchises the target user administers. Callers may
// look at their own list; admins may look at anyone's. Other callers get an
// empty list rather than an error.
func (s *FranchiseService) ForUser(claims *auth.Claims, userID uint) ([]models.Franchise, error) {
	if claims.UserID != userID && !rbac.IsAdmin(claims) {
		return []models.Franchise{}, nil
	}
	return s.franchises.ByAdmin(userID)
}

// CanCreate decides whether the principal may create franchises. Exposed so
// the controller can refuse before it even reads the body; a non-admin gets
// the same 403 no matter what the payload looks like.
func (s *FranchiseService) CanCreate(claims *auth.Claims) error {
	if !rbac.IsAdmin(claims) {
		return apperr.Forbidden("unable to create a franchise")
	}
	return nil
}

// CanCreateStore decides whether the principal may open stores under the
// franchise.
func (s *FranchiseService) CanCreateStore(claims *auth.Claims, franchiseID uint) error {
	if !rbac.CanManageFranchise(claims, franchiseID) {
		return apperr.Forbidden("unable to create a store")
	}
	return nil
}

// Create makes a new franchise and grants each listed user the
// franchise-scoped admin role.
func (s *FranchiseService) Create(claims *auth.Claims, name string, adminEmails []string) (models.Franchise, error) {
	if err := s.CanCreate(claims); err != nil {
		return models.Franchise{}, err
	}

	admins := make([]models.UserRef, 0, len(adminEmails))
	adminIDs := make([]uint, 0, len(adminEmails))
	for _, email := range adminEmails {
		user, err := s.users.FindByEmail(email)
		if err != nil {
			if repositories.IsNotFound(err) {
				return models.Franchise{}, apperr.NotFound("unknown user for franchise admin")
			}
			return models.Franchise{}, err
		}
		admins = append(admins, models.UserRef{ID: user.ID, Name: user.Name, Email: user.Email})
		adminIDs = append(adminIDs, user.ID)
	}

	franchise := models.Franchise{Name: name, Stores: []models.Store{}}
	if err := s.franchises.Create(&franchise, adminIDs); err != nil {
		return models.Franchise{}, err
	}

	franchise.Admins = admins
	return franchise, nil
}

// Delete removes a franchise with its stores and scoped roles.
func (s *FranchiseService) Delete(claims *auth.Claims, franchiseID uint) error {
	if !rbac.IsAdmin(claims) {
		return apperr.Forbidden("unable to delete a franchise")
	}
	return s.franchises.Delete(franchiseID)
}

// CreateStore opens a store under the franchise. Allowed for global admins
// and for admins scoped to this franchise.
func (s *FranchiseService) CreateStore(claims *auth.Claims, franchiseID uint, name string) (models.Store, error) {
	if err := s.CanCreateStore(claims, franchiseID); err != nil {
		return models.Store{}, err
	}

	if _, err := s.franchises.FindByID(franchiseID); err != nil {
		if repositories.IsNotFound(err) {
			return models.Store{}, apperr.NotFound("unknown franchise")
		}
		return models.Store{}, err
	}

	store := models.Store{FranchiseID: franchiseID, Name: name}
	if err := s.franchises.CreateStore(&store); err != nil {
		return models.Store{}, err
	}
	return store, nil
}

// DeleteStore closes a store.
func (s *FranchiseService) DeleteStore(claims *auth.Claims, franchiseID, storeID uint) error {
	if !rbac.CanManageFranchise(claims, franchiseID) {
		return apperr.Forbidden("unable to delete a store")
	}
	return s.franchises.DeleteStore(franchiseID, storeID)
}
