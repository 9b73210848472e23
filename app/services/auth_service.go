package services

import (
	"net/http"

	"github.com/shashiranjanraj/pizzeria/app/models"
	"github.com/shashiranjanraj/pizzeria/app/repositories"
	"github.com/shashiranjanraj/pizzeria/pkg/apperr"
	"github.com/shashiranjanraj/pizzeria/pkg/auth"
	"github.com/shashiranjanraj/pizzeria/pkg/metrics"
	"github.com/shashiranjanraj/pizzeria/pkg/rbac"
)

// AuthService implements registration, login, logout, and user updates on
// top of the credential store and the token service.
type AuthService struct {
	tokens *auth.Tokens
	users  *repositories.UserRepository
}

func NewAuthService(tokens *auth.Tokens) *AuthService {
	return &AuthService{
		tokens: tokens,
		users:  repositories.NewUserRepository(),
	}
}

// Register creates a new diner account and logs it in.
func (s *AuthService) Register(name, email, password string) (models.User, string, error) {
	if name == "" || email == "" || password == "" {
		return models.User{}, "", apperr.BadRequest("name, email, and password are required")
	}
	if err := s.emailAvailable(email); err != nil {
		return models.User{}, "", err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, "", err
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Roles:    []models.UserRole{{Role: rbac.Diner}},
	}
	if err := s.users.Create(&user); err != nil {
		return models.User{}, "", err
	}

	token, err := s.tokens.Issue(user.ID, RoleClaims(user.Roles))
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}

// Login checks the credentials and issues a fresh token.
func (s *AuthService) Login(email, password string) (models.User, string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil || !auth.CheckPassword(user.Password, password) {
		metrics.AuthFailures.WithLabelValues("credentials").Inc()
		return models.User{}, "", apperr.Unauthorized("invalid credentials")
	}

	token, err := s.tokens.Issue(user.ID, RoleClaims(user.Roles))
	if err != nil {
		return models.User{}, "", err
	}

	return user, token, nil
}

// Logout revokes the presented token. The token stays cryptographically
// valid until expiry, so it must land on the revocation list.
func (s *AuthService) Logout(token string) error {
	return s.tokens.Revoke(token)
}

// Update changes a user's email and/or password. Allowed for the user
// itself and for global admins; the password is re-hashed when present.
func (s *AuthService) Update(claims *auth.Claims, targetID uint, email, password string) (models.User, error) {
	if !rbac.CanUpdateUser(claims, targetID) {
		return models.User{}, apperr.Forbidden("unauthorized")
	}

	user, err := s.users.FindByID(targetID)
	if err != nil {
		if repositories.IsNotFound(err) {
			return models.User{}, apperr.NotFound("unknown user")
		}
		return models.User{}, err
	}

	if email != "" && email != user.Email {
		if err := s.emailAvailable(email); err != nil {
			return models.User{}, err
		}
		user.Email = email
	}
	if password != "" {
		hash, err := auth.HashPassword(password)
		if err != nil {
			return models.User{}, err
		}
		user.Password = hash
	}

	if err := s.users.Update(&user); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// emailAvailable enforces the email uniqueness invariant ahead of the write.
// The unique index on users.email remains the backstop for the race between
// the check and the insert.
func (s *AuthService) emailAvailable(email string) error {
	_, err := s.users.FindByEmail(email)
	if err == nil {
		return apperr.New(http.StatusConflict, "email already registered")
	}
	if !repositories.IsNotFound(err) {
		return err
	}
	return nil
}

// RoleClaims converts stored role rows into the token's claim shape.
func RoleClaims(roles []models.UserRole) []auth.RoleClaim {
	claims := make([]auth.RoleClaim, 0, len(roles))
	for _, r := range roles {
		claims = append(claims, auth.RoleClaim{Role: r.Role, ObjectID: r.ObjectID})
	}
	return claims
}
