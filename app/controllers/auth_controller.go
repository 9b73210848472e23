package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/pizzeria/app/models"
	"github.com/shashiranjanraj/pizzeria/app/services"
	"github.com/shashiranjanraj/pizzeria/pkg/auth"
	"github.com/shashiranjanraj/pizzeria/pkg/bind"
	"github.com/shashiranjanraj/pizzeria/pkg/middleware"
	"github.com/shashiranjanraj/pizzeria/pkg/response"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(tokens *auth.Tokens) *AuthController {
	return &AuthController{service: services.NewAuthService(tokens)}
}

type credentialsInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionBody struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// Register handles POST /api/auth. New accounts start as diners.
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var input credentialsInput
	if _, err := bind.JSON(r, &input); err != nil {
		response.Message(w, http.StatusBadRequest, "name, email, and password are required")
		return
	}

	user, token, err := c.service.Register(input.Name, input.Email, input.Password)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.OK(w, sessionBody{User: user, Token: token})
}

// Login handles PUT /api/auth.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var input credentialsInput
	if _, err := bind.JSON(r, &input); err != nil {
		response.Message(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, token, err := c.service.Login(input.Email, input.Password)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.OK(w, sessionBody{User: user, Token: token})
}

// Update handles PUT /api/auth/{userId}: email and/or password changes for
// the user itself or a global admin.
func (c *AuthController) Update(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromCtx(r)

	var input credentialsInput
	if _, err := bind.JSON(r, &input); err != nil {
		response.Message(w, http.StatusBadRequest, "invalid request")
		return
	}

	user, err := c.service.Update(claims, pathID(r, "userId"), input.Email, input.Password)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.OK(w, user)
}

// Logout handles DELETE /api/auth: revokes the presented token.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.TokenFromCtx(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	if err := c.service.Logout(token); err != nil {
		response.Err(w, err)
		return
	}

	response.Message(w, http.StatusOK, "logout successful")
}
