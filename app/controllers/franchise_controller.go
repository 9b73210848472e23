package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/pizzeria/app/services"
	"github.com/shashiranjanraj/pizzeria/pkg/bind"
	"github.com/shashiranjanraj/pizzeria/pkg/middleware"
	"github.com/shashiranjanraj/pizzeria/pkg/response"
)

type FranchiseController struct {
	service *services.FranchiseService
}

func NewFranchiseController() *FranchiseController {
	return &FranchiseController{service: services.NewFranchiseService()}
}

type franchiseInput struct {
	Name   string `json:"name" validate:"required,max=255"`
	Admins []struct {
		Email string `json:"email"`
	} `json:"admins"`
}

type storeInput struct {
	Name string `json:"name" validate:"required,max=255"`
}

// List handles GET /api/franchise. Public.
func (c *FranchiseController) List(w http.ResponseWriter, r *http.Request) {
	franchises, err := c.service.List()
	if err != nil {
		response.Err(w, err)
		return
	}
	response.OK(w, franchises)
}

// ListForUser handles GET /api/franchise/{userId}.
func (c *FranchiseController) ListForUser(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromCtx(r)

	franchises, err := c.service.ForUser(claims, pathID(r, "userId"))
	if err != nil {
		response.Err(w, err)
		return
	}
	response.OK(w, franchises)
}

// Create handles POST /api/franchise. Admin only; the role check runs
// before binding so an unauthorized caller gets 403 regardless of payload.
func (c *FranchiseController) Create(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromCtx(r)

	if err := c.service.CanCreate(claims); err != nil {
		response.Err(w, err)
		return
	}

	var input franchiseInput
	errs, err := bind.JSON(r, &input)
	if err != nil {
		response.Message(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		response.Message(w, http.StatusBadRequest, firstError(errs))
		return
	}

	emails := make([]string, 0, len(input.Admins))
	for _, a := range input.Admins {
		emails = append(emails, a.Email)
	}

	franchise, err := c.service.Create(claims, input.Name, emails)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.OK(w, franchise)
}

// Delete handles DELETE /api/franchise/{franchiseId}. Admin only.
func (c *FranchiseController) Delete(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromCtx(r)

	if err := c.service.Delete(claims, pathID(r, "franchiseId")); err != nil {
		response.Err(w, err)
		return
	}

	response.Message(w, http.StatusOK, "franchise deleted")
}

// CreateStore handles POST /api/franchise/{franchiseId}/store. As with
// Create, authorization wins over validation.
func (c *FranchiseController) CreateStore(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromCtx(r)

	if err := c.service.CanCreateStore(claims, pathID(r, "franchiseId")); err != nil {
		response.Err(w, err)
		return
	}

	var input storeInput
	errs, err := bind.JSON(r, &input)
	if err != nil {
		response.Message(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		response.Message(w, http.StatusBadRequest, firstError(errs))
		return
	}

	store, err := c.service.CreateStore(claims, pathID(r, "franchiseId"), input.Name)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.OK(w, store)
}

// DeleteStore handles DELETE /api/franchise/{franchiseId}/store/{storeId}.
func (c *FranchiseController) DeleteStore(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromCtx(r)

	err := c.service.DeleteStore(claims, pathID(r, "franchiseId"), pathID(r, "storeId"))
	if err != nil {
		response.Err(w, err)
		return
	}

	response.Message(w, http.StatusOK, "store deleted")
}
