package controllers

import (
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/pizzeria/app/models"
	"github.com/shashiranjanraj/pizzeria/app/services"
	"github.com/shashiranjanraj/pizzeria/pkg/bind"
	"github.com/shashiranjanraj/pizzeria/pkg/middleware"
	"github.com/shashiranjanraj/pizzeria/pkg/response"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController() *OrderController {
	return &OrderController{service: services.NewOrderService()}
}

type menuItemInput struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Price       float64 `json:"price" validate:"gte=0"`
}

type orderInput struct {
	FranchiseID uint `json:"franchiseId"`
	StoreID     uint `json:"storeId"`
	Items       []struct {
		MenuID      uint    `json:"menuId"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
	} `json:"items"`
}

type ordersBody struct {
	DinerID uint           `json:"dinerId"`
	Orders  []models.Order `json:"orders"`
	Page    int            `json:"page"`
}

// Menu handles GET /api/order/menu. Public.
func (c *OrderController) Menu(w http.ResponseWriter, r *http.Request) {
	items, err := c.service.Menu()
	if err != nil {
		response.Err(w, err)
		return
	}
	response.OK(w, items)
}

// AddMenuItem handles PUT /api/order/menu: appends an item and returns the
// updated menu. Admin only; checked before the body is read so a non-admin
// gets 403 regardless of payload.
func (c *OrderController) AddMenuItem(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromCtx(r)

	if err := c.service.CanEditMenu(claims); err != nil {
		response.Err(w, err)
		return
	}

	var input menuItemInput
	errs, err := bind.JSON(r, &input)
	if err != nil {
		response.Message(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(errs) > 0 {
		response.Message(w, http.StatusBadRequest, firstError(errs))
		return
	}

	item := models.MenuItem{
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
		Price:       input.Price,
	}
	menu, err := c.service.AddMenuItem(claims, &item)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.OK(w, menu)
}

// List handles GET /api/order: one page of the caller's orders.
func (c *OrderController) List(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromCtx(r)

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	orders, err := c.service.Orders(claims, page)
	if err != nil {
		response.Err(w, err)
		return
	}

	response.OK(w, ordersBody{DinerID: claims.UserID, Orders: orders, Page: page})
}

// Create handles POST /api/order.
func (c *OrderController) Create(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFromCtx(r)

	var input orderInput
	if _, err := bind.JSON(r, &input); err != nil {
		response.Message(w, http.StatusBadRequest, err.Error())
		return
	}

	order := models.Order{
		FranchiseID: input.FranchiseID,
		StoreID:     input.StoreID,
	}
	for _, item := range input.Items {
		order.Items = append(order.Items, models.OrderItem{
			MenuID:      item.MenuID,
			Description: item.Description,
			Price:       item.Price,
		})
	}

	if err := c.service.Create(claims, &order); err != nil {
		response.Err(w, err)
		return
	}

	response.OK(w, map[string]models.Order{"order": order})
}
