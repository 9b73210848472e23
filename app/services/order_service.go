package services

import (
	"time"

	"github.com/shashiranjanraj/pizzeria/app/models"
	"github.com/shashiranjanraj/pizzeria/app/repositories"
	"github.com/shashiranjanraj/pizzeria/pkg/apperr"
	"github.com/shashiranjanraj/pizzeria/pkg/auth"
	"github.com/shashiranjanraj/pizzeria/pkg/cache"
	"github.com/shashiranjanraj/pizzeria/pkg/metrics"
	"github.com/shashiranjanraj/pizzeria/pkg/rbac"
)

const (
	menuCacheKey  = "menu"
	menuCacheTTL  = 5 * time.Minute
	ordersPerPage = 10
)

// OrderService implements the menu and order placement.
type OrderService struct {
	orders *repositories.OrderRepository
}

func NewOrderService() *OrderService {
	return &OrderService{orders: repositories.NewOrderRepository()}
}

// Menu returns the full menu, served from cache when warm. Public read.
func (s *OrderService) Menu() ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	if cache.Get(menuCacheKey, &items) {
		return items, nil
	}

	items, err := s.orders.Menu()
	if err != nil {
		return nil, err
	}

	cache.Set(menuCacheKey, items, menuCacheTTL) //nolint:errcheck
	return items, nil
}

// CanEditMenu decides whether the principal may change the menu. Checked by
// the controller before the body is read so a non-admin always gets 403.
func (s *OrderService) CanEditMenu(claims *auth.Claims) error {
	if !rbac.IsAdmin(claims) {
		return apperr.Forbidden("unable to add menu item")
	}
	return nil
}

// AddMenuItem appends an item to the menu and returns the updated menu.
// Admin only.
func (s *OrderService) AddMenuItem(claims *auth.Claims, item *models.MenuItem) ([]models.MenuItem, error) {
	if err := s.CanEditMenu(claims); err != nil {
		return nil, err
	}

	if err := s.orders.AddMenuItem(item); err != nil {
		return nil, err
	}

	cache.Del(menuCacheKey) //nolint:errcheck
	return s.orders.Menu()
}

// Orders returns one page of the caller's own orders.
func (s *OrderService) Orders(claims *auth.Claims, page int) ([]models.Order, error) {
	return s.orders.ByDiner(claims.UserID, page, ordersPerPage)
}

// Create places an order for the caller. Every line must reference an
// existing menu item; the order is stamped with the caller's id and is
// immutable afterwards.
func (s *OrderService) Create(claims *auth.Claims, order *models.Order) error {
	if len(order.Items) == 0 {
		return apperr.BadRequest("order must include at least one item")
	}

	var total float64
	for _, item := range order.Items {
		if _, err := s.orders.MenuItemByID(item.MenuID); err != nil {
			if repositories.IsNotFound(err) {
				return apperr.NotFound("no such menu item")
			}
			return err
		}
		total += item.Price
	}

	order.ID = 0
	order.DinerID = claims.UserID
	order.Date = time.Now()
	if err := s.orders.Create(order); err != nil {
		return err
	}

	metrics.OrdersPlaced.Inc()
	metrics.Revenue.Add(total)
	return nil
}
