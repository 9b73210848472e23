package routes

import (
	"github.com/shashiranjanraj/pizzeria/app/controllers"
	"github.com/shashiranjanraj/pizzeria/pkg/auth"
	"github.com/shashiranjanraj/pizzeria/pkg/middleware"
	"github.com/shashiranjanraj/pizzeria/pkg/router"
)

// RegisterAPI mounts every API endpoint. Listings and menu reads are public;
// everything else goes through the token-validating auth middleware, with
// role checks applied inside the services.
func RegisterAPI(r *router.Router, tokens *auth.Tokens) {
	authController := controllers.NewAuthController(tokens)
	franchiseController := controllers.NewFranchiseController()
	orderController := controllers.NewOrderController()

	api := r.Group("/api")
	authed := api.Group("", middleware.Auth(tokens))

	// Session lifecycle.
	api.Post("/auth", "auth.register", authController.Register)
	api.Put("/auth", "auth.login", authController.Login)
	authed.Put("/auth/{userId}", "auth.update", authController.Update)
	authed.Delete("/auth", "auth.logout", authController.Logout)

	// Franchises and stores.
	api.Get("/franchise", "franchise.list", franchiseController.List)
	authed.Get("/franchise/{userId}", "franchise.listForUser", franchiseController.ListForUser)
	authed.Post("/franchise", "franchise.create", franchiseController.Create)
	authed.Delete("/franchise/{franchiseId}", "franchise.delete", franchiseController.Delete)
	authed.Post("/franchise/{franchiseId}/store", "store.create", franchiseController.CreateStore)
	authed.Delete("/franchise/{franchiseId}/store/{storeId}", "store.delete", franchiseController.DeleteStore)

	// Menu and orders.
	api.Get("/order/menu", "menu.list", orderController.Menu)
	authed.Put("/order/menu", "menu.add", orderController.AddMenuItem)
	authed.Get("/order", "order.list", orderController.List)
	authed.Post("/order", "order.create", orderController.Create)
}
