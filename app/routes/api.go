package routes

import (
	"net/http"

	"github.com/shashiranjanraj/ordertrack/app/controllers"
	"github.com/shashiranjanraj/ordertrack/app/listeners"
	"github.com/shashiranjanraj/ordertrack/pkg/metrics"
	"github.com/shashiranjanraj/ordertrack/pkg/middleware"
	"github.com/shashiranjanraj/ordertrack/pkg/router"
	"github.com/shashiranjanraj/ordertrack/pkg/ws"
)

// RegisterAPI mounts every HTTP route. The dashboard sits behind the admin
// allow-list; everything else under /api needs a valid token.
func RegisterAPI(r *router.Router) error {
	authController := controllers.NewAuthController()
	orderController := controllers.NewOrderController()
	dashboardController := controllers.NewDashboardController()

	graphqlController, err := controllers.NewGraphQLController()
	if err != nil {
		return err
	}

	api := r.Group("/api")
	api.Post("/login", "auth.login", authController.Login)

	protected := api.Group("", middleware.Auth)
	protected.Get("/orders", "orders.index", orderController.Index)
	protected.Post("/orders", "orders.store", orderController.Store)
	protected.Put("/orders/{id}", "orders.update", orderController.Update)
	protected.Delete("/orders/{id}", "orders.destroy", orderController.Destroy)
	protected.Post("/graphql", "graphql.query", graphqlController.Query)

	admin := api.Group("", middleware.Auth, middleware.AdminOnly)
	admin.Get("/dashboard", "dashboard.overview", dashboardController.Overview)

	// Browsers cannot attach headers to a WebSocket connect, so this
	// route also takes the token as a query parameter.
	r.Get("/ws/orders", "ws.orders", func(w http.ResponseWriter, req *http.Request) {
		ws.Upgrade(w, req, listeners.OrdersHub)
	}, middleware.AuthQuery)

	r.Get("/metrics", "metrics", metrics.Handler())

	return nil
}
