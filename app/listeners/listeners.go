// Package listeners wires order events to their side effects: dashboard
// cache invalidation and the websocket refresh signal.
package listeners

import (
	"github.com/shashiranjanraj/ordertrack/app/controllers"
	"github.com/shashiranjanraj/ordertrack/app/services"
	"github.com/shashiranjanraj/ordertrack/pkg/cache"
	"github.com/shashiranjanraj/ordertrack/pkg/event"
	"github.com/shashiranjanraj/ordertrack/pkg/logger"
	"github.com/shashiranjanraj/ordertrack/pkg/ws"
)

// OrdersHub pushes refresh signals to connected dashboards.
var OrdersHub = ws.NewHub()

var changedMessage = []byte(`{"event":"orders:changed"}`)

// Register hooks up all listeners and starts the hub. Call once at boot,
// before the server accepts requests.
func Register() {
	go OrdersHub.Run()

	for _, name := range []string{services.EventOrderSaved, services.EventOrderDeleted} {
		event.Listen(name, onOrdersChanged)
	}
}

// onOrdersChanged runs after any order write. Cached overviews are dropped
// for every window so the next dashboard load recomputes, and connected
// clients are told to refetch.
func onOrdersChanged(_ interface{}) {
	keys := []string{
		controllers.DashboardCachePrefix + "7",
		controllers.DashboardCachePrefix + "14",
		controllers.DashboardCachePrefix + "30",
	}
	if err := cache.Del(keys...); err != nil {
		logger.Warn("dashboard cache invalidation", "error", err)
	}

	OrdersHub.Broadcast <- changedMessage
}
