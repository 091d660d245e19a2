package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/shashiranjanraj/ordertrack/app/services"
	"github.com/shashiranjanraj/ordertrack/app/stats"
	"github.com/shashiranjanraj/ordertrack/pkg/cache"
	"github.com/shashiranjanraj/ordertrack/pkg/logger"
	"github.com/shashiranjanraj/ordertrack/pkg/metrics"
	"github.com/shashiranjanraj/ordertrack/pkg/response"
)

// DashboardCachePrefix keys the cached overviews. Listeners delete these
// keys on every order write, so a hit is never stale.
const DashboardCachePrefix = "dashboard:days:"

const dashboardCacheTTL = 5 * time.Minute

type DashboardController struct {
	service *services.OrderService
}

func NewDashboardController() *DashboardController {
	return &DashboardController{service: services.NewOrderService()}
}

// Overview returns the KPI payload for the requested window.
func (c *DashboardController) Overview(w http.ResponseWriter, r *http.Request) {
	days := 7
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || !stats.DashboardWindows[n] {
			response.Error(w, http.StatusBadRequest, "days must be 7, 14 or 30")
			return
		}
		days = n
	}

	key := fmt.Sprintf("%s%d", DashboardCachePrefix, days)

	var cached stats.Overview
	if cache.Get(key, &cached) {
		metrics.CacheHits.Inc()
		response.Success(w, cached)
		return
	}
	metrics.CacheMisses.Inc()

	overview, err := c.service.Dashboard(days)
	if err != nil {
		logger.WithCtx(r.Context()).Error("dashboard overview", "error", err)
		response.Error(w, http.StatusInternalServerError, "Could not compute dashboard")
		return
	}

	if err := cache.Set(key, overview, dashboardCacheTTL); err != nil {
		logger.WithCtx(r.Context()).Warn("dashboard cache set", "error", err)
	}

	response.Success(w, overview)
}
