// Package stats contains the pure aggregation engines behind the dashboard.
//
// Every function takes a snapshot slice of orders and derives numbers from
// it without touching the database, the cache or the clock (callers pass
// "today" in). That keeps the engines trivially testable and means a GET
// can never observe a half-updated tally.
package stats

import (
	"strings"
	"time"

	"github.com/shashiranjanraj/ordertrack/app/models"
	"github.com/shashiranjanraj/ordertrack/pkg/collection"
)

// DateLayout is the wire format for order dates.
const DateLayout = "2006-01-02"

// DashboardWindows are the day spans the recent-days table may be asked
// for. Every read surface must reject anything outside this set before
// calling KPIs; the window drives a per-day loop and must stay bounded.
var DashboardWindows = map[int]bool{7: true, 14: true, 30: true}

// Sum totals pick(order) over all orders.
func Sum(orders []models.Order, pick func(models.Order) float64) float64 {
	return collection.Sum(orders, pick)
}

// StatusCounts tallies orders into the five known status buckets.
// Status is compared case-insensitively; an empty status counts as
// pending. Unrecognised statuses are not counted anywhere.
func StatusCounts(orders []models.Order) map[string]int {
	counts := make(map[string]int, len(models.KnownStatuses))
	for _, s := range models.KnownStatuses {
		counts[s] = 0
	}

	for _, o := range orders {
		status := strings.ToLower(strings.TrimSpace(o.Status))
		if status == "" {
			status = models.StatusPending
		}
		if _, known := counts[status]; known {
			counts[status]++
		}
	}

	return counts
}

// DayStat is the per-day aggregate behind the daily breakdown table.
type DayStat struct {
	Count     int     `json:"count"`
	Customers int     `json:"customers"`
	Product   float64 `json:"product"`
	Shipping  float64 `json:"shipping"`
}

// GroupByDate buckets orders by OrderDate. Orders with an empty date are
// skipped. Customers is the number of distinct customer names within the
// day, compared after trimming and lowercasing.
func GroupByDate(orders []models.Order) map[string]DayStat {
	byDate := collection.GroupBy(
		collection.Filter(orders, func(o models.Order) bool { return o.OrderDate != "" }),
		func(o models.Order) string { return o.OrderDate },
	)

	out := make(map[string]DayStat, len(byDate))
	for date, day := range byDate {
		names := make(map[string]struct{}, len(day))
		for _, o := range day {
			names[strings.ToLower(strings.TrimSpace(o.CustomerName))] = struct{}{}
		}
		out[date] = DayStat{
			Count:     len(day),
			Customers: len(names),
			Product:   Sum(day, func(o models.Order) float64 { return o.PaidProduct }),
			Shipping:  Sum(day, func(o models.Order) float64 { return o.PaidShipping }),
		}
	}

	return out
}

// DayRow is one row of the recent-days table, most recent first.
type DayRow struct {
	Date string `json:"date"`
	DayStat
	Revenue float64 `json:"revenue"`
}

// Overview is the full dashboard payload.
type Overview struct {
	TotalOrders     int            `json:"total_orders"`
	ProductRevenue  float64        `json:"product_revenue"`
	ShippingRevenue float64        `json:"shipping_revenue"`
	TotalRevenue    float64        `json:"total_revenue"`
	TodayOrders     int            `json:"today_orders"`
	TodayCustomers  int            `json:"today_customers"`
	TodayRevenue    float64        `json:"today_revenue"`
	StatusCounts    map[string]int `json:"status_counts"`
	Days            []DayRow       `json:"days"`
}

// KPIs computes the dashboard overview for the windowDays days ending at
// today. The Days table walks backwards one day at a time starting from
// today, so days with no orders still appear as zero rows.
func KPIs(orders []models.Order, today time.Time, windowDays int) Overview {
	if windowDays <= 0 {
		windowDays = 7
	}

	byDate := GroupByDate(orders)

	days := make([]DayRow, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		date := today.AddDate(0, 0, -i).Format(DateLayout)
		d := byDate[date]
		days = append(days, DayRow{
			Date:    date,
			DayStat: d,
			Revenue: d.Product + d.Shipping,
		})
	}

	product := Sum(orders, func(o models.Order) float64 { return o.PaidProduct })
	shipping := Sum(orders, func(o models.Order) float64 { return o.PaidShipping })

	todayStat := byDate[today.Format(DateLayout)]

	return Overview{
		TotalOrders:     len(orders),
		ProductRevenue:  product,
		ShippingRevenue: shipping,
		TotalRevenue:    product + shipping,
		TodayOrders:     todayStat.Count,
		TodayCustomers:  todayStat.Customers,
		TodayRevenue:    todayStat.Product + todayStat.Shipping,
		StatusCounts:    StatusCounts(orders),
		Days:            days,
	}
}

// Dates returns the distinct non-empty order dates, newest first. Feeds
// the date filter dropdown.
func Dates(orders []models.Order) []string {
	withDate := collection.Filter(orders, func(o models.Order) bool { return o.OrderDate != "" })
	unique := collection.UniqueBy(withDate, func(o models.Order) string { return o.OrderDate })
	dates := collection.Map(unique, func(o models.Order) string { return o.OrderDate })
	return collection.SortBy(dates, func(a, b string) bool { return a > b })
}
