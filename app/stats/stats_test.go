package stats_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/ordertrack/app/models"
	"github.com/shashiranjanraj/ordertrack/app/stats"
)

func order(date, customer, status string, product, shipping float64) models.Order {
	return models.Order{
		CustomerName: customer,
		Status:       status,
		OrderDate:    date,
		PaidProduct:  product,
		PaidShipping: shipping,
	}
}

func TestStatusCountsBuckets(t *testing.T) {
	orders := []models.Order{
		order("2026-03-01", "ana", "pending", 0, 0),
		order("2026-03-01", "ben", "PENDING", 0, 0),
		order("2026-03-01", "cho", "  Shipped ", 0, 0),
		order("2026-03-01", "dee", "", 0, 0),        // empty → pending
		order("2026-03-01", "eli", "unknown", 0, 0), // dropped
	}

	counts := stats.StatusCounts(orders)

	assert.Equal(t, 3, counts["pending"])
	assert.Equal(t, 1, counts["shipped"])
	assert.Equal(t, 0, counts["processing"])
	assert.Equal(t, 0, counts["delivered"])
	assert.Equal(t, 0, counts["cancelled"])

	// Only the five known buckets exist, never "unknown".
	assert.Len(t, counts, 5)
}

func TestStatusCountsEmptyInput(t *testing.T) {
	counts := stats.StatusCounts(nil)
	require.Len(t, counts, 5)
	for status, n := range counts {
		assert.Zero(t, n, "status %q", status)
	}
}

func TestGroupByDate(t *testing.T) {
	orders := []models.Order{
		order("2026-03-01", "Ana", "pending", 100, 10),
		order("2026-03-01", " ana ", "shipped", 50, 5), // same customer after normalising
		order("2026-03-01", "Ben", "pending", 25, 0),
		order("2026-03-02", "Cho", "pending", 200, 20),
		order("", "Dee", "pending", 999, 99), // empty date skipped
	}

	byDate := stats.GroupByDate(orders)
	require.Len(t, byDate, 2)

	day := byDate["2026-03-01"]
	assert.Equal(t, 3, day.Count)
	assert.Equal(t, 2, day.Customers)
	assert.Equal(t, 175.0, day.Product)
	assert.Equal(t, 15.0, day.Shipping)

	assert.Equal(t, stats.DayStat{Count: 1, Customers: 1, Product: 200, Shipping: 20}, byDate["2026-03-02"])
}

func TestKPIsWindow(t *testing.T) {
	today := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	orders := []models.Order{
		order("2026-03-10", "Ana", "pending", 100, 10),
		order("2026-03-10", "Ben", "shipped", 200, 20),
		order("2026-03-08", "Cho", "delivered", 50, 5),
		order("2026-02-01", "Old", "delivered", 1000, 100), // outside window, still in totals
	}

	kpi := stats.KPIs(orders, today, 7)

	assert.Equal(t, 4, kpi.TotalOrders)
	assert.Equal(t, 1350.0, kpi.ProductRevenue)
	assert.Equal(t, 135.0, kpi.ShippingRevenue)
	assert.Equal(t, 1485.0, kpi.TotalRevenue)

	assert.Equal(t, 2, kpi.TodayOrders)
	assert.Equal(t, 2, kpi.TodayCustomers)
	assert.Equal(t, 330.0, kpi.TodayRevenue)

	require.Len(t, kpi.Days, 7)
	// Most recent first, zero days included.
	assert.Equal(t, "2026-03-10", kpi.Days[0].Date)
	assert.Equal(t, 330.0, kpi.Days[0].Revenue)
	assert.Equal(t, "2026-03-09", kpi.Days[1].Date)
	assert.Zero(t, kpi.Days[1].Count)
	assert.Equal(t, "2026-03-08", kpi.Days[2].Date)
	assert.Equal(t, 55.0, kpi.Days[2].Revenue)
	assert.Equal(t, "2026-03-04", kpi.Days[6].Date)
}

func TestKPIsDefaultsWindow(t *testing.T) {
	kpi := stats.KPIs(nil, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), 0)
	assert.Len(t, kpi.Days, 7)
}

func TestDatesNewestFirst(t *testing.T) {
	orders := []models.Order{
		order("2026-03-01", "a", "pending", 0, 0),
		order("2026-03-03", "b", "pending", 0, 0),
		order("2026-03-01", "c", "pending", 0, 0),
		order("", "d", "pending", 0, 0),
		order("2026-03-02", "e", "pending", 0, 0),
	}

	assert.Equal(t, []string{"2026-03-03", "2026-03-02", "2026-03-01"}, stats.Dates(orders))
}

func TestSingleDayAggregates(t *testing.T) {
	orders := []models.Order{
		{CustomerName: "Maria", Status: "pending", OrderDate: "2024-01-01", PaidProduct: 100, PaidShipping: 20},
		{CustomerName: "Juan", Status: "shipped", OrderDate: "2024-01-01", PaidProduct: 50, PaidShipping: 0},
	}

	assert.Equal(t, 150.0, stats.Sum(orders, func(o models.Order) float64 { return o.PaidProduct }))
	assert.Equal(t, 20.0, stats.Sum(orders, func(o models.Order) float64 { return o.PaidShipping }))

	counts := stats.StatusCounts(orders)
	assert.Equal(t, map[string]int{
		"pending": 1, "shipped": 1, "processing": 0, "delivered": 0, "cancelled": 0,
	}, counts)

	day := stats.GroupByDate(orders)["2024-01-01"]
	assert.Equal(t, stats.DayStat{Count: 2, Customers: 2, Product: 150, Shipping: 20}, day)
}

func TestStatusCountsNeverExceedTotal(t *testing.T) {
	orders := []models.Order{
		order("2026-03-01", "a", "pending", 0, 0),
		order("2026-03-01", "b", "weird", 0, 0),
		order("2026-03-01", "c", "delivered", 0, 0),
	}

	counts := stats.StatusCounts(orders)
	total := 0
	for _, n := range counts {
		total += n
	}
	assert.LessOrEqual(t, total, len(orders))
	assert.Equal(t, 2, total) // "weird" is not tallied
}

func TestSum(t *testing.T) {
	orders := []models.Order{
		order("2026-03-01", "a", "pending", 10, 1),
		order("2026-03-01", "b", "pending", 20, 2),
	}
	got := stats.Sum(orders, func(o models.Order) float64 { return o.PaidProduct })
	assert.Equal(t, 30.0, got)
}
