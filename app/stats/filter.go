package stats

import (
	"strings"

	"github.com/shashiranjanraj/ordertrack/app/models"
	"github.com/shashiranjanraj/ordertrack/pkg/collection"
)

// Filter holds the listing filters. Zero values and "all" mean "don't
// filter on this dimension"; all set dimensions must match (AND).
type Filter struct {
	Tab    string // delivery method: "all", "jnt", "walkin"
	Status string // exact status, case-insensitive
	Date   string // exact OrderDate match, "2006-01-02"
	Query  string // substring search, case-insensitive
}

// Apply returns the orders matching f, preserving the input ordering.
func (f Filter) Apply(orders []models.Order) []models.Order {
	return collection.Filter(orders, f.matches)
}

func (f Filter) matches(o models.Order) bool {
	if !f.matchTab(o) {
		return false
	}
	if f.Status != "" && f.Status != "all" &&
		!strings.EqualFold(strings.TrimSpace(o.Status), f.Status) {
		return false
	}
	if f.Date != "" && f.Date != "all" && o.OrderDate != f.Date {
		return false
	}
	return f.matchQuery(o)
}

func (f Filter) matchTab(o models.Order) bool {
	tab := strings.ToLower(strings.TrimSpace(f.Tab))
	if tab == "" || tab == "all" {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(o.DeliveryMethod), tab)
}

// matchQuery searches the free-text fields joined together, so a query can
// span any of order code, customer, profile, details and notes. Empty
// fields are dropped before joining so they never widen the gap between
// neighbours.
func (f Filter) matchQuery(o models.Order) bool {
	q := strings.ToLower(strings.TrimSpace(f.Query))
	if q == "" {
		return true
	}

	fields := collection.Filter([]string{
		o.OrderCode,
		o.CustomerName,
		o.FBProfile,
		o.OrderDetails,
		o.Notes,
	}, func(s string) bool { return s != "" })

	haystack := strings.ToLower(strings.Join(fields, " "))

	return strings.Contains(haystack, q)
}
