package stats_test

import (
	"testing"

	"github.com/shashiranjanraj/ordertrack/app/models"
	"github.com/shashiranjanraj/ordertrack/app/stats"
)

func sampleOrders() []models.Order {
	return []models.Order{
		{OrderCode: "ORD-1", CustomerName: "Maria Santos", FBProfile: "fb.com/maria", OrderDetails: "2x blue mug", Notes: "rush", Status: "pending", OrderDate: "2026-03-01", DeliveryMethod: "jnt"},
		{OrderCode: "ORD-2", CustomerName: "Juan Cruz", OrderDetails: "red shirt", Status: "shipped", OrderDate: "2026-03-02", DeliveryMethod: "walkin"},
		{OrderCode: "ORD-3", CustomerName: "Ana Reyes", OrderDetails: "blue cap", Status: "pending", OrderDate: "2026-03-02", DeliveryMethod: "jnt"},
	}
}

func codes(orders []models.Order) []string {
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.OrderCode
	}
	return out
}

func TestFilterEmptyMatchesAll(t *testing.T) {
	got := stats.Filter{}.Apply(sampleOrders())
	if len(got) != 3 {
		t.Fatalf("expected all 3 orders, got %d", len(got))
	}
	// Input order preserved.
	if got[0].OrderCode != "ORD-1" || got[2].OrderCode != "ORD-3" {
		t.Errorf("ordering changed: %v", codes(got))
	}
}

func TestFilterTab(t *testing.T) {
	got := stats.Filter{Tab: "walkin"}.Apply(sampleOrders())
	if len(got) != 1 || got[0].OrderCode != "ORD-2" {
		t.Errorf("expected only ORD-2, got %v", codes(got))
	}

	all := stats.Filter{Tab: "all"}.Apply(sampleOrders())
	if len(all) != 3 {
		t.Errorf("tab=all should match everything, got %v", codes(all))
	}
}

func TestFilterConjunction(t *testing.T) {
	f := stats.Filter{Tab: "jnt", Status: "pending", Date: "2026-03-02"}
	got := f.Apply(sampleOrders())
	if len(got) != 1 || got[0].OrderCode != "ORD-3" {
		t.Errorf("expected only ORD-3, got %v", codes(got))
	}
}

func TestFilterQuerySpansFields(t *testing.T) {
	// "blue" appears in details of ORD-1 and ORD-3.
	got := stats.Filter{Query: "BLUE"}.Apply(sampleOrders())
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %v", codes(got))
	}

	// Notes are searched too.
	got = stats.Filter{Query: "rush"}.Apply(sampleOrders())
	if len(got) != 1 || got[0].OrderCode != "ORD-1" {
		t.Errorf("expected ORD-1 via notes, got %v", codes(got))
	}

	// Profile URL is searched.
	got = stats.Filter{Query: "fb.com/maria"}.Apply(sampleOrders())
	if len(got) != 1 || got[0].OrderCode != "ORD-1" {
		t.Errorf("expected ORD-1 via profile, got %v", codes(got))
	}
}

func TestFilterQuerySkipsEmptyFields(t *testing.T) {
	// Profile and details are blank; the joined text must read
	// "ord-9 carla cruz", not leave extra gaps where they were.
	orders := []models.Order{{
		OrderCode:    "ORD-9",
		CustomerName: "Carla Cruz",
	}}

	got := stats.Filter{Query: "ord-9 carla"}.Apply(orders)
	if len(got) != 1 {
		t.Fatalf("expected a match across adjacent fields, got %v", codes(got))
	}
}

func TestFilterStatusCaseInsensitive(t *testing.T) {
	got := stats.Filter{Status: "SHIPPED"}.Apply(sampleOrders())
	if len(got) != 1 || got[0].OrderCode != "ORD-2" {
		t.Errorf("expected ORD-2, got %v", codes(got))
	}
}

func TestFilterIdempotent(t *testing.T) {
	f := stats.Filter{Tab: "jnt", Query: "blue"}
	once := f.Apply(sampleOrders())
	twice := f.Apply(once)

	if len(once) != len(twice) {
		t.Fatalf("second application changed the result: %v vs %v", codes(once), codes(twice))
	}
	for i := range once {
		if once[i].OrderCode != twice[i].OrderCode {
			t.Errorf("ordering changed at %d: %v vs %v", i, codes(once), codes(twice))
		}
	}
}

func TestFilterAllDimensions(t *testing.T) {
	// "all"/empty on every dimension is the identity.
	f := stats.Filter{Tab: "all", Status: "all", Date: "all", Query: ""}
	got := f.Apply(sampleOrders())
	want := sampleOrders()
	if len(got) != len(want) {
		t.Fatalf("expected identity, got %v", codes(got))
	}
	for i := range want {
		if got[i].OrderCode != want[i].OrderCode {
			t.Errorf("ordering changed at %d", i)
		}
	}
}

func TestFilterNoMatch(t *testing.T) {
	got := stats.Filter{Query: "nonexistent thing"}.Apply(sampleOrders())
	if len(got) != 0 {
		t.Errorf("expected no matches, got %v", codes(got))
	}
}
