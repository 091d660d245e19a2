package graph_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shashiranjanraj/ordertrack/app/graph"
	"github.com/shashiranjanraj/ordertrack/app/models"
	"github.com/shashiranjanraj/ordertrack/app/services"
	gql "github.com/shashiranjanraj/ordertrack/pkg/graphql"
)

type stubRepo struct {
	orders []models.Order
}

func (r *stubRepo) All() ([]models.Order, error) { return r.orders, nil }

func (r *stubRepo) Find(id uint) (models.Order, error) {
	return models.Order{}, errors.New("not found")
}

func (r *stubRepo) Create(*models.Order) error { return nil }
func (r *stubRepo) Update(*models.Order) error { return nil }
func (r *stubRepo) Delete(*models.Order) error { return nil }

func newSchema(t *testing.T, orders ...models.Order) gql.Schema {
	t.Helper()
	svc := services.NewOrderServiceWith(&stubRepo{orders: orders}, nil, time.Now)
	schema, err := graph.NewSchema(svc)
	if err != nil {
		t.Fatalf("NewSchema: %v", err)
	}
	return schema
}

func TestKPIsRejectOutOfRangeWindow(t *testing.T) {
	schema := newSchema(t)

	for _, query := range []string{
		`{ kpis(days: 5000000) { totalOrders } }`,
		`{ kpis(days: 0) { totalOrders } }`,
		`{ kpis(days: -7) { totalOrders } }`,
		`{ kpis(days: 8) { totalOrders } }`,
	} {
		res := gql.Do(context.Background(), schema, query, nil)
		if len(res.Errors) == 0 {
			t.Errorf("%s: expected an error, got data %v", query, res.Data)
		}
	}
}

func TestKPIsAcceptDashboardWindows(t *testing.T) {
	schema := newSchema(t, models.Order{
		OrderCode:   "ORD-1",
		Status:      models.StatusPending,
		OrderDate:   time.Now().UTC().Format("2006-01-02"),
		PaidProduct: 10,
	})

	for _, query := range []string{
		`{ kpis { totalOrders } }`,
		`{ kpis(days: 7) { totalOrders } }`,
		`{ kpis(days: 14) { totalOrders } }`,
		`{ kpis(days: 30) { totalOrders } }`,
	} {
		res := gql.Do(context.Background(), schema, query, nil)
		if len(res.Errors) != 0 {
			t.Errorf("%s: unexpected errors %v", query, res.Errors)
		}
	}
}
