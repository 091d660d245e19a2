// Package graph defines the read-only GraphQL surface: the same orders,
// filters and KPI numbers as the REST endpoints, for dashboard widgets
// that want to fetch exactly the fields they render.
package graph

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/shashiranjanraj/ordertrack/app/models"
	"github.com/shashiranjanraj/ordertrack/app/services"
	"github.com/shashiranjanraj/ordertrack/app/stats"
	gql "github.com/shashiranjanraj/ordertrack/pkg/graphql"
)

var orderType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Order",
	Fields: graphql.Fields{
		"id":             orderField(func(o models.Order) interface{} { return o.ID }, graphql.Int),
		"orderCode":      orderField(func(o models.Order) interface{} { return o.OrderCode }, graphql.String),
		"customerName":   orderField(func(o models.Order) interface{} { return o.CustomerName }, graphql.String),
		"fbProfile":      orderField(func(o models.Order) interface{} { return o.FBProfile }, graphql.String),
		"orderDetails":   orderField(func(o models.Order) interface{} { return o.OrderDetails }, graphql.String),
		"attachmentUrl":  orderField(func(o models.Order) interface{} { return o.AttachmentURL }, graphql.String),
		"status":         orderField(func(o models.Order) interface{} { return o.Status }, graphql.String),
		"orderDate":      orderField(func(o models.Order) interface{} { return o.OrderDate }, graphql.String),
		"deliveryMethod": orderField(func(o models.Order) interface{} { return o.DeliveryMethod }, graphql.String),
		"paidProduct":    orderField(func(o models.Order) interface{} { return o.PaidProduct }, graphql.Float),
		"paidShipping":   orderField(func(o models.Order) interface{} { return o.PaidShipping }, graphql.Float),
		"notes":          orderField(func(o models.Order) interface{} { return o.Notes }, graphql.String),
		"lastUpdated":    orderField(func(o models.Order) interface{} { return o.LastUpdated }, graphql.DateTime),
	},
})

func orderField(pick func(models.Order) interface{}, t graphql.Output) *graphql.Field {
	return &graphql.Field{
		Type: t,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			o, ok := p.Source.(models.Order)
			if !ok {
				return nil, nil
			}
			return pick(o), nil
		},
	}
}

var dayRowType = graphql.NewObject(graphql.ObjectConfig{
	Name: "DayRow",
	Fields: graphql.Fields{
		"date":      dayField(func(d stats.DayRow) interface{} { return d.Date }, graphql.String),
		"count":     dayField(func(d stats.DayRow) interface{} { return d.Count }, graphql.Int),
		"customers": dayField(func(d stats.DayRow) interface{} { return d.Customers }, graphql.Int),
		"product":   dayField(func(d stats.DayRow) interface{} { return d.Product }, graphql.Float),
		"shipping":  dayField(func(d stats.DayRow) interface{} { return d.Shipping }, graphql.Float),
		"revenue":   dayField(func(d stats.DayRow) interface{} { return d.Revenue }, graphql.Float),
	},
})

func dayField(pick func(stats.DayRow) interface{}, t graphql.Output) *graphql.Field {
	return &graphql.Field{
		Type: t,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			d, ok := p.Source.(stats.DayRow)
			if !ok {
				return nil, nil
			}
			return pick(d), nil
		},
	}
}

var statusCountType = graphql.NewObject(graphql.ObjectConfig{
	Name: "StatusCount",
	Fields: graphql.Fields{
		"status": &graphql.Field{Type: graphql.String},
		"count":  &graphql.Field{Type: graphql.Int},
	},
})

type statusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

var overviewType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Overview",
	Fields: graphql.Fields{
		"totalOrders":     overviewField(func(o stats.Overview) interface{} { return o.TotalOrders }, graphql.Int),
		"productRevenue":  overviewField(func(o stats.Overview) interface{} { return o.ProductRevenue }, graphql.Float),
		"shippingRevenue": overviewField(func(o stats.Overview) interface{} { return o.ShippingRevenue }, graphql.Float),
		"totalRevenue":    overviewField(func(o stats.Overview) interface{} { return o.TotalRevenue }, graphql.Float),
		"todayOrders":     overviewField(func(o stats.Overview) interface{} { return o.TodayOrders }, graphql.Int),
		"todayCustomers":  overviewField(func(o stats.Overview) interface{} { return o.TodayCustomers }, graphql.Int),
		"todayRevenue":    overviewField(func(o stats.Overview) interface{} { return o.TodayRevenue }, graphql.Float),
		"days":            overviewField(func(o stats.Overview) interface{} { return o.Days }, graphql.NewList(dayRowType)),
		"statusCounts": &graphql.Field{
			Type: graphql.NewList(statusCountType),
			Resolve: func(p graphql.ResolveParams) (interface{}, error) {
				o, ok := p.Source.(stats.Overview)
				if !ok {
					return nil, nil
				}
				out := make([]statusCount, 0, len(models.KnownStatuses))
				for _, s := range models.KnownStatuses {
					out = append(out, statusCount{Status: s, Count: o.StatusCounts[s]})
				}
				return out, nil
			},
		},
	},
})

func overviewField(pick func(stats.Overview) interface{}, t graphql.Output) *graphql.Field {
	return &graphql.Field{
		Type: t,
		Resolve: func(p graphql.ResolveParams) (interface{}, error) {
			o, ok := p.Source.(stats.Overview)
			if !ok {
				return nil, nil
			}
			return pick(o), nil
		},
	}
}

// NewSchema builds the query schema backed by svc.
func NewSchema(svc *services.OrderService) (graphql.Schema, error) {
	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"orders": &graphql.Field{
				Type: graphql.NewList(orderType),
				Args: graphql.FieldConfigArgument{
					"tab":    &graphql.ArgumentConfig{Type: graphql.String},
					"status": &graphql.ArgumentConfig{Type: graphql.String},
					"date":   &graphql.ArgumentConfig{Type: graphql.String},
					"q":      &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					f := stats.Filter{
						Tab:    stringArg(p, "tab"),
						Status: stringArg(p, "status"),
						Date:   stringArg(p, "date"),
						Query:  stringArg(p, "q"),
					}
					return svc.List(f)
				},
			},
			"kpis": &graphql.Field{
				Type: overviewType,
				Args: graphql.FieldConfigArgument{
					"days": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 7},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					days, _ := p.Args["days"].(int)
					if !stats.DashboardWindows[days] {
						return nil, fmt.Errorf("days must be 7, 14 or 30")
					}
					return svc.Dashboard(days)
				},
			},
			"dates": &graphql.Field{
				Type: graphql.NewList(graphql.String),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return svc.Dates()
				},
			},
		},
	})

	return gql.NewSchema(query)
}

func stringArg(p graphql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)
	return s
}
