// Package graph defines the read-only GraphQL schema served on /api/graphql.
// Every field resolves through the same services as the REST controllers.
package graph

import (
	"time"

	"github.com/graphql-go/graphql"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/app/dto"
	"github.com/shashiranjanraj/ordermanager/app/services"
	"github.com/shashiranjanraj/ordermanager/pkg/collection"
	gqlhttp "github.com/shashiranjanraj/ordermanager/pkg/graphql"
)

type resolver struct {
	products *services.ProductService
	orders   *services.OrderService
	lines    *services.ProductOrderService
	stocks   *services.StockService
}

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"slug":      &graphql.Field{Type: graphql.String},
		"name":      &graphql.Field{Type: graphql.String},
		"reference": &graphql.Field{Type: graphql.String},
		"price":     &graphql.Field{Type: graphql.String},
		"vat":       &graphql.Field{Type: graphql.String},
		"stockable": &graphql.Field{Type: graphql.Boolean},
	},
})

var stockType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Stock",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"productId": &graphql.Field{Type: graphql.Int},
		"quantity":  &graphql.Field{Type: graphql.Int},
		"updatedAt": &graphql.Field{Type: graphql.String},
	},
})

var lineType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ProductOrder",
	Fields: graphql.Fields{
		"productId": &graphql.Field{Type: graphql.Int},
		"orderId":   &graphql.Field{Type: graphql.Int},
		"quantity":  &graphql.Field{Type: graphql.Int},
		"price":     &graphql.Field{Type: graphql.String},
		"vat":       &graphql.Field{Type: graphql.String},
	},
})

func money(d *decimal.Decimal) interface{} {
	if d == nil {
		return nil
	}
	return d.StringFixed(2)
}

func stamp(t time.Time) string { return t.UTC().Format(time.RFC3339) }

func productMap(p dto.Product) map[string]interface{} {
	return map[string]interface{}{
		"id": p.ID, "slug": p.Slug, "name": p.Name, "reference": p.Reference,
		"price": money(p.Price), "vat": money(p.VAT), "stockable": p.Stockable,
	}
}

func stockMap(s dto.Stock) map[string]interface{} {
	return map[string]interface{}{
		"id": s.ID, "productId": s.ProductID, "quantity": s.Quantity, "updatedAt": stamp(s.UpdatedAt),
	}
}

func lineMap(l dto.ProductOrder) map[string]interface{} {
	return map[string]interface{}{
		"productId": l.ProductID, "orderId": l.OrderID, "quantity": l.Quantity,
		"price": money(l.Price), "vat": money(l.VAT),
	}
}

func (r *resolver) orderType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Order",
		Fields: graphql.Fields{
			"id":         &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"customerId": &graphql.Field{Type: graphql.Int},
			"orderAt":    &graphql.Field{Type: graphql.String},
			"lines": &graphql.Field{
				Type: graphql.NewList(lineType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					order := p.Source.(map[string]interface{})
					rows, err := r.lines.ByOrder(p.Context, order["id"].(uint))
					if err != nil {
						return nil, err
					}
					return collection.Map(rows, lineMap), nil
				},
			},
		},
	})
}

func orderMap(o dto.Order) map[string]interface{} {
	return map[string]interface{}{"id": o.ID, "customerId": o.CustomerID, "orderAt": stamp(o.OrderAt)}
}

func idArg(name string) graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{name: &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)}}
}

func uintArg(p graphql.ResolveParams, name string) uint {
	n, _ := p.Args[name].(int)
	if n < 0 {
		return 0
	}
	return uint(n)
}

func (r *resolver) query() *graphql.Object {
	order := r.orderType()
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"product": &graphql.Field{
				Type: productType,
				Args: idArg("id"),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					product, err := r.products.Get(p.Context, uintArg(p, "id"))
					if err != nil {
						return nil, err
					}
					return productMap(product), nil
				},
			},
			"products": &graphql.Field{
				Type: graphql.NewList(productType),
				Args: graphql.FieldConfigArgument{
					"page":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 1},
					"limit": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 20},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					rows, _, err := r.products.Page(p.Context, p.Args["page"].(int), p.Args["limit"].(int))
					if err != nil {
						return nil, err
					}
					return collection.Map(rows, productMap), nil
				},
			},
			"order": &graphql.Field{
				Type: order,
				Args: idArg("id"),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					o, err := r.orders.Get(p.Context, uintArg(p, "id"))
					if err != nil {
						return nil, err
					}
					return orderMap(o), nil
				},
			},
			"ordersByCustomer": &graphql.Field{
				Type: graphql.NewList(order),
				Args: idArg("customerId"),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					rows, err := r.orders.ByCustomer(p.Context, uintArg(p, "customerId"))
					if err != nil {
						return nil, err
					}
					return collection.Map(rows, orderMap), nil
				},
			},
			"stocksByProduct": &graphql.Field{
				Type: graphql.NewList(stockType),
				Args: idArg("productId"),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					rows, err := r.stocks.ByProduct(p.Context, uintArg(p, "productId"))
					if err != nil {
						return nil, err
					}
					return collection.Map(rows, stockMap), nil
				},
			},
		},
	})
}

// NewSchema builds the schema over db.
func NewSchema(db *gorm.DB) (graphql.Schema, error) {
	r := &resolver{
		products: services.NewProductService(db),
		orders:   services.NewOrderService(db),
		lines:    services.NewProductOrderService(db),
		stocks:   services.NewStockService(db),
	}
	return gqlhttp.NewSchema(r.query())
}
