// Package routes holds the HTTP route table.
package routes

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/app/controllers"
	"github.com/shashiranjanraj/ordermanager/app/graph"
	"github.com/shashiranjanraj/ordermanager/app/services"
	"github.com/shashiranjanraj/ordermanager/pkg/auth"
	"github.com/shashiranjanraj/ordermanager/pkg/ctx"
	"github.com/shashiranjanraj/ordermanager/pkg/graphql"
	"github.com/shashiranjanraj/ordermanager/pkg/middleware"
	"github.com/shashiranjanraj/ordermanager/pkg/openapi"
	"github.com/shashiranjanraj/ordermanager/pkg/rbac"
	"github.com/shashiranjanraj/ordermanager/pkg/router"
)

// API returns the registration callback for every endpoint under /api plus
// the OpenAPI document. Everything under /api needs a bearer token except
// /api/v1/auth.
func API(db *gorm.DB, authn *auth.Authenticator) func(*router.Router) {
	return func(r *router.Router) {
		customerSvc := services.NewCustomerService(db).WithRevoker(authn)
		authSvc := services.NewAuthService(db, authn)

		customers := controllers.NewCustomerController(customerSvc)
		orders := controllers.NewOrderController(services.NewOrderService(db))
		products := controllers.NewProductController(services.NewProductService(db))
		stocks := controllers.NewStockController(services.NewStockService(db))
		lines := controllers.NewProductOrderController(services.NewProductOrderService(db))
		account := controllers.NewAuthController(authSvc)
		management := controllers.NewManagementController(authSvc)

		docs := openapi.Handler(openapi.Info{Title: "ordermanager", Version: "1.0.0"}, r.Routes)
		r.Get("/v3/api-docs", "docs.json", docs)
		r.Get("/v3/api-docs.yaml", "docs.yaml", docs)

		// ── Public auth ───────────────────────────────────────────────────────
		public := r.Group("/api/v1/auth").Public()
		public.Post("/register", "auth.register", ctx.Wrap(account.Register))
		public.Post("/authenticate", "auth.authenticate", ctx.Wrap(account.Authenticate))
		public.Post("/refresh-token", "auth.refresh", ctx.Wrap(account.Refresh))
		public.Post("/logout", "auth.logout", ctx.Wrap(account.Logout))

		api := r.Group("/api", middleware.Authenticate(authn))
		api.Get("/v1/auth/me", "auth.me", ctx.Wrap(account.Me))

		// ── Management ────────────────────────────────────────────────────────
		mgmt := api.Group("/v1/management", rbac.Management)
		mgmt.Get("/customers", "management.customers.index", ctx.Wrap(management.Accounts))
		mgmt.Post("/customers", "management.customers.store", ctx.Wrap(management.CreateAccount))
		mgmt.Put("/customers/{id}/role", "management.customers.role", ctx.Wrap(management.ChangeRole))
		mgmt.Delete("/customers/{id}/tokens", "management.customers.tokens", ctx.Wrap(management.RevokeTokens))

		// ── Customers ─────────────────────────────────────────────────────────
		c := api.Group("/customers")
		c.Get("/", "customers.index", ctx.Wrap(customers.Index))
		c.Post("/", "customers.store", ctx.Wrap(customers.Store))
		c.Get("/{id}", "customers.show", ctx.Wrap(customers.Show))
		c.Put("/{id}", "customers.update", ctx.Wrap(customers.Update))
		c.Delete("/{id}", "customers.destroy", ctx.Wrap(customers.Destroy))
		c.Get("/by-name", "customers.by_name", ctx.Wrap(customers.ByName))
		c.Get("/birthdate-range", "customers.birthdate_range", ctx.Wrap(customers.BornBetween))
		c.Get("/birthdate-before/{date}", "customers.birthdate_before", ctx.Wrap(customers.BornBefore))
		c.Get("/birthdate/{date}", "customers.birthdate", ctx.Wrap(customers.BornOn))
		c.Get("/first-name/{firstName}", "customers.first_name", ctx.Wrap(customers.ByFirstName))
		c.Get("/last-name/{lastName}", "customers.last_name", ctx.Wrap(customers.ByLastName))
		c.Alias("/byName", "customers.by_name_alias", "customers.by_name", ctx.Wrap(customers.ByName))
		c.Alias("/byBirthdateRange", "customers.birthdate_range_alias", "customers.birthdate_range", ctx.Wrap(customers.BornBetween))

		// ── Orders ────────────────────────────────────────────────────────────
		o := api.Group("/orders")
		o.Get("/", "orders.index", ctx.Wrap(orders.Index))
		o.Post("/", "orders.store", ctx.Wrap(orders.Store))
		o.Get("/{id}", "orders.show", ctx.Wrap(orders.Show))
		o.Put("/{id}", "orders.update", ctx.Wrap(orders.Update))
		o.Delete("/{id}", "orders.destroy", ctx.Wrap(orders.Destroy))
		o.Get("/customer/{customerId}", "orders.by_customer", ctx.Wrap(orders.ByCustomer))
		o.Get("/customer/{customerId}/date/{startDate}/{endDate}", "orders.by_customer_date", ctx.Wrap(orders.ByCustomerOrderedBetween))
		o.Get("/order-date/{orderDate}", "orders.order_date", ctx.Wrap(orders.ByOrderDate))
		o.Get("/order-date-range", "orders.order_date_range", ctx.Wrap(orders.OrderedBetween))
		o.Get("/customer-name", "orders.customer_name", ctx.Wrap(orders.ByCustomerName))
		o.Get("/price-less-than/{price}", "orders.price_less_than", ctx.Wrap(orders.TotalLessThan))
		o.Get("/order-by-price-desc", "orders.by_price_desc", ctx.Wrap(orders.ByTotalDesc))

		// ── Products ──────────────────────────────────────────────────────────
		p := api.Group("/products")
		p.Get("/", "products.index", ctx.Wrap(products.Index))
		p.Post("/", "products.store", ctx.Wrap(products.Store))
		p.Get("/{id}", "products.show", ctx.Wrap(products.Show))
		p.Put("/{id}", "products.update", ctx.Wrap(products.Update))
		p.Delete("/{id}", "products.destroy", ctx.Wrap(products.Destroy))
		p.Get("/slug/{slug}", "products.slug", ctx.Wrap(products.BySlug))
		p.Get("/name/{name}", "products.name", ctx.Wrap(products.NameContains))
		p.Get("/reference/{reference}", "products.reference", ctx.Wrap(products.ByReference))
		p.Get("/price", "products.price_range", ctx.Wrap(products.PriceBetween))
		p.Get("/price-less-than/{price}", "products.price_less_than", ctx.Wrap(products.PriceLessThan))
		p.Get("/vat/{vat}", "products.vat", ctx.Wrap(products.ByVAT))
		p.Get("/vat-greater-than/{vat}", "products.vat_greater_than", ctx.Wrap(products.VATGreaterThan))
		p.Get("/vat-range", "products.vat_range", ctx.Wrap(products.VATBetween))
		p.Get("/in-stock", "products.in_stock", ctx.Wrap(products.InStock))
		p.Get("/order-by-price-desc", "products.by_price_desc", ctx.Wrap(products.ByPriceDesc))

		// ── Stocks ────────────────────────────────────────────────────────────
		s := api.Group("/stocks")
		s.Get("/", "stocks.index", ctx.Wrap(stocks.Index))
		s.Post("/", "stocks.store", ctx.Wrap(stocks.Store))
		s.Get("/{id}", "stocks.show", ctx.Wrap(stocks.Show))
		s.Put("/{id}", "stocks.update", ctx.Wrap(stocks.Update))
		s.Delete("/{id}", "stocks.destroy", ctx.Wrap(stocks.Destroy))
		s.Get("/product/{productId}", "stocks.by_product", ctx.Wrap(stocks.ByProduct))
		s.Get("/product/{productId}/quantity/{quantity}", "stocks.by_product_quantity", ctx.Wrap(stocks.ByProductAndQuantity))
		s.Get("/quantity/{quantity}", "stocks.quantity", ctx.Wrap(stocks.ByQuantity))
		s.Get("/quantity-greater-than/{quantity}", "stocks.quantity_greater_than", ctx.Wrap(stocks.QuantityGreaterThan))
		s.Get("/update-date-range", "stocks.update_date_range", ctx.Wrap(stocks.UpdatedOnDays))
		s.Get("/updated-at-range", "stocks.updated_at_range", ctx.Wrap(stocks.UpdatedBetween))
		s.Get("/product-quantity-greater-than", "stocks.product_quantity_greater_than", ctx.Wrap(stocks.ByProductQuantityGreaterThan))
		s.Get("/product-updated-at-range", "stocks.product_updated_at_range", ctx.Wrap(stocks.ByProductUpdatedBetween))
		s.Alias("/quality/{quantity}", "stocks.quality_alias", "stocks.quantity", ctx.Wrap(stocks.ByQuantity))
		s.Alias("/product/{productId}/quality/{quantity}", "stocks.by_product_quality_alias", "stocks.by_product_quantity", ctx.Wrap(stocks.ByProductAndQuantity))
		s.Alias("/quantityGreaterThan/{quantity}", "stocks.quantity_greater_than_alias", "stocks.quantity_greater_than", ctx.Wrap(stocks.QuantityGreaterThan))
		s.Alias("/updateAtBetween", "stocks.updated_at_range_alias", "stocks.updated_at_range", ctx.Wrap(stocks.UpdatedBetween))
		s.Alias("/productIdAndQuantityGreaterThan", "stocks.product_quantity_greater_than_alias", "stocks.product_quantity_greater_than", ctx.Wrap(stocks.ByProductQuantityGreaterThan))
		s.Alias("/productIdAndUpdateAtBetween", "stocks.product_updated_at_range_alias", "stocks.product_updated_at_range", ctx.Wrap(stocks.ByProductUpdatedBetween))

		// ── Product orders ────────────────────────────────────────────────────
		po := api.Group("/product-orders")
		po.Get("/", "product_orders.index", ctx.Wrap(lines.Index))
		po.Post("/", "product_orders.store", ctx.Wrap(lines.Store))
		po.Get("/{productId}/{orderId}", "product_orders.show", ctx.Wrap(lines.Show))
		po.Put("/{productId}/{orderId}", "product_orders.update", ctx.Wrap(lines.Update))
		po.Delete("/{productId}/{orderId}", "product_orders.destroy", ctx.Wrap(lines.Destroy))
		po.Get("/product/{productId}", "product_orders.by_product", ctx.Wrap(lines.ByProduct))
		po.Get("/order/{orderId}", "product_orders.by_order", ctx.Wrap(lines.ByOrder))
		po.Get("/quantity-greater-than/{quantity}", "product_orders.quantity_greater_than", ctx.Wrap(lines.QuantityGreaterThan))
		po.Get("/quantity-range", "product_orders.quantity_range", ctx.Wrap(lines.QuantityBetween))
		po.Get("/price-greater-than/{price}", "product_orders.price_greater_than", ctx.Wrap(lines.PriceGreaterThan))
		po.Get("/product-and-order/{productId}/{orderId}", "product_orders.by_key", ctx.Wrap(lines.ByKey))

		// ── GraphQL (read-only) ───────────────────────────────────────────────
		schema, err := graph.NewSchema(db)
		if err != nil {
			panic("routes: graphql schema: " + err.Error())
		}
		api.Post("/graphql", "graphql", graphql.Handler(schema))
	}
}
