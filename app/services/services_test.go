package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/app/dto"
	"github.com/shashiranjanraj/ordermanager/app/services"
	"github.com/shashiranjanraj/ordermanager/database/migrations"
	"github.com/shashiranjanraj/ordermanager/pkg/apperr"
	"github.com/shashiranjanraj/ordermanager/pkg/testkit"
)

var ctx = context.Background()

func setup(t *testing.T) *gorm.DB {
	t.Helper()
	db := testkit.SQLite(t)
	require.NoError(t, migrations.Up(db))
	return db
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func day(t *testing.T, s string) dto.Date {
	t.Helper()
	d, err := dto.ParseDate(s)
	require.NoError(t, err)
	return d
}

func at(s string) time.Time {
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return ts.UTC()
}

func assertKind(t *testing.T, err error, kind apperr.Kind) {
	t.Helper()
	require.Error(t, err)
	var ae *apperr.Error
	require.True(t, errors.As(err, &ae), "want *apperr.Error, got %T", err)
	assert.Equal(t, kind, ae.Kind, ae.Message)
}

func newCustomer(t *testing.T, svc *services.CustomerService, email, first, last, born string) dto.Customer {
	t.Helper()
	c, err := svc.Create(ctx, dto.Customer{
		Email: email, Password: "secret-password", FirstName: first, LastName: last, BornAt: day(t, born),
	})
	require.NoError(t, err)
	return c
}

func newProduct(t *testing.T, svc *services.ProductService, slug, name, price, vat string, stockable bool) dto.Product {
	t.Helper()
	p, err := svc.Create(ctx, dto.Product{
		Slug: slug, Name: name, Reference: "REF-" + slug, Price: dec(price), VAT: dec(vat), Stockable: stockable,
	})
	require.NoError(t, err)
	return p
}

// ── Customers ────────────────────────────────────────────────────────────────

func TestCustomerCreateThenGetRoundTrips(t *testing.T) {
	svc := services.NewCustomerService(setup(t))

	created := newCustomer(t, svc, "ann@example.com", "Ann", "Lee", "1990-04-02")
	assert.NotZero(t, created.ID)
	assert.Empty(t, created.Password)
	assert.Equal(t, "USER", created.Role)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, "1990-04-02", got.BornAt.String())
}

func TestCustomerCreateIgnoresSuppliedID(t *testing.T) {
	svc := services.NewCustomerService(setup(t))

	c, err := svc.Create(ctx, dto.Customer{
		ID: 500, Email: "id@example.com", Password: "secret-password", FirstName: "I", LastName: "D", BornAt: day(t, "2000-01-01"),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uint(500), c.ID)
}

func TestCustomerCreateRejectsDuplicateEmail(t *testing.T) {
	svc := services.NewCustomerService(setup(t))
	newCustomer(t, svc, "dup@example.com", "A", "B", "1990-01-01")

	_, err := svc.Create(ctx, dto.Customer{
		Email: "dup@example.com", Password: "secret-password", FirstName: "C", LastName: "D", BornAt: day(t, "1991-01-01"),
	})
	assertKind(t, err, apperr.KindConflict)
}

func TestCustomerCreateRequiresPassword(t *testing.T) {
	svc := services.NewCustomerService(setup(t))

	_, err := svc.Create(ctx, dto.Customer{Email: "np@example.com", FirstName: "N", LastName: "P", BornAt: day(t, "1990-01-01")})
	assertKind(t, err, apperr.KindValidation)
}

func TestCustomerUpdateKeepsEmailAndRole(t *testing.T) {
	svc := services.NewCustomerService(setup(t))
	c := newCustomer(t, svc, "keep@example.com", "Old", "Name", "1980-05-05")

	updated, err := svc.Update(ctx, c.ID, dto.CustomerUpdate{
		Email: "other@example.com", FirstName: "New", LastName: "Name", BornAt: day(t, "1981-06-06"), Role: "ADMIN",
	})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.FirstName)
	assert.Equal(t, "1981-06-06", updated.BornAt.String())
	assert.Equal(t, "keep@example.com", updated.Email)
	assert.Equal(t, "USER", updated.Role)
}

func TestCustomerUpdateWithoutEmail(t *testing.T) {
	svc := services.NewCustomerService(setup(t))
	c := newCustomer(t, svc, "plain@example.com", "Old", "Name", "1980-05-05")

	updated, err := svc.Update(ctx, c.ID, dto.CustomerUpdate{FirstName: "Only", LastName: "Names", BornAt: day(t, "1980-05-06")})
	require.NoError(t, err)
	assert.Equal(t, "Only", updated.FirstName)
	assert.Equal(t, "plain@example.com", updated.Email)
}

func TestCustomerMissingIsNotFound(t *testing.T) {
	svc := services.NewCustomerService(setup(t))

	_, err := svc.Get(ctx, 42)
	assertKind(t, err, apperr.KindNotFound)
	assert.Equal(t, "Customer not found with id : '42'", err.Error())

	_, err = svc.Update(ctx, 42, dto.CustomerUpdate{FirstName: "x"})
	assertKind(t, err, apperr.KindNotFound)

	assertKind(t, svc.Delete(ctx, 42), apperr.KindNotFound)
}

func TestCustomerFilters(t *testing.T) {
	svc := services.NewCustomerService(setup(t))
	ann := newCustomer(t, svc, "ann@example.com", "Ann", "Lee", "1990-04-02")
	bob := newCustomer(t, svc, "bob@example.com", "Bob", "Lee", "1975-11-30")
	cat := newCustomer(t, svc, "cat@example.com", "Ann", "Smith", "2001-01-15")

	ids := func(cs []dto.Customer, err error) []uint {
		t.Helper()
		require.NoError(t, err)
		out := make([]uint, 0, len(cs))
		for _, c := range cs {
			out = append(out, c.ID)
		}
		return out
	}

	assert.Equal(t, []uint{ann.ID, cat.ID}, ids(svc.ByFirstName(ctx, "Ann")))
	assert.Equal(t, []uint{ann.ID, bob.ID}, ids(svc.ByLastName(ctx, "Lee")))
	assert.Equal(t, []uint{cat.ID}, ids(svc.ByName(ctx, "Ann", "Smith")))
	assert.Equal(t, []uint{bob.ID}, ids(svc.BornOn(ctx, day(t, "1975-11-30"))))
	assert.Equal(t, []uint{ann.ID, bob.ID}, ids(svc.BornBefore(ctx, day(t, "2000-01-01"))))
	assert.Equal(t, []uint{ann.ID, cat.ID}, ids(svc.BornBetween(ctx, day(t, "1990-04-02"), day(t, "2001-01-15"))))
	assert.Empty(t, ids(svc.ByFirstName(ctx, "Nobody")))
}

func TestCustomerDeleteCascades(t *testing.T) {
	db := setup(t)
	customers := services.NewCustomerService(db)
	orders := services.NewOrderService(db)
	products := services.NewProductService(db)
	lines := services.NewProductOrderService(db)

	c := newCustomer(t, customers, "gone@example.com", "Gone", "Soon", "1990-01-01")
	p := newProduct(t, products, "mug", "Mug", "4.50", "20", true)
	o, err := orders.Create(ctx, dto.Order{CustomerID: c.ID, OrderAt: at("2024-03-01T10:00:00Z")})
	require.NoError(t, err)
	_, err = lines.Create(ctx, dto.ProductOrder{ProductID: p.ID, OrderID: o.ID, Quantity: 2, Price: dec("4.50"), VAT: dec("20")})
	require.NoError(t, err)

	require.NoError(t, customers.Delete(ctx, c.ID))

	_, err = customers.Get(ctx, c.ID)
	assertKind(t, err, apperr.KindNotFound)

	left, err := orders.ByCustomer(ctx, c.ID)
	require.NoError(t, err)
	assert.Empty(t, left)

	orphanLines, err := lines.ByOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Empty(t, orphanLines)

	_, err = products.Get(ctx, p.ID)
	assert.NoError(t, err, "products are not owned by customers")
}

// ── Products ─────────────────────────────────────────────────────────────────

func TestProductPriceRangeScenario(t *testing.T) {
	svc := services.NewProductService(setup(t))

	p, err := svc.Create(ctx, dto.Product{
		Slug: "sku-1", Name: "Widget", Reference: "R1", Price: dec("10.0"), VAT: dec("2.0"), Stockable: true,
	})
	require.NoError(t, err)
	assert.NotZero(t, p.ID)

	in, err := svc.PriceBetween(ctx, decimal.NewFromInt(5), decimal.NewFromInt(15))
	require.NoError(t, err)
	require.Len(t, in, 1)
	assert.Equal(t, p.ID, in[0].ID)

	out, err := svc.PriceBetween(ctx, decimal.NewFromInt(20), decimal.NewFromInt(30))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestProductRoundTripKeepsUserFields(t *testing.T) {
	svc := services.NewProductService(setup(t))
	p := newProduct(t, svc, "lamp", "Desk Lamp", "12.34", "5.5", false)

	got, err := svc.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "lamp", got.Slug)
	assert.Equal(t, "Desk Lamp", got.Name)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("12.34")))
	assert.True(t, got.VAT.Equal(decimal.RequireFromString("5.5")))
	assert.False(t, got.Stockable)
}

func TestProductFilters(t *testing.T) {
	svc := services.NewProductService(setup(t))
	cheap := newProduct(t, svc, "pen", "Blue Pen", "1.50", "5", true)
	mid := newProduct(t, svc, "book", "Pen_Pal Book", "12", "10", false)
	dear := newProduct(t, svc, "desk", "Oak Desk", "300", "20", true)

	ids := func(ps []dto.Product, err error) []uint {
		t.Helper()
		require.NoError(t, err)
		out := make([]uint, 0, len(ps))
		for _, p := range ps {
			out = append(out, p.ID)
		}
		return out
	}

	assert.Equal(t, []uint{cheap.ID, mid.ID}, ids(svc.NameContains(ctx, "PEN")))
	assert.Equal(t, []uint{mid.ID}, ids(svc.NameContains(ctx, "n_p")))
	assert.Empty(t, ids(svc.NameContains(ctx, "%")))
	assert.Equal(t, []uint{mid.ID}, ids(svc.BySlug(ctx, "book")))
	assert.Equal(t, []uint{dear.ID}, ids(svc.ByReference(ctx, "REF-desk")))
	assert.Equal(t, []uint{cheap.ID, mid.ID}, ids(svc.PriceLessThan(ctx, decimal.NewFromInt(100))))
	assert.Equal(t, []uint{mid.ID}, ids(svc.ByVAT(ctx, decimal.NewFromInt(10))))
	assert.Equal(t, []uint{mid.ID, dear.ID}, ids(svc.VATGreaterThan(ctx, decimal.NewFromInt(5))))
	assert.Equal(t, []uint{cheap.ID, mid.ID}, ids(svc.VATBetween(ctx, decimal.NewFromInt(5), decimal.NewFromInt(10))))
	assert.Equal(t, []uint{cheap.ID, dear.ID}, ids(svc.InStock(ctx)))
	assert.Equal(t, []uint{dear.ID, mid.ID, cheap.ID}, ids(svc.ByPriceDesc(ctx)))
}

func TestProductDeleteRemovesStocks(t *testing.T) {
	db := setup(t)
	products := services.NewProductService(db)
	stocks := services.NewStockService(db)

	p := newProduct(t, products, "chair", "Chair", "40", "20", true)
	_, err := stocks.Create(ctx, dto.Stock{ProductID: p.ID, Quantity: 3, UpdatedAt: at("2024-01-01T00:00:00Z")})
	require.NoError(t, err)

	require.NoError(t, products.Delete(ctx, p.ID))

	left, err := stocks.ByProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
}

// ── Orders ───────────────────────────────────────────────────────────────────

func TestOrderForMissingCustomerIsRejected(t *testing.T) {
	svc := services.NewOrderService(setup(t))

	_, err := svc.Create(ctx, dto.Order{CustomerID: 999, OrderAt: at("2024-01-01T00:00:00Z")})
	assertKind(t, err, apperr.KindNotFound)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestOrderUpdateNeverChangesID(t *testing.T) {
	db := setup(t)
	customers := services.NewCustomerService(db)
	orders := services.NewOrderService(db)
	a := newCustomer(t, customers, "a@example.com", "A", "A", "1990-01-01")
	b := newCustomer(t, customers, "b@example.com", "B", "B", "1990-01-01")

	o, err := orders.Create(ctx, dto.Order{CustomerID: a.ID, OrderAt: at("2024-01-01T09:00:00Z")})
	require.NoError(t, err)

	moved, err := orders.Update(ctx, o.ID, dto.Order{ID: 77, CustomerID: b.ID, OrderAt: at("2024-02-01T09:00:00Z")})
	require.NoError(t, err)
	assert.Equal(t, o.ID, moved.ID)
	assert.Equal(t, b.ID, moved.CustomerID)
	assert.True(t, moved.OrderAt.Equal(at("2024-02-01T09:00:00Z")))

	_, err = orders.Update(ctx, o.ID, dto.Order{CustomerID: 999, OrderAt: at("2024-02-01T09:00:00Z")})
	assertKind(t, err, apperr.KindNotFound)
}

func TestOrderFiltersAndTotals(t *testing.T) {
	db := setup(t)
	customers := services.NewCustomerService(db)
	products := services.NewProductService(db)
	orders := services.NewOrderService(db)
	lines := services.NewProductOrderService(db)

	ann := newCustomer(t, customers, "ann@example.com", "Ann", "Lee", "1990-01-01")
	bob := newCustomer(t, customers, "bob@example.com", "Bob", "Ray", "1990-01-01")
	p := newProduct(t, products, "mug", "Mug", "5", "20", true)

	o1, err := orders.Create(ctx, dto.Order{CustomerID: ann.ID, OrderAt: at("2024-01-10T12:00:00Z")})
	require.NoError(t, err)
	o2, err := orders.Create(ctx, dto.Order{CustomerID: ann.ID, OrderAt: at("2024-02-10T12:00:00Z")})
	require.NoError(t, err)
	o3, err := orders.Create(ctx, dto.Order{CustomerID: bob.ID, OrderAt: at("2024-03-10T12:00:00Z")})
	require.NoError(t, err)

	// totals: o1 = 2×5 = 10, o2 = 10×5.5 = 55, o3 has no lines = 0
	_, err = lines.Create(ctx, dto.ProductOrder{ProductID: p.ID, OrderID: o1.ID, Quantity: 2, Price: dec("5"), VAT: dec("20")})
	require.NoError(t, err)
	_, err = lines.Create(ctx, dto.ProductOrder{ProductID: p.ID, OrderID: o2.ID, Quantity: 10, Price: dec("5.5"), VAT: dec("20")})
	require.NoError(t, err)

	ids := func(os []dto.Order, err error) []uint {
		t.Helper()
		require.NoError(t, err)
		out := make([]uint, 0, len(os))
		for _, o := range os {
			out = append(out, o.ID)
		}
		return out
	}

	assert.Equal(t, []uint{o1.ID, o2.ID}, ids(orders.ByCustomer(ctx, ann.ID)))
	assert.Equal(t, []uint{o2.ID}, ids(orders.ByOrderAt(ctx, at("2024-02-10T12:00:00Z"))))
	assert.Equal(t, []uint{o2.ID, o3.ID}, ids(orders.OrderedBetween(ctx, at("2024-02-01T00:00:00Z"), at("2024-03-31T00:00:00Z"))))
	assert.Equal(t, []uint{o1.ID}, ids(orders.ByCustomerOrderedBetween(ctx, ann.ID, at("2024-01-01T00:00:00Z"), at("2024-01-31T00:00:00Z"))))
	assert.Equal(t, []uint{o3.ID}, ids(orders.ByCustomerName(ctx, "Bob", "Ray")))
	assert.Equal(t, []uint{o1.ID, o3.ID}, ids(orders.TotalLessThan(ctx, decimal.NewFromInt(20))))
	assert.Equal(t, []uint{o2.ID, o1.ID, o3.ID}, ids(orders.ByTotalDesc(ctx)))
}

func TestOrderDeleteRemovesLines(t *testing.T) {
	db := setup(t)
	customers := services.NewCustomerService(db)
	products := services.NewProductService(db)
	orders := services.NewOrderService(db)
	lines := services.NewProductOrderService(db)

	c := newCustomer(t, customers, "c@example.com", "C", "C", "1990-01-01")
	p := newProduct(t, products, "mug", "Mug", "5", "20", true)
	o, err := orders.Create(ctx, dto.Order{CustomerID: c.ID, OrderAt: at("2024-01-10T12:00:00Z")})
	require.NoError(t, err)
	_, err = lines.Create(ctx, dto.ProductOrder{ProductID: p.ID, OrderID: o.ID, Quantity: 1, Price: dec("5"), VAT: dec("20")})
	require.NoError(t, err)

	require.NoError(t, orders.Delete(ctx, o.ID))

	_, err = orders.Get(ctx, o.ID)
	assertKind(t, err, apperr.KindNotFound)
	_, err = lines.Get(ctx, p.ID, o.ID)
	assertKind(t, err, apperr.KindNotFound)
}

// ── Stocks ───────────────────────────────────────────────────────────────────

func TestStockUpdateKeepsProductReference(t *testing.T) {
	db := setup(t)
	products := services.NewProductService(db)
	stocks := services.NewStockService(db)
	p := newProduct(t, products, "lamp", "Lamp", "20", "20", true)
	other := newProduct(t, products, "rug", "Rug", "90", "20", true)

	st, err := stocks.Create(ctx, dto.Stock{ProductID: p.ID, Quantity: 5, UpdatedAt: at("2024-01-01T08:00:00Z")})
	require.NoError(t, err)

	updated, err := stocks.Update(ctx, st.ID, dto.Stock{ProductID: other.ID, Quantity: 9, UpdatedAt: at("2024-01-02T08:00:00Z")})
	require.NoError(t, err)
	assert.Equal(t, st.ID, updated.ID)
	assert.Equal(t, p.ID, updated.ProductID)
	assert.Equal(t, 9, updated.Quantity)

	got, err := stocks.Get(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestStockForMissingProductIsRejected(t *testing.T) {
	svc := services.NewStockService(setup(t))

	_, err := svc.Create(ctx, dto.Stock{ProductID: 1, Quantity: 1, UpdatedAt: at("2024-01-01T00:00:00Z")})
	assertKind(t, err, apperr.KindNotFound)
}

func TestStockFilters(t *testing.T) {
	db := setup(t)
	products := services.NewProductService(db)
	stocks := services.NewStockService(db)
	p1 := newProduct(t, products, "a", "A", "1", "1", true)
	p2 := newProduct(t, products, "b", "B", "1", "1", true)

	mk := func(productID uint, qty int, ts string) dto.Stock {
		s, err := stocks.Create(ctx, dto.Stock{ProductID: productID, Quantity: qty, UpdatedAt: at(ts)})
		require.NoError(t, err)
		return s
	}
	s1 := mk(p1.ID, 0, "2024-05-01T23:59:00Z")
	s2 := mk(p1.ID, 10, "2024-05-02T00:00:00Z")
	s3 := mk(p2.ID, 10, "2024-05-03T12:00:00Z")

	ids := func(ss []dto.Stock, err error) []uint {
		t.Helper()
		require.NoError(t, err)
		out := make([]uint, 0, len(ss))
		for _, s := range ss {
			out = append(out, s.ID)
		}
		return out
	}

	assert.Equal(t, []uint{s1.ID, s2.ID}, ids(stocks.ByProduct(ctx, p1.ID)))
	assert.Equal(t, []uint{s2.ID, s3.ID}, ids(stocks.ByQuantity(ctx, 10)))
	assert.Equal(t, []uint{s3.ID}, ids(stocks.ByProductAndQuantity(ctx, p2.ID, 10)))
	assert.Equal(t, []uint{s2.ID, s3.ID}, ids(stocks.QuantityGreaterThan(ctx, 0)))
	assert.Equal(t, []uint{s2.ID}, ids(stocks.ByProductQuantityGreaterThan(ctx, p1.ID, 5)))
	assert.Equal(t, []uint{s2.ID}, ids(stocks.UpdatedBetween(ctx, at("2024-05-02T00:00:00Z"), at("2024-05-03T00:00:00Z"))))
	assert.Equal(t, []uint{s1.ID, s2.ID}, ids(stocks.UpdatedOnDays(ctx, day(t, "2024-05-01"), day(t, "2024-05-02"))))
	assert.Equal(t, []uint{s3.ID}, ids(stocks.ByProductUpdatedBetween(ctx, p2.ID, at("2024-05-01T00:00:00Z"), at("2024-05-31T00:00:00Z"))))
}

// ── Product orders ───────────────────────────────────────────────────────────

func TestProductOrderLifecycle(t *testing.T) {
	db := setup(t)
	customers := services.NewCustomerService(db)
	products := services.NewProductService(db)
	orders := services.NewOrderService(db)
	lines := services.NewProductOrderService(db)

	c := newCustomer(t, customers, "c@example.com", "C", "C", "1990-01-01")
	p := newProduct(t, products, "mug", "Mug", "5", "20", true)
	o, err := orders.Create(ctx, dto.Order{CustomerID: c.ID, OrderAt: at("2024-01-10T12:00:00Z")})
	require.NoError(t, err)

	line := dto.ProductOrder{ProductID: p.ID, OrderID: o.ID, Quantity: 3, Price: dec("4.99"), VAT: dec("20")}
	created, err := lines.Create(ctx, line)
	require.NoError(t, err)

	_, err = lines.Create(ctx, line)
	assertKind(t, err, apperr.KindConflict)

	got, err := lines.Get(ctx, p.ID, o.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Quantity)
	assert.True(t, got.Price.Equal(decimal.RequireFromString("4.99")))

	updated, err := lines.Update(ctx, p.ID, o.ID, dto.ProductOrder{ProductID: 99, OrderID: 99, Quantity: 7, Price: dec("4.50"), VAT: dec("10")})
	require.NoError(t, err)
	assert.Equal(t, created.ProductID, updated.ProductID)
	assert.Equal(t, created.OrderID, updated.OrderID)
	assert.Equal(t, 7, updated.Quantity)

	byKey, err := lines.ByKey(ctx, p.ID, o.ID)
	require.NoError(t, err)
	assert.Len(t, byKey, 1)

	gt, err := lines.QuantityGreaterThan(ctx, 5)
	require.NoError(t, err)
	assert.Len(t, gt, 1)

	between, err := lines.QuantityBetween(ctx, 8, 20)
	require.NoError(t, err)
	assert.Empty(t, between)

	pricey, err := lines.PriceGreaterThan(ctx, decimal.NewFromInt(4))
	require.NoError(t, err)
	assert.Len(t, pricey, 1)

	require.NoError(t, lines.Delete(ctx, p.ID, o.ID))
	_, err = lines.Get(ctx, p.ID, o.ID)
	assertKind(t, err, apperr.KindNotFound)
	assert.Equal(t, "ProductOrder not found with id : '"+keyOf(p.ID, o.ID)+"'", err.Error())
}

func TestProductOrderRequiresParents(t *testing.T) {
	db := setup(t)
	lines := services.NewProductOrderService(db)
	p := newProduct(t, services.NewProductService(db), "mug", "Mug", "5", "20", true)

	_, err := lines.Create(ctx, dto.ProductOrder{ProductID: 404, OrderID: 1, Quantity: 1, Price: dec("1"), VAT: dec("1")})
	assertKind(t, err, apperr.KindNotFound)

	_, err = lines.Create(ctx, dto.ProductOrder{ProductID: p.ID, OrderID: 404, Quantity: 1, Price: dec("1"), VAT: dec("1")})
	assertKind(t, err, apperr.KindNotFound)
}

func TestListPagination(t *testing.T) {
	svc := services.NewProductService(setup(t))
	for _, slug := range []string{"a", "b", "c", "d", "e"} {
		newProduct(t, svc, slug, slug, "1", "1", true)
	}

	page, p, err := svc.Page(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Equal(t, "c", page[0].Slug)
	assert.EqualValues(t, 5, p.Total)
	assert.Equal(t, 3, p.LastPage)
}

func keyOf(productID, orderID uint) string {
	return fmt.Sprintf("%d/%d", productID, orderID)
}
