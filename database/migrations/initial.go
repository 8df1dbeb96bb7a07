package migrations

import (
	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/app/models"
	"github.com/shashiranjanraj/ordermanager/pkg/migration"
)

func init() {
	migration.Register("20260101000000_create_customers_table", &table{model: &models.Customer{}, name: "customers"})
	migration.Register("20260101000001_create_tokens_table", &table{model: &models.Token{}, name: "tokens"})
	migration.Register("20260101000002_create_products_table", &table{model: &models.Product{}, name: "products"})
	migration.Register("20260101000003_create_stocks_table", &table{model: &models.Stock{}, name: "stocks"})
	migration.Register("20260101000004_create_orders_table", &table{model: &models.Order{}, name: "orders"})
	migration.Register("20260101000005_create_product_orders_table", &table{model: &models.ProductOrder{}, name: "product_orders"})
}

// table creates one model's table, with its indexes and foreign keys, on Up
// and drops it on Down. Parents are registered before their children.
type table struct {
	model interface{}
	name  string
}

func (m *table) Up(db *gorm.DB) error {
	return db.Migrator().CreateTable(m.model)
}

func (m *table) Down(db *gorm.DB) error {
	return db.Migrator().DropTable(m.name)
}
