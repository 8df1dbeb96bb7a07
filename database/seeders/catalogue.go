package seeders

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/app/dto"
	"github.com/shashiranjanraj/ordermanager/app/services"
)

func init() {
	Register("catalogue", seedCatalogue)
}

type sampleProduct struct {
	slug, name, reference string
	price, vat            string
	stockable             bool
	quantity              int
}

var catalogue = []sampleProduct{
	{"desk-lamp", "Desk Lamp", "LMP-001", "39.90", "20.00", true, 25},
	{"office-chair", "Office Chair", "CHR-010", "189.00", "20.00", true, 8},
	{"usb-c-cable", "USB-C Cable", "CBL-200", "9.50", "20.00", true, 300},
	{"gift-card", "Gift Card", "GFT-050", "50.00", "5.50", false, 0},
}

// seedCatalogue adds a few products, with stock for the stockable ones.
// Products whose slug already exists are skipped.
func seedCatalogue(ctx context.Context, db *gorm.DB) error {
	products := services.NewProductService(db)
	stocks := services.NewStockService(db)
	now := time.Now().UTC().Truncate(time.Second)

	for _, p := range catalogue {
		existing, err := products.BySlug(ctx, p.slug)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			continue
		}

		price, vat := decimal.RequireFromString(p.price), decimal.RequireFromString(p.vat)
		created, err := products.Create(ctx, dto.Product{
			Slug: p.slug, Name: p.name, Reference: p.reference,
			Price: &price, VAT: &vat, Stockable: p.stockable,
		})
		if err != nil {
			return err
		}
		if !p.stockable {
			continue
		}
		if _, err := stocks.Create(ctx, dto.Stock{ProductID: created.ID, Quantity: p.quantity, UpdatedAt: now}); err != nil {
			return err
		}
	}
	return nil
}
