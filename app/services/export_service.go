package services

import (
	"bytes"
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/ordermanager/app/dto"
	"github.com/shashiranjanraj/ordermanager/app/mapper"
	"github.com/shashiranjanraj/ordermanager/app/models"
	"github.com/shashiranjanraj/ordermanager/app/repositories"
	"github.com/shashiranjanraj/ordermanager/pkg/apperr"
	"github.com/shashiranjanraj/ordermanager/pkg/collection"
	"github.com/shashiranjanraj/ordermanager/pkg/orm"
	"github.com/shashiranjanraj/ordermanager/pkg/storage"
)

// ExportResult describes a written snapshot.
type ExportResult struct {
	Path   string
	URL    string
	Orders int
}

type ExportService struct {
	db   *gorm.DB
	disk storage.Disk
	now  func() time.Time
}

func NewExportService(db *gorm.DB, disk storage.Disk) *ExportService {
	return &ExportService{db: db, disk: disk, now: func() time.Time { return time.Now().UTC() }}
}

// Snapshot reads every order with its lines inside one transaction so the
// totals match the lines.
func (s *ExportService) Snapshot(ctx context.Context) (dto.OrderSnapshot, error) {
	var (
		orders []models.Order
		lines  []models.ProductOrder
	)
	err := orm.Transaction(ctx, s.db, func(tx *gorm.DB) error {
		var err error
		if orders, err = repositories.NewOrderRepository(tx).All(ctx); err != nil {
			return err
		}
		lines, err = repositories.NewProductOrderRepository(tx).All(ctx)
		return err
	})
	if err != nil {
		return dto.OrderSnapshot{}, storeErr(err)
	}

	byOrder := collection.GroupBy(lines, func(l models.ProductOrder) uint { return l.OrderID })
	out := dto.OrderSnapshot{ExportedAt: s.now(), Orders: make([]dto.OrderExport, 0, len(orders))}
	for _, o := range orders {
		own := byOrder[o.ID]
		out.Orders = append(out.Orders, dto.OrderExport{
			Order: mapper.OrderToDTO(o),
			Total: collection.Reduce(own, decimal.Zero, func(sum decimal.Decimal, l models.ProductOrder) decimal.Decimal {
				return sum.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
			}),
			Lines: mapper.ProductOrdersToDTO(own),
		})
	}
	return out, nil
}

// Export writes the snapshot as indented JSON to path on the disk.
func (s *ExportService) Export(ctx context.Context, path string) (ExportResult, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return ExportResult{}, err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return ExportResult{}, apperr.Store(err)
	}
	if err := s.disk.Put(ctx, path, &buf); err != nil {
		return ExportResult{}, apperr.Store(err)
	}
	return ExportResult{Path: path, URL: s.disk.URL(path), Orders: len(snap.Orders)}, nil
}
