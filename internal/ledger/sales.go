package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/openpos/posledger/internal/domain"
)

// Sales validates and records sale transactions. The stock decrement and
// the sale insert commit in one database transaction: a sale record never
// exists without its decrement and vice versa.
type Sales struct {
	db        *gorm.DB
	customers CustomerRepository
	sales     SaleRepository
	ids       *snowflake.Node
	bus       Bus
}

func NewSales(db *gorm.DB, customers CustomerRepository, sales SaleRepository, ids *snowflake.Node, bus Bus) *Sales {
	return &Sales{db: db, customers: customers, sales: sales, ids: ids, bus: bus}
}

// SaleInput carries a record-sale command. A nil CustomerID means a
// walk-in sale; a provided id must resolve to an existing customer.
type SaleInput struct {
	ProductID  int64
	CustomerID *int64
	Quantity   int
}

// Record creates a sale transaction with a server-assigned id and
// timestamp, decrementing the product stock atomically with the insert.
func (s *Sales) Record(ctx context.Context, in SaleInput) (*domain.SaleTransaction, error) {
	if in.Quantity <= 0 {
		return nil, &InvalidInputError{Field: "quantity", Reason: "must be a positive integer"}
	}

	// The UI tolerates dangling customer references at display time, but
	// at write time a provided id must exist.
	if in.CustomerID != nil {
		if _, err := s.customers.GetByID(ctx, *in.CustomerID); err != nil {
			return nil, err
		}
	}

	sale := &domain.SaleTransaction{
		ID:         s.ids.Generate().Int64(),
		ProductID:  in.ProductID,
		CustomerID: in.CustomerID,
		Quantity:   in.Quantity,
		CreatedAt:  time.Now(),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := applyStockDelta(tx, in.ProductID, in.Quantity, AdjustDeduct); err != nil {
			return err
		}
		return tx.Create(sale).Error
	})
	if err != nil {
		return nil, err
	}

	publishAudit(s.bus, "sale.record", fmt.Sprintf("sale:%d", sale.ID),
		fmt.Sprintf("sold %d of product %d", sale.Quantity, sale.ProductID))
	return sale, nil
}

func (s *Sales) Get(ctx context.Context, id int64) (*domain.SaleTransaction, error) {
	return s.sales.GetByID(ctx, id)
}

func (s *Sales) List(ctx context.Context) ([]domain.SaleTransaction, error) {
	return s.sales.List(ctx)
}
