package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/openpos/posledger/internal/domain"
)

// AdjustMode selects the direction of a manual stock adjustment.
type AdjustMode string

const (
	AdjustAdd    AdjustMode = "add"
	AdjustDeduct AdjustMode = "deduct"
)

// Inventory applies stock adjustments to catalog products. Every
// mutation is a guarded single-statement UPDATE inside a transaction, so
// concurrent writers to the same product can never drive the quantity
// below zero regardless of interleaving.
type Inventory struct {
	db  *gorm.DB
	bus Bus
}

func NewInventory(db *gorm.DB, bus Bus) *Inventory {
	return &Inventory{db: db, bus: bus}
}

// Adjust adds or deducts amount units of stock and returns the updated
// product. Deductions exceeding the current quantity fail with
// InsufficientStockError and leave the row untouched.
func (s *Inventory) Adjust(ctx context.Context, productID int64, amount int, mode AdjustMode) (*domain.Product, error) {
	if amount <= 0 {
		return nil, &InvalidInputError{Field: "quantity", Reason: "must be a positive integer"}
	}

	var out domain.Product
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := applyStockDelta(tx, productID, amount, mode); err != nil {
			return err
		}
		return tx.First(&out, "id = ?", productID).Error
	})
	if err != nil {
		return nil, err
	}

	publishAudit(s.bus, "inventory.adjust", fmt.Sprintf("product:%d", productID),
		fmt.Sprintf("%s %d, now %d on hand", mode, amount, out.Quantity))
	return &out, nil
}

// applyStockDelta mutates a product quantity inside tx. Deductions are
// guarded by the WHERE clause: the row is only touched when enough stock
// is on hand, which keeps the non-negative invariant under concurrency
// without a separate read-validate step.
func applyStockDelta(tx *gorm.DB, productID int64, amount int, mode AdjustMode) error {
	now := time.Now()
	switch mode {
	case AdjustAdd:
		res := tx.Model(&domain.Product{}).
			Where("id = ?", productID).
			Updates(map[string]interface{}{
				"quantity":   gorm.Expr("quantity + ?", amount),
				"updated_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrProductNotFound
		}
	case AdjustDeduct:
		res := tx.Model(&domain.Product{}).
			Where("id = ? AND quantity >= ?", productID, amount).
			Updates(map[string]interface{}{
				"quantity":   gorm.Expr("quantity - ?", amount),
				"updated_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Either the product does not exist or the stock ran short;
			// re-read to tell the two apart and report what is available.
			var p domain.Product
			if err := tx.First(&p, "id = ?", productID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrProductNotFound
				}
				return err
			}
			return &InsufficientStockError{ProductID: productID, Requested: amount, Available: p.Quantity}
		}
	default:
		return &InvalidInputError{Field: "action", Reason: "must be add or deduct"}
	}
	return nil
}
