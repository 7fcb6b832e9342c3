package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpos/posledger/internal/ledger"
)

func TestSalesRecordDecrementsStock(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	p, err := l.Catalog.Create(ctx, ledger.ProductInput{Name: "Coffee", Price: 25.00, Quantity: 10})
	require.NoError(t, err)

	sale, err := l.Sales.Record(ctx, ledger.SaleInput{ProductID: p.ID, Quantity: 3})
	require.NoError(t, err)
	assert.NotZero(t, sale.ID)
	assert.False(t, sale.CreatedAt.IsZero())

	got, err := l.Catalog.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Quantity)

	// A second sale exceeding the remaining stock must fail and change
	// nothing: no sale row, no decrement.
	var short *ledger.InsufficientStockError
	_, err = l.Sales.Record(ctx, ledger.SaleInput{ProductID: p.ID, Quantity: 8})
	require.ErrorAs(t, err, &short)
	assert.Equal(t, 7, short.Available)

	got, err = l.Catalog.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Quantity)

	sales, err := l.Sales.List(ctx)
	require.NoError(t, err)
	assert.Len(t, sales, 1)
}

func TestSalesRecordValidation(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	p, err := l.Catalog.Create(ctx, ledger.ProductInput{Name: "Coffee", Price: 25.00, Quantity: 10})
	require.NoError(t, err)

	var invalid *ledger.InvalidInputError
	_, err = l.Sales.Record(ctx, ledger.SaleInput{ProductID: p.ID, Quantity: 0})
	assert.ErrorAs(t, err, &invalid)

	_, err = l.Sales.Record(ctx, ledger.SaleInput{ProductID: 424242, Quantity: 1})
	assert.ErrorIs(t, err, ledger.ErrProductNotFound)
}

func TestSalesRecordUnknownCustomer(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	p, err := l.Catalog.Create(ctx, ledger.ProductInput{Name: "Coffee", Price: 25.00, Quantity: 10})
	require.NoError(t, err)

	missing := int64(424242)
	_, err = l.Sales.Record(ctx, ledger.SaleInput{ProductID: p.ID, CustomerID: &missing, Quantity: 1})
	assert.ErrorIs(t, err, ledger.ErrCustomerNotFound)

	// The rejected sale must not have touched the stock.
	got, err := l.Catalog.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Quantity)
}

func TestSalesWalkInCustomer(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	p, err := l.Catalog.Create(ctx, ledger.ProductInput{Name: "Coffee", Price: 25.00, Quantity: 10})
	require.NoError(t, err)

	sale, err := l.Sales.Record(ctx, ledger.SaleInput{ProductID: p.ID, Quantity: 2})
	require.NoError(t, err)
	assert.Nil(t, sale.CustomerID)

	got, err := l.Sales.Get(ctx, sale.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CustomerID)
}

func TestSalesGetUnknown(t *testing.T) {
	l := newTestLedger(t)

	_, err := l.Sales.Get(context.Background(), 424242)
	assert.ErrorIs(t, err, ledger.ErrSaleNotFound)
}
