package ledger_test

import (
	"context"
	"sync"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpos/posledger/internal/domain"
	"github.com/openpos/posledger/internal/ledger"
)

func TestCatalogCreateAssignsIDAndTimestamps(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	p, err := l.Catalog.Create(ctx, ledger.ProductInput{
		Name:     "  Coffee  ",
		Category: "Beverages",
		Price:    25.00,
		Quantity: 10,
	})
	require.NoError(t, err)

	assert.NotZero(t, p.ID)
	assert.Equal(t, "Coffee", p.Name)
	assert.False(t, p.CreatedAt.IsZero())

	got, err := l.Catalog.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Quantity)
}

func TestCatalogCreateRejectsBadInput(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	var invalid *ledger.InvalidInputError

	_, err := l.Catalog.Create(ctx, ledger.ProductInput{Name: "   "})
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "name", invalid.Field)

	_, err = l.Catalog.Create(ctx, ledger.ProductInput{Name: "Coffee", Price: -1})
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "price", invalid.Field)

	_, err = l.Catalog.Create(ctx, ledger.ProductInput{Name: "Coffee", Quantity: -1})
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "quantity", invalid.Field)
}

func TestCatalogUpdatePartial(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	p, err := l.Catalog.Create(ctx, ledger.ProductInput{Name: "Coffee", Price: 25.00, Quantity: 10})
	require.NoError(t, err)

	newPrice := 27.50
	updated, err := l.Catalog.Update(ctx, p.ID, ledger.ProductUpdate{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, 27.50, updated.Price)
	assert.Equal(t, "Coffee", updated.Name)
	assert.Equal(t, 10, updated.Quantity)
}

// saleMidUpdateRepo runs a callback right after the first product read,
// simulating a sale that commits between an update's read and its write.
type saleMidUpdateRepo struct {
	ledger.ProductRepository
	once sync.Once
	sell func()
}

func (r *saleMidUpdateRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := r.ProductRepository.GetByID(ctx, id)
	r.once.Do(r.sell)
	return p, err
}

// A partial edit must not write back the quantity it read; a sale
// committing mid-update keeps its decrement.
func TestCatalogUpdateKeepsConcurrentSaleDecrement(t *testing.T) {
	db := newTestDB(t)
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	l := ledger.New(db, node, nil, fixedSettings{threshold: 10})
	ctx := context.Background()

	p, err := l.Catalog.Create(ctx, ledger.ProductInput{Name: "Coffee", Price: 25.00, Quantity: 10})
	require.NoError(t, err)

	products := &saleMidUpdateRepo{
		ProductRepository: ledger.NewGormProductRepository(db),
		sell: func() {
			_, err := l.Sales.Record(ctx, ledger.SaleInput{ProductID: p.ID, Quantity: 3})
			require.NoError(t, err)
		},
	}
	catalog := ledger.NewCatalog(products, ledger.NewGormSaleRepository(db), node, nil)

	newPrice := 30.0
	updated, err := catalog.Update(ctx, p.ID, ledger.ProductUpdate{Price: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, 30.0, updated.Price)
	assert.Equal(t, 7, updated.Quantity)

	got, err := l.Catalog.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Quantity)

	sales, err := l.Sales.List(ctx)
	require.NoError(t, err)
	assert.Len(t, sales, 1)
}

func TestCatalogUpdateUnknownProduct(t *testing.T) {
	l := newTestLedger(t)

	name := "Espresso"
	_, err := l.Catalog.Update(context.Background(), 424242, ledger.ProductUpdate{Name: &name})
	assert.ErrorIs(t, err, ledger.ErrProductNotFound)
}

func TestCatalogDeleteBlockedBySales(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	p, err := l.Catalog.Create(ctx, ledger.ProductInput{Name: "Coffee", Price: 25.00, Quantity: 10})
	require.NoError(t, err)

	_, err = l.Sales.Record(ctx, ledger.SaleInput{ProductID: p.ID, Quantity: 1})
	require.NoError(t, err)

	var conflict *ledger.ConflictError
	err = l.Catalog.Delete(ctx, p.ID)
	require.ErrorAs(t, err, &conflict)

	// The product must survive the rejected delete.
	_, err = l.Catalog.Get(ctx, p.ID)
	assert.NoError(t, err)
}

func TestCatalogDeleteWithoutSales(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	p, err := l.Catalog.Create(ctx, ledger.ProductInput{Name: "Coffee", Price: 25.00, Quantity: 10})
	require.NoError(t, err)

	require.NoError(t, l.Catalog.Delete(ctx, p.ID))

	_, err = l.Catalog.Get(ctx, p.ID)
	assert.ErrorIs(t, err, ledger.ErrProductNotFound)
}

func TestCatalogListInInsertionOrder(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	for _, name := range []string{"Coffee", "Green Tea", "Mug"} {
		_, err := l.Catalog.Create(ctx, ledger.ProductInput{Name: name, Price: 1, Quantity: 1})
		require.NoError(t, err)
	}

	products, err := l.Catalog.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "Coffee", products[0].Name)
	assert.Equal(t, "Green Tea", products[1].Name)
	assert.Equal(t, "Mug", products[2].Name)
}
