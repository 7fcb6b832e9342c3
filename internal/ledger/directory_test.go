package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpos/posledger/internal/ledger"
)

func TestDirectoryCreateAndGet(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	c, err := l.Directory.Create(ctx, ledger.CustomerInput{
		Name:  " Ada Lovelace ",
		Email: "ada@example.com",
		Phone: "555-0100",
	})
	require.NoError(t, err)
	assert.NotZero(t, c.ID)
	assert.Equal(t, "Ada Lovelace", c.Name)

	got, err := l.Directory.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", got.Email)
}

func TestDirectoryCreateRequiresName(t *testing.T) {
	l := newTestLedger(t)

	var invalid *ledger.InvalidInputError
	_, err := l.Directory.Create(context.Background(), ledger.CustomerInput{Name: "  "})
	assert.ErrorAs(t, err, &invalid)
}

func TestDirectoryUpdatePartial(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	c, err := l.Directory.Create(ctx, ledger.CustomerInput{Name: "Ada Lovelace", Phone: "555-0100"})
	require.NoError(t, err)

	email := "ada@example.org"
	updated, err := l.Directory.Update(ctx, c.ID, ledger.CustomerUpdate{Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.org", updated.Email)
	assert.Equal(t, "555-0100", updated.Phone)
}

func TestDirectoryDeleteUnknown(t *testing.T) {
	l := newTestLedger(t)

	err := l.Directory.Delete(context.Background(), 424242)
	assert.ErrorIs(t, err, ledger.ErrCustomerNotFound)
}

// Deleting a customer with historical sales succeeds; the ledger keeps
// the sale rows and resolves the name to a placeholder at read time.
func TestDirectoryDeleteKeepsSales(t *testing.T) {
	l := newTestLedger(t)
	ctx := context.Background()

	p, err := l.Catalog.Create(ctx, ledger.ProductInput{Name: "Coffee", Price: 25.00, Quantity: 10})
	require.NoError(t, err)
	c, err := l.Directory.Create(ctx, ledger.CustomerInput{Name: "Ada Lovelace"})
	require.NoError(t, err)

	_, err = l.Sales.Record(ctx, ledger.SaleInput{ProductID: p.ID, CustomerID: &c.ID, Quantity: 1})
	require.NoError(t, err)

	require.NoError(t, l.Directory.Delete(ctx, c.ID))

	sales, err := l.Sales.List(ctx)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	require.NotNil(t, sales[0].CustomerID)
	assert.Equal(t, c.ID, *sales[0].CustomerID)
}
