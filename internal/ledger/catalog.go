package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"

	"github.com/openpos/posledger/internal/domain"
)

// Catalog owns product records. Stock quantities are written here only at
// creation and through explicit catalog edits; all other quantity changes
// go through Inventory or Sales.
type Catalog struct {
	products ProductRepository
	sales    SaleRepository
	ids      *snowflake.Node
	bus      Bus
}

func NewCatalog(products ProductRepository, sales SaleRepository, ids *snowflake.Node, bus Bus) *Catalog {
	return &Catalog{products: products, sales: sales, ids: ids, bus: bus}
}

// ProductInput carries the fields of a catalog insert.
type ProductInput struct {
	Name        string
	Description string
	Category    string
	Price       float64
	Quantity    int
}

// ProductUpdate carries a partial catalog edit; nil fields are left unchanged.
type ProductUpdate struct {
	Name        *string
	Description *string
	Category    *string
	Price       *float64
	Quantity    *int
}

func (s *Catalog) Create(ctx context.Context, in ProductInput) (*domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, &InvalidInputError{Field: "name", Reason: "must not be empty"}
	}
	if in.Price < 0 {
		return nil, &InvalidInputError{Field: "price", Reason: "must not be negative"}
	}
	if in.Quantity < 0 {
		return nil, &InvalidInputError{Field: "quantity", Reason: "must not be negative"}
	}

	now := time.Now()
	p := &domain.Product{
		ID:          s.ids.Generate().Int64(),
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
		Price:       in.Price,
		Quantity:    in.Quantity,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}

	publishAudit(s.bus, "product.create", fmt.Sprintf("product:%d", p.ID),
		fmt.Sprintf("created %q with quantity %d", p.Name, p.Quantity))
	return p, nil
}

// Update applies a partial catalog edit. Only the provided fields are
// written; in particular the quantity read at the top of the call is
// never written back, so a sale committing mid-update keeps its
// decrement.
func (s *Catalog) Update(ctx context.Context, id int64, up ProductUpdate) (*domain.Product, error) {
	if _, err := s.products.GetByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if up.Name != nil {
		name := strings.TrimSpace(*up.Name)
		if name == "" {
			return nil, &InvalidInputError{Field: "name", Reason: "must not be empty"}
		}
		fields["name"] = name
	}
	if up.Description != nil {
		fields["description"] = strings.TrimSpace(*up.Description)
	}
	if up.Category != nil {
		fields["category"] = strings.TrimSpace(*up.Category)
	}
	if up.Price != nil {
		if *up.Price < 0 {
			return nil, &InvalidInputError{Field: "price", Reason: "must not be negative"}
		}
		fields["price"] = *up.Price
	}
	if up.Quantity != nil {
		if *up.Quantity < 0 {
			return nil, &InvalidInputError{Field: "quantity", Reason: "must not be negative"}
		}
		fields["quantity"] = *up.Quantity
	}
	fields["updated_at"] = time.Now()

	if err := s.products.UpdateFields(ctx, id, fields); err != nil {
		return nil, err
	}

	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	publishAudit(s.bus, "product.update", fmt.Sprintf("product:%d", p.ID),
		fmt.Sprintf("updated %q", p.Name))
	return p, nil
}

// Delete removes a product from the catalog. A product referenced by any
// sale transaction cannot be deleted; the sale ledger is append-only and
// must keep resolving.
func (s *Catalog) Delete(ctx context.Context, id int64) error {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return err
	}

	refs, err := s.sales.CountByProduct(ctx, id)
	if err != nil {
		return err
	}
	if refs > 0 {
		return &ConflictError{Reason: fmt.Sprintf("product %q is referenced by %d sale transactions and cannot be deleted", p.Name, refs)}
	}

	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}

	publishAudit(s.bus, "product.delete", fmt.Sprintf("product:%d", id),
		fmt.Sprintf("deleted %q", p.Name))
	return nil
}

func (s *Catalog) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.products.GetByID(ctx, id)
}

func (s *Catalog) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.List(ctx)
}
