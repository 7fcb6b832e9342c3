package ledger

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/montanaflynn/stats"

	"github.com/openpos/posledger/internal/domain"
)

// StockStatus is the categorical stock band of a product.
type StockStatus string

const (
	StockStatusOut StockStatus = "out-of-stock"
	StockStatusLow StockStatus = "low-stock"
	StockStatusIn  StockStatus = "in-stock"
)

// DefaultLowStockThreshold applies when no threshold is configured.
const DefaultLowStockThreshold = 10

const (
	// WalkInCustomerName labels sales recorded without a customer.
	WalkInCustomerName = "Walk-in Customer"
	// UnknownCustomerName labels sales whose customer was deleted later.
	UnknownCustomerName = "Unknown Customer"
)

// Reports computes read-only derived views from current store snapshots.
// Nothing is cached; every call recomputes from committed state.
type Reports struct {
	products  ProductRepository
	customers CustomerRepository
	sales     SaleRepository
	settings  Settings
}

func NewReports(products ProductRepository, customers CustomerRepository, sales SaleRepository, settings Settings) *Reports {
	return &Reports{products: products, customers: customers, sales: sales, settings: settings}
}

// Threshold returns the configured low-stock threshold, falling back to
// the default when unset or invalid.
func (r *Reports) Threshold() int {
	if r.settings != nil {
		if v := r.settings.GetSettingsInt64Value("ledger", "low_stock_threshold"); v > 0 {
			return int(v)
		}
	}
	return DefaultLowStockThreshold
}

// StatusOf classifies a quantity against a threshold.
func StatusOf(quantity, threshold int) StockStatus {
	switch {
	case quantity == 0:
		return StockStatusOut
	case quantity <= threshold:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// ProductSales is one row of the sales-by-product view.
type ProductSales struct {
	ProductID int64  `json:"productId,string"`
	Name      string `json:"name"`
	Sold      int64  `json:"sold"`
}

// SalesByProduct sums sold quantities per catalog product, in catalog
// order, reporting zero for products that never sold.
func (r *Reports) SalesByProduct(ctx context.Context) ([]ProductSales, error) {
	products, err := r.products.List(ctx)
	if err != nil {
		return nil, err
	}
	sold, err := r.sales.SoldByProduct(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ProductSales, 0, len(products))
	for _, p := range products {
		out = append(out, ProductSales{ProductID: p.ID, Name: p.Name, Sold: sold[p.ID]})
	}
	return out, nil
}

// StockLevel is one row of the stock distribution view.
type StockLevel struct {
	ProductID int64       `json:"productId,string"`
	Name      string      `json:"name"`
	Category  string      `json:"category"`
	Quantity  int         `json:"quantity"`
	Status    StockStatus `json:"status"`
}

// StockDistribution reports the current quantity on hand per product
// with its stock band, in catalog order.
func (r *Reports) StockDistribution(ctx context.Context) ([]StockLevel, error) {
	products, err := r.products.List(ctx)
	if err != nil {
		return nil, err
	}

	threshold := r.Threshold()
	out := make([]StockLevel, 0, len(products))
	for _, p := range products {
		out = append(out, StockLevel{
			ProductID: p.ID,
			Name:      p.Name,
			Category:  p.Category,
			Quantity:  p.Quantity,
			Status:    StatusOf(p.Quantity, threshold),
		})
	}
	return out, nil
}

// Totals summarizes the sale ledger.
type Totals struct {
	TotalSales          int64   `json:"totalSales"`
	TotalQuantitySold   int64   `json:"totalQuantitySold"`
	AverageSaleQuantity float64 `json:"averageSaleQuantity"`
}

func (r *Reports) Totals(ctx context.Context) (*Totals, error) {
	qs, err := r.sales.Quantities(ctx)
	if err != nil {
		return nil, err
	}

	t := &Totals{TotalSales: int64(len(qs))}
	if len(qs) == 0 {
		return t, nil
	}

	sum, err := stats.Sum(qs)
	if err != nil {
		return nil, err
	}
	mean, err := stats.Mean(qs)
	if err != nil {
		return nil, err
	}
	t.TotalQuantitySold = int64(sum)
	t.AverageSaleQuantity = mean
	return t, nil
}

// LowStock lists products with quantity below the threshold, preserving
// catalog order. A non-positive threshold selects the configured value.
func (r *Reports) LowStock(ctx context.Context, threshold int) ([]domain.Product, error) {
	if threshold <= 0 {
		threshold = r.Threshold()
	}

	products, err := r.products.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Product, 0)
	for _, p := range products {
		if p.Quantity < threshold {
			out = append(out, p)
		}
	}
	return out, nil
}

// SaleRecord is a sale with its references resolved to display names.
// Deleted customers resolve to a placeholder rather than an error.
type SaleRecord struct {
	ID          int64  `json:"id,string"`
	ProductID   int64  `json:"productId,string"`
	ProductName string `json:"productName"`
	CustomerID  *int64 `json:"customerId,omitempty"`
	Customer    string `json:"customer"`
	Quantity    int    `json:"quantity"`
	Date        string `json:"date"`
}

// MarshalJSON emits customerId as a string; see SaleTransaction.
func (r SaleRecord) MarshalJSON() ([]byte, error) {
	type alias SaleRecord
	aux := struct {
		alias
		CustomerID *string `json:"customerId,omitempty"`
	}{alias: alias(r)}
	if r.CustomerID != nil {
		v := strconv.FormatInt(*r.CustomerID, 10)
		aux.CustomerID = &v
	}
	return json.Marshal(aux)
}

func (r *Reports) SaleRecords(ctx context.Context) ([]SaleRecord, error) {
	sales, err := r.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := r.products.List(ctx)
	if err != nil {
		return nil, err
	}
	customers, err := r.customers.List(ctx)
	if err != nil {
		return nil, err
	}

	productNames := make(map[int64]string, len(products))
	for _, p := range products {
		productNames[p.ID] = p.Name
	}
	customerNames := make(map[int64]string, len(customers))
	for _, c := range customers {
		customerNames[c.ID] = c.Name
	}

	out := make([]SaleRecord, 0, len(sales))
	for _, s := range sales {
		rec := SaleRecord{
			ID:         s.ID,
			ProductID:  s.ProductID,
			CustomerID: s.CustomerID,
			Quantity:   s.Quantity,
			Date:       s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		rec.ProductName = productNames[s.ProductID]
		if rec.ProductName == "" {
			rec.ProductName = "Unknown Product"
		}
		switch {
		case s.CustomerID == nil:
			rec.Customer = WalkInCustomerName
		default:
			rec.Customer = customerNames[*s.CustomerID]
			if rec.Customer == "" {
				rec.Customer = UnknownCustomerName
			}
		}
		out = append(out, rec)
	}
	return out, nil
}
