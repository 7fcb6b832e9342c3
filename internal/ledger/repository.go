package ledger

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/openpos/posledger/internal/domain"
)

// ProductRepository handles database operations for catalog products
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	// UpdateFields writes only the given columns, so a partial edit
	// cannot overwrite concurrent changes to columns it does not carry.
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Delete(ctx context.Context, id int64) error
}

// CustomerRepository handles database operations for customer records
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	Save(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Delete(ctx context.Context, id int64) error
}

// SaleRepository handles database operations for the append-only sale ledger
type SaleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.SaleTransaction, error)
	List(ctx context.Context) ([]domain.SaleTransaction, error)
	CountByProduct(ctx context.Context, productID int64) (int64, error)
	// SoldByProduct returns the summed quantity per product across all sales.
	SoldByProduct(ctx context.Context) (map[int64]int64, error)
	// Quantities returns the quantity of every sale, for aggregate statistics.
	Quantities(ctx context.Context) ([]float64, error)
}

// GormProductRepository is the GORM implementation of ProductRepository
type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) Create(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *GormProductRepository) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("id = ?", id).Updates(fields).Error
}

func (r *GormProductRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns products in insertion order; ids are snowflakes and
// therefore time-ordered.
func (r *GormProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	var rows []domain.Product
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Product{}).Error
}

// GormCustomerRepository is the GORM implementation of CustomerRepository
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *GormCustomerRepository) Save(ctx context.Context, c *domain.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *GormCustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *GormCustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	var rows []domain.Customer
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *GormCustomerRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Customer{}).Error
}

// GormSaleRepository is the GORM implementation of SaleRepository
type GormSaleRepository struct {
	db *gorm.DB
}

func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

func (r *GormSaleRepository) GetByID(ctx context.Context, id int64) (*domain.SaleTransaction, error) {
	var s domain.SaleTransaction
	err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSaleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormSaleRepository) List(ctx context.Context) ([]domain.SaleTransaction, error) {
	var rows []domain.SaleTransaction
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *GormSaleRepository) CountByProduct(ctx context.Context, productID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.SaleTransaction{}).
		Where("product_id = ?", productID).Count(&count).Error
	return count, err
}

func (r *GormSaleRepository) SoldByProduct(ctx context.Context) (map[int64]int64, error) {
	type row struct {
		ProductID int64
		Sold      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&domain.SaleTransaction{}).
		Select("product_id, SUM(quantity) AS sold").
		Group("product_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	sold := make(map[int64]int64, len(rows))
	for _, r := range rows {
		sold[r.ProductID] = r.Sold
	}
	return sold, nil
}

func (r *GormSaleRepository) Quantities(ctx context.Context) ([]float64, error) {
	var qs []float64
	err := r.db.WithContext(ctx).Model(&domain.SaleTransaction{}).
		Order("id ASC").Pluck("quantity", &qs).Error
	return qs, err
}
