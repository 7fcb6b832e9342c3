package domain

import "time"

// Product is a catalog item with a single stock-on-hand quantity.
// Quantity is only mutated through the inventory ledger.
type Product struct {
	ID          int64     `gorm:"primaryKey" json:"id,string"`
	Name        string    `gorm:"index" json:"name"`
	Description string    `gorm:"size:1024" json:"description"`
	Category    string    `gorm:"size:128;index" json:"category"`
	Price       float64   `json:"price"` // unit price in main currency units
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "products"
}
