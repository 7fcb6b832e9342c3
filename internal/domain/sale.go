package domain

import (
	"encoding/json"
	"strconv"
	"time"
)

// SaleTransaction is an append-only ledger record. It is created in the
// same database transaction that decrements the product quantity and is
// never updated or deleted afterwards.
//
// CustomerID is nil for walk-in sales. The customer may be deleted later;
// readers resolve a dangling reference to a placeholder name instead of
// failing.
type SaleTransaction struct {
	ID         int64     `gorm:"primaryKey" json:"id,string"`
	ProductID  int64     `gorm:"index" json:"productId,string"`
	CustomerID *int64    `gorm:"index" json:"customerId,omitempty"`
	Quantity   int       `json:"quantity"`
	CreatedAt  time.Time `gorm:"index" json:"date"`
}

// MarshalJSON emits customerId as a string. The ",string" tag option does
// not apply to pointer fields, and ids exceed the exact integer range of
// JSON consumers.
func (s SaleTransaction) MarshalJSON() ([]byte, error) {
	type alias SaleTransaction
	aux := struct {
		alias
		CustomerID *string `json:"customerId,omitempty"`
	}{alias: alias(s)}
	if s.CustomerID != nil {
		v := strconv.FormatInt(*s.CustomerID, 10)
		aux.CustomerID = &v
	}
	return json.Marshal(aux)
}

// TableName Specify table name
func (SaleTransaction) TableName() string {
	return "sale_transactions"
}
