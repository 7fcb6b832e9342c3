package domain

import "time"

// Customer has an independent lifecycle; sales may reference it but a
// sale with no customer is a walk-in.
type Customer struct {
	ID        int64     `gorm:"primaryKey" json:"id,string"`
	Name      string    `gorm:"index" json:"name"`
	Email     string    `gorm:"size:256" json:"email"`
	Phone     string    `gorm:"size:64" json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName Specify table name
func (Customer) TableName() string {
	return "customers"
}
