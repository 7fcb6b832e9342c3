package ledger

import (
	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

// Settings provides runtime configuration values to the ledger.
// The application's sys_config backed settings manager satisfies it.
type Settings interface {
	GetSettingsInt64Value(category, name string) int64
}

// Ledger bundles the command and query services the API layer consumes.
type Ledger struct {
	Catalog   *Catalog
	Directory *Directory
	Inventory *Inventory
	Sales     *Sales
	Reports   *Reports
}

// New wires the services against a shared database handle. The snowflake
// node assigns server-side ids; bus may be nil to disable audit events.
func New(db *gorm.DB, ids *snowflake.Node, bus Bus, settings Settings) *Ledger {
	products := NewGormProductRepository(db)
	customers := NewGormCustomerRepository(db)
	sales := NewGormSaleRepository(db)

	return &Ledger{
		Catalog:   NewCatalog(products, sales, ids, bus),
		Directory: NewDirectory(customers, ids, bus),
		Inventory: NewInventory(db, bus),
		Sales:     NewSales(db, customers, sales, ids, bus),
		Reports:   NewReports(products, customers, sales, settings),
	}
}
