package domain

var Tables = []interface{}{
	// System
	&SysConfig{},
	&SysAuditLog{},
	// Ledger
	&Product{},
	&Customer{},
	&SaleTransaction{},
}
