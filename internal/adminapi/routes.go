// Package adminapi exposes the ledger over HTTP. Handlers bind and
// validate payloads, delegate to the ledger services, and translate
// typed service errors into the JSON error envelope.
package adminapi

// InitRoutes registers every API route group. Call after webserver.Init.
func InitRoutes() {
	registerProductRoutes()
	registerCustomerRoutes()
	registerInventoryRoutes()
	registerSaleRoutes()
	registerReportRoutes()
	registerSettingRoutes()
}
