// Package shopapi exposes the catalog query layer as a read-only JSON API,
// plus operational endpoints (status, CSV export). The catalog has no write
// path; the dataset is a build-time artifact.
package shopapi

// InitRouter registers all API routes on the web server.
func InitRouter() {
	registerProductRoutes()
	registerCategoryRoutes()
	registerExportRoutes()
	registerStatusRoutes()
}
