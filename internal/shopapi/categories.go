package shopapi

import (
	"github.com/labstack/echo/v4"

	"github.com/digimart/storefront/internal/webserver"
)

// registerCategoryRoutes registers category listing and statistics endpoints
func registerCategoryRoutes() {
	webserver.ApiGET("/categories", listCategories)
	webserver.ApiGET("/categories/stats", categoryStats)
}

func listCategories(c echo.Context) error {
	store := webserver.GetApp(c).Catalog().Store()
	return ok(c, map[string]interface{}{
		"categories": store.Categories(),
		"counts":     store.CountsByCategory(),
	})
}

func categoryStats(c echo.Context) error {
	store := webserver.GetApp(c).Catalog().Store()
	return ok(c, store.PriceStatsByCategory())
}
