package shopapi

import (
	"net/http"

	"github.com/gocarina/gocsv"
	"github.com/labstack/echo/v4"

	"github.com/digimart/storefront/internal/webserver"
)

// registerExportRoutes registers catalog export endpoints
func registerExportRoutes() {
	webserver.ApiGET("/export/products.csv", exportProductsCSV)
}

func exportProductsCSV(c echo.Context) error {
	store := webserver.GetApp(c).Catalog().Store()
	products := store.Products()

	csvBody, err := gocsv.MarshalString(&products)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "EXPORT_ERROR", "Failed to export products", err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="products.csv"`)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", []byte(csvBody))
}
