package shopapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/digimart/storefront/internal/catalog"
	"github.com/digimart/storefront/internal/domain"
	"github.com/digimart/storefront/internal/webserver"
)

// registerProductRoutes registers the read-only product endpoints
func registerProductRoutes() {
	webserver.ApiGET("/products", listProducts)
	webserver.ApiGET("/products/:slug", getProduct)
	webserver.ApiGET("/products/:slug/related", relatedProducts)
}

func listProducts(c echo.Context) error {
	store := webserver.GetApp(c).Catalog().Store()
	page, perPage := parsePagination(c)

	category := strings.TrimSpace(c.QueryParam("category"))
	if category == "" {
		category = catalog.CategoryAll
	}
	q := strings.TrimSpace(c.QueryParam("q"))

	var rows []domain.Product
	if q != "" {
		rows = store.Search(q)
		if category != catalog.CategoryAll {
			filtered := rows[:0]
			for _, p := range rows {
				if p.Category == category {
					filtered = append(filtered, p)
				}
			}
			rows = filtered
		}
	} else {
		rows = store.ProductsByCategory(category)
	}

	total := len(rows)
	start := (page - 1) * perPage
	if start > total {
		start = total
	}
	end := start + perPage
	if end > total {
		end = total
	}
	return paged(c, rows[start:end], total, page, perPage)
}

func getProduct(c echo.Context) error {
	store := webserver.GetApp(c).Catalog().Store()
	p, found := store.ProductBySlug(c.Param("slug"))
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}
	return ok(c, p)
}

func relatedProducts(c echo.Context) error {
	store := webserver.GetApp(c).Catalog().Store()
	p, found := store.ProductBySlug(c.Param("slug"))
	if !found {
		return fail(c, http.StatusNotFound, "NOT_FOUND", "Product not found", nil)
	}
	limit := cast.ToInt(c.QueryParam("limit"))
	if limit <= 0 || limit > 20 {
		limit = catalog.DefaultRelatedLimit
	}
	return ok(c, store.RelatedProducts(p.ID, limit))
}
