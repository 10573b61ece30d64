// Package pages renders the server-side storefront: home with category
// filter, product detail and search. The active category lives in the URL;
// handlers derive it per request and hold no state of their own.
package pages

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/digimart/storefront/internal/viewstate"
	"github.com/digimart/storefront/internal/webserver"
	"github.com/digimart/storefront/pkg/metrics"
)

// InitRouter installs the template renderer and registers page routes.
func InitRouter() error {
	renderer, err := NewRenderer()
	if err != nil {
		return err
	}
	webserver.SetRenderer(renderer)

	webserver.WebGET("/", home)
	webserver.WebGET("/products/:slug", productDetail)
	webserver.WebGET("/search", search)
	webserver.WebGET("/img", serveImage)
	return nil
}

func home(c echo.Context) error {
	appc := webserver.GetApp(c)
	store := appc.Catalog().Store()
	currency := appc.Config().Catalog.Currency

	state := viewstate.FromQuery(c.QueryParams())
	view := HomeView{
		Title: "DigiMart - Digital Products Marketplace",
		Tabs:  newTabs(store.Categories(), store.CountsByCategory(), state.Category),
		Grid:  newGrid(store.ProductsByCategory(state.Category), currency, ""),
	}

	metrics.Record(metrics.MetricPageView, "home", 1)
	return c.Render(http.StatusOK, "home", view)
}

func productDetail(c echo.Context) error {
	appc := webserver.GetApp(c)
	store := appc.Catalog().Store()
	currency := appc.Config().Catalog.Currency

	p, found := store.ProductBySlug(c.Param("slug"))
	if !found {
		return c.Render(http.StatusNotFound, "notfound", NotFoundView{
			Title: "Product not found - DigiMart",
			Error: ErrorView{Message: "Product not found", RetryURL: "/"},
		})
	}

	related := store.RelatedProducts(p.ID, 0)
	relatedCards := make([]ProductCard, 0, len(related))
	for _, r := range related {
		relatedCards = append(relatedCards, newCard(r, currency))
	}

	gallery := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		gallery = append(gallery, imageURL(img))
	}

	view := DetailView{
		Title:      p.Name + " - DigiMart",
		Product:    p,
		PriceLabel: newCard(p, currency).PriceLabel,
		ImageURL:   imageURL(p.Image),
		Gallery:    gallery,
		Related:    relatedCards,
	}

	metrics.Record(metrics.MetricPageView, "detail", 1)
	return c.Render(http.StatusOK, "detail", view)
}

func search(c echo.Context) error {
	appc := webserver.GetApp(c)
	store := appc.Catalog().Store()
	currency := appc.Config().Catalog.Currency

	query := c.QueryParam("q")
	view := SearchView{
		Title: "Search - DigiMart",
		Query: query,
		Grid:  newGrid(store.Search(query), currency, "No products match your search. Try browsing all products."),
	}

	metrics.Record(metrics.MetricPageView, "search", 1)
	return c.Render(http.StatusOK, "search", view)
}

func serveImage(c echo.Context) error {
	return webserver.GetAppContext(c).Images().Serve(c)
}
