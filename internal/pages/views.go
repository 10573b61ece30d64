package pages

import (
	"net/url"

	"github.com/digimart/storefront/internal/domain"
	"github.com/digimart/storefront/internal/viewstate"
	"github.com/digimart/storefront/pkg/pricing"
)

// defaultEmptyMessage is shown by the grid when a filter matches nothing.
const defaultEmptyMessage = "No products found"

// CategoryTab is one entry in the category filter strip.
type CategoryTab struct {
	Name   string
	Slug   string
	URL    string
	Count  int
	Active bool
}

// ProductCard is the grid cell view of a product.
type ProductCard struct {
	Name             string
	Category         string
	ShortDescription string
	PriceLabel       string
	ImageURL         string
	DetailURL        string
}

// GridView drives the three-state product grid: loading, empty or populated.
// Loading takes precedence and ignores the product list.
type GridView struct {
	Loading      bool
	EmptyMessage string
	Products     []ProductCard
	Skeletons    []struct{}
}

// ErrorView is the presentational error box with an optional retry link. It
// carries no retry policy of its own.
type ErrorView struct {
	Message  string
	RetryURL string
}

// HomeView is the home page: hero, category tabs and the grid.
type HomeView struct {
	Title string
	Tabs  []CategoryTab
	Grid  GridView
}

// DetailView is the product detail page. Optional fields render only when
// present.
type DetailView struct {
	Title      string
	Product    domain.Product
	PriceLabel string
	ImageURL   string
	Gallery    []string
	Related    []ProductCard
}

// SearchView is the search results page.
type SearchView struct {
	Title string
	Query string
	Grid  GridView
}

// NotFoundView is the 404 page.
type NotFoundView struct {
	Title string
	Error ErrorView
}

func newGrid(products []domain.Product, currency string, emptyMessage string) GridView {
	if emptyMessage == "" {
		emptyMessage = defaultEmptyMessage
	}
	cards := make([]ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, newCard(p, currency))
	}
	return GridView{
		EmptyMessage: emptyMessage,
		Products:     cards,
		Skeletons:    make([]struct{}, 8),
	}
}

func newCard(p domain.Product, currency string) ProductCard {
	return ProductCard{
		Name:             p.Name,
		Category:         p.Category,
		ShortDescription: p.ShortDescription,
		PriceLabel:       pricing.Format(p.Price, currency),
		ImageURL:         imageURL(p.Image),
		DetailURL:        "/products/" + url.PathEscape(p.Slug),
	}
}

func newTabs(categories []domain.Category, counts map[string]int, active string) []CategoryTab {
	tabs := make([]CategoryTab, 0, len(categories))
	for _, c := range categories {
		tabs = append(tabs, CategoryTab{
			Name:   c.Name,
			Slug:   c.Slug,
			URL:    viewstate.State{Category: c.Slug}.Encode("/"),
			Count:  counts[c.Slug],
			Active: c.Slug == active,
		})
	}
	return tabs
}

// imageURL routes an image reference through the proxy so failed sources
// resolve to the placeholder.
func imageURL(src string) string {
	if src == "" {
		return ""
	}
	return "/img?src=" + url.QueryEscape(src)
}
