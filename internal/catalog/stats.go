package catalog

import (
	"github.com/montanaflynn/stats"

	"github.com/digimart/storefront/internal/domain"
)

// PriceStats summarizes prices within one category.
type PriceStats struct {
	Count int     `json:"count"`
	Min   float64 `json:"min"`
	Mean  float64 `json:"mean"`
	Max   float64 `json:"max"`
}

// PriceStatsByCategory computes per-category price statistics, keyed by
// category slug. Categories with no products are omitted. The synthetic "all"
// key covers the whole catalog.
func (s *Store) PriceStatsByCategory() map[string]PriceStats {
	out := make(map[string]PriceStats)

	if ps, ok := priceStats(s.products); ok {
		out[CategoryAll] = ps
	}
	for _, c := range s.categories {
		if c.ID == CategoryAll {
			continue
		}
		if ps, ok := priceStats(s.ProductsByCategory(c.Slug)); ok {
			out[c.Slug] = ps
		}
	}
	return out
}

func priceStats(products []domain.Product) (PriceStats, bool) {
	if len(products) == 0 {
		return PriceStats{}, false
	}
	prices := make([]float64, 0, len(products))
	for _, p := range products {
		prices = append(prices, p.Price)
	}
	min, _ := stats.Min(prices)
	mean, _ := stats.Mean(prices)
	max, _ := stats.Max(prices)
	return PriceStats{Count: len(products), Min: min, Mean: mean, Max: max}, true
}
