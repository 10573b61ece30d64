package catalog

import (
	"strings"
	"sync/atomic"

	"github.com/digimart/storefront/internal/domain"
)

// CategoryAll is the sentinel category slug that selects the whole catalog.
const CategoryAll = "all"

// DefaultRelatedLimit caps the related-products strip.
const DefaultRelatedLimit = 4

// Store is one immutable snapshot of the catalog. All query methods are pure
// and safe for concurrent use; the underlying slices are never mutated after
// construction.
type Store struct {
	products   []domain.Product
	categories []domain.Category
	bySlug     map[string]int
	byID       map[string]int
}

// NewStore builds an indexed snapshot from a dataset. On duplicate slugs or
// ids the first occurrence wins; the dataset is trusted content and duplicates
// are not treated as errors.
func NewStore(ds domain.Dataset) *Store {
	s := &Store{
		products:   ds.Products,
		categories: ds.Categories,
		bySlug:     make(map[string]int, len(ds.Products)),
		byID:       make(map[string]int, len(ds.Products)),
	}
	for i, p := range ds.Products {
		if _, ok := s.bySlug[p.Slug]; !ok {
			s.bySlug[p.Slug] = i
		}
		if _, ok := s.byID[p.ID]; !ok {
			s.byID[p.ID] = i
		}
	}
	return s
}

// Products returns every product in dataset order.
func (s *Store) Products() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ProductBySlug returns the first product whose slug matches.
func (s *Store) ProductBySlug(slug string) (domain.Product, bool) {
	i, ok := s.bySlug[slug]
	if !ok {
		return domain.Product{}, false
	}
	return s.products[i], true
}

// ProductByID returns the first product whose id matches.
func (s *Store) ProductByID(id string) (domain.Product, bool) {
	i, ok := s.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return s.products[i], true
}

// ProductsByCategory returns products whose category equals the given slug,
// in dataset order. The "all" sentinel returns the whole catalog; an unknown
// slug yields an empty list, not an error.
func (s *Store) ProductsByCategory(categorySlug string) []domain.Product {
	if categorySlug == CategoryAll {
		return s.Products()
	}
	out := make([]domain.Product, 0)
	for _, p := range s.products {
		if p.Category == categorySlug {
			out = append(out, p)
		}
	}
	return out
}

// RelatedProducts resolves the related strip for a product. Explicit curation
// takes precedence: listed ids are resolved in declared order, skipping ids
// that don't exist, stopping at limit. Only when no curation exists does it
// fall back to other products of the same category, in dataset order. The two
// strategies are never merged. An unknown product id yields an empty list.
func (s *Store) RelatedProducts(productID string, limit int) []domain.Product {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	p, ok := s.ProductByID(productID)
	if !ok {
		return []domain.Product{}
	}

	if len(p.RelatedProducts) > 0 {
		related := make([]domain.Product, 0, limit)
		for _, id := range p.RelatedProducts {
			found, ok := s.ProductByID(id)
			if !ok {
				continue
			}
			related = append(related, found)
			if len(related) >= limit {
				break
			}
		}
		return related
	}

	fallback := make([]domain.Product, 0, limit)
	for _, other := range s.products {
		if other.Category == p.Category && other.ID != productID {
			fallback = append(fallback, other)
			if len(fallback) >= limit {
				break
			}
		}
	}
	return fallback
}

// Categories returns every category in dataset order, including the synthetic
// "all" entry when the dataset carries one.
func (s *Store) Categories() []domain.Category {
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// Search performs a case-insensitive substring match across name, short
// description and description. A blank query returns the whole catalog.
// Dataset order is preserved; there is no relevance ranking.
func (s *Store) Search(query string) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.Products()
	}
	out := make([]domain.Product, 0)
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.ShortDescription), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out
}

// CountsByCategory maps every category slug to its product count, plus a
// synthetic "all" key holding the total.
func (s *Store) CountsByCategory() map[string]int {
	counts := map[string]int{CategoryAll: len(s.products)}
	for _, c := range s.categories {
		if c.ID == CategoryAll {
			continue
		}
		n := 0
		for _, p := range s.products {
			if p.Category == c.ID {
				n++
			}
		}
		counts[c.Slug] = n
	}
	return counts
}

// Handle is a swappable reference to the current catalog snapshot. Queries
// always run against one consistent snapshot; the watcher replaces the whole
// snapshot atomically on reload.
type Handle struct {
	cur atomic.Pointer[Store]
}

func NewHandle(s *Store) *Handle {
	h := &Handle{}
	h.cur.Store(s)
	return h
}

// Store returns the current snapshot.
func (h *Handle) Store() *Store {
	return h.cur.Load()
}

// Swap replaces the current snapshot.
func (h *Handle) Swap(s *Store) {
	h.cur.Store(s)
}
