package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digimart/storefront/internal/domain"
)

func fixtureDataset() domain.Dataset {
	return domain.Dataset{
		Categories: []domain.Category{
			{ID: "all", Name: "All Products", Slug: "all"},
			{ID: "games", Name: "Games", Slug: "games"},
			{ID: "software", Name: "Software", Slug: "software"},
		},
		Products: []domain.Product{
			{ID: "p1", Slug: "a", Name: "Alpha Game", Category: "games", Price: 10,
				ShortDescription: "first GAME", Description: "long text one"},
			{ID: "p2", Slug: "b", Name: "Beta Suite", Category: "software", Price: 30,
				ShortDescription: "office tools", Description: "long text two"},
			{ID: "p3", Slug: "c", Name: "Gamma Quest", Category: "games", Price: 20,
				ShortDescription: "second game", Description: "long text three",
				RelatedProducts: []string{"p2", "missing", "p1"}},
		},
	}
}

func fixtureStore() *Store {
	return NewStore(fixtureDataset())
}

func TestProductsByCategoryAll(t *testing.T) {
	s := fixtureStore()
	assert.Equal(t, s.Products(), s.ProductsByCategory(CategoryAll))
}

func TestProductsByCategoryFilters(t *testing.T) {
	s := fixtureStore()

	games := s.ProductsByCategory("games")
	require.Len(t, games, 2)
	assert.Equal(t, "p1", games[0].ID)
	assert.Equal(t, "p3", games[1].ID)
	for _, p := range games {
		assert.Equal(t, "games", p.Category)
	}

	assert.Empty(t, s.ProductsByCategory("nonexistent"))
}

func TestProductBySlug(t *testing.T) {
	s := fixtureStore()

	for _, slug := range []string{"a", "b", "c"} {
		p, ok := s.ProductBySlug(slug)
		require.True(t, ok, slug)
		assert.Equal(t, slug, p.Slug)
	}

	_, ok := s.ProductBySlug("nope")
	assert.False(t, ok)
}

func TestProductBySlugDuplicateFirstWins(t *testing.T) {
	ds := fixtureDataset()
	ds.Products = append(ds.Products, domain.Product{ID: "p4", Slug: "a", Name: "Shadow"})
	s := NewStore(ds)

	p, ok := s.ProductBySlug("a")
	require.True(t, ok)
	assert.Equal(t, "p1", p.ID)
}

func TestRelatedProductsCurated(t *testing.T) {
	s := fixtureStore()

	// p3 curates [p2, missing, p1]: order preserved, unknown id skipped.
	related := s.RelatedProducts("p3", 4)
	require.Len(t, related, 2)
	assert.Equal(t, "p2", related[0].ID)
	assert.Equal(t, "p1", related[1].ID)
	for _, r := range related {
		assert.NotEqual(t, "p3", r.ID)
	}
}

func TestRelatedProductsCuratedLimit(t *testing.T) {
	s := fixtureStore()
	related := s.RelatedProducts("p3", 1)
	require.Len(t, related, 1)
	assert.Equal(t, "p2", related[0].ID)
}

func TestRelatedProductsCategoryFallback(t *testing.T) {
	s := fixtureStore()

	// p1 has no curated list: same-category fallback, self excluded.
	related := s.RelatedProducts("p1", 4)
	require.Len(t, related, 1)
	assert.Equal(t, "p3", related[0].ID)
	assert.Equal(t, "games", related[0].Category)
}

func TestRelatedProductsUnknownID(t *testing.T) {
	s := fixtureStore()
	assert.Empty(t, s.RelatedProducts("ghost", 4))
}

func TestRelatedProductsDefaultLimit(t *testing.T) {
	ds := fixtureDataset()
	for _, id := range []string{"p5", "p6", "p7", "p8", "p9"} {
		ds.Products = append(ds.Products, domain.Product{ID: id, Slug: id, Category: "games"})
	}
	s := NewStore(ds)

	related := s.RelatedProducts("p1", 0)
	assert.Len(t, related, DefaultRelatedLimit)
}

func TestSearch(t *testing.T) {
	s := fixtureStore()

	assert.Equal(t, s.Products(), s.Search(""))
	assert.Equal(t, s.Products(), s.Search("   "))

	// Case-insensitive across name, short description and description.
	upper := s.Search("GAME")
	lower := s.Search("game")
	assert.Equal(t, upper, lower)
	require.Len(t, lower, 2)
	assert.Equal(t, "p1", lower[0].ID)
	assert.Equal(t, "p3", lower[1].ID)

	byDesc := s.Search("text two")
	require.Len(t, byDesc, 1)
	assert.Equal(t, "p2", byDesc[0].ID)

	assert.Empty(t, s.Search("zzz-no-match"))
}

func TestCountsByCategory(t *testing.T) {
	s := fixtureStore()
	counts := s.CountsByCategory()

	assert.Equal(t, len(s.Products()), counts[CategoryAll])
	assert.Equal(t, 2, counts["games"])
	assert.Equal(t, 1, counts["software"])

	sum := 0
	for slug, n := range counts {
		if slug != CategoryAll {
			sum += n
		}
	}
	assert.Equal(t, counts[CategoryAll], sum)
}

func TestPriceStatsByCategory(t *testing.T) {
	s := fixtureStore()
	ps := s.PriceStatsByCategory()

	games, ok := ps["games"]
	require.True(t, ok)
	assert.Equal(t, 2, games.Count)
	assert.Equal(t, 10.0, games.Min)
	assert.Equal(t, 15.0, games.Mean)
	assert.Equal(t, 20.0, games.Max)

	all := ps[CategoryAll]
	assert.Equal(t, 3, all.Count)
	assert.Equal(t, 30.0, all.Max)
}

func TestHandleSwap(t *testing.T) {
	h := NewHandle(fixtureStore())
	assert.Len(t, h.Store().Products(), 3)

	ds := fixtureDataset()
	ds.Products = ds.Products[:1]
	h.Swap(NewStore(ds))
	assert.Len(t, h.Store().Products(), 1)
}

func TestStoreImmutability(t *testing.T) {
	s := fixtureStore()
	got := s.Products()
	got[0].Name = "mutated"
	again := s.Products()
	assert.Equal(t, "Alpha Game", again[0].Name)
}
