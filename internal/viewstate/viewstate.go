// Package viewstate keeps the active category selection consistent between
// the request URL and the rendered page. The transition logic is pure over
// url.Values; the only side effect is the link the browser follows, so
// history back/forward restores previous selections for free.
package viewstate

import (
	"net/url"

	"github.com/digimart/storefront/internal/catalog"
)

// ParamCategory is the sole query parameter this package owns. No other page
// state (search text, scroll position, loading flags) is persisted to the URL.
const ParamCategory = "category"

// State is the single piece of URL-backed view state.
type State struct {
	Category string
}

// FromQuery derives the active category from request parameters. An absent or
// empty parameter means the "all" sentinel.
func FromQuery(params url.Values) State {
	c := params.Get(ParamCategory)
	if c == "" {
		c = catalog.CategoryAll
	}
	return State{Category: c}
}

// Select returns the state after the user picks a category tab. An empty slug
// falls back to "all".
func (s State) Select(slug string) State {
	if slug == "" {
		slug = catalog.CategoryAll
	}
	return State{Category: slug}
}

// Apply writes the state into a copy of params, leaving unrelated parameters
// untouched. Selecting "all" removes the parameter so the default URL stays
// clean and bookmarkable.
func (s State) Apply(params url.Values) url.Values {
	next := make(url.Values, len(params))
	for k, vs := range params {
		next[k] = append([]string(nil), vs...)
	}
	if s.Category == catalog.CategoryAll || s.Category == "" {
		next.Del(ParamCategory)
	} else {
		next.Set(ParamCategory, s.Category)
	}
	return next
}

// Encode renders the shareable URL for this state under the given path.
func (s State) Encode(path string) string {
	q := s.Apply(url.Values{})
	if len(q) == 0 {
		return path
	}
	return path + "?" + q.Encode()
}
