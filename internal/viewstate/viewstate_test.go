package viewstate

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"absent param defaults to all", "", "all"},
		{"empty param defaults to all", "category=", "all"},
		{"explicit category", "category=games", "games"},
		{"unknown slug passes through", "category=bogus", "bogus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, FromQuery(params).Category)
		})
	}
}

func TestSelect(t *testing.T) {
	s := State{Category: "all"}
	assert.Equal(t, "games", s.Select("games").Category)
	assert.Equal(t, "all", s.Select("games").Select("").Category)
}

func TestApplyPreservesUnrelatedParams(t *testing.T) {
	params := url.Values{"page": {"2"}, "category": {"games"}}

	next := State{Category: "software"}.Apply(params)
	assert.Equal(t, "software", next.Get(ParamCategory))
	assert.Equal(t, "2", next.Get("page"))

	// Original untouched: the transition is pure.
	assert.Equal(t, "games", params.Get(ParamCategory))
}

func TestApplyAllDropsParam(t *testing.T) {
	params := url.Values{"category": {"games"}}
	next := State{Category: "all"}.Apply(params)
	_, present := next[ParamCategory]
	assert.False(t, present)
}

func TestEncode(t *testing.T) {
	assert.Equal(t, "/", State{Category: "all"}.Encode("/"))
	assert.Equal(t, "/?category=games", State{Category: "games"}.Encode("/"))
}

func TestRoundTrip(t *testing.T) {
	// Selecting then re-reading the encoded URL restores the same state,
	// which is what makes back/forward navigation work.
	next := FromQuery(url.Values{}).Select("software")
	parsed, err := url.Parse(next.Encode("/"))
	assert.NoError(t, err)
	assert.Equal(t, next, FromQuery(parsed.Query()))
}
