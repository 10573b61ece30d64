package domain

// Category is a filter facet for the product grid. The dataset carries a
// synthetic "all" entry used by the category filter; it never matches any
// Product.Category.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"` // URL parameter value, equals ID in the shipped dataset
}

// Dataset is the full static catalog as loaded from the bundled data files.
type Dataset struct {
	Products   []Product  `json:"products"`
	Categories []Category `json:"categories"`
}
