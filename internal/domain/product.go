package domain

// Product represents a digital product in the storefront catalog.
// The catalog is trusted static content; none of these fields are validated
// at load time.
type Product struct {
	ID               string   `json:"id" csv:"id"`
	Slug             string   `json:"slug" csv:"slug"`
	Name             string   `json:"name" csv:"name"`
	Category         string   `json:"category" csv:"category"` // matches Category.ID by convention
	Price            float64  `json:"price" csv:"price"`       // price in main currency units (e.g., dollars)
	ShortDescription string   `json:"shortDescription" csv:"short_description"`
	Description      string   `json:"description" csv:"-"`
	Image            string   `json:"image" csv:"image"` // primary image reference
	Images           []string `json:"images,omitempty" csv:"-"`
	Platform         string   `json:"platform,omitempty" csv:"platform"`
	DeliveryMethod   string   `json:"deliveryMethod,omitempty" csv:"delivery_method"`
	DeliveryTime     string   `json:"deliveryTime,omitempty" csv:"delivery_time"`
	Featured         bool     `json:"featured,omitempty" csv:"featured"`
	RelatedProducts  []string `json:"relatedProducts,omitempty" csv:"-"` // curated product IDs, in display order
}
