package domain

// BadgeNew marks recently released products; the "newest" catalog sort
// partitions on it.
const BadgeNew = "Nouveau"

// ProductKind distinguishes the two catalog collections.
type ProductKind string

const (
	KindDrone     ProductKind = "drone"
	KindAccessory ProductKind = "accessory"
)

// Product represents a purchasable item in the catalog. The catalog is
// read-only at runtime; products are seeded through migrations.
type Product struct {
	ID            string      `json:"id" db:"id"`
	Name          string      `json:"name" db:"name"`
	Tagline       string      `json:"tagline" db:"tagline"`
	Description   string      `json:"description" db:"description"`
	Category      string      `json:"category" db:"category"`
	Kind          ProductKind `json:"kind" db:"kind"`
	Price         float64     `json:"price" db:"price"`
	OriginalPrice float64     `json:"original_price,omitempty" db:"original_price"`
	ImageURL      string      `json:"image_url" db:"image_url"`
	Color         string      `json:"color" db:"color"`
	Rating        float64     `json:"rating,omitempty" db:"rating"`
	ReviewCount   int         `json:"review_count,omitempty" db:"review_count"`
	InStock       bool        `json:"in_stock" db:"in_stock"`
	StockCount    int         `json:"stock_count,omitempty" db:"stock_count"`
	Badge         string      `json:"badge,omitempty" db:"badge"`
	Specs         *Specs      `json:"specs,omitempty" db:"specs"`
	Position      int         `json:"-" db:"position"`
}

// Specs holds the technical sheet shown on the product detail page.
type Specs struct {
	Camera     string `json:"camera,omitempty"`
	FlightTime string `json:"flight_time,omitempty"`
	Range      string `json:"range,omitempty"`
	MaxSpeed   string `json:"max_speed,omitempty"`
	Weight     string `json:"weight,omitempty"`
}

// DiscountPercent returns the rounded percentage saved against the original
// price, or 0 when there is no meaningful discount.
func (p *Product) DiscountPercent() int {
	if p.OriginalPrice <= p.Price {
		return 0
	}
	return int((p.OriginalPrice-p.Price)/p.OriginalPrice*100 + 0.5)
}

// Category represents a product category with its catalog count.
type Category struct {
	ID    string `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Count int    `json:"count" db:"count"`
}

// PriceRange is a named half-open price bracket [Min, Max) used by the
// catalog filter.
type PriceRange struct {
	ID   string  `json:"id" db:"id"`
	Name string  `json:"name" db:"name"`
	Min  float64 `json:"min" db:"min"`
	Max  float64 `json:"max" db:"max"`
}

// ShippingOption is one entry in the fixed delivery menu. Selection carries
// no business-rule constraints; the price is flat.
type ShippingOption struct {
	ID       string  `json:"id" db:"id"`
	Name     string  `json:"name" db:"name"`
	Delay    string  `json:"delay" db:"delay"`
	Price    float64 `json:"price" db:"price"`
	Position int     `json:"-" db:"position"`
}

// PromoDiscountType distinguishes percentage promos from flat-amount promos.
type PromoDiscountType string

const (
	PromoPercent PromoDiscountType = "percent"
	PromoFixed   PromoDiscountType = "fixed"
)

// PromoCode is a fixed discount rule matched case-insensitively by code.
type PromoCode struct {
	Code   string            `json:"code" db:"code"`
	Type   PromoDiscountType `json:"type" db:"type"`
	Amount float64           `json:"amount" db:"amount"`
}

// DiscountFor computes the discount this promo grants on a subtotal. The
// result is clamped to the subtotal so a fixed promo can never push the
// total below the shipping cost.
func (p *PromoCode) DiscountFor(subtotal float64) float64 {
	var discount float64
	switch p.Type {
	case PromoPercent:
		discount = subtotal * p.Amount / 100
	case PromoFixed:
		discount = p.Amount
	}
	if discount > subtotal {
		discount = subtotal
	}
	return discount
}
