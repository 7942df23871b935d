package domain

// FreeShippingThreshold is the subtotal above which (strictly) cart shipping
// is free. At exactly the threshold the flat rate still applies.
const FreeShippingThreshold = 500.00

// FlatShippingRate is charged on any non-empty cart below the threshold.
const FlatShippingRate = 9.90

// CartItem is a snapshot of the product taken when it entered the cart,
// plus the selected quantity.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Tagline   string  `json:"tagline"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url"`
	Color     string  `json:"color"`
	Quantity  int     `json:"quantity"`
}

// NewCartItem snapshots a product into a line item.
func NewCartItem(p *Product, quantity int) CartItem {
	return CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Tagline:   p.Tagline,
		Price:     p.Price,
		ImageURL:  p.ImageURL,
		Color:     p.Color,
		Quantity:  quantity,
	}
}

// CartView is a point-in-time snapshot of a session cart with all derived
// values recomputed from the current line items.
type CartView struct {
	Items     []CartItem `json:"items"`
	ItemCount int        `json:"item_count"`
	Subtotal  float64    `json:"subtotal"`
	Shipping  float64    `json:"shipping"`
	Total     float64    `json:"total"`
	Open      bool       `json:"open"`
}

// ComputeCartTotals derives itemCount/subtotal/shipping/total from the
// given line items. It is the single place the shipping rule lives.
func ComputeCartTotals(items []CartItem) (itemCount int, subtotal, shipping, total float64) {
	for _, item := range items {
		itemCount += item.Quantity
		subtotal += item.Price * float64(item.Quantity)
	}
	switch {
	case subtotal > FreeShippingThreshold:
		shipping = 0
	case subtotal > 0:
		shipping = FlatShippingRate
	}
	total = subtotal + shipping
	return itemCount, subtotal, shipping, total
}

// WishlistView is a snapshot of a session wishlist.
type WishlistView struct {
	Items     []*Product `json:"items"`
	ItemCount int        `json:"item_count"`
}
