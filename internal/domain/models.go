package domain

type Category struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Color struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Hex  string `db:"hex" json:"hex"`
}

type Product struct {
	ID            int      `db:"id" json:"id"`
	Name          string   `db:"name" json:"name"`
	Price         float64  `db:"price" json:"price"`
	DiscountPrice *float64 `db:"discount_price" json:"discount_price"`
	Image         string   `db:"image" json:"image"`
	CategoryID    int      `db:"category_id" json:"category_id"`
	ColorID       *int     `db:"color_id" json:"color_id,omitempty"`
	IsNew         bool     `db:"is_new" json:"is_new"`
	IsSale        bool     `db:"is_sale" json:"is_sale"`
}

// OnSale reports whether the discount is actually in effect: the sale flag
// alone is cosmetic unless a lower discount price is present.
func (p Product) OnSale() bool {
	return p.IsSale && p.DiscountPrice != nil && *p.DiscountPrice < p.Price
}

// EffectivePrice is the price shown and charged for the product.
func (p Product) EffectivePrice() float64 {
	if p.OnSale() {
		return *p.DiscountPrice
	}
	return p.Price
}
