package storefront

import (
	"sort"

	"github.com/spf13/cast"
)

// Product is the catalog row as served by the API.
type Product struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Price          float64  `json:"price"`
	DiscountPrice  *float64 `json:"discount_price"`
	Image          string   `json:"image"`
	CategoryID     int      `json:"category_id"`
	ColorID        *int     `json:"color_id"`
	IsNew          bool     `json:"is_new"`
	IsSale         bool     `json:"is_sale"`
	EffectivePrice float64  `json:"effective_price"`
}

// onSale mirrors the server-side invariant so the view-model stands on its
// own: the sale flag counts only with a lower discount price present.
func (p Product) onSale() bool {
	return p.IsSale && p.DiscountPrice != nil && *p.DiscountPrice < p.Price
}

func effectivePriceOf(p Product) float64 {
	if p.onSale() {
		return *p.DiscountPrice
	}
	return p.Price
}

type SortMode string

const (
	SortNone      SortMode = ""
	SortPriceAsc  SortMode = "price-asc"
	SortPriceDesc SortMode = "price-desc"
	SortNew       SortMode = "new"
	SortSale      SortMode = "sale"
)

// Filter is the user-selected catalog filter state. Empty id sets mean no
// restriction. Price bounds are kept as raw input strings; anything that does
// not parse as a number is treated as an absent bound.
type Filter struct {
	Categories []int
	Colors     []int
	MinPrice   string
	MaxPrice   string
	Sort       SortMode
	NewOnly    bool
}

func bound(s string) (float64, bool) {
	v, err := cast.ToFloat64E(s)
	if s == "" || err != nil {
		return 0, false
	}
	return v, true
}

func containsInt(xs []int, x int) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

// Apply runs the filter/sort pipeline over a catalog snapshot and returns the
// list to display, annotated prices included. Pure: the input slice is never
// mutated and the result is freshly allocated.
func Apply(products []Product, f Filter) []Product {
	min, hasMin := bound(f.MinPrice)
	max, hasMax := bound(f.MaxPrice)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		price := effectivePriceOf(p)
		if len(f.Categories) > 0 && !containsInt(f.Categories, p.CategoryID) {
			continue
		}
		if len(f.Colors) > 0 && (p.ColorID == nil || !containsInt(f.Colors, *p.ColorID)) {
			continue
		}
		if hasMin && price < min {
			continue
		}
		if hasMax && price > max {
			continue
		}
		if f.NewOnly && !p.IsNew {
			continue
		}
		if f.Sort == SortNew && !p.IsNew {
			continue
		}
		if f.Sort == SortSale && !p.IsSale {
			continue
		}
		p.EffectivePrice = price
		out = append(out, p)
	}

	switch f.Sort {
	case SortPriceAsc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EffectivePrice < out[j].EffectivePrice
		})
	case SortPriceDesc:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EffectivePrice > out[j].EffectivePrice
		})
	}
	return out
}
