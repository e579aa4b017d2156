package storefront

import (
	"math"
	"sync"
)

// LineItem is one product-and-quantity entry in the cart. Prices are
// snapshots taken when the item was added; later catalog changes do not
// touch existing lines.
type LineItem struct {
	ProductID     int
	Name          string
	Image         string
	UnitPrice     float64
	OriginalPrice float64
	OnSale        bool
	Quantity      int
}

// Cart is the session-local shopping cart. It is the only write path to its
// line items; mutations are atomic and immediately visible to all readers.
// Contents do not survive a process restart.
type Cart struct {
	mu       sync.Mutex
	shipping float64
	items    []LineItem
}

func NewCart(shippingCost float64) *Cart {
	return &Cart{shipping: shippingCost}
}

// AddItem merges into an existing line for the same product, adding the
// quantity rather than replacing it. Non-positive quantities count as 1.
func (c *Cart) AddItem(p Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity += qty
			return
		}
	}
	c.items = append(c.items, LineItem{
		ProductID:     p.ID,
		Name:          p.Name,
		Image:         p.Image,
		UnitPrice:     effectivePriceOf(p),
		OriginalPrice: p.Price,
		OnSale:        p.onSale(),
		Quantity:      qty,
	})
}

func (c *Cart) RemoveItem(productID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the stored quantity, clamped to a minimum of 1.
// Removal goes through RemoveItem, never through a zero quantity.
func (c *Cart) SetQuantity(productID, qty int) {
	if qty < 1 {
		qty = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = qty
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a snapshot of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Count is the total quantity across all lines (the header badge number).
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// Subtotal sums unit price times quantity, rounded to whole currency units.
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	sum := 0.0
	for _, it := range c.items {
		sum += it.UnitPrice * float64(it.Quantity)
	}
	return math.Round(sum)
}

// TotalSavings sums the discount over lines that were on sale when added.
func (c *Cart) TotalSavings() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	sum := 0.0
	for _, it := range c.items {
		if it.OnSale {
			sum += (it.OriginalPrice - it.UnitPrice) * float64(it.Quantity)
		}
	}
	return math.Round(sum)
}

func (c *Cart) Total() float64 {
	return c.Subtotal() + c.shipping
}

func (c *Cart) ShippingCost() float64 {
	return c.shipping
}
