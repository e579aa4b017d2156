package storefront

import "testing"

func fp(v float64) *float64 { return &v }

func TestAddItemMergesQuantities(t *testing.T) {
	cart := NewCart(29)
	p := Product{ID: 1, Name: "Vas Alma", Price: 100}

	cart.AddItem(p, 2)
	cart.AddItem(p, 3)

	items := cart.Items()
	if len(items) != 1 {
		t.Fatalf("expected one line item, got %d", len(items))
	}
	if items[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", items[0].Quantity)
	}
}

func TestAddItemNonPositiveQuantityCountsAsOne(t *testing.T) {
	cart := NewCart(29)
	cart.AddItem(Product{ID: 1, Price: 100}, 0)
	cart.AddItem(Product{ID: 2, Price: 100}, -3)
	for _, it := range cart.Items() {
		if it.Quantity != 1 {
			t.Fatalf("product %d: expected quantity 1, got %d", it.ProductID, it.Quantity)
		}
	}
}

func TestSetQuantityClampsToOne(t *testing.T) {
	cart := NewCart(29)
	cart.AddItem(Product{ID: 1, Price: 100}, 2)

	cart.SetQuantity(1, 0)
	if got := cart.Items()[0].Quantity; got != 1 {
		t.Fatalf("expected clamped quantity 1, got %d", got)
	}

	cart.SetQuantity(1, 7)
	if got := cart.Items()[0].Quantity; got != 7 {
		t.Fatalf("expected quantity 7, got %d", got)
	}
}

func TestRemoveItemAndClear(t *testing.T) {
	cart := NewCart(29)
	cart.AddItem(Product{ID: 1, Price: 100}, 1)
	cart.AddItem(Product{ID: 2, Price: 50}, 1)

	cart.RemoveItem(1)
	cart.RemoveItem(99) // absent id is a no-op
	if len(cart.Items()) != 1 || cart.Items()[0].ProductID != 2 {
		t.Fatalf("unexpected items after remove: %+v", cart.Items())
	}

	cart.Clear()
	if len(cart.Items()) != 0 || cart.Count() != 0 {
		t.Fatal("expected empty cart after clear")
	}
}

func TestSubtotalAndTotal(t *testing.T) {
	cart := NewCart(29)
	cart.AddItem(Product{ID: 1, Price: 100}, 2)
	cart.AddItem(Product{ID: 2, Price: 50}, 1)

	if got := cart.Subtotal(); got != 250 {
		t.Fatalf("expected subtotal 250, got %v", got)
	}
	if got := cart.Total(); got != 279 {
		t.Fatalf("expected total 279, got %v", got)
	}
}

func TestTotalSavingsCountsOnlySaleLines(t *testing.T) {
	cart := NewCart(29)
	cart.AddItem(Product{ID: 1, Price: 249, DiscountPrice: fp(199), IsSale: true}, 2)
	cart.AddItem(Product{ID: 2, Price: 100}, 3)

	if got := cart.TotalSavings(); got != 100 {
		t.Fatalf("expected savings 100, got %v", got)
	}
	// unit price snapshots the effective price at add time
	if got := cart.Subtotal(); got != 698 {
		t.Fatalf("expected subtotal 698, got %v", got)
	}
}

func TestTotalSavingsZeroWithoutSales(t *testing.T) {
	cart := NewCart(29)
	cart.AddItem(Product{ID: 1, Price: 100}, 2)
	if got := cart.TotalSavings(); got != 0 {
		t.Fatalf("expected zero savings, got %v", got)
	}
}

func TestCountSumsQuantities(t *testing.T) {
	cart := NewCart(29)
	cart.AddItem(Product{ID: 1, Price: 100}, 2)
	cart.AddItem(Product{ID: 2, Price: 50}, 3)
	if got := cart.Count(); got != 5 {
		t.Fatalf("expected badge count 5, got %d", got)
	}
}

func TestAddedLineIgnoresLaterCatalogChanges(t *testing.T) {
	cart := NewCart(29)
	p := Product{ID: 1, Price: 249, DiscountPrice: fp(199), IsSale: true}
	cart.AddItem(p, 1)

	// the catalog copy the caller holds may change; the line keeps its snapshot
	p.DiscountPrice = fp(50)
	if got := cart.Items()[0].UnitPrice; got != 199 {
		t.Fatalf("expected snapshotted unit price 199, got %v", got)
	}
}
