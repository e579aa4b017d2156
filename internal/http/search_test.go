package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
)

type searchRow struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Image     string   `json:"image"`
	Price     float64  `json:"price"`
	SalePrice *float64 `json:"salePrice"`
	IsSale    bool     `json:"is_sale"`
}

func TestSearchShortQueryYieldsEmptyArray(t *testing.T) {
	app := newTestApp(t)

	// %C3%A4 is "ä": one character, two bytes, still below the minimum.
	for _, q := range []string{"", "v", "%20", "%C3%A4"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/products/search?q="+q, nil))
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("q=%q: expected 200, got %d", q, resp.StatusCode)
		}
		var rows []searchRow
		decodeBody(t, resp, &rows)
		if rows == nil || len(rows) != 0 {
			t.Fatalf("q=%q: expected empty array, got %v", q, rows)
		}
	}
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	app := newTestApp(t)

	for _, q := range []string{"va", "VA", "Va"} {
		resp, err := app.Test(httptest.NewRequest("GET", "/api/products/search?q="+q, nil))
		if err != nil {
			t.Fatal(err)
		}
		var rows []searchRow
		decodeBody(t, resp, &rows)

		names := map[string]searchRow{}
		for _, r := range rows {
			names[r.Name] = r
		}
		if _, ok := names["Vas Alma"]; !ok {
			t.Fatalf("q=%q: expected Vas Alma in results, got %v", q, rows)
		}
		if _, ok := names["Vas Sigrid"]; !ok {
			t.Fatalf("q=%q: expected Vas Sigrid in results, got %v", q, rows)
		}

		// sale price only on the product with a live discount
		if names["Vas Alma"].SalePrice == nil || *names["Vas Alma"].SalePrice != 199 {
			t.Fatalf("expected Vas Alma salePrice 199, got %+v", names["Vas Alma"])
		}
		if names["Vas Sigrid"].SalePrice != nil {
			t.Fatalf("expected Vas Sigrid without salePrice, got %+v", names["Vas Sigrid"])
		}
	}
}

func TestSearchOrderedAlphabetically(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/products/search?q=la", nil))
	if err != nil {
		t.Fatal(err)
	}
	var rows []searchRow
	decodeBody(t, resp, &rows)
	if len(rows) < 2 {
		t.Fatalf("expected several matches for 'la', got %v", rows)
	}
	if !sort.SliceIsSorted(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name }) {
		t.Fatalf("expected alphabetical order, got %v", rows)
	}
}
