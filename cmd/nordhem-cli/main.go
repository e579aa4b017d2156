package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cast"

	"nordhem/internal/storefront"
)

func main() {
	var (
		apiURL     = flag.String("api", "http://localhost:5000", "storefront API base URL")
		stateDir   = flag.String("state", defaultStateDir(), "directory for persisted client state")
		categories = flag.String("category", "", "comma-separated category ids to filter on")
		colors     = flag.String("color", "", "comma-separated color ids to filter on")
		minPrice   = flag.String("min", "", "minimum effective price")
		maxPrice   = flag.String("max", "", "maximum effective price")
		sortMode   = flag.String("sort", "", "sort mode: price-asc, price-desc, new, sale")
		newOnly    = flag.Bool("new", false, "show new arrivals only")
		search     = flag.String("search", "", "search products by name")
		fav        = flag.Int("fav", 0, "toggle favorite for a product id")
		showFavs   = flag.Bool("favorites", false, "list favorite products")
		add        = flag.String("add", "", "add to cart, e.g. 2x3,4 (product id x quantity)")
		shipping   = flag.Float64("shipping", defaultShipping(), "flat shipping cost in KR")
		email      = flag.String("email", "", "log in with this email")
		password   = flag.String("password", "", "password for -email")
	)
	flag.Parse()

	client := storefront.NewClient(*apiURL)
	favs := storefront.OpenFavorites(filepath.Join(*stateDir, "favorites.json"))

	if *email != "" {
		sess, err := client.Login(*email, *password)
		if err != nil {
			log.Fatalf("login: %v", err)
		}
		me, err := client.Me(sess.Token)
		if err != nil {
			log.Fatalf("verify token: %v", err)
		}
		fmt.Printf("Inloggad som %s\n\n", me.Email)
	}

	switch {
	case *search != "":
		runSearch(client, *search)
	case *fav != 0:
		on, err := favs.Toggle(*fav)
		if err != nil {
			log.Fatalf("save favorites: %v", err)
		}
		if on {
			fmt.Printf("Produkt %d tillagd i favoriter\n", *fav)
		} else {
			fmt.Printf("Produkt %d borttagen ur favoriter\n", *fav)
		}
	case *showFavs:
		runFavorites(client, favs)
	case *add != "":
		runCheckout(client, *add, *shipping)
	default:
		runCatalog(client, favs, storefront.Filter{
			Categories: idList(*categories),
			Colors:     idList(*colors),
			MinPrice:   *minPrice,
			MaxPrice:   *maxPrice,
			Sort:       storefront.SortMode(*sortMode),
			NewOnly:    *newOnly,
		})
	}
}

func defaultStateDir() string {
	if d := os.Getenv("NORDHEM_STATE"); d != "" {
		return d
	}
	if d, err := os.UserConfigDir(); err == nil {
		return filepath.Join(d, "nordhem")
	}
	return ".nordhem"
}

// defaultShipping reads SHIPPING_COST so the flat rate can be configured
// without repeating -shipping on every invocation.
func defaultShipping() float64 {
	if v := os.Getenv("SHIPPING_COST"); v != "" {
		if cost, err := cast.ToFloat64E(v); err == nil && cost >= 0 {
			return cost
		}
	}
	return 29
}

// idList parses "1,2,3"; entries that are not numbers are dropped.
func idList(s string) []int {
	var out []int
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part == "" {
			continue
		}
		if id, err := cast.ToIntE(part); err == nil && id > 0 {
			out = append(out, id)
		}
	}
	return out
}

func runCatalog(client *storefront.Client, favs *storefront.Favorites, filter storefront.Filter) {
	products, err := client.Products()
	if err != nil {
		log.Fatalf("fetch products: %v", err)
	}
	shown := storefront.Apply(products, filter)
	if len(shown) == 0 {
		fmt.Println("Inga produkter matchade filtret.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 2, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAMN\tPRIS\t\t")
	for _, p := range shown {
		marks := ""
		if p.IsNew {
			marks += " NYHET"
		}
		if favs.IsFavorite(p.ID) {
			marks += " ♥"
		}
		if p.EffectivePrice < p.Price {
			fmt.Fprintf(w, "%d\t%s\t%.0f KR\t(ord. %.0f KR)\tREA%s\n", p.ID, p.Name, p.EffectivePrice, p.Price, marks)
		} else {
			fmt.Fprintf(w, "%d\t%s\t%.0f KR\t\t%s\n", p.ID, p.Name, p.EffectivePrice, strings.TrimSpace(marks))
		}
	}
	w.Flush()
}

func runSearch(client *storefront.Client, q string) {
	rows, err := client.Search(q)
	if err != nil {
		log.Fatalf("search: %v", err)
	}
	if len(rows) == 0 {
		fmt.Println("Inga träffar.")
		return
	}
	for _, r := range rows {
		if r.SalePrice != nil {
			fmt.Printf("%d  %s  %.0f KR (ord. %.0f KR)\n", r.ID, r.Name, *r.SalePrice, r.Price)
		} else {
			fmt.Printf("%d  %s  %.0f KR\n", r.ID, r.Name, r.Price)
		}
	}
}

func runFavorites(client *storefront.Client, favs *storefront.Favorites) {
	ids := favs.IDs()
	if len(ids) == 0 {
		fmt.Println("Inga favoriter sparade.")
		return
	}
	products, err := client.Products()
	if err != nil {
		log.Fatalf("fetch products: %v", err)
	}
	byID := make(map[int]storefront.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			fmt.Printf("%d  %s  %.0f KR\n", p.ID, p.Name, p.EffectivePrice)
		}
	}
}

// runCheckout builds a cart from the -add argument and prints the order summary.
func runCheckout(client *storefront.Client, addSpec string, shippingCost float64) {
	cart := storefront.NewCart(shippingCost)
	for _, part := range strings.Split(addSpec, ",") {
		if part = strings.TrimSpace(part); part == "" {
			continue
		}
		idPart, qtyPart, _ := strings.Cut(part, "x")
		id, err := cast.ToIntE(idPart)
		if err != nil || id <= 0 {
			log.Fatalf("bad -add entry %q", part)
		}
		qty := 1
		if qtyPart != "" {
			if q, err := cast.ToIntE(qtyPart); err == nil {
				qty = q
			}
		}
		p, err := client.Product(id)
		if err != nil {
			log.Fatalf("fetch product %d: %v", id, err)
		}
		cart.AddItem(p, qty)
	}

	fmt.Println("Varukorg")
	for _, it := range cart.Items() {
		fmt.Printf("  %d × %s  à %.0f KR = %.0f KR\n", it.Quantity, it.Name, it.UnitPrice, it.UnitPrice*float64(it.Quantity))
	}
	fmt.Printf("Delsumma\t%.0f KR\n", cart.Subtotal())
	if s := cart.TotalSavings(); s > 0 {
		fmt.Printf("Du sparar\t%.0f KR\n", s)
	}
	fmt.Printf("Fraktavgifter\t%.0f KR\n", cart.ShippingCost())
	fmt.Printf("TOTALT\t\t%.0f KR\n", cart.Total())
}
