package services

import (
	"strings"
	"unicode/utf8"

	"nordhem/internal/domain"
	"nordhem/internal/repos"
)

type CatalogService struct {
	Cats   *repos.CategoryRepo
	Colors *repos.ColorRepo
	Prods  *repos.ProductRepo
}

func NewCatalogService(cats *repos.CategoryRepo, colors *repos.ColorRepo, prods *repos.ProductRepo) *CatalogService {
	return &CatalogService{Cats: cats, Colors: colors, Prods: prods}
}

// ProductView is the wire shape for a product: the stored row plus the
// computed effective price. The discount price is nulled out unless the
// sale is actually in effect, so clients never see a stale discount.
type ProductView struct {
	domain.Product
	EffectivePrice float64 `json:"effective_price"`
}

func viewOf(p domain.Product) ProductView {
	v := ProductView{Product: p, EffectivePrice: p.EffectivePrice()}
	if !p.OnSale() {
		v.DiscountPrice = nil
	}
	return v
}

func viewsOf(ps []domain.Product) []ProductView {
	out := make([]ProductView, 0, len(ps))
	for _, p := range ps {
		out = append(out, viewOf(p))
	}
	return out
}

func (s *CatalogService) ListProducts() ([]ProductView, error) {
	ps, err := s.Prods.List()
	if err != nil {
		return nil, err
	}
	return viewsOf(ps), nil
}

func (s *CatalogService) ListNew() ([]ProductView, error) {
	ps, err := s.Prods.ListNew()
	if err != nil {
		return nil, err
	}
	return viewsOf(ps), nil
}

func (s *CatalogService) ListSale() ([]ProductView, error) {
	ps, err := s.Prods.ListSale()
	if err != nil {
		return nil, err
	}
	return viewsOf(ps), nil
}

func (s *CatalogService) GetProduct(id int) (ProductView, error) {
	p, err := s.Prods.Get(id)
	if err != nil {
		return ProductView{}, err
	}
	return viewOf(p), nil
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	return s.Cats.List()
}

func (s *CatalogService) ListColors() ([]domain.Color, error) {
	return s.Colors.List()
}

// SearchRow is the compact shape the search dropdown consumes.
type SearchRow struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Image     string   `json:"image"`
	Price     float64  `json:"price"`
	SalePrice *float64 `json:"salePrice"`
	IsSale    bool     `json:"is_sale"`
}

const searchLimit = 10

// Search matches the query as a case-insensitive substring of the product
// name. Queries shorter than two characters yield an empty result set.
func (s *CatalogService) Search(q string) ([]SearchRow, error) {
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) < 2 {
		return []SearchRow{}, nil
	}
	ps, err := s.Prods.SearchByName(q, searchLimit)
	if err != nil {
		return nil, err
	}
	out := make([]SearchRow, 0, len(ps))
	for _, p := range ps {
		row := SearchRow{ID: p.ID, Name: p.Name, Image: p.Image, Price: p.Price, IsSale: p.IsSale}
		if p.OnSale() {
			row.SalePrice = p.DiscountPrice
		}
		out = append(out, row)
	}
	return out, nil
}
