package repos

import (
	"nordhem/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `id, name, price, discount_price, image, category_id, color_id, is_new, is_sale`

func (r *ProductRepo) List() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  ORDER BY id
	`)
	return out, err
}

func (r *ProductRepo) ListNew() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE is_new = 1
	  ORDER BY id
	`)
	return out, err
}

func (r *ProductRepo) ListSale() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE is_sale = 1
	  ORDER BY id
	`)
	return out, err
}

func (r *ProductRepo) Get(id int) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE id = ?
	`, id)
	return p, err
}

// SearchByName does a case-insensitive substring match on the product name.
func (r *ProductRepo) SearchByName(q string, limit int) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE LOWER(name) LIKE '%' || LOWER(?) || '%'
	  ORDER BY name
	  LIMIT ?
	`, q, limit)
	return out, err
}
