package repos

import (
	"nordhem/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ColorRepo struct{ db *sqlx.DB }

func NewColorRepo(db *sqlx.DB) *ColorRepo { return &ColorRepo{db: db} }

func (r *ColorRepo) List() ([]domain.Color, error) {
	out := []domain.Color{}
	err := r.db.Select(&out, `SELECT id, name, hex FROM colors ORDER BY id`)
	return out, err
}
