package repos

import (
	"errors"
	"strings"

	"nordhem/internal/domain"

	"github.com/jmoiron/sqlx"
)

// ErrDuplicateEmail reports an insert that lost to the unique email index.
var ErrDuplicateEmail = errors.New("email already registered")

type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) ByEmail(email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,email,name,password_hash,is_admin FROM users WHERE LOWER(email)=LOWER(?)`, email)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ByID(id int) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,email,name,password_hash,is_admin FROM users WHERE id=?`, id)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) Create(email, name, hash string) (*domain.User, error) {
	res, err := r.DB.Exec(`INSERT INTO users(email,name,password_hash,is_admin) VALUES(?,?,?,0)`,
		email, name, hash)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &domain.User{ID: int(id), Email: email, Name: name, Hash: hash}, nil
}
