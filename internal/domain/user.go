package domain

type User struct {
	ID      int    `db:"id" json:"id"`
	Email   string `db:"email" json:"email"`
	Name    string `db:"name" json:"-"`
	Hash    string `db:"password_hash" json:"-"`
	IsAdmin bool   `db:"is_admin" json:"is_admin"`
}
