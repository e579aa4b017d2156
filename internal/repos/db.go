package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Seed baseline catalog data if DB is empty (idempotent; safe on every start)
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Categories
CREATE TABLE IF NOT EXISTS categories(
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name_nocase ON categories(LOWER(name));

-- Colors
CREATE TABLE IF NOT EXISTS colors(
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  hex TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_colors_name_nocase ON colors(LOWER(name));

-- Products
CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price >= 0),
  discount_price NUMERIC CHECK (discount_price IS NULL OR discount_price >= 0),
  image TEXT NOT NULL DEFAULT '',
  category_id INTEGER NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
  color_id INTEGER REFERENCES colors(id) ON DELETE SET NULL,
  is_new INTEGER NOT NULL DEFAULT 0,
  is_sale INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);
CREATE INDEX IF NOT EXISTS idx_products_color    ON products(color_id);
CREATE INDEX IF NOT EXISTS idx_products_name     ON products(LOWER(name));

-- Users
CREATE TABLE IF NOT EXISTS users(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  is_admin INTEGER NOT NULL DEFAULT 0,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM categories`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo categories/colors/products")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO categories(id,name) VALUES
	  (1,'Vaser'),
	  (2,'Ljusstakar'),
	  (3,'Textilier'),
	  (4,'Belysning')`)

	tx.MustExec(`INSERT INTO colors(id,name,hex) VALUES
	  (1,'Terrakotta','#C8553D'),
	  (2,'Beige','#E8DCCA'),
	  (3,'Grön','#5B7553'),
	  (4,'Blå','#3C5A78')`)

	tx.MustExec(`INSERT INTO products(id,name,price,discount_price,image,category_id,color_id,is_new,is_sale) VALUES
	  (1,'Vas Sigrid',349,NULL,'/images/vas-sigrid.jpg',1,1,1,0),
	  (2,'Vas Alma',249,199,'/images/vas-alma.jpg',1,2,0,1),
	  (3,'Ljusstake Ebba',199,NULL,'/images/ljusstake-ebba.jpg',2,NULL,0,0),
	  (4,'Ljusstake Rut',299,149,'/images/ljusstake-rut.jpg',2,2,0,1),
	  (5,'Pläd Hilda',499,NULL,'/images/plad-hilda.jpg',3,3,1,0),
	  (6,'Kudde Greta',179,NULL,'/images/kudde-greta.jpg',3,4,0,0),
	  (7,'Bordslampa Majken',899,749,'/images/bordslampa-majken.jpg',4,2,1,1),
	  (8,'Taklampa Svea',1299,NULL,'/images/taklampa-svea.jpg',4,NULL,0,0)`)

	return tx.Commit()
}
