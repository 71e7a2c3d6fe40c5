package repos

import (
	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// A single connection serializes every mutation (SQLite only allows one
	// writer anyway) and keeps a :memory: database shared across the pool.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Ensure the credential table exists (idempotent; safe to run every start)
	if err := seedCredentials(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Categories
CREATE TABLE IF NOT EXISTS categories(
  id   INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL
);

-- Products
CREATE TABLE IF NOT EXISTS products(
  id          INTEGER PRIMARY KEY AUTOINCREMENT,
  name        TEXT NOT NULL,
  "desc"      TEXT NOT NULL DEFAULT '',
  category_id INTEGER NOT NULL REFERENCES categories(id)
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category_id);

-- Credentials
CREATE TABLE IF NOT EXISTS credentials(
  username      TEXT PRIMARY KEY,
  password_hash TEXT NOT NULL
);
`
	_, err := db.Exec(schema)
	return err
}

// seedCredentials ensures the static credential table exists (idempotent).
// Passwords are hashed before they ever touch the database.
func seedCredentials(db *sqlx.DB) error {
	creds := []struct{ user, raw string }{
		{"kamil", "limak"},
		{"bartosz", "denys"},
		{"test", "test"},
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, c := range creds {
		h, err := bcrypt.GenerateFromPassword([]byte(c.raw), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(`
			INSERT INTO credentials(username,password_hash)
			VALUES(?,?)
			ON CONFLICT(username) DO NOTHING
		`, c.user, string(h)); err != nil {
			return err
		}
	}

	return tx.Commit()
}
