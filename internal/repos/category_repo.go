package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"storekeeper/internal/domain"
)

type CategoryRepo struct{ db *sqlx.DB }

func NewCategoryRepo(db *sqlx.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) Create(name string) (domain.Category, error) {
	res, err := r.db.Exec(`INSERT INTO categories(name) VALUES(?)`, name)
	if err != nil {
		return domain.Category{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Category{}, err
	}
	return domain.Category{ID: id, Name: name}, nil
}

func (r *CategoryRepo) ByID(id int64) (domain.Category, error) {
	var c domain.Category
	err := r.db.Get(&c, `SELECT id, name FROM categories WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Category{}, ErrCategoryNotFound
	}
	return c, err
}

// List returns all categories in insertion order.
func (r *CategoryRepo) List() ([]domain.Category, error) {
	out := []domain.Category{}
	err := r.db.Select(&out, `SELECT id, name FROM categories ORDER BY id`)
	return out, err
}

func (r *CategoryRepo) UpdateName(id int64, name string) error {
	res, err := r.db.Exec(`UPDATE categories SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

// DeleteCascade removes a category together with every product that
// references it, in one transaction: either both survive or neither does.
func (r *CategoryRepo) DeleteCascade(id int64) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM products WHERE category_id = ?`, id); err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM categories WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrCategoryNotFound
	}

	return tx.Commit()
}
