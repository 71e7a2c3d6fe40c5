package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"storekeeper/internal/domain"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

// Create inserts a product after checking, in the same transaction, that the
// referenced category still exists. A concurrent cascade delete therefore
// either runs before this (category gone, ErrCategoryNotFound) or after it
// (the new product is swept up with the rest).
func (r *ProductRepo) Create(name, desc string, categoryID int64) (domain.Product, error) {
	tx, err := r.db.Beginx()
	if err != nil {
		return domain.Product{}, err
	}
	defer func() { _ = tx.Rollback() }()

	var n int
	if err := tx.Get(&n, `SELECT COUNT(*) FROM categories WHERE id = ?`, categoryID); err != nil {
		return domain.Product{}, err
	}
	if n == 0 {
		return domain.Product{}, ErrCategoryNotFound
	}

	res, err := tx.Exec(`INSERT INTO products(name,"desc",category_id) VALUES(?,?,?)`,
		name, desc, categoryID)
	if err != nil {
		return domain.Product{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return domain.Product{}, err
	}
	if err := tx.Commit(); err != nil {
		return domain.Product{}, err
	}
	return domain.Product{ID: id, Name: name, Desc: desc, CategoryID: categoryID}, nil
}

func (r *ProductRepo) ByID(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT id, name, "desc", category_id FROM products WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Product{}, ErrProductNotFound
	}
	return p, err
}

// ListAll returns every product in insertion order.
func (r *ProductRepo) ListAll() ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `SELECT id, name, "desc", category_id FROM products ORDER BY id`)
	return out, err
}

// ListByCategory returns the products owned by a category, insertion order.
// An unknown category yields an empty slice, not an error.
func (r *ProductRepo) ListByCategory(categoryID int64) ([]domain.Product, error) {
	out := []domain.Product{}
	err := r.db.Select(&out, `
		SELECT id, name, "desc", category_id FROM products
		WHERE category_id = ?
		ORDER BY id
	`, categoryID)
	return out, err
}

// Update applies the present fields of patch in one transaction. The caller
// is expected to have validated field contents; existence of the product and
// of a newly assigned category are checked here, inside the transaction, so
// nothing is applied when any of them is missing.
func (r *ProductRepo) Update(id int64, patch domain.ProductPatch) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var n int
	if err := tx.Get(&n, `SELECT COUNT(*) FROM products WHERE id = ?`, id); err != nil {
		return err
	}
	if n == 0 {
		return ErrProductNotFound
	}

	if patch.CategoryID != nil {
		if err := tx.Get(&n, `SELECT COUNT(*) FROM categories WHERE id = ?`, *patch.CategoryID); err != nil {
			return err
		}
		if n == 0 {
			return ErrCategoryNotFound
		}
		if _, err := tx.Exec(`UPDATE products SET category_id = ? WHERE id = ?`, *patch.CategoryID, id); err != nil {
			return err
		}
	}
	if patch.Name != nil {
		if _, err := tx.Exec(`UPDATE products SET name = ? WHERE id = ?`, *patch.Name, id); err != nil {
			return err
		}
	}
	if patch.Desc != nil {
		if _, err := tx.Exec(`UPDATE products SET "desc" = ? WHERE id = ?`, *patch.Desc, id); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *ProductRepo) Delete(id int64) error {
	res, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProductNotFound
	}
	return nil
}
