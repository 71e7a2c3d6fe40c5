package domain

// Category is a named grouping that owns zero or more products.
type Category struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Product belongs to exactly one category. The API exposes the category
// as its numeric id only, never as a nested object.
type Product struct {
	ID         int64  `db:"id" json:"id"`
	Name       string `db:"name" json:"name"`
	Desc       string `db:"desc" json:"desc"`
	CategoryID int64  `db:"category_id" json:"category"`
}

// ProductPatch carries the fields of a partial product update. A nil field
// was absent from the request and must leave the stored value untouched.
type ProductPatch struct {
	Name       *string
	Desc       *string
	CategoryID *int64
}
