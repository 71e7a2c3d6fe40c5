package repos

import "errors"

// Absence of an entity is a normal outcome, reported through these
// sentinels rather than sql.ErrNoRows so callers never have to guess which
// lookup came up empty. Storage failures pass through untranslated.
var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
)
