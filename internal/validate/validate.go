package validate

import (
	"strconv"
	"strings"
)

// Field length limits, matching the column sizes in the store schema.
const (
	MaxCategoryName = 50
	MaxProductName  = 256
	MaxProductDesc  = 1000
)

// Text reports whether s has non-whitespace content and fits max. The blank
// check runs on the trimmed string, the length check on the raw one, so a
// value padded up to the limit with spaces still passes.
func Text(s string, max int) bool {
	return strings.TrimSpace(s) != "" && len(s) <= max
}

// Product reports whether a product name/desc pair is acceptable for
// creation. Both fields must carry content.
func Product(name, desc string) bool {
	return Text(name, MaxProductName) && Text(desc, MaxProductDesc)
}

// ID parses a path parameter as an entity id. Ids are positive integers
// assigned by the store; anything else can never match an entity.
func ID(s string) (int64, bool) {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	return n, err == nil && n > 0
}
