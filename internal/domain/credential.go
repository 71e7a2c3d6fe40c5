package domain

// Credential is one row of the static credential table. Password is stored
// as a bcrypt hash and only ever compared through the hash.
type Credential struct {
	Username string `db:"username"`
	Hash     string `db:"password_hash"`
}
