package repos

import (
	"github.com/jmoiron/sqlx"

	"storekeeper/internal/domain"
)

type CredentialRepo struct{ db *sqlx.DB }

func NewCredentialRepo(db *sqlx.DB) *CredentialRepo { return &CredentialRepo{db: db} }

func (r *CredentialRepo) ByUsername(username string) (*domain.Credential, error) {
	var cred domain.Credential
	err := r.db.Get(&cred, `SELECT username, password_hash FROM credentials WHERE username = ?`, username)
	if err != nil {
		return nil, err
	}
	return &cred, nil
}
