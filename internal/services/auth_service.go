package services

import (
	"golang.org/x/crypto/bcrypt"

	"storekeeper/internal/repos"
)

// AuthService checks request credentials against the static credential
// table. There are no sessions or tokens; every protected request is
// verified on its own.
type AuthService struct {
	Creds *repos.CredentialRepo
}

func NewAuthService(creds *repos.CredentialRepo) *AuthService {
	return &AuthService{Creds: creds}
}

// Verify reports whether secret matches the stored hash for username.
// Unknown users and bad secrets look the same to the caller.
func (s *AuthService) Verify(username, secret string) bool {
	cred, err := s.Creds.ByUsername(username)
	if err != nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(cred.Hash), []byte(secret)) == nil
}
