package services_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storekeeper/internal/repos"
	"storekeeper/internal/services"
)

func TestVerifyCredentials(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	auth := services.NewAuthService(repos.NewCredentialRepo(db))

	assert.True(t, auth.Verify("test", "test"))
	assert.True(t, auth.Verify("kamil", "limak"))
	assert.False(t, auth.Verify("test", "wrong"))
	assert.False(t, auth.Verify("nobody", "test"))
	assert.False(t, auth.Verify("", ""))
}

func TestSeededPasswordsAreHashed(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	var hashes []string
	require.NoError(t, db.Select(&hashes, `SELECT password_hash FROM credentials`))
	require.NotEmpty(t, hashes)
	for _, h := range hashes {
		assert.True(t, strings.HasPrefix(h, "$2"), "unexpected hash format: %s", h)
		assert.NotContains(t, h, "limak")
	}
}
