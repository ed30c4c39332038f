package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// testAuthenticator uses low hashing costs so the suite stays fast;
// the cost knobs come from the explicit config, same as production
func testAuthenticator(ttl time.Duration) *Authenticator {
	return New(Config{
		Secret:      "test-secret",
		TokenTTL:    ttl,
		Memory:      8 * 1024,
		Time:        1,
		Parallelism: 1,
	})
}

func TestHashAndVerifyPassword(t *testing.T) {
	a := testAuthenticator(time.Hour)

	hash, err := a.HashPassword("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", hash)
	assert.True(t, strings.HasPrefix(hash, "$argon2id$"), "hash must be self-describing: %s", hash)

	assert.True(t, a.VerifyPassword("s3cret-password", hash))
	assert.False(t, a.VerifyPassword("wrong-password", hash))
}

func TestHashPasswordUsesFreshSalt(t *testing.T) {
	a := testAuthenticator(time.Hour)
	h1, err := a.HashPassword("same-input")
	require.NoError(t, err)
	h2, err := a.HashPassword("same-input")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestHashPasswordTooLong(t *testing.T) {
	a := testAuthenticator(time.Hour)
	_, err := a.HashPassword(strings.Repeat("x", MaxPasswordLen+1))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestVerifyLegacyBcryptHash(t *testing.T) {
	// Hashes from deployments that predate Argon2id must still verify
	legacy, err := bcrypt.GenerateFromPassword([]byte("old-password"), bcrypt.MinCost)
	require.NoError(t, err)

	a := testAuthenticator(time.Hour)
	assert.True(t, a.VerifyPassword("old-password", string(legacy)))
	assert.False(t, a.VerifyPassword("not-it", string(legacy)))
}

func TestVerifyRejectsMalformedHash(t *testing.T) {
	a := testAuthenticator(time.Hour)
	assert.False(t, a.VerifyPassword("anything", "not-a-hash"))
	assert.False(t, a.VerifyPassword("anything", "$argon2id$v=19$garbage"))
}

func TestIssueAndResolveToken(t *testing.T) {
	a := testAuthenticator(time.Hour)
	token, err := a.IssueToken("alice")
	require.NoError(t, err)

	subject, err := a.ResolveToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestResolveRejectsExpiredToken(t *testing.T) {
	// A negative TTL produces a token that is already expired
	a := testAuthenticator(-time.Minute)
	token, err := a.IssueToken("alice")
	require.NoError(t, err)

	_, err = a.ResolveToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolveRejectsTamperedToken(t *testing.T) {
	a := testAuthenticator(time.Hour)
	token, err := a.IssueToken("alice")
	require.NoError(t, err)

	// Flip one character of the signature
	last := token[len(token)-1]
	flipped := byte('A')
	if last == 'A' {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	_, err = a.ResolveToken(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolveRejectsWrongSecret(t *testing.T) {
	a := testAuthenticator(time.Hour)
	token, err := a.IssueToken("alice")
	require.NoError(t, err)

	other := New(Config{Secret: "different-secret"})
	_, err = other.ResolveToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestResolveRejectsGarbage(t *testing.T) {
	a := testAuthenticator(time.Hour)
	_, err := a.ResolveToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
