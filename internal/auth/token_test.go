package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, err := tm.Generate("user-1", "a@b.com", UserTypeAdmin, "super_admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims := tm.Verify(token)
	require.NotNil(t, claims)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, UserTypeAdmin, claims.UserType)
	assert.Equal(t, "super_admin", claims.Role)
}

func TestTokenExpiry(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)
	tm.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := tm.Generate("user-1", "a@b.com", UserTypeUser, "")
	require.NoError(t, err)

	verifier := NewTokenManager("test-secret", time.Hour)
	assert.Nil(t, verifier.Verify(token))
}

func TestTokenGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	assert.Nil(t, tm.Verify(""))
	assert.Nil(t, tm.Verify("not.a.token"))
	assert.Nil(t, tm.Verify("eyJhbGciOiJIUzI1NiJ9.e30.bad"))
}

func TestTokenWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret-one", time.Hour)
	token, err := tm.Generate("user-1", "a@b.com", UserTypeUser, "")
	require.NoError(t, err)

	other := NewTokenManager("secret-two", time.Hour)
	assert.Nil(t, other.Verify(token))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "s3cret"))
}
