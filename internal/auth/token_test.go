package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndVerify(t *testing.T) {
	tm := NewTokenManager([]byte("test-secret"), time.Hour)

	token, expiresAt, err := tm.Issue(42)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	userID, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), userID)
}

func TestTokenManager_ExpiryBoundary(t *testing.T) {
	issuedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ttl := time.Hour

	tm := NewTokenManager([]byte("test-secret"), ttl)
	tm.now = func() time.Time { return issuedAt }

	token, expiresAt, err := tm.Issue(7)
	require.NoError(t, err)
	assert.Equal(t, issuedAt.Add(ttl), expiresAt)

	// Just before expiry the token still verifies
	tm.now = func() time.Time { return issuedAt.Add(ttl - time.Second) }
	userID, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), userID)

	// Just after expiry it does not
	tm.now = func() time.Time { return issuedAt.Add(ttl + time.Second) }
	_, err = tm.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	issuer := NewTokenManager([]byte("right-secret"), time.Hour)
	verifier := NewTokenManager([]byte("wrong-secret"), time.Hour)

	token, _, err := issuer.Issue(1)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestTokenManager_TamperedSignature(t *testing.T) {
	tm := NewTokenManager([]byte("test-secret"), time.Hour)

	token, _, err := tm.Issue(1)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	if sig[5] == 'A' {
		sig[5] = 'B'
	} else {
		sig[5] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = tm.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestTokenManager_Malformed(t *testing.T) {
	tm := NewTokenManager([]byte("test-secret"), time.Hour)

	for _, token := range []string{"", "garbage", "not.a.jwt", "a.b"} {
		_, err := tm.Verify(token)
		assert.ErrorIs(t, err, ErrMalformedToken, "token %q", token)
	}
}

func TestTokenManager_MissingSubject(t *testing.T) {
	secret := []byte("test-secret")
	tm := NewTokenManager(secret, time.Hour)

	// A token signed with the right key but without a subject claim
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString(secret)
	require.NoError(t, err)

	_, err = tm.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidSubject)
}

func TestTokenManager_NonNumericSubject(t *testing.T) {
	secret := []byte("test-secret")
	tm := NewTokenManager(secret, time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "not-a-number",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString(secret)
	require.NoError(t, err)

	_, err = tm.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidSubject)
}

func TestTokenManager_RejectsUnsignedAlg(t *testing.T) {
	tm := NewTokenManager([]byte("test-secret"), time.Hour)

	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = tm.Verify(signed)
	assert.Error(t, err)
}
