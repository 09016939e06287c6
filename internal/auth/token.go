package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformedToken is returned when the token cannot be parsed at all.
	ErrMalformedToken = errors.New("auth: malformed token")
	// ErrInvalidSignature is returned when the signature does not verify
	// against the signing secret.
	ErrInvalidSignature = errors.New("auth: invalid token signature")
	// ErrTokenExpired is returned when the embedded expiry has passed.
	ErrTokenExpired = errors.New("auth: token expired")
	// ErrInvalidSubject is returned when the subject claim is missing or is
	// not a user ID.
	ErrInvalidSubject = errors.New("auth: invalid token subject")
)

// TokenManager mints and verifies HS256 bearer tokens carrying a user ID as
// subject and an expiry relative to issuance.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenManager creates a TokenManager signing with secret and issuing
// tokens valid for ttl.
func NewTokenManager(secret []byte, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue mints a signed token for the user and returns it with its expiry.
func (tm *TokenManager) Issue(userID uint64) (string, time.Time, error) {
	now := tm.now()
	expiresAt := now.Add(tm.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   strconv.FormatUint(userID, 10),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
	})

	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// Verify checks the token's structure, signature, and expiry, and returns
// the user ID carried in the subject claim.
func (tm *TokenManager) Verify(tokenString string) (uint64, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return tm.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(tm.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, ErrInvalidSignature
		case errors.Is(err, jwt.ErrTokenExpired):
			return 0, ErrTokenExpired
		default:
			return 0, ErrMalformedToken
		}
	}
	if !token.Valid {
		return 0, ErrMalformedToken
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || claims.Subject == "" {
		return 0, ErrInvalidSubject
	}

	return userID, nil
}
