package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User types carried in token claims.
const (
	UserTypeAdmin = "admin"
	UserTypeUser  = "user"
)

// Claims is the bearer-token payload. Role is set for admin tokens only.
type Claims struct {
	jwt.RegisteredClaims
	Email    string `json:"email"`
	UserType string `json:"user_type"`
	Role     string `json:"role,omitempty"`
}

// TokenManager signs and verifies HS256 bearer tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Generate issues a signed token for the given identity.
func (tm *TokenManager) Generate(subject, email, userType, role string) (string, error) {
	now := tm.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
		Email:    email,
		UserType: userType,
		Role:     role,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
}

// Verify parses and validates a token. Any failure, including expiry and
// tampering, yields nil claims; callers treat that as "no identity".
func (tm *TokenManager) Verify(tokenString string) *Claims {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return tm.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}
	return claims
}
