package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"trafficportal/pkg/apperr"
)

// Claims are the bearer-token claims. Subject carries the username;
// SessionID and UserID tie the token to the session row minted at login.
type Claims struct {
	jwt.RegisteredClaims
	SessionID string `json:"session_id,omitempty"`
	UserID    int    `json:"user_id,omitempty"`
}

// TokenService mints and parses HS256 access tokens with a fixed TTL.
// There is no server-side revocation: a LOGGED_OUT session does not
// invalidate an already-issued token, expiry is the only mechanism.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Mint issues a token for subject with the given session and user ids.
func (s *TokenService) Mint(subject, sessionID string, userID int) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		SessionID: sessionID,
		UserID:    userID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse verifies signature and expiry. Any failure collapses into
// apperr.ErrInvalidToken; callers never learn why a token was rejected.
func (s *TokenService) Parse(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, apperr.ErrInvalidToken
	}
	return claims, nil
}
