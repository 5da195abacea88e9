// Package auth issues and verifies the signed bearer tokens used by the user
// service. Tokens are stateless HS256 JWTs: validity is determined purely by
// signature and expiry, there is no server-side revocation list.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/khushal/hello-grpc/internal/common"
)

// TokenKind discriminates the two token variants carried in the "kind" claim.
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// Claims is the claim set carried by every token: the registered sub/iat/exp
// claims plus the kind discriminator.
type Claims struct {
	jwt.RegisteredClaims
	Kind TokenKind `json:"kind"`
}

// UserID returns the token subject.
func (c *Claims) UserID() string {
	return c.Subject
}

// GenerateToken signs a token for userID with the given kind and validity,
// issued at the current time.
func GenerateToken(userID string, kind TokenKind, secretKey []byte, validityDuration time.Duration) (string, error) {
	return generateTokenAt(userID, kind, secretKey, validityDuration, time.Now())
}

func generateTokenAt(userID string, kind TokenKind, secretKey []byte, validityDuration time.Duration, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		Kind: kind,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseToken verifies tokenString against secretKey and returns its claims.
// Expired tokens yield common.ErrTokenExpired; any structural or signature
// problem yields common.ErrInvalidToken. Expiry is checked with zero leeway.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	return parseTokenAt(tokenString, secretKey, time.Now())
}

func parseTokenAt(tokenString string, secretKey []byte, now time.Time) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
