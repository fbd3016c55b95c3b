package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the only role this system issues.
const RoleAdmin = "admin"

// ErrInvalidToken covers every validation failure: bad signature, malformed
// claims, expired token. Callers cannot tell them apart.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the identity carried by a verified token.
type Claims struct {
	Email string
	Role  string
}

// IssueToken signs an HS256 token for the subject with the given role and
// an absolute expiry of now plus ttl.
func IssueToken(secret, email, role string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  email,
		"role": role,
		"exp":  time.Now().Add(ttl).Unix(),
	})

	return token.SignedString([]byte(secret))
}

// ValidateToken checks signature integrity and expiry and returns the
// decoded claims. Only HMAC-signed tokens are accepted.
func ValidateToken(secret, tokenStr string) (Claims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || role == "" {
		return Claims{}, ErrInvalidToken
	}

	return Claims{Email: sub, Role: role}, nil
}
