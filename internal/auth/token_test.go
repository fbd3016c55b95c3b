package auth_test

import (
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/garnizeh/portfolio/internal/auth"
	"github.com/golang-jwt/jwt/v5"
)

func TestIssueAndValidateToken(t *testing.T) {
	secret := "testsecret"

	tok, err := auth.IssueToken(secret, "admin@portfolio.dev", auth.RoleAdmin, 12*time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if tok == "" {
		t.Fatal("empty token")
	}

	claims, err := auth.ValidateToken(secret, tok)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.Email != "admin@portfolio.dev" {
		t.Fatalf("unexpected subject %q", claims.Email)
	}
	if claims.Role != auth.RoleAdmin {
		t.Fatalf("unexpected role %q", claims.Role)
	}

	// expiry claim must sit inside the configured window
	parsed, err := jwt.Parse(tok, func(token *jwt.Token) (any, error) { return []byte(secret), nil })
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		t.Fatalf("missing exp claim: %v", err)
	}
	if exp.Before(time.Now()) || exp.After(time.Now().Add(12*time.Hour+time.Minute)) {
		t.Fatalf("exp outside window: %v", exp)
	}
}

func TestValidateTokenFailures(t *testing.T) {
	secret := "testsecret"

	valid, err := auth.IssueToken(secret, "admin@portfolio.dev", auth.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	expired, err := auth.IssueToken(secret, "admin@portfolio.dev", auth.RoleAdmin, -time.Hour)
	if err != nil {
		t.Fatalf("issue expired token: %v", err)
	}
	otherSecret, err := auth.IssueToken("othersecret", "admin@portfolio.dev", auth.RoleAdmin, time.Hour)
	if err != nil {
		t.Fatalf("issue foreign token: %v", err)
	}

	// flip a character in the signature segment
	tampered := valid[:len(valid)-2] + "xx"

	noSub := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": auth.RoleAdmin,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	noSubStr, err := noSub.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	cases := []struct {
		name  string
		token string
	}{
		{name: "Expired", token: expired},
		{name: "WrongSecret", token: otherSecret},
		{name: "Tampered", token: tampered},
		{name: "Garbage", token: "not.a.token"},
		{name: "Empty", token: ""},
		{name: "MissingSubject", token: noSubStr},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := auth.ValidateToken(secret, c.token); !errors.Is(err, auth.ErrInvalidToken) {
				t.Fatalf("want ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestValidateTokenRejectsNonHMAC(t *testing.T) {
	// alg=none token: signed segment empty
	header := `{"alg":"none","typ":"JWT"}`
	payload := `{"sub":"admin@portfolio.dev","role":"admin"}`
	tok := encodeSegment(header) + "." + encodeSegment(payload) + "."

	if _, err := auth.ValidateToken("testsecret", tok); !errors.Is(err, auth.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken for alg=none, got %v", err)
	}
}

func encodeSegment(s string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(s))
}
