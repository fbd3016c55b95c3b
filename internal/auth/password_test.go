package auth_test

import (
	"testing"

	"github.com/garnizeh/portfolio/internal/auth"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := auth.HashPassword("hunter2")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("hash equals plaintext")
	}

	if !auth.VerifyPassword("hunter2", hash) {
		t.Fatal("correct password rejected")
	}
	if auth.VerifyPassword("wrongpw", hash) {
		t.Fatal("wrong password accepted")
	}
	if auth.VerifyPassword("", hash) {
		t.Fatal("empty password accepted")
	}
}

func TestVerifyPasswordBadHash(t *testing.T) {
	// malformed hash is a mismatch, not a panic or error
	if auth.VerifyPassword("anything", "not-a-bcrypt-hash") {
		t.Fatal("malformed hash accepted")
	}
}
