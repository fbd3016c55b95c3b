package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/garnizeh/portfolio/internal/auth"
	"github.com/garnizeh/portfolio/internal/config"
)

type AuthHandler struct {
	cfg *config.Config
}

// NewAuthHandler creates the login handler for the configured administrator.
func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login checks the submitted credentials against the configured admin and
// issues a bearer token. Email comparison is case-insensitive; a wrong
// email and a wrong password are indistinguishable to the caller.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "Missing fields", http.StatusBadRequest)
		return
	}

	if !strings.EqualFold(req.Email, h.cfg.AdminEmail) || !auth.VerifyPassword(req.Password, h.cfg.AdminPasswordHash) {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	tokenStr, err := auth.IssueToken(h.cfg.JWTSecret, h.cfg.AdminEmail, auth.RoleAdmin, h.cfg.TokenDuration)
	if err != nil {
		http.Error(w, "Error signing token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, tokenResponse{AccessToken: tokenStr, TokenType: "bearer"}, http.StatusOK)
}
