package handlers

import (
	"log"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"delivery-ops-service/internal/api/dto"
	"delivery-ops-service/internal/domain"
	"delivery-ops-service/internal/ports"
)

// TokenIssuer signs a bearer token for an authenticated user.
type TokenIssuer interface {
	IssueToken(userID int64) (string, error)
}

// AuthHandler exposes user registration and login.
type AuthHandler struct {
	Users  ports.UserRepository
	Tokens TokenIssuer
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		writeError(w, r, http.StatusBadRequest, "Missing fields")
		return
	}

	existing, err := h.Users.GetUserByUsername(r.Context(), username)
	if err != nil {
		log.Printf("register failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Registration failed")
		return
	}
	if existing != nil {
		writeError(w, r, http.StatusBadRequest, "User already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("register failed: hash password: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Registration failed")
		return
	}

	id, err := h.Users.CreateUser(r.Context(), &domain.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		log.Printf("register failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Registration failed")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.RegisterResponse{Message: "User registered", UserID: id})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeStrict(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	user, err := h.Users.GetUserByUsername(r.Context(), strings.TrimSpace(req.Username))
	if err != nil {
		log.Printf("login failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Login failed")
		return
	}
	if user == nil {
		writeError(w, r, http.StatusBadRequest, "Invalid credentials")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid credentials")
		return
	}

	token, err := h.Tokens.IssueToken(user.ID)
	if err != nil {
		log.Printf("login failed: issue token: %v", err)
		writeError(w, r, http.StatusInternalServerError, "Login failed")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.LoginResponse{Token: token})
}
