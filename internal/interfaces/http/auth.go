package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"finbook/internal/domain/user"
)

type AuthHandler struct {
	users    user.Repository
	provider user.IdentityProvider
}

func NewAuthHandler(users user.Repository, provider user.IdentityProvider) *AuthHandler {
	return &AuthHandler{users: users, provider: provider}
}

type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleSignup creates the account at the identity provider, then persists
// the local mirror keyed by the provider UID.
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding signup request: %v", err)
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	identity, err := h.provider.CreateUser(r.Context(), req.Email, req.Password)
	if err != nil {
		log.Printf("Provider rejected signup for %s: %v", req.Email, err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := h.users.Create(r.Context(), &user.User{ID: identity.UID, Email: identity.Email})
	if err != nil {
		log.Printf("Error persisting user mirror %s: %v", identity.UID, err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// HandleLogin resolves the provider account by email and returns the local
// mirror. The password is accepted but not checked against the provider;
// only an existence lookup happens. Kept to match the recorded behavior of
// the service this replaces.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding login request: %v", err)
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	identity, err := h.provider.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		log.Printf("Provider lookup failed for %s: %v", req.Email, err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	u, err := h.users.GetByUID(r.Context(), identity.UID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			respondError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("Error looking up user mirror %s: %v", identity.UID, err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, u)
}
