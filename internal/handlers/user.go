// internal/handlers/user.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/codeuno/server/internal/auth"
	"github.com/codeuno/server/internal/database"
	"github.com/codeuno/server/internal/models"
)

// CreateUserHandler registers a new user.
func CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Language string `json:"language"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Password == "" {
		writeError(w, http.StatusBadRequest, "password is required")
		return
	}
	// An omitted username registers an ephemeral guest with a generated
	// display name.
	ephemeral := false
	if req.Username == "" {
		req.Username = GenerateBotName()
		ephemeral = true
	}
	user := &models.User{
		Username:    req.Username,
		Password:    req.Password,
		Language:    req.Language,
		IsEphemeral: ephemeral,
	}
	if err := database.CreateUser(r.Context(), user); err != nil {
		writeError(w, http.StatusConflict, "could not create user")
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// LoginHandler authenticates and issues a session token.
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST required")
		return
	}
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	user, err := database.AuthenticateUser(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	token, err := auth.CreateJWT(user.ID.String())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue session")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "session",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]interface{}{"token": token, "user": user})
}

// authenticatedUserID resolves the requesting user from their session.
func authenticatedUserID(r *http.Request) (uuid.UUID, error) {
	sub, err := auth.AuthenticateJWT(bearerToken(r))
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.Parse(sub)
}
