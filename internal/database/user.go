// internal/database/user.go
package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/codeuno/server/internal/auth"
	"github.com/codeuno/server/internal/models"
)

// CreateUser hashes the password and inserts the user row.
func CreateUser(ctx context.Context, user *models.User) error {
	hashed, err := auth.HashSecret(user.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if user.ID == uuid.Nil {
		user.ID, _ = uuid.NewRandom()
	}
	q := `
	INSERT INTO users (id, username, password, language, is_ephemeral, is_admin)
	VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = DB.Exec(ctx, q, user.ID, user.Username, hashed, user.Language, user.IsEphemeral, user.IsAdmin)
	user.Password = ""
	return err
}

// GetUserByUsername fetches a user row including the password hash.
func GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	q := `
	SELECT id, username, password, language, is_ephemeral, is_admin
	FROM users WHERE username = $1
	`
	err := DB.QueryRow(ctx, q, username).Scan(
		&u.ID, &u.Username, &u.Password, &u.Language, &u.IsEphemeral, &u.IsAdmin,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// AuthenticateUser verifies credentials and returns the user on success.
func AuthenticateUser(ctx context.Context, username, password string) (*models.User, error) {
	u, err := GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}
	ok, err := auth.VerifySecret(password, u.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("invalid credentials")
	}
	u.Password = ""
	return u, nil
}
