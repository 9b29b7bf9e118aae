package domain

import "time"

// TokenClaims is the decoded identity carried by a bearer token.
type TokenClaims struct {
	UserID   string `json:"sub"`
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token     string        `json:"token"`
	ExpiresIn time.Duration `json:"-"`
	User      UserSummary   `json:"user"`
}
