package handler

import (
	"net/http"

	"liebrero-server/internal/domain"
)

// AuthHandler handles registration, login and the protected profile route.
type AuthHandler struct {
	authService domain.AuthService
	logger      domain.Logger
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService domain.AuthService, logger domain.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Registro creates a new account: 201 on success, 409 when the email is
// already registered, 400 when required fields are missing.
func (h *AuthHandler) Registro(w http.ResponseWriter, r *http.Request) {
	var input domain.RegistrationInput
	if err := decodeBody(r, &input); err != nil {
		writeDomainError(w, err)
		return
	}

	user, err := h.authService.Register(r.Context(), input)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"mensaje": "Usuario registrado exitosamente",
		"usuario": user.Summary(),
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login verifies credentials and returns a signed token with a user summary.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeDomainError(w, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email y contraseña son obligatorios")
		return
	}

	result, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token":     result.Token,
		"expiresIn": int64(result.ExpiresIn.Seconds()),
		"user":      result.User,
	})
}

// Perfil returns the identity decoded from the bearer token.
func (h *AuthHandler) Perfil(w http.ResponseWriter, r *http.Request) {
	claims, ok := GetClaimsFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "usuario no encontrado en el contexto")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"mensaje": "Perfil protegido",
		"usuario": claims,
	})
}
