package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"liebrero-server/internal/domain"
	apperrors "liebrero-server/pkg/errors"
)

type contextKey string

const (
	claimsContextKey    contextKey = "claims"
	tokenContextKey     contextKey = "token"
	requestIDContextKey contextKey = "requestID"
)

// GetClaimsFromContext extracts the authenticated identity from request context
func GetClaimsFromContext(r *http.Request) (*domain.TokenClaims, bool) {
	claims, ok := r.Context().Value(claimsContextKey).(*domain.TokenClaims)
	return claims, ok
}

// GetTokenFromContext extracts the raw bearer token from request context
func GetTokenFromContext(r *http.Request) (string, bool) {
	token, ok := r.Context().Value(tokenContextKey).(string)
	return token, ok
}

// GetRequestIDFromContext extracts the request id from request context
func GetRequestIDFromContext(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(requestIDContextKey).(string)
	return id, ok
}

// writeJSON writes a JSON response (helper function)
func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeDomainError translates a service error into an HTTP response through
// the application error taxonomy.
func writeDomainError(w http.ResponseWriter, err error) {
	appErr := toAppError(err)
	writeError(w, appErr.StatusCode, appErr.Message)
}

// toAppError maps domain sentinels onto typed application errors. Store and
// storage failures fall through to 500: "not found" is never conflated with
// an internal error.
func toAppError(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return apperrors.NewValidationError(verr.Error())
	case errors.Is(err, domain.ErrUnknownField):
		return apperrors.NewValidationError("campo de búsqueda no permitido")
	case errors.Is(err, domain.ErrEmailTaken):
		return apperrors.NewConflictError("el email ya está registrado")
	case errors.Is(err, domain.ErrAmbiguousMatch):
		return apperrors.NewConflictError("la búsqueda coincide con más de un registro")
	case errors.Is(err, domain.ErrInvalidCredentials):
		return apperrors.NewUnauthorizedError("credenciales inválidas")
	case errors.Is(err, domain.ErrInvalidToken):
		return apperrors.NewUnauthorizedError("token inválido o expirado")
	case errors.Is(err, domain.ErrNoMatch):
		return apperrors.NewNotFoundError("no hay nada que mostrar")
	case errors.Is(err, domain.ErrBookNotFound):
		return apperrors.NewNotFoundError("libro no encontrado")
	case errors.Is(err, domain.ErrPDFNotFound):
		return apperrors.NewNotFoundError("PDF no encontrado")
	case errors.Is(err, domain.ErrFileNotFound):
		return apperrors.NewNotFoundError("archivo no encontrado")
	}
	return apperrors.NewInternalError("error interno", err)
}

// decodeBody decodes a JSON request body into dst.
func decodeBody(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperrors.NewValidationError("cuerpo de la petición no válido")
	}
	return nil
}
