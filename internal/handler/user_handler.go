package handler

import (
	"errors"
	"net/http"

	"liebrero-server/internal/domain"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService domain.UserService
	logger      domain.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService domain.UserService, logger domain.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// List returns every registered user: 200 with the users, 204 when empty.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list users", err)
		writeError(w, http.StatusInternalServerError, "error al consultar la información")
		return
	}
	if len(users) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"usuarios": users})
}

// Show presents the users resolved by the dynamic field query.
func (h *UserHandler) Show(w http.ResponseWriter, r *http.Request) {
	presentMatches[domain.User](w, r, "usuarios")
}

// Update applies the request body to the single resolved user.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	state, ok := h.mutationState(w, r)
	if !ok {
		return
	}

	var body map[string]interface{}
	if err := decodeBody(r, &body); err != nil {
		writeDomainError(w, err)
		return
	}

	if _, err := h.userService.UpdateMatched(r.Context(), state.Matches, body); err != nil {
		if errors.Is(err, domain.ErrNoMatch) {
			writeError(w, http.StatusNotFound, "no hay nada que actualizar")
			return
		}
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"mensaje": "información actualizada"})
}

// Delete removes the single resolved user.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	state, ok := h.mutationState(w, r)
	if !ok {
		return
	}

	if _, err := h.userService.DeleteMatched(r.Context(), state.Matches); err != nil {
		if errors.Is(err, domain.ErrNoMatch) {
			writeError(w, http.StatusNotFound, "no hay nada que eliminar")
			return
		}
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"mensaje": "se eliminó la información"})
}

func (h *UserHandler) mutationState(w http.ResponseWriter, r *http.Request) (*QueryState[domain.User], bool) {
	state, ok := queryStateFrom[domain.User](r)
	if !ok {
		writeError(w, http.StatusInternalServerError, "estado de búsqueda no disponible")
		return nil, false
	}
	if state.Err != nil {
		writeError(w, http.StatusInternalServerError, "error al consultar la información")
		return nil, false
	}
	return state, true
}
