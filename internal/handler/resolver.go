package handler

import (
	"context"
	"errors"
	"net/http"

	"liebrero-server/internal/domain"

	"github.com/gorilla/mux"
)

type queryStateKey struct{}

// QueryState carries the outcome of a dynamic field lookup from the resolver
// to the next handler in the same request. It lives in the request context
// and is never persisted.
type QueryState[T any] struct {
	Matches []T
	Err     error
}

func withQueryState[T any](r *http.Request, state *QueryState[T]) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), queryStateKey{}, state))
}

func queryStateFrom[T any](r *http.Request) (*QueryState[T], bool) {
	state, ok := r.Context().Value(queryStateKey{}).(*QueryState[T])
	return state, ok
}

// resolveField runs the {campo}/{valor} exact-match query and stashes the
// outcome in the request context. Field names outside the entity's
// allow-list are rejected with 400 before the store is touched. A store
// failure is stashed rather than answered: the next handler decides how to
// present it, so one resolver serves show, update and delete alike.
func resolveField[T any](search func(ctx context.Context, field, value string) ([]T, error), logger domain.Logger, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		field, value := vars["campo"], vars["valor"]

		state := &QueryState[T]{}
		matches, err := search(r.Context(), field, value)
		switch {
		case err == nil:
			state.Matches = matches
		case errors.Is(err, domain.ErrUnknownField), isValidationError(err):
			writeDomainError(w, err)
			return
		default:
			logger.Error("dynamic field query failed", err, "campo", field, "valor", value)
			state.Err = err
		}

		next(w, withQueryState(r, state))
	}
}

// presentMatches renders a resolved query. A stashed store error answers
// 500, an empty match set answers 204, and anything else answers 200 with
// the full ordered match set under the given key.
func presentMatches[T any](w http.ResponseWriter, r *http.Request, key string) {
	state, ok := queryStateFrom[T](r)
	if !ok {
		writeError(w, http.StatusInternalServerError, "estado de búsqueda no disponible")
		return
	}
	if state.Err != nil {
		writeError(w, http.StatusInternalServerError, "error al consultar la información")
		return
	}
	if len(state.Matches) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{key: state.Matches})
}

func isValidationError(err error) bool {
	var verr *domain.ValidationError
	return errors.As(err, &verr)
}
