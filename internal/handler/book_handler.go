// Package handler provides HTTP handlers for the API.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"liebrero-server/internal/domain"

	"github.com/gorilla/mux"
)

// BookHandler handles book-related HTTP requests
type BookHandler struct {
	bookService domain.BookService
	logger      domain.Logger
}

// NewBookHandler creates a new book handler
func NewBookHandler(bookService domain.BookService, logger domain.Logger) *BookHandler {
	return &BookHandler{
		bookService: bookService,
		logger:      logger,
	}
}

// List returns the whole catalog: 200 with the books, 204 when empty.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.bookService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list books", err)
		writeError(w, http.StatusInternalServerError, "error al consultar la información")
		return
	}
	if len(books) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"libros": books})
}

// Create stores a new book after validating its required fields.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var book domain.Book
	if err := decodeBody(r, &book); err != nil {
		writeDomainError(w, err)
		return
	}
	if err := h.bookService.Create(r.Context(), &book); err != nil {
		h.logger.Error("failed to create book", err, "titulo", book.Titulo)
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"mensaje": "libro creado exitosamente",
		"libro":   book,
	})
}

// Show presents the books resolved by the dynamic field query.
func (h *BookHandler) Show(w http.ResponseWriter, r *http.Request) {
	presentMatches[domain.Book](w, r, "libros")
}

// Update applies the request body to the single resolved book.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	state, ok := h.mutationState(w, r)
	if !ok {
		return
	}

	var body map[string]interface{}
	if err := decodeBody(r, &body); err != nil {
		writeDomainError(w, err)
		return
	}

	if _, err := h.bookService.UpdateMatched(r.Context(), state.Matches, body); err != nil {
		if errors.Is(err, domain.ErrNoMatch) {
			writeError(w, http.StatusNotFound, "no hay nada que actualizar")
			return
		}
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"mensaje": "información actualizada"})
}

// Delete removes the single resolved book.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	state, ok := h.mutationState(w, r)
	if !ok {
		return
	}

	if _, err := h.bookService.DeleteMatched(r.Context(), state.Matches); err != nil {
		if errors.Is(err, domain.ErrNoMatch) {
			writeError(w, http.StatusNotFound, "no hay nada que eliminar")
			return
		}
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"mensaje": "se eliminó la información"})
}

// ServePDF streams the decoded PDF payload of the book with the given title.
func (h *BookHandler) ServePDF(w http.ResponseWriter, r *http.Request) {
	titulo := mux.Vars(r)["titulo"]

	content, err := h.bookService.FetchPDF(r.Context(), titulo)
	if err != nil {
		if !errors.Is(err, domain.ErrBookNotFound) && !errors.Is(err, domain.ErrPDFNotFound) {
			h.logger.Error("failed to fetch book pdf", err, "titulo", titulo)
		}
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

// mutationState loads the resolved query state, answering for the stashed
// store error case so Update and Delete share one failure path.
func (h *BookHandler) mutationState(w http.ResponseWriter, r *http.Request) (*QueryState[domain.Book], bool) {
	state, ok := queryStateFrom[domain.Book](r)
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
