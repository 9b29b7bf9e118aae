package handler

import (
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"liebrero-server/internal/domain"

	"github.com/gorilla/mux"
)

// PDFHandler handles uploads, retrieval, deletion and listing of stored
// PDFs against the object-storage bucket.
type PDFHandler struct {
	storage     domain.FileStorage
	maxFileSize int64
	logger      domain.Logger
}

// NewPDFHandler creates a new PDF handler
func NewPDFHandler(storage domain.FileStorage, maxFileSize int64, logger domain.Logger) *PDFHandler {
	return &PDFHandler{
		storage:     storage,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

// Upload stores one multipart file (field "pdf") in the bucket and returns
// its key and public URL. Uploads are fire-and-forget: a failed upload is
// not retried, the caller resubmits.
func (h *PDFHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		writeError(w, http.StatusBadRequest, "no se ha enviado ningún archivo")
		return
	}

	file, header, err := r.FormFile("pdf")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no se ha enviado ningún archivo")
		return
	}
	defer file.Close()

	if header.Size > h.maxFileSize {
		writeError(w, http.StatusRequestEntityTooLarge, "el archivo excede el tamaño máximo")
		return
	}
	name := filepath.Base(header.Filename)
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		writeError(w, http.StatusBadRequest, "solo se aceptan archivos PDF")
		return
	}

	result, err := h.storage.Upload(r.Context(), name, file, header.Size, "application/pdf")
	if err != nil {
		h.logger.Error("failed to upload pdf", err, "name", name)
		writeError(w, http.StatusInternalServerError, "error al subir el archivo")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Get streams the stored object, existence-checked: 404 for unknown keys.
func (h *PDFHandler) Get(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	stored, err := h.storage.Fetch(r.Context(), key)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	contentType := stored.ContentType
	if contentType == "" {
		contentType = "application/pdf"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.FormatInt(stored.Size, 10))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(stored.Content)
}

// Delete removes the stored object by key.
func (h *PDFHandler) Delete(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	if err := h.storage.Delete(r.Context(), key); err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"mensaje": "archivo eliminado"})
}

// List enumerates every stored PDF: 200 with the listing, 204 when empty.
func (h *PDFHandler) List(w http.ResponseWriter, r *http.Request) {
	files, err := h.storage.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list pdfs", err)
		writeError(w, http.StatusInternalServerError, "error al listar los archivos")
		return
	}
	if len(files) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"archivos": files})
}
