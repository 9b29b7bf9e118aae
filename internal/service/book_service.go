package service

import (
	"context"
	"encoding/base64"
	"strings"

	"liebrero-server/internal/domain"
)

// BookCatalogService implements domain.BookService. Dynamic field lookups go
// through the book field allow-list; mutations refuse ambiguous match sets.
type BookCatalogService struct {
	repo   domain.BookRepository
	logger domain.Logger
}

// NewBookCatalogService creates a new book service.
func NewBookCatalogService(repo domain.BookRepository, logger domain.Logger) *BookCatalogService {
	return &BookCatalogService{
		repo:   repo,
		logger: logger,
	}
}

// Create validates required fields and stores the book. Duplicate titles are
// allowed.
func (s *BookCatalogService) Create(ctx context.Context, book *domain.Book) error {
	if err := book.Validate(); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, book); err != nil {
		return err
	}
	s.logger.Info("book created", "titulo", book.Titulo, "id", book.ID.Hex())
	return nil
}

// List returns the full catalog.
func (s *BookCatalogService) List(ctx context.Context) ([]domain.Book, error) {
	return s.repo.FindAll(ctx)
}

// Search resolves the field name through the allow-list and runs the
// exact-match query. Unknown fields fail here, before the store is touched.
func (s *BookCatalogService) Search(ctx context.Context, field, value string) ([]domain.Book, error) {
	filter, err := domain.BookFields.Resolve(field, value)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByField(ctx, filter)
}

// UpdateMatched applies a partial merge onto the single resolved book.
// An empty match set or more than one match leaves the store untouched.
func (s *BookCatalogService) UpdateMatched(ctx context.Context, matches []domain.Book, body map[string]interface{}) (*domain.Book, error) {
	target, err := singleBook(matches)
	if err != nil {
		return nil, err
	}
	changes := domain.BookUpdateFields.FilterChanges(body)
	if len(changes) == 0 {
		return nil, &domain.ValidationError{Message: "sin campos actualizables"}
	}
	if err := s.repo.UpdateOne(ctx, target.ID, changes); err != nil {
		return nil, err
	}
	s.logger.Info("book updated", "id", target.ID.Hex())
	return target, nil
}

// DeleteMatched removes the single resolved book.
func (s *BookCatalogService) DeleteMatched(ctx context.Context, matches []domain.Book) (*domain.Book, error) {
	target, err := singleBook(matches)
	if err != nil {
		return nil, err
	}
	if err := s.repo.DeleteOne(ctx, target.ID); err != nil {
		return nil, err
	}
	s.logger.Info("book deleted", "id", target.ID.Hex())
	return target, nil
}

// FetchPDF returns the decoded binary payload of the book found by exact
// title. On duplicate titles the first match in store order is served.
func (s *BookCatalogService) FetchPDF(ctx context.Context, titulo string) ([]byte, error) {
	books, err := s.repo.FindByField(ctx, domain.FieldValue{Column: "titulo", Value: titulo})
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, domain.ErrBookNotFound
	}
	payload := books[0].ArchivoJSON
	if payload == "" {
		return nil, domain.ErrPDFNotFound
	}
	return decodePDFPayload(payload)
}

// decodePDFPayload strips an optional data-URI prefix and decodes the base64
// body.
func decodePDFPayload(payload string) ([]byte, error) {
	if idx := strings.LastIndex(payload, ";base64,"); idx >= 0 {
		payload = payload[idx+len(";base64,"):]
	} else if idx := strings.IndexByte(payload, ','); idx >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[idx+1:]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, domain.ErrPDFNotFound
	}
	return data, nil
}

func singleBook(matches []domain.Book) (*domain.Book, error) {
	switch len(matches) {
	case 0:
		return nil, domain.ErrNoMatch
	case 1:
		return &matches[0], nil
	default:
		return nil, domain.ErrAmbiguousMatch
	}
}
