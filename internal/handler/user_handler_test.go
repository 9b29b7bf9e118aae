package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"liebrero-server/internal/domain"
)

func TestUserHandlerListNeverLeaksPasswordHash(t *testing.T) {
	service := &mockUserService{
		listFn: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{{Nombre: "Ana", Email: "ana@example.com", Password: "$2a$10$hash"}}, nil
		},
	}
	handler := NewUserHandler(service, testLogger{})

	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest(http.MethodGet, "/usuarios", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "$2a$10$hash") {
		t.Error("password hash leaked into the response body")
	}
}

func TestUserHandlerListEmpty(t *testing.T) {
	handler := NewUserHandler(&mockUserService{}, testLogger{})

	rec := httptest.NewRecorder()
	handler.List(rec, httptest.NewRequest(http.MethodGet, "/usuarios", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestUserHandlerUpdateSuccess(t *testing.T) {
	var gotBody map[string]interface{}
	service := &mockUserService{
		updateFn: func(ctx context.Context, matches []domain.User, body map[string]interface{}) (*domain.User, error) {
			gotBody = body
			return &matches[0], nil
		},
	}
	handler := NewUserHandler(service, testLogger{})

	req := httptest.NewRequest(http.MethodPut, "/usuarios/email/ana@example.com", strings.NewReader(`{"telefono":"555-0101"}`))
	req = withQueryState(req, &QueryState[domain.User]{Matches: []domain.User{{Email: "ana@example.com"}}})
	rec := httptest.NewRecorder()
	handler.Update(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotBody["telefono"] != "555-0101" {
		t.Errorf("expected the raw body forwarded to the service, got %v", gotBody)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["mensaje"] == "" {
		t.Error("expected a mensaje in the response")
	}
}

func TestUserHandlerUpdateNoMatch(t *testing.T) {
	service := &mockUserService{
		updateFn: func(ctx context.Context, matches []domain.User, body map[string]interface{}) (*domain.User, error) {
			return nil, domain.ErrNoMatch
		},
	}
	handler := NewUserHandler(service, testLogger{})

	req := httptest.NewRequest(http.MethodPut, "/usuarios/email/x", strings.NewReader(`{"telefono":"1"}`))
	req = withQueryState(req, &QueryState[domain.User]{})
	rec := httptest.NewRecorder()
	handler.Update(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestUserHandlerDeleteAmbiguous(t *testing.T) {
	service := &mockUserService{
		deleteFn: func(ctx context.Context, matches []domain.User) (*domain.User, error) {
			return nil, domain.ErrAmbiguousMatch
		},
	}
	handler := NewUserHandler(service, testLogger{})

	matches := []domain.User{{Nombre: "Ana"}, {Nombre: "Ana"}}
	req := httptest.NewRequest(http.MethodDelete, "/usuarios/nombre/Ana", nil)
	req = withQueryState(req, &QueryState[domain.User]{Matches: matches})
	rec := httptest.NewRecorder()
	handler.Delete(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestUserHandlerDeleteStashedStoreError(t *testing.T) {
	handler := NewUserHandler(&mockUserService{}, testLogger{})

	req := httptest.NewRequest(http.MethodDelete, "/usuarios/email/x", nil)
	req = withQueryState(req, &QueryState[domain.User]{Err: errors.New("store down")})
	rec := httptest.NewRecorder()
	handler.Delete(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
