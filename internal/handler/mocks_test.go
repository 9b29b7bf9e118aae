package handler

import (
	"context"
	"io"
	"time"

	"liebrero-server/internal/domain"
)

type testLogger struct{}

func (testLogger) Info(msg string, fields ...interface{})             {}
func (testLogger) Error(msg string, err error, fields ...interface{}) {}
func (testLogger) Debug(msg string, fields ...interface{})            {}
func (testLogger) Warn(msg string, fields ...interface{})             {}

// mockBookService delegates to optional function fields so each test wires
// only the calls it cares about.
type mockBookService struct {
	createFn   func(ctx context.Context, book *domain.Book) error
	listFn     func(ctx context.Context) ([]domain.Book, error)
	searchFn   func(ctx context.Context, field, value string) ([]domain.Book, error)
	updateFn   func(ctx context.Context, matches []domain.Book, body map[string]interface{}) (*domain.Book, error)
	deleteFn   func(ctx context.Context, matches []domain.Book) (*domain.Book, error)
	fetchPDFFn func(ctx context.Context, titulo string) ([]byte, error)
}

func (m *mockBookService) Create(ctx context.Context, book *domain.Book) error {
	if m.createFn != nil {
		return m.createFn(ctx, book)
	}
	return nil
}

func (m *mockBookService) List(ctx context.Context) ([]domain.Book, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockBookService) Search(ctx context.Context, field, value string) ([]domain.Book, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, field, value)
	}
	return nil, nil
}

func (m *mockBookService) UpdateMatched(ctx context.Context, matches []domain.Book, body map[string]interface{}) (*domain.Book, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, matches, body)
	}
	return nil, nil
}

func (m *mockBookService) DeleteMatched(ctx context.Context, matches []domain.Book) (*domain.Book, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, matches)
	}
	return nil, nil
}

func (m *mockBookService) FetchPDF(ctx context.Context, titulo string) ([]byte, error) {
	if m.fetchPDFFn != nil {
		return m.fetchPDFFn(ctx, titulo)
	}
	return nil, nil
}

type mockUserService struct {
	listFn   func(ctx context.Context) ([]domain.User, error)
	searchFn func(ctx context.Context, field, value string) ([]domain.User, error)
	updateFn func(ctx context.Context, matches []domain.User, body map[string]interface{}) (*domain.User, error)
	deleteFn func(ctx context.Context, matches []domain.User) (*domain.User, error)
}

func (m *mockUserService) List(ctx context.Context) ([]domain.User, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockUserService) Search(ctx context.Context, field, value string) ([]domain.User, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, field, value)
	}
	return nil, nil
}

func (m *mockUserService) UpdateMatched(ctx context.Context, matches []domain.User, body map[string]interface{}) (*domain.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, matches, body)
	}
	return nil, nil
}

func (m *mockUserService) DeleteMatched(ctx context.Context, matches []domain.User) (*domain.User, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, matches)
	}
	return nil, nil
}

type mockAuthService struct {
	registerFn func(ctx context.Context, input domain.RegistrationInput) (*domain.User, error)
	loginFn    func(ctx context.Context, email, password string) (*domain.LoginResult, error)
	verifyFn   func(token string) (*domain.TokenClaims, error)
}

func (m *mockAuthService) Register(ctx context.Context, input domain.RegistrationInput) (*domain.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, input)
	}
	return &domain.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return &domain.LoginResult{}, nil
}

func (m *mockAuthService) VerifyToken(token string) (*domain.TokenClaims, error) {
	if m.verifyFn != nil {
		return m.verifyFn(token)
	}
	return nil, domain.ErrInvalidToken
}

type mockStorage struct {
	uploadFn func(ctx context.Context, name string, r io.Reader, size int64, contentType string) (*domain.UploadResult, error)
	fetchFn  func(ctx context.Context, key string) (*domain.StoredFile, error)
	deleteFn func(ctx context.Context, key string) error
	listFn   func(ctx context.Context) ([]domain.FileInfo, error)
}

func (m *mockStorage) Upload(ctx context.Context, name string, r io.Reader, size int64, contentType string) (*domain.UploadResult, error) {
	if m.uploadFn != nil {
		return m.uploadFn(ctx, name, r, size, contentType)
	}
	return &domain.UploadResult{Key: "pdfs/" + name}, nil
}

func (m *mockStorage) Fetch(ctx context.Context, key string) (*domain.StoredFile, error) {
	if m.fetchFn != nil {
		return m.fetchFn(ctx, key)
	}
	return nil, domain.ErrFileNotFound
}

func (m *mockStorage) Delete(ctx context.Context, key string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, key)
	}
	return nil
}

func (m *mockStorage) List(ctx context.Context) ([]domain.FileInfo, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

// stubConfig satisfies domain.Config for router wiring.
type stubConfig struct{}

func (stubConfig) GetServerPort() string         { return "3000" }
func (stubConfig) GetLogLevel() string           { return "error" }
func (stubConfig) GetMongoURI() string           { return "" }
func (stubConfig) GetMongoDatabase() string      { return "test" }
func (stubConfig) GetJWTSecret() string          { return "test-secret" }
func (stubConfig) GetJWTIssuer() string          { return "LIEBRERA" }
func (stubConfig) GetJWTExpiry() time.Duration   { return 24 * time.Hour }
func (stubConfig) GetStorageEndpoint() string    { return "nyc3.digitaloceanspaces.com" }
func (stubConfig) GetStorageRegion() string      { return "nyc3" }
func (stubConfig) GetStorageBucket() string      { return "test-bucket" }
func (stubConfig) GetStorageKey() string         { return "key" }
func (stubConfig) GetStorageSecret() string      { return "secret" }
func (stubConfig) GetStorageSSL() bool           { return true }
func (stubConfig) GetMaxFileSize() int64         { return 1 << 20 }
