package service

import (
	"context"
	"time"

	"liebrero-server/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shared mocks for the service package tests.

type testLogger struct{}

func (testLogger) Info(msg string, fields ...interface{})             {}
func (testLogger) Error(msg string, err error, fields ...interface{}) {}
func (testLogger) Debug(msg string, fields ...interface{})            {}
func (testLogger) Warn(msg string, fields ...interface{})             {}

type mockBookRepo struct {
	books       []domain.Book
	findErr     error
	created     []*domain.Book
	updatedID   primitive.ObjectID
	updatedWith map[string]interface{}
	deletedID   primitive.ObjectID
	updateCalls int
	deleteCalls int
}

func (m *mockBookRepo) Create(ctx context.Context, book *domain.Book) error {
	book.ID = primitive.NewObjectID()
	m.created = append(m.created, book)
	return nil
}

func (m *mockBookRepo) FindAll(ctx context.Context) ([]domain.Book, error) {
	return m.books, m.findErr
}

func (m *mockBookRepo) FindByField(ctx context.Context, filter domain.FieldValue) ([]domain.Book, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	var out []domain.Book
	for _, b := range m.books {
		if filter.Column == "titulo" && b.Titulo == filter.Value {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockBookRepo) UpdateOne(ctx context.Context, id primitive.ObjectID, changes map[string]interface{}) error {
	m.updateCalls++
	m.updatedID = id
	m.updatedWith = changes
	return nil
}

func (m *mockBookRepo) DeleteOne(ctx context.Context, id primitive.ObjectID) error {
	m.deleteCalls++
	m.deletedID = id
	return nil
}

type mockUserRepo struct {
	byEmail     map[string]*domain.User
	users       []domain.User
	findErr     error
	created     []*domain.User
	updatedWith map[string]interface{}
	deletedID   primitive.ObjectID
	updateCalls int
	deleteCalls int
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	user.ID = primitive.NewObjectID()
	m.created = append(m.created, user)
	if m.byEmail == nil {
		m.byEmail = make(map[string]*domain.User)
	}
	m.byEmail[user.Email] = user
	return nil
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	return m.users, m.findErr
}

func (m *mockUserRepo) FindByField(ctx context.Context, filter domain.FieldValue) ([]domain.User, error) {
	return m.users, m.findErr
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.byEmail[email], nil
}

func (m *mockUserRepo) UpdateOne(ctx context.Context, id primitive.ObjectID, changes map[string]interface{}) error {
	m.updateCalls++
	m.updatedWith = changes
	return nil
}

func (m *mockUserRepo) DeleteOne(ctx context.Context, id primitive.ObjectID) error {
	m.deleteCalls++
	m.deletedID = id
	return nil
}

type mockConfig struct {
	jwtSecret string
	jwtIssuer string
	jwtExpiry time.Duration
}

func (c *mockConfig) GetServerPort() string          { return "8080" }
func (c *mockConfig) GetLogLevel() string            { return "error" }
func (c *mockConfig) GetMongoURI() string            { return "" }
func (c *mockConfig) GetMongoDatabase() string       { return "liebrero_test" }
func (c *mockConfig) GetJWTSecret() string           { return c.jwtSecret }
func (c *mockConfig) GetJWTIssuer() string           { return c.jwtIssuer }
func (c *mockConfig) GetJWTExpiry() time.Duration    { return c.jwtExpiry }
func (c *mockConfig) GetStorageEndpoint() string     { return "nyc3.digitaloceanspaces.com" }
func (c *mockConfig) GetStorageRegion() string       { return "nyc3" }
func (c *mockConfig) GetStorageBucket() string       { return "liebrero" }
func (c *mockConfig) GetStorageKey() string          { return "key" }
func (c *mockConfig) GetStorageSecret() string       { return "secret" }
func (c *mockConfig) GetStorageSSL() bool            { return true }
func (c *mockConfig) GetMaxFileSize() int64          { return 10 * 1024 * 1024 }

func newTestAuthConfig() *mockConfig {
	return &mockConfig{jwtSecret: "test-secret", jwtIssuer: "LIEBRERA", jwtExpiry: 24 * time.Hour}
}
