package domain

import (
	"context"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookRepository defines the record store operations for books.
type BookRepository interface {
	Create(ctx context.Context, book *Book) error
	FindAll(ctx context.Context) ([]Book, error)
	FindByField(ctx context.Context, filter FieldValue) ([]Book, error)
	UpdateOne(ctx context.Context, id primitive.ObjectID, changes map[string]interface{}) error
	DeleteOne(ctx context.Context, id primitive.ObjectID) error
}

// UserRepository defines the record store operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindAll(ctx context.Context) ([]User, error)
	FindByField(ctx context.Context, filter FieldValue) ([]User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	UpdateOne(ctx context.Context, id primitive.ObjectID, changes map[string]interface{}) error
	DeleteOne(ctx context.Context, id primitive.ObjectID) error
}

// BookService exposes catalog operations to the handlers.
type BookService interface {
	Create(ctx context.Context, book *Book) error
	List(ctx context.Context) ([]Book, error)
	Search(ctx context.Context, field, value string) ([]Book, error)
	UpdateMatched(ctx context.Context, matches []Book, body map[string]interface{}) (*Book, error)
	DeleteMatched(ctx context.Context, matches []Book) (*Book, error)
	FetchPDF(ctx context.Context, titulo string) ([]byte, error)
}

// UserService exposes account CRUD to the handlers.
type UserService interface {
	List(ctx context.Context) ([]User, error)
	Search(ctx context.Context, field, value string) ([]User, error)
	UpdateMatched(ctx context.Context, matches []User, body map[string]interface{}) (*User, error)
	DeleteMatched(ctx context.Context, matches []User) (*User, error)
}

// AuthService handles registration, login and token verification.
type AuthService interface {
	Register(ctx context.Context, input RegistrationInput) (*User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	VerifyToken(token string) (*TokenClaims, error)
}

// FileStorage defines the object-storage operations for uploaded PDFs.
type FileStorage interface {
	Upload(ctx context.Context, name string, r io.Reader, size int64, contentType string) (*UploadResult, error)
	Fetch(ctx context.Context, key string) (*StoredFile, error)
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]FileInfo, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetLogLevel() string
	GetMongoURI() string
	GetMongoDatabase() string
	GetJWTSecret() string
	GetJWTIssuer() string
	GetJWTExpiry() time.Duration
	GetStorageEndpoint() string
	GetStorageRegion() string
	GetStorageBucket() string
	GetStorageKey() string
	GetStorageSecret() string
	GetStorageSSL() bool
	GetMaxFileSize() int64
}
