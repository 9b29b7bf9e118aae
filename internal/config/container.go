package config

import (
	"liebrero-server/internal/domain"
	"liebrero-server/internal/repository"
	"liebrero-server/internal/service"
	"liebrero-server/pkg/logger"
)

// Container holds all application dependencies. Everything is constructed
// once at startup and shared as read-only references; there are no mutable
// package-level singletons.
type Container struct {
	Config         domain.Config
	Logger         domain.Logger
	BookRepository domain.BookRepository
	UserRepository domain.UserRepository
	BookService    domain.BookService
	UserService    domain.UserService
	AuthService    domain.AuthService
	FileStorage    domain.FileStorage
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	db, err := repository.ConnectMongo(config, appLogger)
	if err != nil {
		return nil, err
	}

	storage, err := service.NewSpacesStorage(config, appLogger)
	if err != nil {
		return nil, err
	}

	bookRepo := repository.NewMongoBookRepository(db, appLogger)
	userRepo := repository.NewMongoUserRepository(db, appLogger)

	return &Container{
		Config:         config,
		Logger:         appLogger,
		BookRepository: bookRepo,
		UserRepository: userRepo,
		BookService:    service.NewBookCatalogService(bookRepo, appLogger),
		UserService:    service.NewUserAccountService(userRepo, appLogger),
		AuthService:    service.NewAuthService(userRepo, config, appLogger),
		FileStorage:    storage,
	}, nil
}
