package handler

import (
	"net/http"

	"liebrero-server/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()
	logger := container.Logger

	router.Use(RequestIDMiddleware)
	router.Use(AccessLogMiddleware(logger))

	// Health check endpoint (no auth required)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"liebrero-server"}`))
	}).Methods("GET")

	// Initialize handlers
	authHandler := NewAuthHandler(container.AuthService, logger)
	bookHandler := NewBookHandler(container.BookService, logger)
	userHandler := NewUserHandler(container.UserService, logger)
	pdfHandler := NewPDFHandler(container.FileStorage, container.Config.GetMaxFileSize(), logger)

	authMiddleware := AuthMiddleware(container.AuthService, logger)
	protect := func(h http.HandlerFunc) http.Handler {
		return authMiddleware(h)
	}

	// Auth routes
	router.HandleFunc("/auth/registro", authHandler.Registro).Methods("POST")
	router.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	router.Handle("/auth/perfil", protect(authHandler.Perfil)).Methods("GET")

	// User routes: dynamic field search feeding show/update/delete
	router.HandleFunc("/usuarios", userHandler.List).Methods("GET")
	router.HandleFunc("/usuarios/{campo}/{valor}",
		resolveField(container.UserService.Search, logger, userHandler.Show)).Methods("GET")
	router.HandleFunc("/usuarios/{campo}/{valor}",
		resolveField(container.UserService.Search, logger, userHandler.Update)).Methods("PUT")
	router.HandleFunc("/usuarios/{campo}/{valor}",
		resolveField(container.UserService.Search, logger, userHandler.Delete)).Methods("DELETE")

	// Book routes. The pdf route is registered first so it wins over the
	// dynamic two-segment pattern.
	router.HandleFunc("/libros", bookHandler.List).Methods("GET")
	router.HandleFunc("/libros", bookHandler.Create).Methods("POST")
	router.HandleFunc("/libros/{titulo}/pdf", bookHandler.ServePDF).Methods("GET")
	router.HandleFunc("/libros/{campo}/{valor}",
		resolveField(container.BookService.Search, logger, bookHandler.Show)).Methods("GET")
	router.HandleFunc("/libros/{campo}/{valor}",
		resolveField(container.BookService.Search, logger, bookHandler.Update)).Methods("PUT")
	router.HandleFunc("/libros/{campo}/{valor}",
		resolveField(container.BookService.Search, logger, bookHandler.Delete)).Methods("DELETE")

	// PDF storage routes. Keys may contain slashes (pdfs/... prefix).
	router.Handle("/pdfs/subir", protect(pdfHandler.Upload)).Methods("POST")
	router.HandleFunc("/pdfs", pdfHandler.List).Methods("GET")
	router.HandleFunc("/pdfs/{key:.+}", pdfHandler.Get).Methods("GET")
	router.Handle("/pdfs/{key:.+}", protect(pdfHandler.Delete)).Methods("DELETE")

	// Configure CORS. The mobile clients load from file:// (Cordova), so
	// origins stay open; credentials are carried in headers, not cookies.
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-Requested-With",
			"x-access-token",
		},
		MaxAge: 86400,
	})

	return c.Handler(router)
}
