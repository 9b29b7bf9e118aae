package service

import (
	"context"
	"fmt"
	"time"

	"liebrero-server/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the mobile clients were registered with.
const bcryptCost = 10

// AuthService implements domain.AuthService: registration with a duplicate
// email pre-check, login issuing HS256 bearer tokens, and token verification
// for the middleware gate.
type AuthService struct {
	users  domain.UserRepository
	config domain.Config
	logger domain.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(users domain.UserRepository, config domain.Config, logger domain.Logger) *AuthService {
	return &AuthService{
		users:  users,
		config: config,
		logger: logger,
	}
}

type tokenClaims struct {
	Nombre   string `json:"nombre"`
	Apellido string `json:"apellido"`
	jwt.RegisteredClaims
}

// Register validates the input, rejects already-registered emails and stores
// the user with a bcrypt hash. Uniqueness is only as strong as this
// pre-check: there is no store-level constraint.
func (s *AuthService) Register(ctx context.Context, input domain.RegistrationInput) (*domain.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.users.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Nombre:   input.Nombre,
		Apellido: input.Apellido,
		Email:    input.Email,
		Telefono: input.Telefono,
		Password: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "email", user.Email)
	return user, nil
}

// Login verifies the credentials and issues a signed token. Unknown emails
// and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	expiry := s.config.GetJWTExpiry()
	now := time.Now()
	claims := tokenClaims{
		Nombre:   user.Nombre,
		Apellido: user.Apellido,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			Issuer:    s.config.GetJWTIssuer(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.config.GetJWTSecret()))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.logger.Info("user logged in", "email", user.Email)
	return &domain.LoginResult{
		Token:     token,
		ExpiresIn: expiry,
		User:      user.Summary(),
	}, nil
}

// VerifyToken validates signature, expiry and issuer, and returns the
// decoded identity.
func (s *AuthService) VerifyToken(token string) (*domain.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.config.GetJWTSecret()), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(s.config.GetJWTIssuer()))
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	return &domain.TokenClaims{
		UserID:   claims.Subject,
		Nombre:   claims.Nombre,
		Apellido: claims.Apellido,
	}, nil
}
