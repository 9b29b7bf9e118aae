package service

import (
	"context"

	"liebrero-server/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// UserAccountService implements domain.UserService with the same dynamic
// query and single-match mutation policy as the book service.
type UserAccountService struct {
	repo   domain.UserRepository
	logger domain.Logger
}

// NewUserAccountService creates a new user service.
func NewUserAccountService(repo domain.UserRepository, logger domain.Logger) *UserAccountService {
	return &UserAccountService{
		repo:   repo,
		logger: logger,
	}
}

// List returns every registered user.
func (s *UserAccountService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

// Search resolves the field name through the user allow-list and runs the
// exact-match query.
func (s *UserAccountService) Search(ctx context.Context, field, value string) ([]domain.User, error) {
	filter, err := domain.UserFields.Resolve(field, value)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByField(ctx, filter)
}

// UpdateMatched applies a partial merge onto the single resolved user.
// A plaintext password in the body is re-hashed before it reaches the store.
func (s *UserAccountService) UpdateMatched(ctx context.Context, matches []domain.User, body map[string]interface{}) (*domain.User, error) {
	target, err := singleUser(matches)
	if err != nil {
		return nil, err
	}
	changes := domain.UserUpdateFields.FilterChanges(body)
	if len(changes) == 0 {
		return nil, &domain.ValidationError{Message: "sin campos actualizables"}
	}
	if raw, ok := changes["password"]; ok {
		plaintext, ok := raw.(string)
		if !ok || plaintext == "" {
			return nil, &domain.ValidationError{Field: "password", Message: "valor no válido"}
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
		if err != nil {
			return nil, err
		}
		changes["password"] = string(hash)
	}
	if err := s.repo.UpdateOne(ctx, target.ID, changes); err != nil {
		return nil, err
	}
	s.logger.Info("user updated", "id", target.ID.Hex())
	return target, nil
}

// DeleteMatched removes the single resolved user. Books referencing the user
// are left untouched; there are no cascading deletes.
func (s *UserAccountService) DeleteMatched(ctx context.Context, matches []domain.User) (*domain.User, error) {
	target, err := singleUser(matches)
	if err != nil {
		return nil, err
	}
	if err := s.repo.DeleteOne(ctx, target.ID); err != nil {
		return nil, err
	}
	s.logger.Info("user deleted", "id", target.ID.Hex())
	return target, nil
}

func singleUser(matches []domain.User) (*domain.User, error) {
	switch len(matches) {
	case 0:
		return nil, domain.ErrNoMatch
	case 1:
		return &matches[0], nil
	default:
		return nil, domain.ErrAmbiguousMatch
	}
}
