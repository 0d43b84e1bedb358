package service

import (
	"errors"

	"srms-backend/internal/domain"
	"srms-backend/internal/storage"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	store *storage.Store
}

func NewAuthService(store *storage.Store) *AuthService {
	return &AuthService{store: store}
}

// Login does a plaintext credential check against the seeded user
// list. No tokens are issued; the caller only learns the role.
func (s *AuthService) Login(username, password string) (domain.User, error) {
	user, ok := s.store.FindUser(username)
	if !ok || user.Password != password {
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}

var _ AuthServiceInterface = (*AuthService)(nil)
