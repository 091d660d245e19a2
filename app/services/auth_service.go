package services

import (
	"errors"

	"github.com/shashiranjanraj/ordertrack/app/repositories"
	"github.com/shashiranjanraj/ordertrack/config"
	"github.com/shashiranjanraj/ordertrack/pkg/auth"
)

// ErrInvalidCredentials is returned for an unknown email or a wrong
// password. Callers must not distinguish the two.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	users *repositories.UserRepository
}

func NewAuthService() *AuthService {
	return &AuthService{users: repositories.NewUserRepository()}
}

// LoginResult is what a successful login returns to the client.
type LoginResult struct {
	Token   string `json:"token"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// Login verifies the credentials and issues a signed token. IsAdmin lets
// the client decide whether to show the dashboard tab; the server enforces
// the same allow-list on the dashboard routes regardless.
func (s *AuthService) Login(email, password string) (LoginResult, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.Password, password) {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		Token:   token,
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: config.IsAdminEmail(user.Email),
	}, nil
}
