// Package auth implements login against the storefront's fixed customer list.
package auth

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when email/password do not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// User is a storefront account.
type User struct {
	Email string
	Name  string
}

type account struct {
	user         User
	passwordHash []byte
}

// Service validates credentials and issues session tokens.
type Service struct {
	accounts map[string]account
	tokens   *tokenManager
	tokenTTL time.Duration
}

// Credential seeds one account; passwords are hashed at construction.
type Credential struct {
	Email    string
	Password string
	Name     string
}

// DefaultCredentials is the demo account list the storefront ships with.
var DefaultCredentials = []Credential{
	{Email: "cliente@cenemed.com.br", Password: "cenemed123", Name: "João Silva"},
	{Email: "maria@email.com", Password: "123456", Name: "Maria Santos"},
}

func New(creds []Credential) (*Service, error) {
	accounts := make(map[string]account, len(creds))
	for _, c := range creds {
		hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		email := strings.ToLower(strings.TrimSpace(c.Email))
		accounts[email] = account{
			user:         User{Email: email, Name: c.Name},
			passwordHash: hash,
		}
	}
	return &Service{
		accounts: accounts,
		tokens:   newTokenManager(),
		tokenTTL: 48 * time.Hour,
	}, nil
}

// Login checks the credentials and returns a session token with the account.
func (s *Service) Login(email, password string) (string, User, error) {
	acc, ok := s.accounts[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return "", User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)); err != nil {
		return "", User{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(acc.user, s.tokenTTL)
	if err != nil {
		return "", User{}, err
	}
	return token, acc.user, nil
}

// IsAuthenticated reports whether the token maps to a live session.
func (s *Service) IsAuthenticated(token string) bool {
	_, ok := s.tokens.Validate(token)
	return ok
}

// UserFor returns the account behind a live session token.
func (s *Service) UserFor(token string) (User, bool) {
	return s.tokens.Validate(token)
}

// Logout invalidates the token; no-op for unknown tokens.
func (s *Service) Logout(token string) {
	s.tokens.Revoke(token)
}
