package auth

import (
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrMissingCredentials = errors.New("email and password required")
	ErrUserExists         = errors.New("user exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// User is a registered account. Gold is the user's holding in grams.
type User struct {
	Email string
	Gold  decimal.Decimal

	passwordHash []byte
}

// UserStore is the process-lifetime user directory.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]*User
	cost  int
}

// NewUserStore creates an empty store hashing passwords at the given bcrypt
// cost. Zero selects bcrypt.DefaultCost.
func NewUserStore(cost int) *UserStore {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &UserStore{users: make(map[string]*User), cost: cost}
}

// Signup registers a new user with a zero gold balance.
func (s *UserStore) Signup(email, password string) error {
	if email == "" || password == "" {
		return ErrMissingCredentials
	}

	// Hash outside the lock, bcrypt is slow.
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[email]; ok {
		return ErrUserExists
	}
	s.users[email] = &User{Email: email, Gold: decimal.Zero, passwordHash: hash}
	return nil
}

// Authenticate checks the password of email.
func (s *UserStore) Authenticate(email, password string) (*User, error) {
	s.mu.RLock()
	u, ok := s.users[email]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return u.snapshot(), nil
}

// Get returns a copy of the user registered under email.
func (s *UserStore) Get(email string) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return u.snapshot(), nil
}

func (u *User) snapshot() *User {
	return &User{Email: u.Email, Gold: u.Gold}
}
