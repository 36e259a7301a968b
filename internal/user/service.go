package user

import (
	"errors"
	"fmt"
	"time"

	"github.com/badoux/checkmail"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxLoginLength = 30
	minLoginLength = 3
	bcryptCost     = 12

	RoleAdmin = "admin"
	RoleUser  = "user"
)

var (
	ErrInvalidEmail       = errors.New("email address is not valid")
	ErrLoginLength        = fmt.Errorf("login must be between %d and %d characters", minLoginLength, maxLoginLength)
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrInvalidRole        = errors.New("role must be 'admin' or 'user'")
	ErrLoginAlreadyExists = errors.New("login already exists")
	ErrInternalError      = errors.New("internal Server Error")
)

type User struct {
	ID           string    `json:"id"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	Email        *string   `json:"email,omitempty"`
	Picture      *string   `json:"picture,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Service interface {
	Register(login, password, role string, email, picture *string) (*User, error)
	GetUserByID(userID string) (*User, error)
	GetUserByLogin(login string) (*User, error)
}

type service struct {
	repo Repository
}

func NewUserService(repo Repository) Service {
	return &service{repo: repo}
}

func hashPassword(password string) (string, error) {
	hashedPasswordBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hashedPasswordBytes), err
}

func (s *service) Register(login, password, role string, email, picture *string) (*User, error) {
	if len(login) < minLoginLength || len(login) > maxLoginLength {
		return nil, ErrLoginLength
	}
	if len(password) < 8 {
		return nil, ErrPasswordTooShort
	}
	if role == "" {
		role = RoleUser
	}
	if role != RoleAdmin && role != RoleUser {
		return nil, ErrInvalidRole
	}
	if email != nil {
		if err := checkmail.ValidateFormat(*email); err != nil {
			return nil, ErrInvalidEmail
		}
	}

	_, err := s.repo.getUserByLogin(login)
	if err == nil {
		return nil, ErrLoginAlreadyExists
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, ErrInternalError
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, ErrInternalError
	}

	newUser := &User{
		Login:        login,
		PasswordHash: passwordHash,
		Role:         role,
		Email:        email,
		Picture:      picture,
	}
	if err := s.repo.createUser(newUser); err != nil {
		return nil, ErrInternalError
	}
	return newUser, nil
}

func (s *service) GetUserByID(userID string) (*User, error) {
	return s.repo.getUserByID(userID)
}

func (s *service) GetUserByLogin(login string) (*User, error) {
	return s.repo.getUserByLogin(login)
}
