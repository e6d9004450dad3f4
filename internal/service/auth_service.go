package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go-stockroom/internal/model"
	"go-stockroom/internal/repository"
	"go-stockroom/pkg/jwt"
)

type AuthService interface {
	Signup(username, password string) (*model.User, error)
	Login(username, password string) (*LoginResponse, error)
	Verify(username, password string) (*model.User, error)
}

type LoginResponse struct {
	Token string             `json:"token"`
	User  model.UserResponse `json:"user"`
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Signup creates a user with a bcrypt password hash and the next sequential
// id, and persists the directory immediately.
func (s *authService) Signup(username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrInvalidInput
	}

	if existing, _ := s.userRepo.FindByUsername(username); existing != nil {
		return nil, ErrDuplicateUsername
	}

	users, err := s.userRepo.FindAll()
	if err != nil {
		// A corrupt directory degrades to empty, matching reads.
		users = nil
	}

	user := &model.User{
		ID:       strconv.Itoa(len(users) + 1),
		Username: username,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	return user, nil
}

// Verify returns the user only when the username exists, a hash is stored,
// and the password matches. Every failure mode reports the same error so
// callers cannot tell a missing user from a wrong password.
func (s *authService) Verify(username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *authService) Login(username, password string) (*LoginResponse, error) {
	user, err := s.Verify(username, password)
	if err != nil {
		return nil, err
	}

	token, err := jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token: token,
		User:  user.ToResponse(),
	}, nil
}
