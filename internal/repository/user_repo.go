package repository

import (
	"errors"
	"strings"

	"go-stockroom/internal/model"
	"go-stockroom/internal/storage"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository reads and writes the user collection. Unlike the catalog
// it holds no cache: every lookup re-reads storage.
type UserRepository interface {
	FindAll() ([]model.User, error)
	FindByUsername(username string) (*model.User, error)
	FindByID(id string) (*model.User, error)
	Create(user *model.User) error
}

type userRepo struct {
	store *storage.Store
}

func NewUserRepo(store *storage.Store) UserRepository {
	return &userRepo{store: store}
}

func (r *userRepo) FindAll() ([]model.User, error) {
	var users []model.User
	if err := r.store.Load(storage.UsersFile, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// FindByUsername looks up a user by exact username match, trimming the input.
func (r *userRepo) FindByUsername(username string) (*model.User, error) {
	users, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	username = strings.TrimSpace(username)
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

func (r *userRepo) FindByID(id string) (*model.User, error) {
	users, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

// Create appends the user to the collection and persists it immediately.
func (r *userRepo) Create(user *model.User) error {
	users, err := r.FindAll()
	if err != nil && !errors.Is(err, storage.ErrCorrupt) {
		return err
	}
	users = append(users, *user)
	return r.store.Save(storage.UsersFile, users)
}
