package memory

import (
	"sync"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo usuarios en memoria (tests).
type UserRepo struct {
	mu    sync.RWMutex
	users map[string]entity.User // email -> user
}

// NewUserRepository construye el repo vacío.
func NewUserRepository() *UserRepo {
	return &UserRepo{users: make(map[string]entity.User)}
}

// Create persiste un usuario nuevo.
func (r *UserRepo) Create(user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.Email]; ok {
		return domain.ErrEmailAlreadyExists
	}
	r.users[user.Email] = *user
	return nil
}

// FindByEmail busca por email; (nil, nil) si no existe.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	return &u, nil
}
