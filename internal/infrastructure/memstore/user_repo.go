package memstore

import (
	"github.com/appjingle/tienda-erp/internal/domain/entity"
	"github.com/appjingle/tienda-erp/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria del puerto UserRepository.
type UserRepo struct {
	arena *arena[entity.User]
}

// NewUserRepository construye el repositorio de usuarios.
func NewUserRepository() *UserRepo {
	return &UserRepo{arena: newArena[entity.User]()}
}

func (r *UserRepo) Create(user *entity.User) error {
	user.ID = r.arena.create(func(id int64) entity.User {
		u := *user
		u.ID = id
		return u
	})
	return nil
}

func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	rec, ok := r.arena.get(id)
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	rec, ok := r.arena.find(func(u entity.User) bool { return u.Username == username })
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *UserRepo) List() ([]*entity.User, error) {
	return toPtrs(r.arena.list(nil)), nil
}
