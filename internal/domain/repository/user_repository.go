package repository

import "github.com/appjingle/tienda-erp/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
}
