package repository

import "github.com/appjingle/tienda-erp/internal/domain/entity"

// StoreRepository define el puerto de persistencia para Store.
type StoreRepository interface {
	Create(store *entity.Store) error
	GetByID(id int64) (*entity.Store, error)
	List() ([]*entity.Store, error)
	Update(store *entity.Store) error
	Delete(id int64) (bool, error)
}
