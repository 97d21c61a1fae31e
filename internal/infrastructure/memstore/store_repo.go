package memstore

import (
	"github.com/appjingle/tienda-erp/internal/domain/entity"
	"github.com/appjingle/tienda-erp/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación en memoria del puerto StoreRepository.
type StoreRepo struct {
	arena *arena[entity.Store]
}

// NewStoreRepository construye el repositorio de tiendas.
func NewStoreRepository() *StoreRepo {
	return &StoreRepo{arena: newArena[entity.Store]()}
}

func (r *StoreRepo) Create(store *entity.Store) error {
	store.ID = r.arena.create(func(id int64) entity.Store {
		s := *store
		s.ID = id
		return s
	})
	return nil
}

func (r *StoreRepo) GetByID(id int64) (*entity.Store, error) {
	rec, ok := r.arena.get(id)
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *StoreRepo) List() ([]*entity.Store, error) {
	return toPtrs(r.arena.list(nil)), nil
}

func (r *StoreRepo) Update(store *entity.Store) error {
	r.arena.put(store.ID, *store)
	return nil
}

func (r *StoreRepo) Delete(id int64) (bool, error) {
	return r.arena.delete(id), nil
}
