package memstore

import (
	"github.com/appjingle/tienda-erp/internal/domain/entity"
	"github.com/appjingle/tienda-erp/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación en memoria del puerto CategoryRepository.
type CategoryRepo struct {
	arena *arena[entity.Category]
}

// NewCategoryRepository construye el repositorio de categorías.
func NewCategoryRepository() *CategoryRepo {
	return &CategoryRepo{arena: newArena[entity.Category]()}
}

func (r *CategoryRepo) Create(category *entity.Category) error {
	category.ID = r.arena.create(func(id int64) entity.Category {
		c := *category
		c.ID = id
		return c
	})
	return nil
}

func (r *CategoryRepo) GetByID(id int64) (*entity.Category, error) {
	rec, ok := r.arena.get(id)
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (r *CategoryRepo) List() ([]*entity.Category, error) {
	return toPtrs(r.arena.list(nil)), nil
}

func (r *CategoryRepo) Update(category *entity.Category) error {
	r.arena.put(category.ID, *category)
	return nil
}

func (r *CategoryRepo) Delete(id int64) (bool, error) {
	return r.arena.delete(id), nil
}
