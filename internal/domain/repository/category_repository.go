package repository

import "github.com/appjingle/tienda-erp/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id int64) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id int64) (bool, error)
}
