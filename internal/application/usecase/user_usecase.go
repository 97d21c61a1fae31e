package usecase

import (
	"github.com/appjingle/tienda-erp/internal/application/dto"
	"github.com/appjingle/tienda-erp/internal/domain/repository"
)

// UserUseCase consultas de usuarios. El alta vive en auth (registro).
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

func (uc *UserUseCase) GetByID(id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil || user == nil {
		return nil, err
	}
	return dto.ToUserResponse(user), nil
}

func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	list, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *dto.ToUserResponse(u))
	}
	return items, nil
}
