package services

import (
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/entity"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/repository"
)

// UserService is the admin-panel view over users.
type UserService struct {
	Users *repository.Collection[entity.User, *entity.User]
}

func NewUserService(colls *repository.Collections) *UserService {
	return &UserService{Users: colls.Users}
}

func (s *UserService) List() ([]entity.User, error) {
	return s.Users.GetAll()
}

func (s *UserService) Get(id string) (*entity.User, bool, error) {
	return s.Users.GetByID(id)
}

func (s *UserService) SetRole(id, role string) (*entity.User, bool, error) {
	return s.Users.Update(id, map[string]any{"role": role})
}
