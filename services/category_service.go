package services

import (
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/entity"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/repository"
)

// CategoryService is plain CRUD passthrough.
type CategoryService struct {
	Categories *repository.Collection[entity.Category, *entity.Category]
}

func NewCategoryService(colls *repository.Collections) *CategoryService {
	return &CategoryService{Categories: colls.Categories}
}

func (s *CategoryService) List() ([]entity.Category, error) {
	return s.Categories.GetAll()
}

func (s *CategoryService) Create(cat entity.Category) (entity.Category, error) {
	return s.Categories.Create(cat)
}

func (s *CategoryService) Update(id string, patch map[string]any) (*entity.Category, bool, error) {
	return s.Categories.Update(id, patch)
}

func (s *CategoryService) Delete(id string) (bool, error) {
	return s.Categories.Remove(id)
}
