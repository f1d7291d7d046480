package services

import (
	"sort"
	"strings"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/entity"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/repository"
)

type MenuService struct {
	MenuItems *repository.Collection[entity.MenuItem, *entity.MenuItem]
}

func NewMenuService(colls *repository.Collections) *MenuService {
	return &MenuService{MenuItems: colls.MenuItems}
}

func (s *MenuService) ListByRestaurant(restaurantID string) ([]entity.MenuItem, error) {
	all, err := s.MenuItems.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]entity.MenuItem, 0)
	for _, m := range all {
		if m.RestaurantID == restaurantID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *MenuService) Get(id string) (*entity.MenuItem, bool, error) {
	return s.MenuItems.GetByID(id)
}

// FilterByName keeps items whose name contains substr, case-insensitive.
func FilterByName(items []entity.MenuItem, substr string) []entity.MenuItem {
	needle := strings.ToLower(substr)
	out := make([]entity.MenuItem, 0, len(items))
	for _, m := range items {
		if strings.Contains(strings.ToLower(m.Name), needle) {
			out = append(out, m)
		}
	}
	return out
}

func SortAlphabetically(items []entity.MenuItem) []entity.MenuItem {
	out := append([]entity.MenuItem(nil), items...)
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// SortByRating sorts descending; a missing rating counts as 0.
func SortByRating(items []entity.MenuItem) []entity.MenuItem {
	out := append([]entity.MenuItem(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Rating > out[j].Rating
	})
	return out
}

// Admin CRUD passthrough.

func (s *MenuService) Create(m entity.MenuItem) (entity.MenuItem, error) {
	return s.MenuItems.Create(m)
}

func (s *MenuService) Update(id string, patch map[string]any) (*entity.MenuItem, bool, error) {
	return s.MenuItems.Update(id, patch)
}

func (s *MenuService) Delete(id string) (bool, error) {
	return s.MenuItems.Remove(id)
}
