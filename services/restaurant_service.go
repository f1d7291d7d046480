package services

import (
	"sort"
	"strings"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/entity"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/repository"
)

type RestaurantService struct {
	Restaurants *repository.Collection[entity.Restaurant, *entity.Restaurant]
}

func NewRestaurantService(colls *repository.Collections) *RestaurantService {
	return &RestaurantService{Restaurants: colls.Restaurants}
}

// List filters by category and/or case-insensitive name search; empty
// arguments mean no filter. Sorted by rating, best first.
func (s *RestaurantService) List(categoryID, search string) ([]entity.Restaurant, error) {
	all, err := s.Restaurants.GetAll()
	if err != nil {
		return nil, err
	}
	needle := strings.ToLower(search)
	out := make([]entity.Restaurant, 0, len(all))
	for _, r := range all {
		if categoryID != "" && r.CategoryID != categoryID {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(r.Name), needle) {
			continue
		}
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	return out, nil
}

func (s *RestaurantService) Get(id string) (*entity.Restaurant, bool, error) {
	return s.Restaurants.GetByID(id)
}

func (s *RestaurantService) Create(r entity.Restaurant) (entity.Restaurant, error) {
	return s.Restaurants.Create(r)
}

func (s *RestaurantService) Update(id string, patch map[string]any) (*entity.Restaurant, bool, error) {
	return s.Restaurants.Update(id, patch)
}

func (s *RestaurantService) Delete(id string) (bool, error) {
	return s.Restaurants.Remove(id)
}
