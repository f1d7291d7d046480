package services

import (
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/entity"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/repository"
)

type FavoriteService struct {
	Favorites *repository.Collection[entity.Favorite, *entity.Favorite]
}

func NewFavoriteService(colls *repository.Collections) *FavoriteService {
	return &FavoriteService{Favorites: colls.Favorites}
}

func (s *FavoriteService) ListByUser(userID string) ([]entity.Favorite, error) {
	all, err := s.Favorites.GetAll()
	if err != nil {
		return nil, err
	}
	out := make([]entity.Favorite, 0)
	for _, f := range all {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out, nil
}

// Toggle adds the restaurant to the user's favorites, or removes it when
// already present. Returns whether it is now a favorite.
func (s *FavoriteService) Toggle(userID, restaurantID string) (bool, error) {
	mine, err := s.ListByUser(userID)
	if err != nil {
		return false, err
	}
	for _, f := range mine {
		if f.RestaurantID == restaurantID {
			_, err := s.Favorites.Remove(f.ID)
			return false, err
		}
	}
	_, err = s.Favorites.Create(entity.Favorite{UserID: userID, RestaurantID: restaurantID})
	return true, err
}
