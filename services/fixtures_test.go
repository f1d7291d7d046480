package services

import (
	"errors"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/entity"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/repository"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/store"
)

func withID(id string) entity.Base { return entity.Base{ID: id} }

// flakyStore fails every write once its budget runs out, standing in for
// a process dying mid-operation.
type flakyStore struct {
	store.Store
	writesLeft int
}

func (s *flakyStore) Set(key string, data []byte) error {
	if s.writesLeft <= 0 {
		return errors.New("write failed")
	}
	s.writesLeft--
	return s.Store.Set(key, data)
}

// testCollections returns in-memory collections with a small catalog:
// two restaurants, three menu items, one of them with priced options.
func testCollections() *repository.Collections {
	return repository.NewCollections(store.NewMemory(), repository.SeedData{
		Restaurants: []entity.Restaurant{
			{Base: withID("r1"), Name: "Cantina Um", DeliveryFee: 500, Rating: 4.5, IsOpen: true},
			{Base: withID("r2"), Name: "Cantina Dois", Rating: 4.0, IsOpen: true},
		},
		MenuItems: []entity.MenuItem{
			{Base: withID("m1"), RestaurantID: "r1", Name: "UnitA", Price: 1000, Available: true,
				Options: []entity.MenuItemOption{
					{Name: "Tamanho", Choices: []entity.OptionChoice{
						{Value: "Médio"},
						{Value: "Grande", PriceDelta: 300},
					}},
					{Name: "Extras", Multiple: true, Choices: []entity.OptionChoice{
						{Value: "Bacon", PriceDelta: 200},
						{Value: "Queijo", PriceDelta: 100},
					}},
				}},
			{Base: withID("m2"), RestaurantID: "r1", Name: "UnitB", Price: 500, Available: true},
			{Base: withID("m3"), RestaurantID: "r2", Name: "UnitC", Price: 700, Available: true},
		},
	})
}

func addSimple(menuItemID string, qty int) *AddItemIn {
	return &AddItemIn{MenuItemID: menuItemID, Quantity: qty}
}
