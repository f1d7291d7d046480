package repository

import (
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/entity"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/store"
)

// SeedData is written lazily on first access of each collection, never
// over existing data.
type SeedData struct {
	Categories  []entity.Category
	Restaurants []entity.Restaurant
	MenuItems   []entity.MenuItem
	Users       []entity.User
}

// Collections bundles every typed collection over one store. One instance
// per process.
type Collections struct {
	Users          *Collection[entity.User, *entity.User]
	Addresses      *Collection[entity.Address, *entity.Address]
	Restaurants    *Collection[entity.Restaurant, *entity.Restaurant]
	MenuItems      *Collection[entity.MenuItem, *entity.MenuItem]
	Categories     *Collection[entity.Category, *entity.Category]
	Carts          *Collection[entity.Cart, *entity.Cart]
	Orders         *Collection[entity.Order, *entity.Order]
	PaymentMethods *Collection[entity.PaymentMethod, *entity.PaymentMethod]
	Favorites      *Collection[entity.Favorite, *entity.Favorite]
}

func NewCollections(s store.Store, seed SeedData) *Collections {
	return &Collections{
		Users:          NewCollection[entity.User, *entity.User](s, "users", seed.Users),
		Addresses:      NewCollection[entity.Address, *entity.Address](s, "addresses", nil),
		Restaurants:    NewCollection[entity.Restaurant, *entity.Restaurant](s, "restaurants", seed.Restaurants),
		MenuItems:      NewCollection[entity.MenuItem, *entity.MenuItem](s, "menuItems", seed.MenuItems),
		Categories:     NewCollection[entity.Category, *entity.Category](s, "categories", seed.Categories),
		Carts:          NewCollection[entity.Cart, *entity.Cart](s, "carts", nil),
		Orders:         NewCollection[entity.Order, *entity.Order](s, "orders", nil),
		PaymentMethods: NewCollection[entity.PaymentMethod, *entity.PaymentMethod](s, "paymentMethods", nil),
		Favorites:      NewCollection[entity.Favorite, *entity.Favorite](s, "favorites", nil),
	}
}
