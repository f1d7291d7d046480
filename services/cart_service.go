package services

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/PedroHenrico2002/Projeto-Ale-sub000/entity"
	"github.com/PedroHenrico2002/Projeto-Ale-sub000/repository"
)

var (
	// ErrDifferentRestaurant: adding across restaurants is rejected, never
	// auto-cleared. The client clears the cart explicitly and retries.
	ErrDifferentRestaurant = errors.New("cart has another restaurant")
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrMenuItemUnavailable = errors.New("menu item unavailable")
	ErrInvalidOption       = errors.New("invalid option selection")
)

// CartService owns one persisted cart per user. All price math happens
// server-side from the menu catalog; the client only names its choices.
type CartService struct {
	Colls *repository.Collections
}

func NewCartService(colls *repository.Collections) *CartService {
	return &CartService{Colls: colls}
}

type OptionSelection struct {
	Name   string   `json:"name" binding:"required"`
	Values []string `json:"values" binding:"required,min=1"`
}

type AddItemIn struct {
	MenuItemID string            `json:"menuItemId" binding:"required"`
	Quantity   int               `json:"quantity" binding:"min=0"`
	Options    []OptionSelection `json:"options"`
}

// Get returns the user's cart, an empty unpersisted one if none exists
// yet, so the frontend always has something to render.
func (s *CartService) Get(userID string) (*entity.Cart, error) {
	carts, err := s.Colls.Carts.GetAll()
	if err != nil {
		return nil, err
	}
	for i := range carts {
		if carts[i].UserID == userID {
			return &carts[i], nil
		}
	}
	return &entity.Cart{UserID: userID, Items: []entity.CartItem{}}, nil
}

// AddItem validates the selection against the catalog, prices the line and
// merges it into the cart. A line with the same item+options combination
// increments quantity instead of duplicating.
func (s *CartService) AddItem(userID string, in *AddItemIn) (*entity.Cart, error) {
	if in.Quantity <= 0 {
		in.Quantity = 1
	}

	item, ok, err := s.Colls.MenuItems.GetByID(in.MenuItemID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrMenuItemNotFound
	}
	if !item.Available {
		return nil, ErrMenuItemUnavailable
	}

	rest, ok, err := s.Colls.Restaurants.GetByID(item.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("restaurant not found")
	}

	selected, err := resolveOptions(item, in)
	if err != nil {
		return nil, err
	}

	cart, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	if rid := cart.RestaurantID(); rid != "" && rid != item.RestaurantID {
		return nil, ErrDifferentRestaurant
	}

	line := entity.CartItem{
		ID:             lineID(item.ID, selected),
		RestaurantID:   item.RestaurantID,
		RestaurantName: rest.Name,
		MenuItemID:     item.ID,
		Name:           item.Name,
		UnitPrice:      item.Price,
		Image:          item.Image,
		Quantity:       in.Quantity,
		Options:        selected,
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ID == line.ID {
			cart.Items[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, line)
	}

	return s.persist(cart)
}

// UpdateQuantity clamps at zero; zero removes the line.
func (s *CartService) UpdateQuantity(userID, itemID string, quantity int) (*entity.Cart, error) {
	if quantity <= 0 {
		return s.RemoveItem(userID, itemID)
	}
	cart, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items[i].Quantity = quantity
			return s.persist(cart)
		}
	}
	return cart, nil
}

// RemoveItem is a no-op when the line is absent.
func (s *CartService) RemoveItem(userID, itemID string) (*entity.Cart, error) {
	cart, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			return s.persist(cart)
		}
	}
	return cart, nil
}

// Clear empties the cart and drops the restaurant lock. Idempotent.
func (s *CartService) Clear(userID string) (*entity.Cart, error) {
	cart, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	cart.Items = []entity.CartItem{}
	return s.persist(cart)
}

func (s *CartService) persist(cart *entity.Cart) (*entity.Cart, error) {
	if cart.ID == "" {
		created, err := s.Colls.Carts.Create(*cart)
		if err != nil {
			return nil, err
		}
		return &created, nil
	}
	if _, err := s.Colls.Carts.Replace(cart.ID, *cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// resolveOptions matches the client's named choices against the menu
// item's option groups and prices each selection.
func resolveOptions(item *entity.MenuItem, in *AddItemIn) ([]entity.SelectedOption, error) {
	selected := make([]entity.SelectedOption, 0, len(in.Options))
	for _, sel := range in.Options {
		group := findOptionGroup(item.Options, sel.Name)
		if group == nil {
			return nil, ErrInvalidOption
		}
		if !group.Multiple && len(sel.Values) > 1 {
			return nil, ErrInvalidOption
		}
		var delta int64
		for _, v := range sel.Values {
			choice := findChoice(group.Choices, v)
			if choice == nil {
				return nil, ErrInvalidOption
			}
			delta += choice.PriceDelta
		}
		selected = append(selected, entity.SelectedOption{
			Name:       group.Name,
			Values:     sel.Values,
			PriceDelta: delta,
		})
	}
	return selected, nil
}

func findOptionGroup(groups []entity.MenuItemOption, name string) *entity.MenuItemOption {
	for i := range groups {
		if groups[i].Name == name {
			return &groups[i]
		}
	}
	return nil
}

func findChoice(choices []entity.OptionChoice, value string) *entity.OptionChoice {
	for i := range choices {
		if choices[i].Value == value {
			return &choices[i]
		}
	}
	return nil
}

// lineID is deterministic over the menu item and the chosen options, so
// the same combination always lands on the same cart line.
func lineID(menuItemID string, options []entity.SelectedOption) string {
	parts := make([]string, 0, len(options))
	for _, o := range options {
		vals := append([]string(nil), o.Values...)
		sort.Strings(vals)
		parts = append(parts, o.Name+"="+strings.Join(vals, "+"))
	}
	sort.Strings(parts)
	if len(parts) == 0 {
		return menuItemID
	}
	sum := sha1.Sum([]byte(strings.Join(parts, "|")))
	return fmt.Sprintf("%s-%s", menuItemID, hex.EncodeToString(sum[:6]))
}
