package entity

// SelectedOption is one chosen option on a cart line. Values holds a single
// element unless the menu option allows multiple choices.
type SelectedOption struct {
	Name       string   `json:"name"`
	Values     []string `json:"value"`
	PriceDelta int64    `json:"priceDelta"` // centavos per unit
}

// CartItem is one line of a cart. ID is deterministic over menu item plus
// chosen options, so adding the same combination twice merges quantities.
type CartItem struct {
	ID             string           `json:"id"`
	RestaurantID   string           `json:"restaurantId"`
	RestaurantName string           `json:"restaurantName"`
	MenuItemID     string           `json:"menuItemId"`
	Name           string           `json:"name"`
	UnitPrice      int64            `json:"price"` // centavos, before option deltas
	Image          string           `json:"image"`
	Quantity       int              `json:"quantity"`
	Options        []SelectedOption `json:"options,omitempty"`
}

// UnitTotal is the per-unit price including option deltas.
func (i CartItem) UnitTotal() int64 {
	total := i.UnitPrice
	for _, o := range i.Options {
		total += o.PriceDelta
	}
	return total
}

// Cart is the persisted set of lines a user intends to order, locked to one
// restaurant at a time.
type Cart struct {
	Base
	UserID string     `json:"userId"`
	Items  []CartItem `json:"items"`
}

func (c Cart) TotalItems() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c Cart) TotalPrice() int64 {
	var total int64
	for _, it := range c.Items {
		total += it.UnitTotal() * int64(it.Quantity)
	}
	return total
}

// RestaurantID is the restaurant all lines share, or "" for an empty cart.
func (c Cart) RestaurantID() string {
	if len(c.Items) == 0 {
		return ""
	}
	return c.Items[0].RestaurantID
}
