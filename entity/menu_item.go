package entity

// MenuItemOption is an option group offered on a menu item, e.g. "Size"
// with choices P/M/G. Multiple allows picking more than one choice.
type MenuItemOption struct {
	Name     string         `json:"name"`
	Multiple bool           `json:"multiple"`
	Choices  []OptionChoice `json:"choices"`
}

type OptionChoice struct {
	Value      string `json:"value"`
	PriceDelta int64  `json:"priceDelta"` // centavos, added to the unit price
}

type MenuItem struct {
	Base
	RestaurantID string `json:"restaurantId"`
	Name         string `json:"name"`
	Description  string `json:"description"`

	Price   int64            `json:"price"` // centavos
	Image   string           `json:"image"`
	Rating  float64          `json:"rating,omitempty"`
	Options []MenuItemOption `json:"options,omitempty"`

	Available bool `json:"available"`
}
