package entity

// Address belongs to exactly one user or exactly one restaurant, never both.
// IsRestaurantAddress decides which foreign key is meaningful.
type Address struct {
	Base
	UserID       string `json:"userId,omitempty"`
	RestaurantID string `json:"restaurantId,omitempty"`

	Label      string `json:"label"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	ZipCode    string `json:"zipCode"`

	IsRestaurantAddress bool `json:"isRestaurantAddress"`
	IsDefault           bool `json:"isDefault"`
}
